package internal

import (
	"errors"
	"unicode/utf8"
)

// ErrOutOfRange is returned whenever an index (or a cursor row mapped to one) falls outside the list.
var ErrOutOfRange = errors.New("index out of range")

// Item is a single todo. It has no identity beyond its position in the List.
type Item struct {
	Text      string `toml:"text"`
	Completed bool   `toml:"completed"`
}

// List is the ordered sequence of items. Row N of the item area on screen is the item at index N.
type List struct {
	items []Item
}

func NewList(items []Item) *List {
	l := &List{items: make([]Item, 0, len(items))}
	l.items = append(l.items, items...)
	return l
}

func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the current contents, in display order.
func (l *List) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Item(i int) (Item, error) {
	if !l.valid(i) {
		return Item{}, ErrOutOfRange
	}
	return l.items[i], nil
}

// Add appends a new, not yet completed item and returns its index.
func (l *List) Add(text string) int {
	l.items = append(l.items, Item{Text: text})
	return len(l.items) - 1
}

// Remove deletes the item at i. Items after it shift down by one.
func (l *List) Remove(i int) error {
	if !l.valid(i) {
		return ErrOutOfRange
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

func (l *List) Toggle(i int) error {
	if !l.valid(i) {
		return ErrOutOfRange
	}
	l.items[i].Completed = !l.items[i].Completed
	return nil
}

func (l *List) AppendChar(i int, ch rune) error {
	if !l.valid(i) {
		return ErrOutOfRange
	}
	l.items[i].Text += string(ch)
	return nil
}

// PopChar removes the last rune of the item's text. Popping from empty text does nothing.
func (l *List) PopChar(i int) error {
	if !l.valid(i) {
		return ErrOutOfRange
	}
	text := l.items[i].Text
	if text == "" {
		return nil
	}
	_, size := utf8.DecodeLastRuneInString(text)
	l.items[i].Text = text[:len(text)-size]
	return nil
}

func (l *List) valid(i int) bool {
	return i >= 0 && i < len(l.items)
}

// IndexForRow maps a screen row to a list index. headerRows is the number of lines drawn above the
// first item. Rows that don't address an item are ErrOutOfRange.
func IndexForRow(row, headerRows, length int) (int, error) {
	i := row - headerRows
	if i < 0 || i >= length {
		return -1, ErrOutOfRange
	}
	return i, nil
}

func RowForIndex(i, headerRows int) int {
	return i + headerRows
}
