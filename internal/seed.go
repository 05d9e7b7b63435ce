package internal

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

// seedFile is the layout of a --seed file:
//
//	[[item]]
//	text = "Buy milk"
//	completed = false
type seedFile struct {
	Items []Item `toml:"item"`
}

// DefaultItems is the list a session starts with when nothing else is asked for.
func DefaultItems() []Item {
	return []Item{
		{Text: "Buy milk", Completed: false},
		{Text: "Buy eggs", Completed: true},
		{Text: "Buy bread", Completed: false},
		{Text: "Buy butter", Completed: true},
	}
}

// LoadSeed reads the starting items from a TOML file. Nothing is ever written back to it.
func LoadSeed(path string) ([]Item, error) {
	var f seedFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("load seed %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load seed %s: unknown key %q", path, undecoded[0].String())
	}
	for i, item := range f.Items {
		if strings.IndexFunc(item.Text, unicode.IsControl) >= 0 {
			return nil, fmt.Errorf("load seed %s: item %d: text %q has control characters", path, i+1, item.Text)
		}
	}
	return f.Items, nil
}

// SeedItems picks the starting items: the seed file if there is one, else nothing when empty is set,
// else DefaultItems.
func SeedItems(seedPath string, empty bool) ([]Item, error) {
	switch {
	case seedPath != "":
		return LoadSeed(seedPath)
	case empty:
		return nil, nil
	default:
		return DefaultItems(), nil
	}
}
