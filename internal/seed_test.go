package internal

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeSeed(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return path
}

func TestSeedItems(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		items, err := SeedItems("", false)
		if err != nil {
			t.Fatalf("SeedItems: %v", err)
		}
		if !reflect.DeepEqual(items, DefaultItems()) {
			t.Fatalf("items = %+v", items)
		}
		if len(items) != 4 {
			t.Fatalf("len = %d, want 4", len(items))
		}
	})

	t.Run("empty", func(t *testing.T) {
		items, err := SeedItems("", true)
		if err != nil {
			t.Fatalf("SeedItems: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("items = %+v, want none", items)
		}
	})

	t.Run("seed file wins over empty", func(t *testing.T) {
		path := writeSeed(t, `
[[item]]
text = "Water plants"

[[item]]
text = "Call mum"
completed = true
`)
		items, err := SeedItems(path, true)
		if err != nil {
			t.Fatalf("SeedItems: %v", err)
		}
		want := []Item{{Text: "Water plants"}, {Text: "Call mum", Completed: true}}
		if !reflect.DeepEqual(items, want) {
			t.Fatalf("items = %+v, want %+v", items, want)
		}
	})
}

func TestLoadSeedErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			wantErr: "load seed",
		},
		{
			name:    "bad syntax",
			path:    func(t *testing.T) string { return writeSeed(t, "[[item]\ntext = ") },
			wantErr: "load seed",
		},
		{
			name:    "newline in text",
			path:    func(t *testing.T) string { return writeSeed(t, "[[item]]\ntext = \"a\\nb\"\n") },
			wantErr: "control characters",
		},
		{
			name:    "tab in text",
			path:    func(t *testing.T) string { return writeSeed(t, "[[item]]\ntext = \"ok\"\n\n[[item]]\ntext = \"a\\tb\"\n") },
			wantErr: "item 2",
		},
		{
			name:    "unknown key",
			path:    func(t *testing.T) string { return writeSeed(t, "[[item]]\ntext = \"a\"\ndue = \"friday\"\n") },
			wantErr: "unknown key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(tt.path(t))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSeedNoItems(t *testing.T) {
	items, err := LoadSeed(writeSeed(t, "# nothing to do\n"))
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items = %+v, want none", items)
	}
}
