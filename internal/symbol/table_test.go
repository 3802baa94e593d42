package symbol

import "testing"

func TestLookup(t *testing.T) {
	table := Default()

	tests := []struct {
		name      string
		wantGlyph string
		wantOK    bool
	}{
		{"TAB", "⇥", true},
		{"tab", "⇥", true},
		{"Cr", "⏎", true},
		{"CTRL", "Ctrl", true},
		{"F5", "F5", true},
		{"LEFT", "←", true},
		{"NOSUCHKEY", "", false},
		{"a", "", false},
	}

	for _, tt := range tests {
		glyph, ok := table.Lookup(tt.name)
		if ok != tt.wantOK {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if glyph != tt.wantGlyph {
			t.Errorf("Lookup(%q) = %q, want %q", tt.name, glyph, tt.wantGlyph)
		}
	}
}

func TestMerge(t *testing.T) {
	base := Default()
	merged := base.Merge(map[string]string{
		"tab":   "TabGlyph",
		"Hyper": "✦",
	})

	if glyph, _ := merged.Lookup("TAB"); glyph != "TabGlyph" {
		t.Errorf("merged Lookup(TAB) = %q, want %q", glyph, "TabGlyph")
	}
	if glyph, _ := merged.Lookup("HYPER"); glyph != "✦" {
		t.Errorf("merged Lookup(HYPER) = %q, want %q", glyph, "✦")
	}

	// The base table must not be modified.
	if glyph, _ := base.Lookup("TAB"); glyph != "⇥" {
		t.Errorf("base Lookup(TAB) = %q after merge, want %q", glyph, "⇥")
	}
	if _, ok := base.Lookup("HYPER"); ok {
		t.Error("base table gained HYPER entry from merge")
	}
}

func TestMergeNil(t *testing.T) {
	base := Default()
	clone := base.Merge(nil)
	if len(clone) != len(base) {
		t.Errorf("Merge(nil) len = %d, want %d", len(clone), len(base))
	}
}
