package notation

import (
	"reflect"
	"testing"
)

func TestSplitOrdinaryCharacters(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"a", []string{"a"}},
		{"abc", []string{"a", "b", "c"}},
		{"a1!", []string{"a", "1", "!"}},
		{"", nil},
	}

	for _, tt := range tests {
		got := Split(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Split(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestSplitBracketedUnits(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"<Tab>", []string{"<Tab>"}},
		{"<C-a>", []string{"<C-a>"}},
		{"a<CR>b", []string{"a", "<CR>", "b"}},
		{"<Esc><Esc>", []string{"<Esc>", "<Esc>"}},
		{"x<C-S-p>", []string{"x", "<C-S-p>"}},
	}

	for _, tt := range tests {
		got := Split(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Split(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

// A bracket that never closes is dropped rather than flushed as a
// partial token.
func TestSplitDanglingBracket(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"<", nil},
		{"<C-a", nil},
		{"ab<C-", []string{"a", "b"}},
	}

	for _, tt := range tests {
		got := Split(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Split(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

// A stray '>' outside any bracket is an ordinary character.
func TestSplitStrayClose(t *testing.T) {
	got := Split(">a")
	want := []string{">", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split(%q) = %v, want %v", ">a", got, want)
	}
}

func TestSplitUnicode(t *testing.T) {
	got := Split("é<Tab>語")
	want := []string{"é", "<Tab>", "語"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split(%q) = %v, want %v", "é<Tab>語", got, want)
	}
}
