package key

import "testing"

func TestNotationRunes(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent('!', ModNone), "!"},
		{NewRuneEvent(' ', ModNone), "<Space>"},
		{NewRuneEvent('<', ModNone), "<lt>"},
		{NewRuneEvent('>', ModNone), ">"},
	}

	for _, tt := range tests {
		if got := tt.event.Notation(); got != tt.want {
			t.Errorf("Notation(%#v) = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestNotationSpecialKeys(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyTab, "<Tab>"},
		{KeyEnter, "<CR>"},
		{KeyEscape, "<Esc>"},
		{KeyBackspace, "<BS>"},
		{KeyLeft, "<Left>"},
		{KeyRight, "<Right>"},
		{KeyPageUp, "<PageUp>"},
		{KeyF10, "<F10>"},
	}

	for _, tt := range tests {
		if got := NewSpecialEvent(tt.key, ModNone).Notation(); got != tt.want {
			t.Errorf("Notation(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestNotationModified(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModCtrl), "<C-a>"},
		{NewRuneEvent('A', ModCtrl), "<C-a>"},
		{NewRuneEvent('p', ModCtrl.With(ModShift)), "<C-S-p>"},
		{NewRuneEvent('x', ModAlt), "<A-x>"},
		{NewSpecialEvent(KeyLeft, ModCtrl), "<C-Left>"},
		{NewSpecialEvent(KeyTab, ModShift), "<S-Tab>"},
	}

	for _, tt := range tests {
		if got := tt.event.Notation(); got != tt.want {
			t.Errorf("Notation(%#v) = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mods Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "C"},
		{ModCtrl.With(ModShift), "C-S"},
		{ModCtrl.With(ModAlt).With(ModShift), "C-A-S"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Modifier.String(%b) = %q, want %q", tt.mods, got, tt.want)
		}
	}
}

func TestKeyPredicates(t *testing.T) {
	if !KeyF5.IsFunctionKey() {
		t.Error("KeyF5.IsFunctionKey() = false, want true")
	}
	if KeyTab.IsFunctionKey() {
		t.Error("KeyTab.IsFunctionKey() = true, want false")
	}
	if !KeyTab.IsSpecial() {
		t.Error("KeyTab.IsSpecial() = false, want true")
	}
	if KeyRune.IsSpecial() {
		t.Error("KeyRune.IsSpecial() = true, want false")
	}
}
