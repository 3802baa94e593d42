package overlay

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keycast/internal/key"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}

	// Mouse events are needed so the pipeline can see, and discard,
	// pointer input.
	t.screen.EnableMouse()

	return nil
}

func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetContent(x, y int, r rune, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, r, nil, style.tcellStyle())
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	return convertEvent(ev)
}

func (t *Terminal) PostEvent(event Event) {
	if event.Type != EventKey {
		return
	}
	tcellEv := tcell.NewEventKey(toTcellKey(event.Key), event.Key.Rune, toTcellMod(event.Key.Modifiers))
	_ = t.screen.PostEvent(tcellEv) // best-effort; event queue may be full
}

// toTcellKey maps a key event back to the tcell key for PostEvent.
func toTcellKey(e key.Event) tcell.Key {
	if e.Key == key.KeyRune {
		if e.Modifiers.HasCtrl() && e.Rune >= 'a' && e.Rune <= 'z' {
			return tcell.KeyCtrlA + tcell.Key(e.Rune-'a')
		}
		return tcell.KeyRune
	}
	for tk, k := range specialKeys {
		if k == e.Key && tk != tcell.KeyBackspace2 {
			return tk
		}
	}
	return tcell.KeyRune
}

func toTcellMod(m key.Modifier) tcell.ModMask {
	var mask tcell.ModMask
	if m.HasShift() {
		mask |= tcell.ModShift
	}
	if m.HasCtrl() {
		mask |= tcell.ModCtrl
	}
	if m.HasAlt() {
		mask |= tcell.ModAlt
	}
	if m.HasMeta() {
		mask |= tcell.ModMeta
	}
	return mask
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{
			Type: EventKey,
			Key:  convertKeyEvent(e),
		}

	case *tcell.EventMouse:
		return Event{
			Type:   EventMouse,
			Button: convertMouseButton(e.Buttons()),
		}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{
			Type:   EventResize,
			Width:  w,
			Height: h,
		}

	default:
		return Event{Type: EventNone}
	}
}

// convertKeyEvent converts a tcell key event to a key.Event.
func convertKeyEvent(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())

	if k, ok := specialKeys[e.Key()]; ok {
		return key.NewSpecialEvent(k, mods)
	}

	// tcell reports control characters as dedicated keys; fold them
	// back into rune events carrying the Ctrl modifier. KeyTab and
	// KeyEnter alias Ctrl-I and Ctrl-M and were handled above.
	if e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + e.Key() - tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl))
	}

	if e.Key() == tcell.KeyRune {
		return key.NewRuneEvent(e.Rune(), mods)
	}

	return key.Event{}
}

// specialKeys maps tcell special keys to ours. KeyBackspace2 is the
// DEL byte most terminals send for the backspace key.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertMod converts tcell modifier masks to ours.
func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

// convertMouseButton reduces a tcell button mask to a single button.
func convertMouseButton(mask tcell.ButtonMask) MouseButton {
	switch {
	case mask&tcell.WheelUp != 0:
		return WheelUp
	case mask&tcell.WheelDown != 0:
		return WheelDown
	case mask&tcell.Button1 != 0:
		return ButtonLeft
	case mask&tcell.Button2 != 0:
		return ButtonRight
	case mask&tcell.Button3 != 0:
		return ButtonMiddle
	default:
		return ButtonNone
	}
}
