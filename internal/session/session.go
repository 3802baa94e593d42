// Package session owns the state of one keycast run: the active flag,
// the overlay, and the display queue, with the whole
// parse-translate-append-render cycle serialized behind one mutex.
package session

import (
	"fmt"
	"sync"

	"github.com/dshills/keycast/internal/config"
	"github.com/dshills/keycast/internal/display"
	"github.com/dshills/keycast/internal/logging"
	"github.com/dshills/keycast/internal/notation"
	"github.com/dshills/keycast/internal/overlay"
	"github.com/dshills/keycast/internal/script"
	"github.com/dshills/keycast/internal/symbol"
	"github.com/dshills/keycast/internal/translate"
)

// Session runs the keycast pipeline against one backend surface. It
// starts inactive; Toggle activates it.
type Session struct {
	mu sync.Mutex

	cfg        config.Config
	backend    overlay.Backend
	translator *translate.Translator
	queue      *display.Queue
	hook       *script.Hook
	log        *logging.Logger

	style  overlay.Style
	anchor overlay.Anchor

	active  bool
	overlay *overlay.Overlay
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(log *logging.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithHook attaches a user script hook. The session does not own the
// hook; the caller closes it.
func WithHook(hook *script.Hook) Option {
	return func(s *Session) {
		s.hook = hook
	}
}

// New creates an inactive session on an initialized backend. The
// configuration must already be validated; style and anchor parsing
// errors are still surfaced.
func New(cfg config.Config, backend overlay.Backend, opts ...Option) (*Session, error) {
	s := &Session{
		cfg:     cfg,
		backend: backend,
		queue:   display.New(cfg.Width, cfg.CompressAfter),
		log:     logging.New(nil, logging.LevelInfo),
	}

	for _, opt := range opts {
		opt(s)
	}

	style, err := overlay.ParseStyle(cfg.Style.Foreground, cfg.Style.Background)
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	s.style = style

	anchor, err := overlay.ParseAnchor(cfg.Anchor)
	if err != nil {
		return nil, fmt.Errorf("anchor: %w", err)
	}
	s.anchor = anchor

	table := symbol.Default().Merge(cfg.Symbols)
	if s.hook != nil {
		table = table.Merge(s.hook.Symbols())
	}
	s.translator = translate.New(table)

	return s, nil
}

// Active reports whether the overlay is currently shown.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Toggle flips the session between active and inactive. Activation
// creates the overlay and starts from an empty queue; if the overlay
// cannot be created the session stays inactive and the error is
// returned. Deactivation clears the overlay and discards all buffered
// state.
func (s *Session) Toggle() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		s.overlay.Clear()
		s.overlay = nil
		s.queue.Reset()
		s.active = false
		s.log.Info("keycast deactivated")
		return nil
	}

	ov, err := overlay.New(s.backend, s.cfg.Width, s.cfg.Height, s.anchor, s.style)
	if err != nil {
		s.log.Error("overlay creation failed: %v", err)
		return fmt.Errorf("activating keycast: %w", err)
	}

	s.overlay = ov
	s.queue.Reset()
	s.active = true
	s.log.Info("keycast activated width=%d height=%d", s.cfg.Width, s.cfg.Height)
	return nil
}

// OnKeyEvent feeds one raw input chunk through the pipeline and
// redraws the overlay. It is a no-op while inactive or for empty
// input. Tokens that translate to nothing are dropped silently.
func (s *Session) OnKeyEvent(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || raw == "" {
		return
	}

	tokens := notation.Split(raw)
	symbols := s.translator.TranslateAll(tokens)
	symbols = s.applyHook(symbols)
	if len(symbols) == 0 {
		return
	}

	s.queue.Append(symbols...)
	s.overlay.Draw(s.queue.Render())
}

// applyHook runs each symbol through the user script, if any.
func (s *Session) applyHook(symbols []string) []string {
	if s.hook == nil {
		return symbols
	}

	kept := symbols[:0]
	for _, sym := range symbols {
		out, keep, err := s.hook.Transform(sym)
		if err != nil {
			s.log.Warn("script error: %v", err)
		}
		if keep {
			kept = append(kept, out)
		}
	}
	return kept
}

// Redraw repaints the overlay with the current queue content, e.g.
// after a terminal resize.
func (s *Session) Redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		s.overlay.Draw(s.queue.Render())
	}
}

// Rendered returns the current overlay line. It renders from the
// queue without appending, so repeated calls yield identical output.
// An inactive session renders nothing.
func (s *Session) Rendered() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ""
	}
	return s.queue.Render()
}

// Close deactivates the session if needed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		s.overlay.Clear()
		s.overlay = nil
		s.queue.Reset()
		s.active = false
	}
}
