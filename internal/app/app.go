// Package app wires the terminal event source to the keycast session
// and runs the main loop.
package app

import (
	"fmt"

	"github.com/dshills/keycast/internal/config"
	"github.com/dshills/keycast/internal/key"
	"github.com/dshills/keycast/internal/logging"
	"github.com/dshills/keycast/internal/overlay"
	"github.com/dshills/keycast/internal/script"
	"github.com/dshills/keycast/internal/session"
)

// quitNotation exits the program. Ctrl+C reaches us as a key event
// because the terminal is in raw mode.
const quitNotation = "<C-c>"

// Application owns the backend surface and the session and runs the
// event loop.
type Application struct {
	cfg     config.Config
	backend overlay.Backend
	session *session.Session
	log     *logging.Logger
	hook    *script.Hook
}

// Option configures an Application.
type Option func(*Application)

// WithLogger sets the application logger.
func WithLogger(log *logging.Logger) Option {
	return func(a *Application) {
		a.log = log
	}
}

// WithHook attaches a user script hook. The application closes it on
// shutdown.
func WithHook(hook *script.Hook) Option {
	return func(a *Application) {
		a.hook = hook
	}
}

// New creates an application on an uninitialized backend.
func New(cfg config.Config, backend overlay.Backend, opts ...Option) *Application {
	a := &Application{
		cfg:     cfg,
		backend: backend,
		log:     logging.New(nil, logging.LevelInfo),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run initializes the backend, activates the caster, and processes
// events until quit. The backend is restored on all return paths.
func (a *Application) Run() error {
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer a.backend.Fini()
	defer a.closeHook()

	sessOpts := []session.Option{session.WithLogger(a.log)}
	if a.hook != nil {
		sessOpts = append(sessOpts, session.WithHook(a.hook))
	}

	s, err := session.New(a.cfg, a.backend, sessOpts...)
	if err != nil {
		return err
	}
	a.session = s
	defer s.Close()

	// The caster starts visible; the toggle key hides it.
	if err := s.Toggle(); err != nil {
		return err
	}

	a.log.Info("keycast running, toggle=%s", a.cfg.Toggle)
	return a.loop()
}

// Quit posts a synthetic quit key so a blocked event loop unwinds.
// Safe to call from other goroutines, e.g. a signal handler.
func (a *Application) Quit() {
	a.backend.PostEvent(overlay.Event{
		Type: overlay.EventKey,
		Key:  key.NewRuneEvent('c', key.ModCtrl),
	})
}

func (a *Application) loop() error {
	for {
		ev := a.backend.PollEvent()
		switch ev.Type {
		case overlay.EventKey:
			chunk := ev.Key.Notation()
			switch chunk {
			case quitNotation:
				a.log.Info("quit")
				return nil
			case a.cfg.Toggle:
				if err := a.session.Toggle(); err != nil {
					a.log.Error("toggle failed: %v", err)
				}
			default:
				a.session.OnKeyEvent(chunk)
			}

		case overlay.EventMouse:
			// Pointer events feed the pipeline so the translator can
			// discard them; motion has no notation and is skipped.
			if chunk := ev.Button.Notation(); chunk != "" {
				a.session.OnKeyEvent(chunk)
			}

		case overlay.EventResize:
			a.session.Redraw()
		}
	}
}

func (a *Application) closeHook() {
	if a.hook != nil {
		a.hook.Close()
	}
}
