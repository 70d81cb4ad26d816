package app

import (
	"context"
	"errors"
	"time"

	"github.com/alexisbeaulieu97/navshell/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/navshell/internal/observable"
	"github.com/alexisbeaulieu97/navshell/internal/ports"
	"github.com/alexisbeaulieu97/navshell/internal/router"
	"github.com/alexisbeaulieu97/navshell/internal/settings"
)

// Session coordinates navigation with the settings panel lifecycle. The
// settings controller exists only while the active view chain contains the
// settings view: entering it creates and initialises a fresh controller and
// leaving it discards the controller together with any unsaved changes.
type Session struct {
	nav       *router.Navigator
	store     ports.KVStore
	theme     *observable.Value[settings.Theme]
	logger    ports.Logger
	publisher ports.EventPublisher
	clock     func() time.Time

	settings *settings.Controller
}

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithLogger attaches a logger to the session and the components it creates.
func WithLogger(l ports.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPublisher attaches an event publisher.
func WithPublisher(p ports.EventPublisher) SessionOption {
	return func(s *Session) { s.publisher = p }
}

// WithClock overrides the clock handed to settings controllers.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.clock = now }
}

// WithTheme shares an existing theme cell instead of creating one.
func WithTheme(theme *observable.Value[settings.Theme]) SessionOption {
	return func(s *Session) {
		if theme != nil {
			s.theme = theme
		}
	}
}

// NewSession builds the route table and a navigator over it. store backs the
// settings panel.
func NewSession(store ports.KVStore, opts ...SessionOption) (*Session, error) {
	if store == nil {
		return nil, errors.New("settings store is required")
	}

	s := &Session{
		store:  store,
		theme:  observable.NewValue(settings.DefaultTheme),
		logger: logging.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r, err := NewRouter()
	if err != nil {
		return nil, err
	}

	navOpts := []router.NavigatorOption{router.WithLogger(s.logger.With("component", "navigator"))}
	if s.publisher != nil {
		navOpts = append(navOpts, router.WithPublisher(s.publisher))
	}
	s.nav = router.NewNavigator(r, navOpts...)
	return s, nil
}

// Theme returns the cell holding the applied theme.
func (s *Session) Theme() *observable.Value[settings.Theme] {
	return s.theme
}

// Publisher returns the event publisher, or nil when none was attached.
func (s *Session) Publisher() ports.EventPublisher {
	return s.publisher
}

// Current returns the active navigation state.
func (s *Session) Current() router.State {
	return s.nav.Current()
}

// Settings returns the mounted settings controller, or nil when the settings
// view is not active.
func (s *Session) Settings() *settings.Controller {
	return s.settings
}

// CanGoBack reports whether Back would change the active view.
func (s *Session) CanGoBack() bool {
	return s.nav.CanGoBack()
}

// CanGoForward reports whether Forward would change the active view.
func (s *Session) CanGoForward() bool {
	return s.nav.CanGoForward()
}

// Start makes path the initial state without recording history.
func (s *Session) Start(ctx context.Context, path string) router.State {
	return s.sync(ctx, s.nav.Replace(ctx, path))
}

// Navigate moves to path.
func (s *Session) Navigate(ctx context.Context, path string) router.State {
	return s.sync(ctx, s.nav.Navigate(ctx, path))
}

// Back returns to the previous state. ok is false when there is no history.
func (s *Session) Back(ctx context.Context) (router.State, bool) {
	state, ok := s.nav.Back(ctx)
	if !ok {
		return state, false
	}
	return s.sync(ctx, state), true
}

// Forward re-applies a state left through Back.
func (s *Session) Forward(ctx context.Context) (router.State, bool) {
	state, ok := s.nav.Forward(ctx)
	if !ok {
		return state, false
	}
	return s.sync(ctx, state), true
}

// sync mounts or unmounts the settings controller to follow state.
func (s *Session) sync(ctx context.Context, state router.State) router.State {
	mounted := state.Match.Contains(ViewSettings)
	switch {
	case mounted && s.settings == nil:
		s.settings = s.newSettings()
		s.settings.Initialize(ctx)
		s.logger.Debug(ctx, "settings panel mounted", "path", state.Path)
	case !mounted && s.settings != nil:
		s.settings = nil
		s.logger.Debug(ctx, "settings panel unmounted", "path", state.Path)
	}
	return state
}

func (s *Session) newSettings() *settings.Controller {
	opts := []settings.Option{settings.WithLogger(s.logger.With("component", "settings"))}
	if s.publisher != nil {
		opts = append(opts, settings.WithPublisher(s.publisher))
	}
	if s.clock != nil {
		opts = append(opts, settings.WithClock(s.clock))
	}
	return settings.NewController(s.store, s.theme, opts...)
}
