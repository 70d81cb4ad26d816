// Package settings implements the settings panel's load, apply, save and
// reset cycle over a persistent key-value store.
//
// The controller keeps the preference record in memory. Theme changes are
// applied to the injected theme target immediately; nothing reaches the
// store until Save. Store failures are logged and swallowed: every operation
// degrades to defaults instead of failing its caller.
package settings

import (
	"context"
	"errors"
	"time"

	"github.com/alexisbeaulieu97/navshell/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/navshell/internal/ports"
)

// SavedAtLayout formats the save timestamp in StatusLine.
const SavedAtLayout = "2006-01-02 15:04:05"

var errNoStore = errors.New("settings store is not configured")

// ThemeTarget receives the active theme. The controller only ever writes to
// it; *observable.Value[Theme] is the usual implementation.
type ThemeTarget interface {
	Set(Theme)
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for store failure warnings.
func WithLogger(l ports.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPublisher publishes settings lifecycle events.
func WithPublisher(p ports.EventPublisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithClock overrides the clock used for the save timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// Controller is the settings state machine. It is not safe for concurrent
// use; callers drive it from a single event loop.
type Controller struct {
	store     ports.KVStore
	theme     ThemeTarget
	logger    ports.Logger
	publisher ports.EventPublisher
	now       func() time.Time

	prefs    Preferences
	baseline Preferences
	state    State
	clean    State
	savedAt  *time.Time
}

// NewController creates an uninitialized controller holding default
// preferences.
func NewController(store ports.KVStore, theme ThemeTarget, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		theme:    theme,
		logger:   logging.NewNoOpLogger(),
		now:      time.Now,
		prefs:    Defaults(),
		baseline: Defaults(),
		state:    StateUninitialized,
		clean:    StateUninitialized,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Preferences returns the in-memory record.
func (c *Controller) Preferences() Preferences {
	return c.prefs
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// SavedAt returns the time of the last successful save, if any.
func (c *Controller) SavedAt() (time.Time, bool) {
	if c.savedAt == nil {
		return time.Time{}, false
	}
	return *c.savedAt, true
}

// StatusLine renders the save status shown under the settings form.
func (c *Controller) StatusLine() string {
	if c.savedAt == nil {
		return "Not saved"
	}
	return "Saved: " + c.savedAt.Format(SavedAtLayout)
}

// Initialize loads both persisted entries into a fresh default record and
// applies the resulting theme. A stored theme other than light or dark is
// ignored; a stored notifications entry counts as enabled only when it is
// exactly "true". If either read fails the defaults are kept.
func (c *Controller) Initialize(ctx context.Context) Preferences {
	prefs := Defaults()

	storedTheme, themeOK, themeErr := c.get(ctx, KeyTheme)
	storedNotif, notifOK, notifErr := c.get(ctx, KeyNotifications)

	if err := errors.Join(themeErr, notifErr); err != nil {
		c.logger.Warn(ctx, "could not read settings from store", "error", err)
	} else {
		if themeOK {
			if t, err := ParseTheme(storedTheme); err == nil {
				prefs.Theme = t
			} else {
				c.logger.Debug(ctx, "ignoring stored theme", "value", storedTheme)
			}
		}
		if notifOK {
			prefs.NotificationsEnabled = storedNotif == "true"
		}
	}

	c.prefs = prefs
	c.baseline = prefs
	c.savedAt = nil
	c.setClean(StateLoaded)
	c.applyTheme(prefs.Theme)

	c.publish(ctx, ports.EventSettingsLoaded, nil)
	return prefs
}

// SetTheme changes the in-memory theme and applies it immediately. The
// store is not touched.
func (c *Controller) SetTheme(t Theme) error {
	if !t.Valid() {
		return ErrInvalidTheme
	}
	c.prefs.Theme = t
	c.applyTheme(t)
	c.refreshState()
	return nil
}

// ToggleTheme switches between light and dark.
func (c *Controller) ToggleTheme() Theme {
	next := c.prefs.Theme.Toggled()
	_ = c.SetTheme(next)
	return next
}

// ToggleNotifications flips the in-memory notifications flag.
func (c *Controller) ToggleNotifications() bool {
	return c.SetNotifications(!c.prefs.NotificationsEnabled)
}

// SetNotifications sets the in-memory notifications flag.
func (c *Controller) SetNotifications(enabled bool) bool {
	c.prefs.NotificationsEnabled = enabled
	c.refreshState()
	return enabled
}

// Save writes the in-memory record to the store and records the save time.
// On failure the record and any previous save time are left as they were
// and false is returned.
func (c *Controller) Save(ctx context.Context) bool {
	prefs := c.prefs

	if err := c.set(ctx, KeyTheme, string(prefs.Theme)); err != nil {
		c.saveFailed(ctx, KeyTheme, err)
		return false
	}
	if err := c.set(ctx, KeyNotifications, encodeBool(prefs.NotificationsEnabled)); err != nil {
		c.saveFailed(ctx, KeyNotifications, err)
		return false
	}

	savedAt := c.now()
	c.savedAt = &savedAt
	c.baseline = prefs
	c.setClean(StateSaved)

	c.logger.Info(ctx, "settings saved", "theme", string(prefs.Theme), "notifications", prefs.NotificationsEnabled)
	c.publish(ctx, ports.EventSettingsSaved, map[string]interface{}{"saved_at": savedAt.Format(time.RFC3339)})
	return true
}

// Reset restores defaults, applies the default theme, deletes both stored
// entries and clears the save time. Delete failures are logged only.
func (c *Controller) Reset(ctx context.Context) {
	c.prefs = Defaults()
	c.applyTheme(c.prefs.Theme)

	for _, key := range []string{KeyTheme, KeyNotifications} {
		if err := c.delete(ctx, key); err != nil {
			c.logger.Warn(ctx, "could not clear settings from store", "key", key, "error", err)
		}
	}

	c.savedAt = nil
	c.baseline = c.prefs
	c.setClean(StateReset)

	c.publish(ctx, ports.EventSettingsReset, nil)
}

func (c *Controller) saveFailed(ctx context.Context, key string, err error) {
	c.logger.Warn(ctx, "could not save settings to store", "key", key, "error", err)
	c.publish(ctx, ports.EventSettingsSaveFailed, map[string]interface{}{"key": key, "error": err.Error()})
}

func (c *Controller) setClean(s State) {
	c.clean = s
	c.state = s
}

// refreshState marks the controller modified while the record differs from
// the baseline, and returns to the last clean state otherwise.
func (c *Controller) refreshState() {
	if c.prefs != c.baseline {
		c.state = StateModified
		return
	}
	c.state = c.clean
}

func (c *Controller) applyTheme(t Theme) {
	if c.theme != nil {
		c.theme.Set(t)
	}
}

func (c *Controller) get(ctx context.Context, key string) (string, bool, error) {
	if c.store == nil {
		return "", false, errNoStore
	}
	return c.store.Get(ctx, key)
}

func (c *Controller) set(ctx context.Context, key, value string) error {
	if c.store == nil {
		return errNoStore
	}
	return c.store.Set(ctx, key, value)
}

func (c *Controller) delete(ctx context.Context, key string) error {
	if c.store == nil {
		return errNoStore
	}
	return c.store.Delete(ctx, key)
}

func (c *Controller) publish(ctx context.Context, eventType string, extra map[string]interface{}) {
	if c.publisher == nil {
		return
	}
	fields := map[string]interface{}{
		"theme":         string(c.prefs.Theme),
		"notifications": c.prefs.NotificationsEnabled,
		"state":         c.state.String(),
	}
	for k, v := range extra {
		fields[k] = v
	}
	_ = c.publisher.Publish(ctx, ports.Event{Type: eventType, Fields: fields})
}
