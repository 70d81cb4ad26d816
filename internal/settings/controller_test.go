package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/navshell/internal/observable"
	"github.com/alexisbeaulieu97/navshell/internal/ports"
	"github.com/alexisbeaulieu97/navshell/internal/storage"
)

var errStoreDown = errors.New("store unavailable")

// flakyStore wraps a memory store and fails selected operations.
type flakyStore struct {
	*storage.Memory
	failGet    bool
	failSetKey string
	failDelete bool
	sets       []string
}

func newFlakyStore() *flakyStore {
	return &flakyStore{Memory: storage.NewMemory()}
}

func (s *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.failGet {
		return "", false, errStoreDown
	}
	return s.Memory.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	s.sets = append(s.sets, key)
	if s.failSetKey == key || s.failSetKey == "*" {
		return errStoreDown
	}
	return s.Memory.Set(ctx, key, value)
}

func (s *flakyStore) Delete(ctx context.Context, key string) error {
	if s.failDelete {
		return errStoreDown
	}
	return s.Memory.Delete(ctx, key)
}

type logEntry struct {
	level string
	msg   string
}

type recordingLogger struct {
	entries *[]logEntry
}

func newRecordingLogger() recordingLogger {
	return recordingLogger{entries: &[]logEntry{}}
}

func (l recordingLogger) record(level, msg string) {
	*l.entries = append(*l.entries, logEntry{level: level, msg: msg})
}

func (l recordingLogger) Debug(_ context.Context, msg string, _ ...interface{}) { l.record("debug", msg) }
func (l recordingLogger) Info(_ context.Context, msg string, _ ...interface{}) { l.record("info", msg) }
func (l recordingLogger) Warn(_ context.Context, msg string, _ ...interface{}) { l.record("warn", msg) }
func (l recordingLogger) Error(_ context.Context, msg string, _ ...interface{}) { l.record("error", msg) }
func (l recordingLogger) With(...interface{}) ports.Logger { return l }

func (l recordingLogger) warnings() []string {
	var out []string
	for _, e := range *l.entries {
		if e.level == "warn" {
			out = append(out, e.msg)
		}
	}
	return out
}

type recordingPublisher struct {
	events []ports.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event ports.DomainEvent) error {
	fields, _ := event.Payload().(map[string]interface{})
	p.events = append(p.events, ports.Event{Type: event.EventType(), Fields: fields})
	return nil
}

func (p *recordingPublisher) Subscribe(string, ports.EventHandler) (ports.Subscription, error) {
	return nil, errors.New("not supported")
}

func (p *recordingPublisher) types() []string {
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func newTestController(store ports.KVStore, opts ...Option) (*Controller, *observable.Value[Theme]) {
	theme := observable.NewValue[Theme]("")
	return NewController(store, theme, opts...), theme
}

func TestInitializeWithEmptyStoreUsesDefaults(t *testing.T) {
	ctrl, theme := newTestController(storage.NewMemory())

	prefs := ctrl.Initialize(context.Background())

	assert.Equal(t, Preferences{Theme: ThemeLight, NotificationsEnabled: true}, prefs)
	assert.Equal(t, ThemeLight, theme.Get())
	assert.Equal(t, StateLoaded, ctrl.State())
	assert.Equal(t, "Not saved", ctrl.StatusLine())
}

func TestInitializeLoadsStoredEntries(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, KeyTheme, "dark"))
	require.NoError(t, store.Set(ctx, KeyNotifications, "false"))

	ctrl, theme := newTestController(store)
	prefs := ctrl.Initialize(ctx)

	assert.Equal(t, Preferences{Theme: ThemeDark, NotificationsEnabled: false}, prefs)
	assert.Equal(t, ThemeDark, theme.Get())
}

func TestInitializeIgnoresUnknownEncodings(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		notif string
		want  Preferences
	}{
		{name: "unknown theme", theme: "purple", notif: "true", want: Preferences{Theme: ThemeLight, NotificationsEnabled: true}},
		{name: "uppercase theme", theme: "DARK", notif: "true", want: Preferences{Theme: ThemeLight, NotificationsEnabled: true}},
		{name: "non canonical bool", theme: "dark", notif: "yes", want: Preferences{Theme: ThemeDark, NotificationsEnabled: false}},
		{name: "empty bool", theme: "dark", notif: "", want: Preferences{Theme: ThemeDark, NotificationsEnabled: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := storage.NewMemory()
			require.NoError(t, store.Set(ctx, KeyTheme, tt.theme))
			require.NoError(t, store.Set(ctx, KeyNotifications, tt.notif))

			ctrl, theme := newTestController(store)
			got := ctrl.Initialize(ctx)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Initialize() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.want.Theme, theme.Get())
		})
	}
}

func TestInitializeReadFailureFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := newFlakyStore()
	require.NoError(t, store.Memory.Set(ctx, KeyTheme, "dark"))
	store.failGet = true
	logger := newRecordingLogger()

	ctrl, theme := newTestController(store, WithLogger(logger))
	prefs := ctrl.Initialize(ctx)

	assert.Equal(t, Defaults(), prefs)
	assert.Equal(t, ThemeLight, theme.Get())
	assert.Equal(t, []string{"could not read settings from store"}, logger.warnings())
}

func TestInitializeWithoutStoreFallsBackToDefaults(t *testing.T) {
	ctrl, theme := newTestController(nil)

	assert.Equal(t, Defaults(), ctrl.Initialize(context.Background()))
	assert.Equal(t, ThemeLight, theme.Get())
	assert.False(t, ctrl.Save(context.Background()))
}

func TestStoreFailuresWithoutLoggerAreDiscarded(t *testing.T) {
	ctx := context.Background()
	store := newFlakyStore()
	store.failGet = true
	store.failSetKey = "*"
	store.failDelete = true
	ctrl := NewController(store, observable.NewValue(DefaultTheme))

	assert.Equal(t, Defaults(), ctrl.Initialize(ctx))
	require.NoError(t, ctrl.SetTheme(ThemeDark))
	assert.False(t, ctrl.Save(ctx))
	assert.NotPanics(t, func() { ctrl.Reset(ctx) })
	assert.Equal(t, Defaults(), ctrl.Preferences())
}

func TestSetThemeAppliesImmediatelyWithoutPersisting(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	ctrl, theme := newTestController(store)
	ctrl.Initialize(ctx)

	require.NoError(t, ctrl.SetTheme(ThemeDark))

	assert.Equal(t, ThemeDark, theme.Get())
	assert.Equal(t, ThemeDark, ctrl.Preferences().Theme)
	_, ok, err := store.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.False(t, ok, "theme is only persisted on save")
}

func TestSetThemeRejectsUnknownTheme(t *testing.T) {
	ctrl, theme := newTestController(storage.NewMemory())
	ctrl.Initialize(context.Background())

	err := ctrl.SetTheme(Theme("purple"))

	require.ErrorIs(t, err, ErrInvalidTheme)
	assert.Equal(t, ThemeLight, ctrl.Preferences().Theme)
	assert.Equal(t, ThemeLight, theme.Get())
	assert.Equal(t, StateLoaded, ctrl.State())
}

func TestSaveRoundTripsThroughFreshController(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()

	first, _ := newTestController(store)
	first.Initialize(ctx)
	require.NoError(t, first.SetTheme(ThemeDark))
	first.ToggleNotifications()
	require.True(t, first.Save(ctx))

	v, ok, err := store.Get(ctx, KeyTheme)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", v)
	v, ok, err = store.Get(ctx, KeyNotifications)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "false", v)

	second, theme := newTestController(store)
	prefs := second.Initialize(ctx)
	assert.Equal(t, Preferences{Theme: ThemeDark, NotificationsEnabled: false}, prefs)
	assert.Equal(t, ThemeDark, theme.Get())
	assert.Equal(t, "Not saved", second.StatusLine(), "save time is not persisted")
}

func TestSaveRecordsTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)
	ctrl, _ := newTestController(storage.NewMemory(), WithClock(fixedClock(ts)))
	ctrl.Initialize(context.Background())

	require.True(t, ctrl.Save(context.Background()))

	got, ok := ctrl.SavedAt()
	require.True(t, ok)
	assert.True(t, ts.Equal(got))
	assert.Equal(t, "Saved: 2024-03-09 14:05:07", ctrl.StatusLine())
	assert.Equal(t, StateSaved, ctrl.State())
}

func TestSaveFailureKeepsRecordAndPreviousTimestamp(t *testing.T) {
	ctx := context.Background()
	first := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	clock := first
	store := newFlakyStore()
	logger := newRecordingLogger()
	pub := &recordingPublisher{}

	ctrl, theme := newTestController(store,
		WithLogger(logger),
		WithPublisher(pub),
		WithClock(func() time.Time { return clock }),
	)
	ctrl.Initialize(ctx)
	require.True(t, ctrl.Save(ctx))

	clock = first.Add(time.Hour)
	require.NoError(t, ctrl.SetTheme(ThemeDark))
	store.failSetKey = "*"

	assert.False(t, ctrl.Save(ctx))

	assert.Equal(t, Preferences{Theme: ThemeDark, NotificationsEnabled: true}, ctrl.Preferences())
	assert.Equal(t, ThemeDark, theme.Get())
	assert.Equal(t, StateModified, ctrl.State())
	got, ok := ctrl.SavedAt()
	require.True(t, ok)
	assert.True(t, first.Equal(got), "previous save time is retained")
	assert.Equal(t, []string{"could not save settings to store"}, logger.warnings())
	assert.Equal(t, ports.EventSettingsSaveFailed, pub.events[len(pub.events)-1].Type)
}

func TestSaveWritesThemeBeforeNotifications(t *testing.T) {
	ctx := context.Background()
	store := newFlakyStore()
	store.failSetKey = KeyNotifications

	ctrl, _ := newTestController(store)
	ctrl.Initialize(ctx)
	require.NoError(t, ctrl.SetTheme(ThemeDark))

	assert.False(t, ctrl.Save(ctx))
	assert.Equal(t, []string{KeyTheme, KeyNotifications}, store.sets)

	_, ok := ctrl.SavedAt()
	assert.False(t, ok)
	assert.Equal(t, "Not saved", ctrl.StatusLine())
}

func TestResetRestoresDefaultsAndClearsStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, KeyTheme, "dark"))
	require.NoError(t, store.Set(ctx, KeyNotifications, "false"))

	ctrl, theme := newTestController(store)
	ctrl.Initialize(ctx)
	require.True(t, ctrl.Save(ctx))

	ctrl.Reset(ctx)

	assert.Equal(t, Defaults(), ctrl.Preferences())
	assert.Equal(t, ThemeLight, theme.Get())
	assert.Equal(t, StateReset, ctrl.State())
	assert.Equal(t, "Not saved", ctrl.StatusLine())
	for _, key := range []string{KeyTheme, KeyNotifications} {
		_, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
}

func TestResetDeleteFailuresAreLoggedOnly(t *testing.T) {
	ctx := context.Background()
	store := newFlakyStore()
	logger := newRecordingLogger()
	ts := time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)

	ctrl, theme := newTestController(store, WithLogger(logger), WithClock(fixedClock(ts)))
	ctrl.Initialize(ctx)
	require.NoError(t, ctrl.SetTheme(ThemeDark))
	require.True(t, ctrl.Save(ctx))
	store.failDelete = true

	ctrl.Reset(ctx)

	assert.Equal(t, Defaults(), ctrl.Preferences())
	assert.Equal(t, ThemeLight, theme.Get())
	_, ok := ctrl.SavedAt()
	assert.False(t, ok, "save time is cleared even when deletes fail")
	assert.Equal(t, []string{
		"could not clear settings from store",
		"could not clear settings from store",
	}, logger.warnings())
}

func TestStateTracksDifferenceFromBaseline(t *testing.T) {
	ctx := context.Background()
	ctrl, _ := newTestController(storage.NewMemory())
	assert.Equal(t, StateUninitialized, ctrl.State())

	ctrl.Initialize(ctx)
	assert.Equal(t, StateLoaded, ctrl.State())

	ctrl.ToggleNotifications()
	assert.Equal(t, StateModified, ctrl.State())
	ctrl.ToggleNotifications()
	assert.Equal(t, StateLoaded, ctrl.State(), "undoing a change returns to the clean state")

	ctrl.ToggleTheme()
	assert.Equal(t, StateModified, ctrl.State())
	require.True(t, ctrl.Save(ctx))
	assert.Equal(t, StateSaved, ctrl.State())

	ctrl.ToggleTheme()
	assert.Equal(t, StateModified, ctrl.State())
	ctrl.ToggleTheme()
	assert.Equal(t, StateSaved, ctrl.State())

	ctrl.Reset(ctx)
	assert.Equal(t, StateReset, ctrl.State())
	ctrl.SetNotifications(true)
	assert.Equal(t, StateReset, ctrl.State(), "setting the current value is not a modification")
}

func TestLifecycleEvents(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	ts := time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC)
	ctrl, _ := newTestController(storage.NewMemory(), WithPublisher(pub), WithClock(fixedClock(ts)))

	ctrl.Initialize(ctx)
	require.NoError(t, ctrl.SetTheme(ThemeDark))
	require.True(t, ctrl.Save(ctx))
	ctrl.Reset(ctx)

	assert.Equal(t, []string{
		ports.EventSettingsLoaded,
		ports.EventSettingsSaved,
		ports.EventSettingsReset,
	}, pub.types())

	saved := pub.events[1].Fields
	assert.Equal(t, "dark", saved["theme"])
	assert.Equal(t, "saved", saved["state"])
	assert.Equal(t, "2024-02-02T10:00:00Z", saved["saved_at"])
}

func TestThemeHelpers(t *testing.T) {
	got, err := ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got)

	_, err = ParseTheme("Dark")
	require.ErrorIs(t, err, ErrInvalidTheme)

	assert.Equal(t, ThemeDark, ThemeLight.Toggled())
	assert.Equal(t, ThemeLight, ThemeDark.Toggled())
	assert.True(t, StateSaved.Clean())
	assert.False(t, StateModified.Clean())
	assert.Equal(t, "modified", StateModified.String())
}
