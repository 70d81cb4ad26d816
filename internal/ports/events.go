package ports

import "context"

const (
	// EventNavigationChanged is emitted whenever the active path changes.
	EventNavigationChanged = "navigation.changed"
	// EventSettingsLoaded is emitted after the settings panel initialises.
	EventSettingsLoaded = "settings.loaded"
	// EventSettingsSaved is emitted after preferences were persisted.
	EventSettingsSaved = "settings.saved"
	// EventSettingsSaveFailed is emitted when persisting preferences failed.
	EventSettingsSaveFailed = "settings.save_failed"
	// EventSettingsReset is emitted after preferences were reset to defaults.
	EventSettingsReset = "settings.reset"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer. Events carry structured payloads that downstream
// subscribers can use for logging, UI updates, or integrations.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run. Implementations
// must be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Handlers should avoid
// panicking; failures should be surfaced via returned errors so publishers can
// log diagnostics and continue delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events and release resources.
type Subscription interface {
	Unsubscribe()
}

// Event is a minimal DomainEvent carrying a map payload.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() interface{} { return e.Fields }
