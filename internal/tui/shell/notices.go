package shell

import (
	"context"

	"github.com/alexisbeaulieu97/navshell/internal/ports"
)

// noticeBoard holds a one-line notice fed by settings events. It is shared by
// every copy of a Model and cleared on the next key press.
type noticeBoard struct {
	text string
}

var noticeText = map[string]string{
	ports.EventSettingsSaved: "Settings saved",
	ports.EventSettingsReset: "Settings reset to defaults",
}

// subscribeNotices registers the board with publisher. The returned func
// removes the subscriptions.
func subscribeNotices(publisher ports.EventPublisher, board *noticeBoard) func() {
	if publisher == nil {
		return func() {}
	}

	var subs []ports.Subscription
	for eventType, text := range noticeText {
		sub, err := publisher.Subscribe(eventType, func(context.Context, ports.DomainEvent) error {
			board.text = text
			return nil
		})
		if err != nil {
			continue
		}
		subs = append(subs, sub)
	}

	return func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}
}

func (b *noticeBoard) clear() {
	b.text = ""
}
