// Package notify reports what happened on the page to the outside world.
// Delivery is best effort: nothing here may stall a frame.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ncruces/zenity"
)

// Action names a user action worth reporting.
type Action string

const (
	ActionOpened    Action = "opened"
	ActionNoEscaped Action = "no_escaped"
	ActionNoCaught  Action = "no_caught"
	ActionYes       Action = "yes"
)

// Event is one reported action. Session groups the events of one run.
type Event struct {
	ID      uuid.UUID
	Session uuid.UUID
	Action  Action
	Name    string
	At      time.Time
	Detail  string
}

// Message is the human readable text of an event.
func (e Event) Message() string {
	who := e.Name
	if who == "" {
		who = "They"
	}
	switch e.Action {
	case ActionOpened:
		return who + " opened the card"
	case ActionNoEscaped:
		return who + " went for No... and it ran away"
	case ActionNoCaught:
		return who + " actually caught the No button!"
	case ActionYes:
		return who + " said YES!"
	}
	return fmt.Sprintf("%s: %s", who, e.Action)
}

// Notifier delivers events.
type Notifier interface {
	Notify(ctx context.Context, e Event) error
}

// LogNotifier writes events to a logger.
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) Notify(_ context.Context, e Event) error {
	l := n.Logger
	if l == nil {
		l = log.Default()
	}
	l.Printf("event %s session=%s action=%s: %s", e.ID, e.Session, e.Action, e.Message())
	return nil
}

// DesktopNotifier shows a desktop notification. Only the answers are
// shown; other actions are ignored.
type DesktopNotifier struct {
	Title string
}

func (n DesktopNotifier) Notify(ctx context.Context, e Event) error {
	if e.Action != ActionYes && e.Action != ActionNoCaught {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	title := n.Title
	if title == "" {
		title = "Valentine"
	}
	if err := zenity.Notify(e.Message(), zenity.Title(title)); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

// Multi fans an event out to several notifiers and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, e Event) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
