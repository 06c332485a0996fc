package notify

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// TokenSource lists the registered device tokens of a user.
type TokenSource interface {
	ListTokens(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type Event struct {
	UserID uuid.UUID
	Title  string
	Body   string
}

// Dispatcher delivers push events off the request path. Delivery is
// best-effort: a full queue drops the event rather than blocking the API.
type Dispatcher struct {
	sender Sender
	tokens TokenSource
	queue  chan Event
}

func NewDispatcher(sender Sender, tokens TokenSource) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		tokens: tokens,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		tokens, err := d.tokens.ListTokens(context.Background(), ev.UserID)
		if err != nil {
			log.Println("push token lookup error:", err)
			continue
		}

		for _, token := range tokens {
			if err := d.sender.Send(token, ev.Title, ev.Body); err != nil {
				log.Println("push send error:", err)
			}
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("push queue full, dropping event")
	}
}
