// Package notify sends best-effort administrator notifications when a
// complaint is created or changes status. Delivery is decoupled from the
// request path: failures are logged and dropped, never surfaced to the
// caller.
package notify

import (
	"log"

	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/models"
)

// EventType identifies which lifecycle transition triggered an event.
type EventType string

const (
	EventNewComplaint EventType = "NEW"
	EventStatusUpdate EventType = "STATUS_UPDATE"
)

// Event pairs a transition with the complaint as stored after it.
type Event struct {
	Type      EventType        `json:"type"`
	Complaint models.Complaint `json:"complaint"`
}

// Dispatcher queues events for background delivery. Either Mailer or
// Publisher may be nil when the corresponding transport is not
// configured; the dispatcher then skips that transport with a warning.
type Dispatcher struct {
	Mailer    Mailer
	Publisher Publisher

	events chan Event
}

// NewDispatcher creates a dispatcher. Run must be started on its own
// goroutine before events are delivered.
func NewDispatcher(mailer Mailer, publisher Publisher) *Dispatcher {
	return &Dispatcher{
		Mailer:    mailer,
		Publisher: publisher,
		events:    make(chan Event, config.DispatcherQueueSize),
	}
}

// Send enqueues an event without blocking. If the queue is full the
// event is dropped with a warning; the triggering request is never
// delayed or failed by notification work.
func (d *Dispatcher) Send(t EventType, complaint models.Complaint) {
	select {
	case d.events <- Event{Type: t, Complaint: complaint}:
	default:
		log.Printf("WARNING: notification queue full, dropping %s event for %q", t, complaint.Title)
	}
}

// Run delivers queued events until Close is called.
func (d *Dispatcher) Run() {
	for ev := range d.events {
		d.deliver(ev)
	}
}

// Close stops the Run loop after the queue drains.
func (d *Dispatcher) Close() {
	close(d.events)
}

func (d *Dispatcher) deliver(ev Event) {
	if d.Publisher != nil {
		if err := d.Publisher.Publish(ev); err != nil {
			log.Printf("ERROR: failed to publish %s event: %v", ev.Type, err)
		}
	}

	if d.Mailer == nil {
		log.Printf("WARNING: email is not configured, skipping %s notification", ev.Type)
		return
	}

	subject, body := BuildEmail(ev.Type, ev.Complaint)
	if err := d.Mailer.Send(subject, body); err != nil {
		log.Printf("ERROR: failed to send %s email: %v", ev.Type, err)
		return
	}
	log.Printf("Email sent successfully (type: %s) for complaint %q", ev.Type, ev.Complaint.Title)
}
