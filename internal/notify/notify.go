// Package notify delivers user-facing notifications from the formatter
// workflow to whatever surface the host provides (status bar, terminal).
//
// The package implements an observer pattern: sinks subscribe to the
// dispatcher and receive every notification until they unsubscribe.
package notify

import "sync"

// Level represents the severity of a notification.
type Level int

const (
	// LevelInfo is for informational messages.
	LevelInfo Level = iota

	// LevelSuccess is for successful fix results.
	LevelSuccess

	// LevelError is for failures the user should see.
	LevelError
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is a single user-facing message.
type Notification struct {
	// Level is the severity of the message.
	Level Level

	// Message is the full message text.
	Message string

	// Detail carries extracted detail text, if any (for example the
	// file list after a lint-error marker).
	Detail string
}

// Observer is called for each dispatched notification.
type Observer func(n Notification)

// Subscription represents an active observer subscription.
type Subscription struct {
	id         uint64
	dispatcher *Dispatcher
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.dispatcher != nil {
		s.dispatcher.unsubscribe(s.id)
	}
}

// Dispatcher fans notifications out to subscribed observers.
// It is safe for concurrent use.
type Dispatcher struct {
	mu        sync.RWMutex
	observers map[uint64]Observer
	nextID    uint64
	closed    bool
}

// NewDispatcher creates a new notification dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		observers: make(map[uint64]Observer),
	}
}

// Subscribe registers an observer for all notifications.
func (d *Dispatcher) Subscribe(observer Observer) *Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.observers[id] = observer

	return &Subscription{id: id, dispatcher: d}
}

// Notify delivers a notification to all observers.
// Observers are called outside the lock.
func (d *Dispatcher) Notify(n Notification) {
	d.mu.RLock()
	if d.closed {
		d.mu.RUnlock()
		return
	}
	observers := make([]Observer, 0, len(d.observers))
	for _, obs := range d.observers {
		observers = append(observers, obs)
	}
	d.mu.RUnlock()

	for _, obs := range observers {
		obs(n)
	}
}

// Info dispatches an informational notification.
func (d *Dispatcher) Info(message string) {
	d.Notify(Notification{Level: LevelInfo, Message: message})
}

// Success dispatches a success notification.
func (d *Dispatcher) Success(message string) {
	d.Notify(Notification{Level: LevelSuccess, Message: message})
}

// Error dispatches an error notification with optional detail text.
func (d *Dispatcher) Error(message, detail string) {
	d.Notify(Notification{Level: LevelError, Message: message, Detail: detail})
}

// Close stops delivery. It is safe to call Close multiple times.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

// unsubscribe removes an observer by ID.
func (d *Dispatcher) unsubscribe(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.observers, id)
}
