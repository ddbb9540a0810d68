package input

import "sync"

// Mailbox holds the single most recent MouseEvent. Writers overwrite it;
// the reader takes it and leaves the mailbox empty. Intermediate events
// between two takes are lost.
//
// The zero value is not ready to use; call NewMailbox. A Mailbox is safe
// for concurrent use: drivers may write from their own goroutine while the
// event loop takes from another.
type Mailbox struct {
	mu sync.Mutex
	ev MouseEvent
}

// NewMailbox returns an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{ev: None}
}

// Put overwrites the stored event.
func (m *Mailbox) Put(ev MouseEvent) {
	m.mu.Lock()
	m.ev = ev
	m.mu.Unlock()
}

// Take returns the stored event and resets the mailbox to None.
func (m *Mailbox) Take() MouseEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	ev := m.ev
	m.ev = None
	return ev
}

// Peek returns the stored event without consuming it.
func (m *Mailbox) Peek() MouseEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ev
}
