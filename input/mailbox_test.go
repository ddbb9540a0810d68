package input

import (
	"sync"
	"testing"
)

func TestMailboxEmpty(t *testing.T) {
	m := NewMailbox()
	if got := m.Take(); got != None {
		t.Errorf("Take() on new mailbox = %+v, want None", got)
	}
}

func TestMailboxLastWriteWins(t *testing.T) {
	m := NewMailbox()
	m.Put(MouseEvent{Kind: EventMove, X: 1, Y: 1})
	m.Put(MouseEvent{Kind: EventLeftDown, X: 2, Y: 3})

	want := MouseEvent{Kind: EventLeftDown, X: 2, Y: 3}
	if got := m.Peek(); got != want {
		t.Errorf("Peek() = %+v, want %+v", got, want)
	}
	if got := m.Take(); got != want {
		t.Errorf("Take() = %+v, want %+v", got, want)
	}
	if got := m.Take(); got != None {
		t.Errorf("second Take() = %+v, want None", got)
	}
}

func TestMailboxConcurrent(t *testing.T) {
	m := NewMailbox()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				m.Put(MouseEvent{Kind: EventMove, X: i, Y: j})
			}
		}()
	}
	done := make(chan struct{})
	var reader sync.WaitGroup
	reader.Add(1)
	go func() {
		defer reader.Done()
		for {
			select {
			case <-done:
				return
			default:
				ev := m.Take()
				if ev.Kind != EventNone && ev.Kind != EventMove {
					t.Errorf("Take() kind = %v", ev.Kind)
				}
			}
		}
	}()
	wg.Wait()
	close(done)
	reader.Wait()
}
