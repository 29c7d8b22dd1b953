package notify

import (
	"encoding/json"
	"net/http"
	"sync"
)

// ReminderEvent is the payload pushed to SSE subscribers. The consumer owns
// the OS notification, audio cue and in-app toast.
type ReminderEvent struct {
	Activity string `json:"activity"`
	Message  string `json:"message"`
}

// SSEBroker fans reminder events out to subscribed HTTP clients as
// server-sent events. A slow subscriber drops events rather than blocking
// the scheduler.
type SSEBroker struct {
	mu   sync.Mutex
	subs map[chan ReminderEvent]struct{}
}

func NewSSEBroker() *SSEBroker {
	return &SSEBroker{subs: make(map[chan ReminderEvent]struct{})}
}

func (b *SSEBroker) ReminderDue(activity string) {
	event := ReminderEvent{
		Activity: activity,
		Message:  "It's time for your " + activity + "!",
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called when the subscriber goes away.
func (b *SSEBroker) Subscribe() (<-chan ReminderEvent, func()) {
	ch := make(chan ReminderEvent, 8)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
	return ch, cancel
}

func (b *SSEBroker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	events, cancel := b.Subscribe()
	defer cancel()

	for {
		select {
		case event := <-events:
			data, _ := json.Marshal(event)
			w.Write([]byte("data: "))
			w.Write(data)
			w.Write([]byte("\n\n"))

			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
