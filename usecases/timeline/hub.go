package timeline

import (
	"sync"

	"github.com/printfarm/printfarm-backend/models"
	"github.com/printfarm/printfarm-backend/utils"
)

const DefaultSubscriberBufferSize = 4

// Hub fans timeline updates out to live subscribers. A subscriber whose buffer is full
// is dropped and its channel closed.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*Subscription]struct{}
	bufferSize  int
}

type Subscription struct {
	updates chan models.TimelineUpdate
	once    sync.Once
}

// Updates is closed when the subscription ends, either by Unsubscribe or because the
// subscriber was too slow.
func (s *Subscription) Updates() <-chan models.TimelineUpdate {
	return s.updates
}

func (s *Subscription) close() {
	s.once.Do(func() {
		close(s.updates)
	})
}

func NewHub(bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultSubscriberBufferSize
	}
	return &Hub{
		subscribers: make(map[*Subscription]struct{}),
		bufferSize:  bufferSize,
	}
}

func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{updates: make(chan models.TimelineUpdate, h.bufferSize)}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[sub] = struct{}{}
	utils.MetricTimelineSubscribers.Set(float64(len(h.subscribers)))
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(sub)
}

// Broadcast never blocks.
func (h *Hub) Broadcast(update models.TimelineUpdate) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		select {
		case sub.updates <- update:
		default:
			h.remove(sub)
		}
	}
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Close ends every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		h.remove(sub)
	}
}

func (h *Hub) remove(sub *Subscription) {
	if _, ok := h.subscribers[sub]; !ok {
		return
	}
	delete(h.subscribers, sub)
	sub.close()
	utils.MetricTimelineSubscribers.Set(float64(len(h.subscribers)))
}
