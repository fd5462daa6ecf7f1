package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/pos-terminal/internal/domain"
)

// timelineRepositoryInMemory хранит журнал оформления заказов в памяти процесса.
type timelineRepositoryInMemory struct {
	mu     sync.RWMutex
	events map[string][]domain.CheckoutEvent
}

// NewTimelineRepository создаёт in-memory реализацию TimelineRepository.
func NewTimelineRepository() domain.TimelineRepository {
	return &timelineRepositoryInMemory{events: make(map[string][]domain.CheckoutEvent)}
}

// Append добавляет событие в журнал сессии.
func (r *timelineRepositoryInMemory) Append(event domain.CheckoutEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := append(r.events[event.SessionID], event)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Occurred.Before(events[j].Occurred)
	})
	r.events[event.SessionID] = events

	return nil
}

// List возвращает события сессии в хронологическом порядке.
func (r *timelineRepositoryInMemory) List(sessionID string) ([]domain.CheckoutEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := r.events[sessionID]
	result := make([]domain.CheckoutEvent, len(events))
	copy(result, events)
	return result, nil
}

var _ domain.TimelineRepository = (*timelineRepositoryInMemory)(nil)
