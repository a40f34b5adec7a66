package jobs

import (
	"log"
	"sync"

	"temple-backend/models"
	"temple-backend/store"
	"temple-backend/websocket"
)

// StorePoller diffs the booking list on a short interval and pushes anything
// new to connected dashboards. Polling the store rather than hooking the
// write path means bookings written by any process sharing the data file
// still show up.
type StorePoller struct {
	Repo store.BookingRepository

	mu   sync.Mutex
	seen map[int64]models.BookingStatus
}

func NewStorePoller(repo store.BookingRepository) *StorePoller {
	return &StorePoller{Repo: repo, seen: make(map[int64]models.BookingStatus)}
}

// Prime loads the current bookings without broadcasting so a restart does not
// replay the whole history at the dashboards.
func (p *StorePoller) Prime() {
	bookings, err := p.Repo.List()
	if err != nil {
		log.Printf("🔥 Poller prime failed: %v", err)
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range bookings {
		p.seen[b.ID] = b.Status
	}
}

// Poll is the cron entrypoint.
func (p *StorePoller) Poll() {
	bookings, err := p.Repo.List()
	if err != nil {
		log.Printf("🔥 Poller list failed: %v", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, b := range bookings {
		prev, known := p.seen[b.ID]
		if !known {
			p.seen[b.ID] = b.Status
			booking := b
			websocket.Broadcast <- &websocket.Event{Type: "booking_created", Payload: booking}
			continue
		}
		if prev != b.Status {
			p.seen[b.ID] = b.Status
			booking := b
			websocket.Broadcast <- &websocket.Event{Type: "booking_status_changed", Payload: booking}
		}
	}
}
