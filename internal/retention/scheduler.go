package retention

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/silverhold/codehub-backend/internal/chat/service"
)

// Scheduler trims the chat log on a nightly cron so the append-only history
// stays bounded. Ordering and all other chat semantics are untouched; only
// the oldest entries beyond the cap are dropped.
type Scheduler struct {
	chat *service.ChatService
	max  int
	c    *cron.Cron
}

func NewScheduler(chat *service.ChatService, maxMessages int) *Scheduler {
	return &Scheduler{chat: chat, max: maxMessages}
}

// Start initializes cron tasks.
func (s *Scheduler) Start() {
	c := cron.New()

	// Nightly at 12:00 AM
	_, err := c.AddFunc("0 0 * * *", func() {
		s.runTrim()
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Retention scheduler started (chat trim nightly at 12:00AM)")
	c.Start()
	s.c = c
}

// Stop halts the scheduler; a trim already running completes.
func (s *Scheduler) Stop() {
	if s.c != nil {
		s.c.Stop()
	}
}

func (s *Scheduler) runTrim() {
	dropped := s.chat.Trim(context.Background(), s.max)
	if dropped > 0 {
		log.Printf("[retention] trimmed %d chat messages, keeping last %d", dropped, s.max)
	}
}
