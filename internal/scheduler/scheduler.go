package scheduler

import (
	"context"
	"fmt"
	"log"

	"stockboard/internal/portfolio"
	"stockboard/internal/quote"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic portfolio summary task. It only logs;
// nothing is persisted.
type Scheduler struct {
	Cron    *cron.Cron
	Service *portfolio.Service
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *portfolio.Service) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Service: svc,
		Ctx:     ctx,
	}
}

// Register registers the summary task. An empty spec disables it.
func (s *Scheduler) Register(summaryCron string) error {
	if summaryCron == "" {
		log.Println("[INFO] portfolio summary task disabled")
		return nil
	}
	if _, err := s.Cron.AddFunc(summaryCron, s.summaryTask); err != nil {
		return fmt.Errorf("register summary task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) summaryTask() {
	log.Println("[INFO] running portfolio summary")
	quotes, err := s.Service.View(s.Ctx, quote.Range1d)
	if err != nil {
		log.Printf("[ERROR] portfolio summary: %v", err)
		return
	}
	for _, q := range quotes {
		log.Printf("[INFO] summary %s: price=%.2f change=%+.2f (%+.2f%%)",
			q.ID, q.Price, q.Change, q.ChangePercent)
	}
}
