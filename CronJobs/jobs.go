package CronJobs

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"Sage/Controllers"
)

// StatusRefresher re-derives the cached purchase status column on a
// schedule. Statuses drift as the calendar advances even when nothing is
// written: a bill that was Due Soon yesterday may be Due Today now.
type StatusRefresher struct {
	cronScheduler  *cron.Cron
	db             *gorm.DB
	windowDays     int
	runImmediately bool
	jobID          cron.EntryID
}

// NewStatusRefresher creates a status refresher with the given configuration
func NewStatusRefresher(db *gorm.DB, windowDays int, runImmediately bool) *StatusRefresher {
	return &StatusRefresher{
		cronScheduler:  cron.New(cron.WithSeconds()),
		db:             db,
		windowDays:     windowDays,
		runImmediately: runImmediately,
	}
}

// Start schedules the refresh shortly after midnight every day
func (s *StatusRefresher) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc("0 5 0 * * *", func() {
		log.Println("Running scheduled status refresh")
		s.refresh()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()
	log.Println("Status refresh scheduler started - will run daily at 00:05")

	if s.runImmediately {
		s.refresh()
	}

	return nil
}

// Stop terminates the refresher
func (s *StatusRefresher) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Status refresh scheduler stopped")
	}
}

// UpdateSchedule changes the refresh schedule.
// Format: "0 5 0 * * *" = 00:05:00 every day
func (s *StatusRefresher) UpdateSchedule(schedule string) error {
	s.cronScheduler.Remove(s.jobID)

	var err error
	s.jobID, err = s.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled status refresh")
		s.refresh()
	})
	if err != nil {
		return fmt.Errorf("error rescheduling cron job: %w", err)
	}
	return nil
}

func (s *StatusRefresher) refresh() {
	updated, err := Controllers.RefreshStatuses(s.db, time.Now(), s.windowDays)
	if err != nil {
		log.Printf("Status refresh failed: %v", err)
		return
	}
	log.Printf("Status refresh complete, %d purchases updated", updated)
}
