package services

import (
	"context"
	"log"
	"time"
)

// Worker runs reminder passes on a fixed interval, so the service
// keeps sending reminders even when nothing hits the trigger endpoint.
type Worker struct {
	scheduler *Scheduler
	alerts    *AlertService
	interval  time.Duration
}

func NewWorker(scheduler *Scheduler, alerts *AlertService, interval time.Duration) *Worker {
	return &Worker{
		scheduler: scheduler,
		alerts:    alerts,
		interval:  interval,
	}
}

func (w *Worker) Start() {
	go w.run()
}

func (w *Worker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for range ticker.C {
		w.RunOnce()
	}
}

// RunOnce executes a single scheduling pass. Failures are logged and,
// when alerting is configured, emailed to the operator.
func (w *Worker) RunOnce() {
	if err := w.scheduler.RunPass(context.Background()); err != nil {
		log.Printf("Reminder pass failed: %v", err)
		if w.alerts != nil && w.alerts.Enabled() {
			if alertErr := w.alerts.SendPassFailure(err); alertErr != nil {
				log.Printf("Failed to send failure alert: %v", alertErr)
			}
		}
	}
}
