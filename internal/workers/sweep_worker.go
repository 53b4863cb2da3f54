package workers

import (
	"context"

	"github.com/go-co-op/gocron/v2"

	"github.com/angeroddy/sceno-app-sub001/internal/logger"
	"github.com/angeroddy/sceno-app-sub001/internal/services"
)

// SweepWorker runs the status sweep on a cron schedule inside the process.
// The HTTP trigger stays available either way; both paths share the same
// idempotent service, so an overlap is a harmless no-op re-run.
type SweepWorker struct {
	sweep     *services.SweepService
	schedule  string
	scheduler gocron.Scheduler
}

func NewSweepWorker(sweep *services.SweepService, schedule string) *SweepWorker {
	return &SweepWorker{sweep: sweep, schedule: schedule}
}

// Start registers the cron job and launches the scheduler. With an empty
// schedule the worker stays off.
func (w *SweepWorker) Start(ctx context.Context) error {
	if w.schedule == "" {
		logger.Info("sweep worker disabled: no schedule configured")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(w.schedule, false),
		gocron.NewTask(func() {
			report, err := w.sweep.Run(ctx)
			logger.WorkerLog("sweep", "run", err)
			if err == nil {
				logger.Info("scheduled sweep done",
					"prevente_retirees", report.CompteDemotions(),
					"expirees", report.CompteExpirees(),
				)
			}
		}),
	)
	if err != nil {
		return err
	}

	scheduler.Start()
	w.scheduler = scheduler
	logger.Info("sweep worker started", "schedule", w.schedule)
	return nil
}

func (w *SweepWorker) Stop() {
	if w.scheduler != nil {
		if err := w.scheduler.Shutdown(); err != nil {
			logger.Warn("sweep scheduler shutdown failed", "error", err.Error())
		}
	}
}
