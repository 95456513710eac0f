package service

import (
	"context"
	"log"
	"time"

	"theatre-scheduling-backend/internal/config"
	"theatre-scheduling-backend/internal/repository"
)

// WorkerService periodically regenerates the rolling schedule horizon for
// every active hospital, so tomorrow's theatre lists exist without an
// operator triggering a run by hand.
type WorkerService struct {
	hospitalRepo    *repository.HospitalRepository
	scheduleService *ScheduleService
	cfg             config.WorkerConfig
}

func NewWorkerService(hospitalRepo *repository.HospitalRepository, scheduleService *ScheduleService, cfg config.WorkerConfig) *WorkerService {
	return &WorkerService{
		hospitalRepo:    hospitalRepo,
		scheduleService: scheduleService,
		cfg:             cfg,
	}
}

// Start begins the background refresh loop. It runs one pass immediately and
// then once per configured interval until the context is cancelled.
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	log.Printf("Schedule refresh worker started - interval %s, horizon %d days", w.cfg.Interval, w.cfg.HorizonDays)

	w.refreshAll(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Println("Schedule refresh worker stopped")
			return
		case <-ticker.C:
			w.refreshAll(ctx)
		}
	}
}

// refreshAll regenerates the horizon for every active hospital. A failure
// for one hospital is logged and does not stop the others.
func (w *WorkerService) refreshAll(ctx context.Context) {
	hospitals, err := w.hospitalRepo.GetAllHospitals()
	if err != nil {
		log.Printf("Error fetching hospitals for schedule refresh: %v", err)
		return
	}

	start := time.Now()
	end := start.AddDate(0, 0, w.cfg.HorizonDays-1)

	for _, hospital := range hospitals {
		result, err := w.scheduleService.GenerateFromConfig(ctx, hospital.ID, start, end, nil)
		if err != nil {
			log.Printf("Error refreshing schedule for hospital %s: %v", hospital.Name, err)
			continue
		}
		log.Printf("Refreshed schedule for hospital %s: %d lists, %d cases",
			hospital.Name, result.Run.TotalLists, result.Run.TotalCases)
	}
}
