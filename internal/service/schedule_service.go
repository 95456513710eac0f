package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"theatre-scheduling-backend/internal/config"
	"theatre-scheduling-backend/internal/models"
	"theatre-scheduling-backend/internal/repository"
	"theatre-scheduling-backend/internal/scheduler"
	"theatre-scheduling-backend/internal/scoring"

	"github.com/google/uuid"
)

type ScheduleService struct {
	theatreRepo  *repository.TheatreRepository
	staffRepo    *repository.StaffRepository
	waitingRepo  *repository.WaitingListRepository
	scheduleRepo *repository.ScheduleRepository
	auditRepo    *repository.AuditRepository
	scorer       scoring.Scorer
	catalog      *scheduler.SessionCatalog
	engineCfg    scheduler.Config
}

func NewScheduleService(
	theatreRepo *repository.TheatreRepository,
	staffRepo *repository.StaffRepository,
	waitingRepo *repository.WaitingListRepository,
	scheduleRepo *repository.ScheduleRepository,
	auditRepo *repository.AuditRepository,
	scorer scoring.Scorer,
	schedCfg config.SchedulingConfig,
) *ScheduleService {
	return &ScheduleService{
		theatreRepo:  theatreRepo,
		staffRepo:    staffRepo,
		waitingRepo:  waitingRepo,
		scheduleRepo: scheduleRepo,
		auditRepo:    auditRepo,
		scorer:       scorer,
		catalog:      scheduler.NewSessionCatalog(),
		engineCfg:    engineConfig(schedCfg),
	}
}

// GenerateResult is what one generation run produced
type GenerateResult struct {
	Run   *models.ScheduleRun  `json:"run"`
	Lists []models.SessionList `json:"lists"`
}

// GenerateFromConfig runs the scheduling engine over the date range, persists
// the produced session lists and marks the consumed waiting-list entries as
// scheduled. The engine itself stays side-effect-free; all write-back happens
// here.
func (s *ScheduleService) GenerateFromConfig(ctx context.Context, hospitalID uint, startDate, endDate time.Time, triggeredBy *uint) (*GenerateResult, error) {
	engine := scheduler.NewEngine(s.engineCfg, s.catalog, s.scorer, s.theatreRepo, s.staffRepo, s.waitingRepo, nil)
	ledger := scheduler.NewSurgeonLedger()

	lists, err := engine.Generate(ctx, ledger, hospitalID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	run := &models.ScheduleRun{
		RunUID:      uuid.New().String(),
		HospitalID:  hospitalID,
		StartDate:   startDate,
		EndDate:     endDate,
		TriggeredBy: triggeredBy,
	}
	if err := s.scheduleRepo.CreateRun(run); err != nil {
		return nil, fmt.Errorf("failed to persist schedule run: %w", err)
	}

	totalCases := 0
	for i := range lists {
		lists[i].RunID = run.ID
		if err := s.scheduleRepo.SaveSessionList(&lists[i]); err != nil {
			return nil, fmt.Errorf("failed to persist session list for theatre %d on %s: %w",
				lists[i].TheatreID, lists[i].Date.Format("2006-01-02"), err)
		}

		// Commit the isScheduled flip for real waiting-list entries;
		// fallback-catalog cases carry no entry ID and are skipped.
		var entryIDs []uint
		for _, c := range lists[i].Cases {
			if c.WaitingListEntryID != 0 {
				entryIDs = append(entryIDs, c.WaitingListEntryID)
			}
		}
		if err := s.waitingRepo.MarkScheduled(entryIDs, lists[i].ID); err != nil {
			log.Printf("Warning: failed to mark %d waiting list entries scheduled: %v", len(entryIDs), err)
		}
		totalCases += len(lists[i].Cases)
	}

	if err := s.scheduleRepo.UpdateRunTotals(run.ID, len(lists), totalCases); err != nil {
		log.Printf("Warning: failed to update run totals: %v", err)
	}
	run.TotalLists = len(lists)
	run.TotalCases = totalCases

	_ = s.auditRepo.CreateHospitalAuditLog(triggeredBy, hospitalID, "schedule_generated",
		fmt.Sprintf("Generated %d session lists (%d cases), %s to %s",
			len(lists), totalCases,
			startDate.Format("2006-01-02"), endDate.Format("2006-01-02")))

	return &GenerateResult{Run: run, Lists: lists}, nil
}

// GenerateForDate is the single-day convenience wrapper
func (s *ScheduleService) GenerateForDate(ctx context.Context, hospitalID uint, date time.Time, triggeredBy *uint) (*GenerateResult, error) {
	return s.GenerateFromConfig(ctx, hospitalID, date, date, triggeredBy)
}

// GetSessionLists returns persisted lists for a hospital and date range
func (s *ScheduleService) GetSessionLists(hospitalID uint, from, to time.Time) ([]models.SessionList, error) {
	return s.scheduleRepo.GetSessionLists(hospitalID, from, to)
}

// GetSessionListByID returns one persisted list with its ordered cases
func (s *ScheduleService) GetSessionListByID(id uint) (*models.SessionList, error) {
	return s.scheduleRepo.GetSessionListByID(id)
}

// GetRunByUID returns a generation run's record by its public UUID
func (s *ScheduleService) GetRunByUID(runUID string) (*models.ScheduleRun, error) {
	return s.scheduleRepo.GetRunByUID(runUID)
}

func engineConfig(c config.SchedulingConfig) scheduler.Config {
	cfg := scheduler.DefaultConfig()
	if c.TimeBudgetRatio > 0 {
		cfg.TimeBudgetRatio = c.TimeBudgetRatio
	}
	if c.MaxPCS > 0 {
		cfg.MaxPCS = c.MaxPCS
	}
	if c.MinRemainingMinutes > 0 {
		cfg.MinRemainingMinutes = c.MinRemainingMinutes
	}
	if c.MaxCasesPerSession > 0 {
		cfg.MaxCasesPerSession = c.MaxCasesPerSession
	}
	if c.SetupMinutes > 0 {
		cfg.SetupMinutes = c.SetupMinutes
	}
	if c.FallbackProcedureMinutes > 0 {
		cfg.FallbackProcedureMinutes = c.FallbackProcedureMinutes
	}
	if c.MaxRecommendations > 0 {
		cfg.MaxRecommendations = c.MaxRecommendations
	}
	if c.MinutesPerDurationPoint > 0 {
		cfg.MinutesPerDurationPoint = c.MinutesPerDurationPoint
	}
	return cfg
}
