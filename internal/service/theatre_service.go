package service

import (
	"errors"

	"theatre-scheduling-backend/internal/models"
	"theatre-scheduling-backend/internal/repository"
)

// TheatreService serves the read-only configuration and waiting-list views
type TheatreService struct {
	theatreRepo      *repository.TheatreRepository
	waitingRepo      *repository.WaitingListRepository
	hospitalRepo     *repository.HospitalRepository
	userHospitalRepo *repository.UserHospitalRepository
}

func NewTheatreService(
	theatreRepo *repository.TheatreRepository,
	waitingRepo *repository.WaitingListRepository,
	hospitalRepo *repository.HospitalRepository,
	userHospitalRepo *repository.UserHospitalRepository,
) *TheatreService {
	return &TheatreService{
		theatreRepo:      theatreRepo,
		waitingRepo:      waitingRepo,
		hospitalRepo:     hospitalRepo,
		userHospitalRepo: userHospitalRepo,
	}
}

// GetHospitals retrieves hospitals based on user role: admins see all,
// regular users only their assigned hospitals
func (s *TheatreService) GetHospitals(userID uint, role string) ([]models.Hospital, error) {
	if role == models.RoleAdmin {
		return s.hospitalRepo.GetAllHospitals()
	}
	return s.hospitalRepo.GetHospitalsByUserID(userID)
}

// GetTheatres retrieves the active theatres of a hospital with access control
func (s *TheatreService) GetTheatres(hospitalID, userID uint, role string) ([]models.Theatre, error) {
	if err := s.checkHospitalAccess(hospitalID, userID, role); err != nil {
		return nil, err
	}
	return s.theatreRepo.Theatres(hospitalID)
}

// GetTheatreUnits retrieves the active units of a hospital with access control
func (s *TheatreService) GetTheatreUnits(hospitalID, userID uint, role string) ([]models.TheatreUnit, error) {
	if err := s.checkHospitalAccess(hospitalID, userID, role); err != nil {
		return nil, err
	}
	return s.theatreRepo.TheatreUnits(hospitalID)
}

// GetTheatreConfiguration retrieves one theatre's specialty assignments
func (s *TheatreService) GetTheatreConfiguration(theatreID, userID uint, role string) (*models.TheatreConfiguration, error) {
	theatre, err := s.theatreRepo.GetTheatreByID(theatreID)
	if err != nil {
		return nil, err
	}
	if err := s.checkHospitalAccess(theatre.HospitalID, userID, role); err != nil {
		return nil, err
	}
	return s.theatreRepo.GetConfigurationByTheatreID(theatreID)
}

// GetWaitingList retrieves the pending procedures for a hospital, optionally
// narrowed to one specialty or one consultant's patients
func (s *TheatreService) GetWaitingList(hospitalID uint, specialty string, surgeonID uint, userID uint, role string) ([]models.WaitingListEntry, error) {
	if err := s.checkHospitalAccess(hospitalID, userID, role); err != nil {
		return nil, err
	}
	if surgeonID != 0 {
		return s.waitingRepo.PendingBySurgeon(hospitalID, surgeonID)
	}
	return s.waitingRepo.PendingProcedures(hospitalID, specialty)
}

func (s *TheatreService) checkHospitalAccess(hospitalID, userID uint, role string) error {
	if role == models.RoleAdmin {
		return nil
	}
	hasAccess, err := s.userHospitalRepo.UserHasAccessToHospital(userID, hospitalID)
	if err != nil {
		return err
	}
	if !hasAccess {
		return errors.New("access denied: you don't have permission to access this hospital")
	}
	return nil
}
