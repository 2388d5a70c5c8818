package usecase

import (
	"context"

	"go-hospital-resource-management/internal/converter"
	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Search kinds
const (
	SearchTypePatient = "Patient"
	SearchTypeDoctor  = "Doctor"
	SearchTypeBed     = "Bed"
)

type SearchUsecase interface {
	Search(ctx context.Context, searchType, term string) (*dto.SearchResponse, error)
}

type searchUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	bedRepo     repository.BedRepository
}

func NewSearchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	bedRepo repository.BedRepository,
) SearchUsecase {
	return &searchUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		bedRepo:     bedRepo,
	}
}

// Search looks up one entity kind: patients by name substring, doctors by
// name or specialty substring, beds by ward substring or exact status. An
// unknown kind yields an empty result, not an error.
func (u *searchUsecase) Search(ctx context.Context, searchType, term string) (*dto.SearchResponse, error) {
	res := &dto.SearchResponse{Type: searchType, Term: term}
	db := u.db.WithContext(ctx)

	switch searchType {
	case SearchTypePatient:
		patients, err := u.patientRepo.SearchByName(db, term)
		if err != nil {
			u.log.Warnf("Failed to search patients: %+v", err)
			return nil, err
		}
		res.Patients = converter.PatientsToResponses(patients)
		res.Total = len(patients)
	case SearchTypeDoctor:
		doctors, err := u.doctorRepo.SearchByNameOrSpecialty(db, term)
		if err != nil {
			u.log.Warnf("Failed to search doctors: %+v", err)
			return nil, err
		}
		res.Doctors = converter.DoctorsToResponses(doctors)
		res.Total = len(doctors)
	case SearchTypeBed:
		beds, err := u.bedRepo.SearchByWardOrStatus(db, term)
		if err != nil {
			u.log.Warnf("Failed to search beds: %+v", err)
			return nil, err
		}
		res.Beds = converter.BedsToResponses(beds)
		res.Total = len(beds)
	}

	return res, nil
}
