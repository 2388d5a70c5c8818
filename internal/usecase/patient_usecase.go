package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-hospital-resource-management/internal/converter"
	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/domain/entity"
	"go-hospital-resource-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientFieldsRequired = errors.New("name, age, and gender are required")
	ErrAgeNotPositive        = errors.New("age must be a positive number")
	ErrInvalidGender         = errors.New("gender must be Male, Female, or Other")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrPatientInUse          = errors.New("patient is referenced by an assignment")
)

type PatientUsecase interface {
	Add(ctx context.Context, req *dto.AddPatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

// Add validates the admission fields before any store access. The admission
// timestamp is assigned by the store at insert.
func (u *patientUsecase) Add(ctx context.Context, req *dto.AddPatientRequest) (*dto.PatientResponse, error) {
	if req.Name == "" || req.Age == 0 || req.Gender == "" {
		return nil, ErrPatientFieldsRequired
	}
	if req.Age <= 0 {
		return nil, ErrAgeNotPositive
	}
	if !entity.IsValidGender(req.Gender) {
		return nil, ErrInvalidGender
	}

	patient := &entity.Patient{
		Name:    req.Name,
		Age:     req.Age,
		Gender:  req.Gender,
		Contact: req.Contact,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.patientRepo.DeleteByID(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("%w: %v", ErrPatientInUse, err)
		}
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func (u *patientUsecase) List(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}
