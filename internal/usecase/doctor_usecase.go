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
	ErrDoctorFieldsRequired = errors.New("name and specialty are required")
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrDoctorInUse          = errors.New("doctor is referenced by an assignment")
)

type DoctorUsecase interface {
	Add(ctx context.Context, req *dto.AddDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) Add(ctx context.Context, req *dto.AddDoctorRequest) (*dto.DoctorResponse, error) {
	if req.Name == "" || req.Specialty == "" {
		return nil, ErrDoctorFieldsRequired
	}

	doctor := &entity.Doctor{
		Name:      req.Name,
		Specialty: req.Specialty,
		Contact:   req.Contact,
	}

	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.doctorRepo.DeleteByID(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("%w: %v", ErrDoctorInUse, err)
		}
		u.log.Warnf("Failed to delete doctor %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

func (u *doctorUsecase) List(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}
