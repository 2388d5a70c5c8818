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
	ErrBedFieldsRequired = errors.New("ward and status are required")
	ErrInvalidBedStatus  = errors.New("status must be available, occupied, or maintenance")
	ErrBedNotFound       = errors.New("bed not found")
	ErrBedInUse          = errors.New("bed is referenced by an assignment")
)

type BedUsecase interface {
	Add(ctx context.Context, req *dto.AddBedRequest) (*dto.BedResponse, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) (*dto.BedListResponse, error)
	ListAvailable(ctx context.Context) (*dto.BedListResponse, error)
}

type bedUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	bedRepo repository.BedRepository
}

func NewBedUsecase(db *gorm.DB, log *logrus.Logger, bedRepo repository.BedRepository) BedUsecase {
	return &bedUsecase{
		db:      db,
		log:     log,
		bedRepo: bedRepo,
	}
}

// Add validates the bed fields before any store access. The last-cleaned
// timestamp is assigned by the store at insert.
func (u *bedUsecase) Add(ctx context.Context, req *dto.AddBedRequest) (*dto.BedResponse, error) {
	if req.Ward == "" || req.Status == "" {
		return nil, ErrBedFieldsRequired
	}
	if !entity.IsValidBedStatus(req.Status) {
		return nil, ErrInvalidBedStatus
	}

	bed := &entity.Bed{
		Ward:   req.Ward,
		Status: entity.BedStatus(req.Status),
	}

	if err := u.bedRepo.Create(u.db.WithContext(ctx), bed); err != nil {
		u.log.Warnf("Failed to create bed: %+v", err)
		return nil, err
	}

	return converter.BedToResponse(bed), nil
}

func (u *bedUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.bedRepo.DeleteByID(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err) {
			return fmt.Errorf("%w: %v", ErrBedInUse, err)
		}
		u.log.Warnf("Failed to delete bed %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrBedNotFound
	}
	return nil
}

func (u *bedUsecase) List(ctx context.Context) (*dto.BedListResponse, error) {
	beds, err := u.bedRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list beds: %+v", err)
		return nil, err
	}

	return &dto.BedListResponse{
		Beds:  converter.BedsToResponses(beds),
		Total: len(beds),
	}, nil
}

// ListAvailable returns only beds an assignment could take.
func (u *bedUsecase) ListAvailable(ctx context.Context) (*dto.BedListResponse, error) {
	beds, err := u.bedRepo.FindByStatus(u.db.WithContext(ctx), entity.BedStatusAvailable)
	if err != nil {
		u.log.Warnf("Failed to list available beds: %+v", err)
		return nil, err
	}

	return &dto.BedListResponse{
		Beds:  converter.BedsToResponses(beds),
		Total: len(beds),
	}, nil
}
