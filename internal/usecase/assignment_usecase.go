package usecase

import (
	"context"
	"errors"

	"go-hospital-resource-management/internal/converter"
	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/domain/entity"
	"go-hospital-resource-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAssignmentSelection = errors.New("a patient, bed, and doctor must be selected")
	ErrBedNotAvailable     = errors.New("selected bed is not available")
	ErrAssignmentNotFound  = errors.New("assignment not found")
)

type AssignmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) (*dto.AssignmentListResponse, error)
}

type assignmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	assignmentRepo repository.AssignmentRepository
	bedRepo        repository.BedRepository
}

func NewAssignmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	assignmentRepo repository.AssignmentRepository,
	bedRepo repository.BedRepository,
) AssignmentUsecase {
	return &assignmentUsecase{
		db:             db,
		log:            log,
		assignmentRepo: assignmentRepo,
		bedRepo:        bedRepo,
	}
}

// Create binds a patient, bed, and doctor. The bed flip and the assignment
// insert happen in one transaction, and the flip is a guarded update so two
// racing creates against the same bed cannot both succeed.
func (u *assignmentUsecase) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if req.PatientID == 0 || req.BedID == 0 || req.DoctorID == 0 {
		return nil, ErrAssignmentSelection
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, tx.Error
	}
	defer tx.Rollback()

	occupied, err := u.bedRepo.OccupyIfAvailable(tx, req.BedID)
	if err != nil {
		u.log.Warnf("Failed to occupy bed %d: %+v", req.BedID, err)
		return nil, err
	}
	if !occupied {
		return nil, ErrBedNotAvailable
	}

	assignment := &entity.Assignment{
		PatientID: req.PatientID,
		BedID:     req.BedID,
		DoctorID:  req.DoctorID,
	}

	if err := u.assignmentRepo.Create(tx, assignment); err != nil {
		u.log.Warnf("Failed to create assignment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.AssignmentResponse{
		ID:             assignment.ID,
		BedID:          assignment.BedID,
		AssignmentDate: assignment.AssignmentDate,
	}, nil
}

// Delete removes the assignment and frees the bed in one transaction. The
// bed goes back to available even if it was flipped to maintenance in the
// meantime.
func (u *assignmentUsecase) Delete(ctx context.Context, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}
	defer tx.Rollback()

	assignment, err := u.assignmentRepo.FindByID(tx, id)
	if err != nil {
		if isNotFoundError(err) {
			return ErrAssignmentNotFound
		}
		u.log.Warnf("Failed to find assignment %d: %+v", id, err)
		return err
	}

	if _, err := u.assignmentRepo.DeleteByID(tx, id); err != nil {
		u.log.Warnf("Failed to delete assignment %d: %+v", id, err)
		return err
	}

	if err := u.bedRepo.Release(tx, assignment.BedID); err != nil {
		u.log.Warnf("Failed to release bed %d: %+v", assignment.BedID, err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *assignmentUsecase) List(ctx context.Context) (*dto.AssignmentListResponse, error) {
	details, err := u.assignmentRepo.FindAllDetailed(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list assignments: %+v", err)
		return nil, err
	}

	return &dto.AssignmentListResponse{
		Assignments: converter.AssignmentDetailsToResponses(details),
		Total:       len(details),
	}, nil
}
