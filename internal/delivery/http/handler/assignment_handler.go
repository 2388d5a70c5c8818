package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/usecase"
	"go-hospital-resource-management/pkg/response"
	"go-hospital-resource-management/pkg/validator"

	"github.com/gorilla/mux"
)

type AssignmentHandler struct {
	assignmentUsecase usecase.AssignmentUsecase
	validator         *validator.CustomValidator
}

func NewAssignmentHandler(assignmentUsecase usecase.AssignmentUsecase, validator *validator.CustomValidator) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentUsecase: assignmentUsecase,
		validator:         validator,
	}
}

// CreateAssignment binds a patient, bed, and doctor
func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	assignment, err := h.assignmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAssignmentSelection):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, usecase.ErrBedNotAvailable):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Assignment created successfully", assignment)
}

// DeleteAssignment removes an assignment and frees its bed
func (h *AssignmentHandler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid assignment id", nil)
		return
	}

	if err := h.assignmentUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAssignmentNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusOK, "Assignment deleted successfully", nil)
}

// GetAllAssignments lists the joined assignment projection
func (h *AssignmentHandler) GetAllAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.assignmentUsecase.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusOK, "", assignments)
}
