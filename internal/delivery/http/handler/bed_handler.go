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

type BedHandler struct {
	bedUsecase usecase.BedUsecase
	validator  *validator.CustomValidator
}

func NewBedHandler(bedUsecase usecase.BedUsecase, validator *validator.CustomValidator) *BedHandler {
	return &BedHandler{
		bedUsecase: bedUsecase,
		validator:  validator,
	}
}

// AddBed registers a new ward bed
func (h *BedHandler) AddBed(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.bedUsecase.Add(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBedFieldsRequired),
			errors.Is(err, usecase.ErrInvalidBedStatus):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Bed added successfully", bed)
}

// DeleteBed removes a bed by id
func (h *BedHandler) DeleteBed(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bed id", nil)
		return
	}

	if err := h.bedUsecase.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBedNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrBedInUse):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	response.Success(w, http.StatusOK, "Bed deleted successfully", nil)
}

// GetAllBeds lists every bed
func (h *BedHandler) GetAllBeds(w http.ResponseWriter, r *http.Request) {
	beds, err := h.bedUsecase.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusOK, "", beds)
}

// GetAvailableBeds lists beds an assignment could take
func (h *BedHandler) GetAvailableBeds(w http.ResponseWriter, r *http.Request) {
	beds, err := h.bedUsecase.ListAvailable(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusOK, "", beds)
}
