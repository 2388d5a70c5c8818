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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// AddDoctor registers a new doctor
func (h *DoctorHandler) AddDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.AddDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.Add(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorFieldsRequired) {
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusCreated, "Doctor added successfully", doctor)
}

// DeleteDoctor removes a doctor by id
func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor id", nil)
		return
	}

	if err := h.doctorUsecase.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrDoctorInUse):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}

// GetAllDoctors lists every doctor
func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusOK, "", doctors)
}
