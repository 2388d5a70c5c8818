package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/usecase"
	"go-hospital-resource-management/pkg/response"
	"go-hospital-resource-management/pkg/validator"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// AddPatient admits a new patient
func (h *PatientHandler) AddPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.AddPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Add(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientFieldsRequired),
			errors.Is(err, usecase.ErrAgeNotPositive),
			errors.Is(err, usecase.ErrInvalidGender):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient added successfully", patient)
}

// DeletePatient removes a patient by id
func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient id", nil)
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, usecase.ErrPatientInUse):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}

// GetAllPatients lists every patient
func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.List(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(w, http.StatusOK, "", patients)
}

// parseID parses a path id into the uint the usecases expect.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
