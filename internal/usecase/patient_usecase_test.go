package usecase

import (
	"context"
	"testing"

	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientUsecase_AddListDeleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	patients := NewPatientUsecase(newTestDB(t), newTestLogger(), repository.NewPatientRepository())

	added, err := patients.Add(ctx, &dto.AddPatientRequest{
		Name:    "Alice",
		Age:     30,
		Gender:  "Female",
		Contact: "555-1111",
	})
	require.NoError(t, err)
	assert.NotZero(t, added.ID)
	assert.False(t, added.AdmissionDate.IsZero())

	list, err := patients.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Alice", list.Patients[0].Name)
	assert.Equal(t, 30, list.Patients[0].Age)
	assert.Equal(t, "Female", list.Patients[0].Gender)
	assert.Equal(t, "555-1111", list.Patients[0].Contact)
	assert.False(t, list.Patients[0].AdmissionDate.IsZero())

	require.NoError(t, patients.Delete(ctx, added.ID))

	list, err = patients.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestPatientUsecase_AddValidation(t *testing.T) {
	ctx := context.Background()
	patients := NewPatientUsecase(newTestDB(t), newTestLogger(), repository.NewPatientRepository())

	tests := []struct {
		name    string
		req     dto.AddPatientRequest
		wantErr error
	}{
		{"missing name", dto.AddPatientRequest{Age: 30, Gender: "Male"}, ErrPatientFieldsRequired},
		{"missing gender", dto.AddPatientRequest{Name: "Bob", Age: 30}, ErrPatientFieldsRequired},
		{"negative age", dto.AddPatientRequest{Name: "Bob", Age: -5, Gender: "Male"}, ErrAgeNotPositive},
		{"bad gender", dto.AddPatientRequest{Name: "Bob", Age: 30, Gender: "male"}, ErrInvalidGender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := patients.Add(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Nothing reached the store.
	list, err := patients.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, list.Total)
}

func TestPatientUsecase_DeleteNotFound(t *testing.T) {
	ctx := context.Background()
	patients := NewPatientUsecase(newTestDB(t), newTestLogger(), repository.NewPatientRepository())

	err := patients.Delete(ctx, 42)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestDoctorUsecase_AddListDelete(t *testing.T) {
	ctx := context.Background()
	doctors := NewDoctorUsecase(newTestDB(t), newTestLogger(), repository.NewDoctorRepository())

	_, err := doctors.Add(ctx, &dto.AddDoctorRequest{Name: "Dr. House", Specialty: ""})
	assert.ErrorIs(t, err, ErrDoctorFieldsRequired)

	added, err := doctors.Add(ctx, &dto.AddDoctorRequest{
		Name:      "Dr. House",
		Specialty: "Diagnostics",
		Contact:   "555-2222",
	})
	require.NoError(t, err)

	list, err := doctors.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Diagnostics", list.Doctors[0].Specialty)

	require.NoError(t, doctors.Delete(ctx, added.ID))
	assert.ErrorIs(t, doctors.Delete(ctx, added.ID), ErrDoctorNotFound)
}
