package usecase

import (
	"context"
	"testing"

	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchFixture(t *testing.T) SearchUsecase {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	bedRepo := repository.NewBedRepository()

	ctx := context.Background()

	patients := NewPatientUsecase(db, log, patientRepo)
	for _, p := range []dto.AddPatientRequest{
		{Name: "Alice", Age: 30, Gender: "Female", Contact: "555-1111"},
		{Name: "Bob", Age: 45, Gender: "Male"},
	} {
		_, err := patients.Add(ctx, &p)
		require.NoError(t, err)
	}

	doctors := NewDoctorUsecase(db, log, doctorRepo)
	for _, d := range []dto.AddDoctorRequest{
		{Name: "Dr. Grey", Specialty: "Surgery"},
		{Name: "Dr. Wilson", Specialty: "Oncology"},
	} {
		_, err := doctors.Add(ctx, &d)
		require.NoError(t, err)
	}

	beds := NewBedUsecase(db, log, bedRepo)
	for _, b := range []dto.AddBedRequest{
		{Ward: "ICU", Status: "available"},
		{Ward: "General", Status: "occupied"},
	} {
		_, err := beds.Add(ctx, &b)
		require.NoError(t, err)
	}

	return NewSearchUsecase(db, log, patientRepo, doctorRepo, bedRepo)
}

func TestSearchUsecase_PatientByNameSubstring(t *testing.T) {
	ctx := context.Background()
	search := newSearchFixture(t)

	res, err := search.Search(ctx, SearchTypePatient, "ali")
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Alice", res.Patients[0].Name)

	res, err = search.Search(ctx, SearchTypePatient, "zzz")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
}

func TestSearchUsecase_DoctorByNameOrSpecialty(t *testing.T) {
	ctx := context.Background()
	search := newSearchFixture(t)

	res, err := search.Search(ctx, SearchTypeDoctor, "onco")
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Dr. Wilson", res.Doctors[0].Name)

	res, err = search.Search(ctx, SearchTypeDoctor, "grey")
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "Dr. Grey", res.Doctors[0].Name)
}

func TestSearchUsecase_BedByWardOrStatus(t *testing.T) {
	ctx := context.Background()
	search := newSearchFixture(t)

	res, err := search.Search(ctx, SearchTypeBed, "icu")
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "ICU", res.Beds[0].Ward)

	// Status matches exactly, not as a substring.
	res, err = search.Search(ctx, SearchTypeBed, "occupied")
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "occupied", res.Beds[0].Status)

	res, err = search.Search(ctx, SearchTypeBed, "occ")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
}

func TestSearchUsecase_UnknownKind(t *testing.T) {
	ctx := context.Background()
	search := newSearchFixture(t)

	res, err := search.Search(ctx, "Nurse", "ali")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.Empty(t, res.Patients)
	assert.Empty(t, res.Doctors)
	assert.Empty(t, res.Beds)
}
