package usecase

import (
	"context"
	"testing"

	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBedUsecase_AddListDelete(t *testing.T) {
	ctx := context.Background()
	beds := NewBedUsecase(newTestDB(t), newTestLogger(), repository.NewBedRepository())

	added, err := beds.Add(ctx, &dto.AddBedRequest{Ward: "ICU", Status: "available"})
	require.NoError(t, err)
	assert.NotZero(t, added.ID)
	assert.False(t, added.LastCleaned.IsZero())

	list, err := beds.List(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "ICU", list.Beds[0].Ward)
	assert.Equal(t, "available", list.Beds[0].Status)

	require.NoError(t, beds.Delete(ctx, added.ID))
	assert.ErrorIs(t, beds.Delete(ctx, added.ID), ErrBedNotFound)
}

func TestBedUsecase_AddValidation(t *testing.T) {
	ctx := context.Background()
	beds := NewBedUsecase(newTestDB(t), newTestLogger(), repository.NewBedRepository())

	_, err := beds.Add(ctx, &dto.AddBedRequest{Ward: "", Status: "available"})
	assert.ErrorIs(t, err, ErrBedFieldsRequired)

	_, err = beds.Add(ctx, &dto.AddBedRequest{Ward: "ICU", Status: "broken"})
	assert.ErrorIs(t, err, ErrInvalidBedStatus)
}

func TestBedUsecase_ListAvailable(t *testing.T) {
	ctx := context.Background()
	beds := NewBedUsecase(newTestDB(t), newTestLogger(), repository.NewBedRepository())

	_, err := beds.Add(ctx, &dto.AddBedRequest{Ward: "ICU", Status: "available"})
	require.NoError(t, err)
	_, err = beds.Add(ctx, &dto.AddBedRequest{Ward: "ICU", Status: "occupied"})
	require.NoError(t, err)
	_, err = beds.Add(ctx, &dto.AddBedRequest{Ward: "General", Status: "maintenance"})
	require.NoError(t, err)

	available, err := beds.ListAvailable(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, available.Total)
	assert.Equal(t, "available", available.Beds[0].Status)
}
