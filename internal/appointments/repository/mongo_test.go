package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	appointmentserrors "beautycabin/internal/appointments/errors"
	"beautycabin/internal/testutil"
	"beautycabin/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointment(name, phone string, createdAt time.Time) *model.Appointment {
	return &model.Appointment{
		Name:      name,
		Phone:     phone,
		Service:   "Manicure",
		Date:      "2025-03-20",
		Time:      "10:30",
		Status:    model.StatusPending,
		CreatedAt: createdAt,
	}
}

func TestMongoAppointmentRepository_Lifecycle(t *testing.T) {
	helper := testutil.NewMongoHelper(t)
	repo := NewMongoAppointmentRepository(helper.Config())
	ctx := context.Background()

	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	first := newAppointment("Dana Levi", "0501111111", base)
	second := newAppointment("Noa", "0522222222", base.Add(time.Minute))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, first))
	assert.Len(t, first.ID, 24)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := repo.FindAll(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID, "sorted by createdAt")
	assert.Equal(t, base, all[0].CreatedAt.UTC())

	byName, err := repo.FindAll(ctx, Filter{Search: "DANA"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, first.ID, byName[0].ID)

	byPhone, err := repo.FindAll(ctx, Filter{Search: "0522"})
	require.NoError(t, err)
	require.Len(t, byPhone, 1)

	confirmed, err := repo.SetStatus(ctx, first.ID, model.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, confirmed.Status)
	assert.Equal(t, first.Name, confirmed.Name)

	again, err := repo.SetStatus(ctx, first.ID, model.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, confirmed, again)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), appointmentserrors.ErrNotFound)
	_, err = repo.SetStatus(ctx, first.ID, model.StatusConfirmed)
	assert.ErrorIs(t, err, appointmentserrors.ErrNotFound)

	assert.Equal(t, int64(1), helper.CountDocuments(t, CollectionName))
}

func TestMongoAppointmentRepository_InvalidID(t *testing.T) {
	helper := testutil.NewMongoHelper(t)
	repo := NewMongoAppointmentRepository(helper.Config())
	ctx := context.Background()

	_, err := repo.SetStatus(ctx, "not-an-object-id", model.StatusConfirmed)
	assert.ErrorIs(t, err, appointmentserrors.ErrInvalidID)
	assert.ErrorIs(t, repo.Delete(ctx, "not-an-object-id"), appointmentserrors.ErrInvalidID)
}

func TestMongoAppointmentRepository_EmptyList(t *testing.T) {
	helper := testutil.NewMongoHelper(t)
	repo := NewMongoAppointmentRepository(helper.Config())

	all, err := repo.FindAll(context.Background(), Filter{})
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestMongoAppointmentRepository_ConcurrentCreates(t *testing.T) {
	helper := testutil.NewMongoHelper(t)
	repo := NewMongoAppointmentRepository(helper.Config())

	const n = 20
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a := newAppointment("Client", "050", time.Now().UTC())
			if assert.NoError(t, repo.Create(context.Background(), a)) {
				ids[i] = a.ID
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, int64(n), helper.CountDocuments(t, CollectionName))
}
