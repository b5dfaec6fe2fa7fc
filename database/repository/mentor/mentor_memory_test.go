package mentorRepo

import (
	"context"
	"errors"
	"testing"

	"skillbridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMentorRepo()

	added, err := Seed(ctx, repo, DefaultMentors())
	require.NoError(t, err)
	assert.Equal(t, 4, added)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Priya Sharma", list[0].Name)
	assert.Equal(t, "Rakesh Kumar", list[3].Name)
	assert.Less(t, list[0].Seq, list[3].Seq)

	// A second seed is a no-op.
	added, err = Seed(ctx, repo, DefaultMentors())
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestGetByIDUnknown(t *testing.T) {
	_, err := NewMemoryMentorRepo().GetByID(context.Background(), "nope")
	var nf *models.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "mentor", nf.Resource)
}

func TestInsertRejectsInvalidAndDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMentorRepo()

	err := repo.Insert(ctx, &models.Mentor{Name: "Free", HourlyRate: 0})
	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))

	m := models.Mentor{ID: "x", Name: "X", HourlyRate: 100}
	require.NoError(t, repo.Insert(ctx, &m))
	dup := models.Mentor{ID: "x", Name: "X", HourlyRate: 100}
	assert.Error(t, repo.Insert(ctx, &dup))
}

func TestUpdateAvailabilityIsolatedFromCaller(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryMentorRepo()
	_, err := Seed(ctx, repo, DefaultMentors())
	require.NoError(t, err)

	open := []models.Slot{models.Slot0900}
	require.NoError(t, repo.UpdateAvailability(ctx, "1", models.Availability{Summary: "s", OpenSlots: open}))
	open[0] = models.Slot1800

	m, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []models.Slot{models.Slot0900}, m.Availability.OpenSlots)

	err = repo.UpdateAvailability(ctx, "missing", models.Availability{})
	var nf *models.NotFoundError
	assert.True(t, errors.As(err, &nf))
}
