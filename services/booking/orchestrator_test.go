package booking

import (
	"context"
	"testing"
	"time"

	"skillbridge/models"
	"skillbridge/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(f *fixture) *DefaultBookingSessionService {
	return &DefaultBookingSessionService{
		Mentors: f.dir,
		Store:   f.store,
		Drafts:  NewMemoryDraftStore(30 * time.Minute),
		Sink:    f.sink,
		Clock:   f.clock,
		Logger:  zap.NewNop(),
	}
}

func TestServiceFullFlow(t *testing.T) {
	f := newFixture(t)
	svc := newService(f)
	ctx := utils.WithRequesterID(context.Background(), "u1")

	view, err := svc.Open(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.StateSessionTypeSelection, view.State)
	assert.Equal(t, "Priya Sharma", view.Mentor.Name)
	id := view.DraftID

	view, err = svc.ChooseSessionType(ctx, id, models.SessionVideo)
	require.NoError(t, err)
	assert.Equal(t, models.StateScheduleSelection, view.State)

	view, err = svc.SelectSchedule(ctx, id, "2026-10-21", "14:00", "")
	require.NoError(t, err)
	assert.Equal(t, models.AllSlots, view.OpenSlots)

	view, err = svc.Confirm(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateConfirmed, view.State)
	require.NotNil(t, view.Session)
	assert.Equal(t, models.StatusPending, view.Session.Status)

	// Terminal drafts are discarded.
	_, err = svc.Get(ctx, id)
	assert.True(t, IsNotFound(err))
}

func TestServiceConflictKeepsDraft(t *testing.T) {
	f := newFixture(t)
	svc := newService(f)
	ctx := utils.WithRequesterID(context.Background(), "u1")

	_, err := f.store.Book(ctx, bookRequest("u2", models.Slot1400))
	require.NoError(t, err)

	view, err := svc.Open(ctx, "1")
	require.NoError(t, err)
	id := view.DraftID
	_, err = svc.ChooseSessionType(ctx, id, models.SessionVideo)
	require.NoError(t, err)
	_, err = svc.SelectSchedule(ctx, id, "2026-10-21", "14:00", "")
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, id)
	assert.True(t, IsSlotConflict(err))

	view, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StateScheduleSelection, view.State)
	assert.Equal(t, models.Slot1400, view.Draft.Slot)
	assert.NotContains(t, view.OpenSlots, models.Slot1400)
}

func TestServiceDraftsArePerRequester(t *testing.T) {
	f := newFixture(t)
	svc := newService(f)
	owner := utils.WithRequesterID(context.Background(), "u1")
	other := utils.WithRequesterID(context.Background(), "u2")

	view, err := svc.Open(owner, "2")
	require.NoError(t, err)

	_, err = svc.Get(other, view.DraftID)
	assert.True(t, IsNotFound(err))
	_, err = svc.Cancel(other, view.DraftID)
	assert.True(t, IsNotFound(err))

	_, err = svc.Get(owner, view.DraftID)
	assert.NoError(t, err)
}

func TestServiceOpenRequiresRequesterAndMentor(t *testing.T) {
	f := newFixture(t)
	svc := newService(f)

	_, err := svc.Open(context.Background(), "1")
	assert.True(t, IsValidation(err))

	_, err = svc.Open(utils.WithRequesterID(context.Background(), "u1"), "404")
	assert.True(t, IsNotFound(err))
}

func TestServiceCancelDiscardsDraft(t *testing.T) {
	f := newFixture(t)
	svc := newService(f)
	ctx := utils.WithRequesterID(context.Background(), "u1")

	view, err := svc.Open(ctx, "3")
	require.NoError(t, err)
	view, err = svc.Cancel(ctx, view.DraftID)
	require.NoError(t, err)
	assert.Equal(t, models.StateCancelled, view.State)

	_, err = svc.Back(ctx, view.DraftID)
	assert.True(t, IsNotFound(err))
}

func TestServiceWrongStepIsInvalidTransition(t *testing.T) {
	f := newFixture(t)
	svc := newService(f)
	ctx := utils.WithRequesterID(context.Background(), "u1")

	view, err := svc.Open(ctx, "1")
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, view.DraftID)
	assert.True(t, IsInvalidTransition(err))

	// The draft survives the rejected step.
	got, err := svc.Get(ctx, view.DraftID)
	require.NoError(t, err)
	assert.Equal(t, models.StateSessionTypeSelection, got.State)
}
