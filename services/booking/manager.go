package booking

import (
	"context"
	"time"

	"skillbridge/models"
	"skillbridge/services/notification"
	"skillbridge/utils"

	"go.uber.org/zap"
)

// Booker creates sessions. SessionStore satisfies it.
type Booker interface {
	Book(ctx context.Context, req models.BookRequest) (*models.Session, error)
}

// Manager drives one Machine and runs the effects its transitions request.
// A Manager is not safe for concurrent use; one interaction has one caller.
type Manager struct {
	machine Machine
	store   Booker
	sink    notification.Sink
	logger  *zap.Logger

	// Clock returns the current time in the booking time zone.
	Clock func() time.Time
}

func NewManager(machine Machine, store Booker, sink notification.Sink, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sink == nil {
		sink = notification.MultiSink(nil)
	}
	return &Manager{machine: machine, store: store, sink: sink, logger: logger, Clock: time.Now}
}

// Machine returns a snapshot of the current state.
func (mgr *Manager) Machine() Machine { return mgr.machine }

func (mgr *Manager) State() models.BookingState { return mgr.machine.State }

func (mgr *Manager) Draft() *models.BookingDraft {
	if mgr.machine.Draft == nil {
		return nil
	}
	d := *mgr.machine.Draft
	return &d
}

func (mgr *Manager) OpenFor(ctx context.Context, mentor models.Mentor) error {
	return mgr.step(ctx, func(m Machine) (Machine, []Effect, error) { return m.OpenFor(mentor) })
}

func (mgr *Manager) ChooseSessionType(ctx context.Context, t models.SessionType) error {
	return mgr.step(ctx, func(m Machine) (Machine, []Effect, error) { return m.ChooseSessionType(t) })
}

func (mgr *Manager) Back(ctx context.Context) error {
	return mgr.step(ctx, Machine.Back)
}

func (mgr *Manager) SelectSchedule(ctx context.Context, date, slot, notes string) error {
	today := mgr.Clock()
	return mgr.step(ctx, func(m Machine) (Machine, []Effect, error) {
		return m.SelectSchedule(date, slot, notes, today)
	})
}

// Confirm books the draft. On a conflict it returns *models.SlotConflictError
// and the manager stays in schedule selection with the draft intact.
func (mgr *Manager) Confirm(ctx context.Context) (*models.Session, error) {
	today := mgr.Clock()
	if err := mgr.step(ctx, func(m Machine) (Machine, []Effect, error) { return m.Confirm(today) }); err != nil {
		return nil, err
	}
	if mgr.machine.Session == nil {
		return nil, nil
	}
	s := *mgr.machine.Session
	return &s, nil
}

func (mgr *Manager) Cancel(ctx context.Context) error {
	return mgr.step(ctx, Machine.Cancel)
}

func (mgr *Manager) step(ctx context.Context, transition func(Machine) (Machine, []Effect, error)) error {
	next, effects, err := transition(mgr.machine)
	if err != nil {
		return err
	}
	mgr.machine = next
	return mgr.run(ctx, effects)
}

func (mgr *Manager) run(ctx context.Context, effects []Effect) error {
	for _, e := range effects {
		switch e.Kind {
		case EffectNotify:
			mgr.sink.Notify(utils.WithRequesterID(ctx, mgr.machine.RequesterID), e.Notice, e.Message)

		case EffectBook:
			session, err := mgr.store.Book(ctx, e.Request)
			if err != nil {
				mgr.logger.Info("Booking attempt failed",
					zap.String("draftId", mgr.machine.ID),
					zap.String("mentorId", e.Request.MentorID),
					zap.String("date", e.Request.Date),
					zap.String("slot", string(e.Request.Slot)),
					zap.Error(err),
				)
				if stepErr := mgr.step(ctx, func(m Machine) (Machine, []Effect, error) { return m.BookingFailed(err) }); stepErr != nil {
					mgr.logger.Error("Booking failure could not be recorded", zap.Error(stepErr))
				}
				return err
			}
			if err := mgr.step(ctx, func(m Machine) (Machine, []Effect, error) { return m.BookingSucceeded(*session) }); err != nil {
				return err
			}
		}
	}
	return nil
}
