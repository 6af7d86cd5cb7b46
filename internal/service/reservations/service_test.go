package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-DeskBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DeskBooking/internal/integrations/events"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type inlineTxManager struct{}

func (inlineTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	published []events.Event
}

func (p *fakePublisher) Publish(_ context.Context, e events.Event) error {
	p.published = append(p.published, e)
	return nil
}

type fakeRepo struct {
	reservations      map[string]*domain.Reservation
	deleted           []string
	deletedTimeRanges []string
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (f *fakeRepo) DeleteTimeRange(_ context.Context, reservationID, timeRangeID string) error {
	f.deletedTimeRanges = append(f.deletedTimeRanges, reservationID+"/"+timeRangeID)
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newRepo() *fakeRepo {
	start := time.Date(2026, 6, 11, 9, 0, 0, 0, time.UTC)
	return &fakeRepo{reservations: map[string]*domain.Reservation{
		"single": {
			ID:     "single",
			UserID: "u1",
			TimeRanges: []domain.TimeRange{
				{ID: "tr1", Start: start, End: start.Add(8 * time.Hour)},
			},
		},
		"multi": {
			ID:     "multi",
			UserID: "u1",
			TimeRanges: []domain.TimeRange{
				{ID: "tr1", Start: start, End: start.Add(8 * time.Hour)},
				{ID: "tr2", Start: start.AddDate(0, 0, 1), End: start.AddDate(0, 0, 1).Add(8 * time.Hour)},
			},
		},
	}}
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(newRepo(), inlineTxManager{}, &fakePublisher{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "multi", "u1")
	require.NoError(t, err)
	assert.Equal(t, "multi", resp.ID)
	assert.Len(t, resp.TimeRanges, 2)

	_, err = svc.GetByID(context.Background(), "multi", "u2")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_Cancel(t *testing.T) {
	repo := newRepo()
	publisher := &fakePublisher{}
	svc := NewService(repo, inlineTxManager{}, publisher, nopLogger{})

	assert.ErrorIs(t, svc.Cancel(context.Background(), "multi", "u2"), ErrAccessDenied)
	assert.Empty(t, repo.deleted)
	assert.Empty(t, publisher.published)

	require.NoError(t, svc.Cancel(context.Background(), "multi", "u1"))
	assert.Equal(t, []string{"multi"}, repo.deleted)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.TypeReservationCancelled, publisher.published[0].Type)
	assert.Equal(t, []string{"tr1", "tr2"}, publisher.published[0].TimeRangeIDs)
}

func TestService_RemoveDay(t *testing.T) {
	t.Run("not last day keeps reservation", func(t *testing.T) {
		repo := newRepo()
		publisher := &fakePublisher{}
		svc := NewService(repo, inlineTxManager{}, publisher, nopLogger{})

		resp, err := svc.RemoveDay(context.Background(), "multi", "tr2", "u1")
		require.NoError(t, err)

		assert.False(t, resp.ReservationDeleted)
		assert.Equal(t, []string{"multi/tr2"}, repo.deletedTimeRanges)
		assert.Empty(t, repo.deleted)

		require.Len(t, publisher.published, 1)
		assert.Equal(t, events.TypeReservationDayRemoved, publisher.published[0].Type)
	})

	t.Run("last day deletes reservation", func(t *testing.T) {
		repo := newRepo()
		publisher := &fakePublisher{}
		svc := NewService(repo, inlineTxManager{}, publisher, nopLogger{})

		resp, err := svc.RemoveDay(context.Background(), "single", "tr1", "u1")
		require.NoError(t, err)

		assert.True(t, resp.ReservationDeleted)
		assert.Equal(t, []string{"single"}, repo.deleted)
		assert.Empty(t, repo.deletedTimeRanges)

		require.Len(t, publisher.published, 1)
		assert.Equal(t, events.TypeReservationCancelled, publisher.published[0].Type)
	})

	t.Run("errors", func(t *testing.T) {
		svc := NewService(newRepo(), inlineTxManager{}, &fakePublisher{}, nopLogger{})

		_, err := svc.RemoveDay(context.Background(), "multi", "unknown", "u1")
		assert.ErrorIs(t, err, ErrTimeRangeNotFound)

		_, err = svc.RemoveDay(context.Background(), "multi", "tr1", "u2")
		assert.ErrorIs(t, err, ErrAccessDenied)

		_, err = svc.RemoveDay(context.Background(), "multi", "", "u1")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
