package remove_reservation_day

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations"
	"github.com/m04kA/SMC-DeskBooking/internal/service/reservations/models"
)

const (
	reservationID = "0b9e3c1a-7f2d-4c6b-8e5a-1d2c3b4a5f60"
	timeRangeID   = "c4d5e6f7-1a2b-4c3d-9e8f-7a6b5c4d3e2f"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err     error
	deleted bool
	calls   int
}

func (f *fakeService) RemoveDay(_ context.Context, id, timeRangeID, _ string) (*models.RemoveDayResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.RemoveDayResponse{ReservationID: id, TimeRangeID: timeRangeID, ReservationDeleted: f.deleted}, nil
}

func serve(svc *fakeService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/reservations/{reservationId}/time-ranges/{timeRangeId}",
		NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, path, nil)
	req.Header.Set(middleware.UserIDHeader, "u1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_RemoveDay(t *testing.T) {
	svc := &fakeService{deleted: true}
	rec := serve(svc, "/reservations/"+reservationID+"/time-ranges/"+timeRangeID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reservationDeleted":true`)
}

func TestHandler_InvalidIDs(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/reservations/not-a-uuid/time-ranges/"+timeRangeID)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(svc, "/reservations/"+reservationID+"/time-ranges/42")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Zero(t, svc.calls)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: reservations.ErrReservationNotFound, status: http.StatusNotFound},
		{err: reservations.ErrTimeRangeNotFound, status: http.StatusNotFound},
		{err: reservations.ErrAccessDenied, status: http.StatusForbidden},
		{err: reservations.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, "/reservations/"+reservationID+"/time-ranges/"+timeRangeID)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
