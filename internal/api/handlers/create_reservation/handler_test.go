package create_reservation

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	createReservation "github.com/m04kA/SMC-DeskBooking/internal/usecase/create_reservation"
)

const deskID = "6f1c2b9e-4d3a-4e8f-9a51-0c7d2e3f4a5b"

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	lastReq *createReservation.Request
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	start := req.StartTime.On(req.Days[0])
	return &createReservation.Response{
		ID:         "r1",
		UserID:     req.UserID,
		DeskID:     req.DeskID,
		TimeRanges: []domain.TimeRange{{ID: "t1", Start: start, End: start.Add(8 * time.Hour)}},
	}, nil
}

func doRequest(h *Handler, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() string {
	return fmt.Sprintf(`{"deskId":%q,"days":["2026-06-11","2026-06-12"],"startTime":"09:00","endTime":"17:00"}`, deskID)
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(NewHandler(uc, nopLogger{}), "u1", validBody())

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"r1"`)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "u1", uc.lastReq.UserID)
	assert.Equal(t, deskID, uc.lastReq.DeskID)
	require.Len(t, uc.lastReq.Days, 2)
	assert.Equal(t, 12, uc.lastReq.Days[1].Day())
	assert.Equal(t, "09:00", uc.lastReq.StartTime.String())
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"deskId":`},
		{name: "unknown field", body: `{"deskId":"` + deskID + `","userId":"someone"}`},
		{name: "desk id not uuid", body: `{"deskId":"desk-1","days":["2026-06-11"],"startTime":"09:00","endTime":"17:00"}`},
		{name: "bad day", body: `{"deskId":"` + deskID + `","days":["11.06.2026"],"startTime":"09:00","endTime":"17:00"}`},
		{name: "bad time", body: `{"deskId":"` + deskID + `","days":["2026-06-11"],"startTime":"9am","endTime":"17:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := doRequest(NewHandler(uc, nopLogger{}), "u1", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.lastReq)
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: createReservation.ErrDeskConflict, status: http.StatusConflict},
		{err: createReservation.ErrDeskNotFound, status: http.StatusNotFound},
		{err: createReservation.ErrNotMember, status: http.StatusForbidden},
		{err: createReservation.ErrBillingFailed, status: http.StatusForbidden},
		{err: createReservation.ErrInvalidDate, status: http.StatusBadRequest},
		{err: fmt.Errorf("%w: days are required", createReservation.ErrInvalidInput), status: http.StatusBadRequest},
		{err: createReservation.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := doRequest(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), "u1", validBody())
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandler_MissingUser(t *testing.T) {
	rec := doRequest(NewHandler(&fakeUseCase{}, nopLogger{}), "", validBody())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
