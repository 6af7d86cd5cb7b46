package build_conflict_map

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	buildConflictMap "github.com/m04kA/SMC-DeskBooking/internal/usecase/build_conflict_map"
)

const (
	orgID   = "0b6f7c1e-2a4d-4c8e-9f3a-5d1e7b2c9a40"
	spaceID = "c3a9e5d1-7b2f-4e6a-8d0c-1f4b6a8e2d35"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	calls     int
	lastReq   *buildConflictMap.Request
	conflicts map[string]bool
	err       error
}

func (f *fakeUseCase) Execute(_ context.Context, req *buildConflictMap.Request) (*buildConflictMap.Response, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &buildConflictMap.Response{Conflicts: f.conflicts}, nil
}

func doRequest(h *Handler, userID, rawQuery string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/desks/conflicts?"+rawQuery, nil)
	if userID != "" {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestToUseCaseRequest(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	q := url.Values{
		"days":           {"2026-06-11, 2026-06-12"},
		"startTime":      {"09:00"},
		"endTime":        {"17:30"},
		"organizationId": {orgID},
		"spaceId":        {spaceID},
	}

	req, err := ToUseCaseRequest("u1", q, loc)
	require.NoError(t, err)

	assert.Equal(t, "u1", req.UserID)
	require.Len(t, req.Days, 2)
	assert.Equal(t, time.Date(2026, 6, 11, 0, 0, 0, 0, loc), req.Days[0])
	assert.Equal(t, time.Date(2026, 6, 12, 0, 0, 0, 0, loc), req.Days[1])
	assert.Equal(t, loc, req.Days[0].Location())
	require.NotNil(t, req.StartTime)
	assert.Equal(t, "09:00", req.StartTime.String())
	require.NotNil(t, req.EndTime)
	assert.Equal(t, "17:30", req.EndTime.String())
	require.NotNil(t, req.OrganizationID)
	assert.Equal(t, orgID, *req.OrganizationID)
	assert.Nil(t, req.LocationID)
	require.NotNil(t, req.SpaceID)
	assert.Equal(t, spaceID, *req.SpaceID)
}

func TestToUseCaseRequest_Empty(t *testing.T) {
	req, err := ToUseCaseRequest("u1", url.Values{}, time.UTC)
	require.NoError(t, err)

	assert.Empty(t, req.Days)
	assert.Nil(t, req.StartTime)
	assert.Nil(t, req.EndTime)
	assert.Nil(t, req.OrganizationID)
}

func TestToUseCaseRequest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		q    url.Values
	}{
		{name: "bad day", q: url.Values{"days": {"2026-06-11,11.06.2026"}}},
		{name: "trailing comma", q: url.Values{"days": {"2026-06-11,"}}},
		{name: "bad start", q: url.Values{"startTime": {"9am"}}},
		{name: "bad end", q: url.Values{"endTime": {"24:30"}}},
		{name: "bad organization id", q: url.Values{"organizationId": {"org1"}}},
		{name: "bad location id", q: url.Values{"locationId": {"42"}}},
		{name: "bad space id", q: url.Values{"spaceId": {"not-a-uuid"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToUseCaseRequest("u1", tt.q, time.UTC)
			assert.Error(t, err)
		})
	}
}

func TestHandler_OK(t *testing.T) {
	uc := &fakeUseCase{conflicts: map[string]bool{"d3": true, "d1": true, "d2": false}}
	rec := doRequest(NewHandler(uc, nopLogger{}), "u1", "days=2026-06-11&startTime=09:00&endTime=17:00")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"conflictingDeskIds":["d1","d3"]`)
	assert.Contains(t, rec.Body.String(), `"d2":false`)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "u1", uc.lastReq.UserID)
	require.Len(t, uc.lastReq.Days, 1)
	assert.Equal(t, time.Local, uc.lastReq.Days[0].Location())
}

func TestHandler_BadQuery(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	for _, query := range []string{
		"days=tomorrow",
		"startTime=9",
		"organizationId=acme",
	} {
		rec := doRequest(h, "u1", query)
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
	assert.Zero(t, uc.calls)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: buildConflictMap.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "internal", err: buildConflictMap.ErrInternal, want: http.StatusInternalServerError},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), "u1", "days=2026-06-11")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_MissingUser(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(NewHandler(uc, nopLogger{}), "", "days=2026-06-11")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, uc.calls)
}
