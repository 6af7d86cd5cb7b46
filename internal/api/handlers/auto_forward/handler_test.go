package auto_forward

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DeskBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DeskBooking/internal/domain"
	autoForward "github.com/m04kA/SMC-DeskBooking/internal/usecase/auto_forward"
	"github.com/m04kA/SMC-DeskBooking/pkg/ptr"
)

const (
	orgID      = "0b6f7c1e-2a4d-4c8e-9f3a-5d1e7b2c9a40"
	locationID = "8e2d4f6a-1c3b-4a5e-9d7f-2b4c6e8a0d13"
	spaceID    = "c3a9e5d1-7b2f-4e6a-8d0c-1f4b6a8e2d35"
	deskID     = "6f1c2b9e-4d3a-4e8f-9a51-0c7d2e3f4a5b"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	calls   int
	lastReq *autoForward.Request
	resp    *autoForward.Response
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *autoForward.Request) (*autoForward.Response, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(h *Handler, userID, rawQuery string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/selection?"+rawQuery, nil)
	if userID != "" {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestToUseCaseRequest(t *testing.T) {
	q := url.Values{
		"organizationId": {orgID},
		"locationId":     {locationID},
		"spaceId":        {spaceID},
		"deskId":         {deskID},
	}

	req, err := ToUseCaseRequest("u1", q)
	require.NoError(t, err)

	assert.Equal(t, "u1", req.UserID)
	assert.Equal(t, orgID, ptr.Value(req.Selection.OrganizationID))
	assert.Equal(t, locationID, ptr.Value(req.Selection.LocationID))
	assert.Equal(t, spaceID, ptr.Value(req.Selection.SpaceID))
	assert.Equal(t, deskID, ptr.Value(req.Selection.DeskID))
}

func TestToUseCaseRequest_PartialSelection(t *testing.T) {
	req, err := ToUseCaseRequest("u1", url.Values{"organizationId": {orgID}})
	require.NoError(t, err)

	assert.Equal(t, orgID, ptr.Value(req.Selection.OrganizationID))
	assert.Nil(t, req.Selection.LocationID)
	assert.Nil(t, req.Selection.SpaceID)
	assert.Nil(t, req.Selection.DeskID)
}

func TestToUseCaseRequest_Invalid(t *testing.T) {
	for _, name := range []string{"organizationId", "locationId", "spaceId", "deskId"} {
		t.Run(name, func(t *testing.T) {
			_, err := ToUseCaseRequest("u1", url.Values{name: {"desk-42"}})
			assert.Error(t, err)
		})
	}
}

func TestHandler_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &autoForward.Response{
		Selection: domain.Selection{
			OrganizationID: ptr.Ptr(orgID),
			LocationID:     ptr.Ptr(locationID),
		},
	}}
	rec := doRequest(NewHandler(uc, nopLogger{}), "u1", "organizationId="+orgID)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"locationId":"`+locationID+`"`)
	assert.Contains(t, body, `"spaceId":null`)
	assert.Contains(t, body, `"billingHalted":false`)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, orgID, ptr.Value(uc.lastReq.Selection.OrganizationID))
}

func TestHandler_BillingHalted(t *testing.T) {
	uc := &fakeUseCase{resp: &autoForward.Response{BillingHalted: true}}
	rec := doRequest(NewHandler(uc, nopLogger{}), "u1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"billingHalted":true`)
	assert.Contains(t, rec.Body.String(), `"organizationId":null`)
}

func TestHandler_BadQuery(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(NewHandler(uc, nopLogger{}), "u1", "deskId=42")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.calls)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: autoForward.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "internal", err: autoForward.ErrInternal, want: http.StatusInternalServerError},
		{name: "unexpected", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), "u1", "")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_MissingUser(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(NewHandler(uc, nopLogger{}), "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, uc.calls)
}
