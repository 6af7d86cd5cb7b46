package membershipservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_GetMemberships(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/users/u1/memberships":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"m1","userId":"u1","organizationId":"org1","role":"member"}]`))
		case "/internal/users/u2/memberships":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	memberships, err := client.GetMemberships(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, memberships, 1)
	assert.Equal(t, "org1", memberships[0].OrganizationID)

	memberships, err = client.GetMemberships(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, memberships)

	_, err = client.GetMemberships(context.Background(), "u3")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetMembershipInOrganization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"m1","userId":"u1","organizationId":"org1"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	m, err := client.GetMembershipInOrganization(context.Background(), "u1", "org1")
	require.NoError(t, err)
	assert.Equal(t, "m1", m.ID)

	_, err = client.GetMembershipInOrganization(context.Background(), "u1", "org2")
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}
