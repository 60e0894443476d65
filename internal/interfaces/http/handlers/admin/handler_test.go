package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	permissionApp "github.com/flyoffice/directory/internal/application/permission"
	"github.com/flyoffice/directory/internal/interfaces/http/handlers/testutil"
)

func newHandler() *Handler {
	return NewHandler(permissionApp.NewService(nil, nil, testutil.NewMockLogger()))
}

func TestHandler_GetNavigation_ByRole(t *testing.T) {
	tests := []struct {
		role string
		want []string
	}{
		{"SUPERADMIN", []string{"offices", "blogs", "approvals", "users"}},
		{"EDITOR", []string{"offices", "blogs"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodGet, "/admin/navigation", nil)
			if tt.role != "" {
				testutil.SetRoleContext(c, tt.role, "staff_1")
			}
			newHandler().GetNavigation(c)

			require.Equal(t, http.StatusOK, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			var sections []permissionApp.Section
			require.NoError(t, json.Unmarshal(resp.Data, &sections))

			got := make([]string, 0, len(sections))
			for _, s := range sections {
				got = append(got, s.Resource)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandler_GetCapabilities(t *testing.T) {
	c, w := testutil.NewTestContext(http.MethodGet, "/admin/capabilities", nil)
	testutil.SetRoleContext(c, "MANAGER", "staff_1")
	newHandler().GetCapabilities(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data capabilitiesResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "MANAGER", data.Role)
	assert.True(t, data.Capabilities.Approvals)
	assert.False(t, data.Capabilities.Users)
}

func TestHandler_ListRoles(t *testing.T) {
	c, w := testutil.NewTestContext(http.MethodGet, "/admin/roles", nil)
	newHandler().ListRoles(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var rows []permissionApp.RoleCapabilities
	require.NoError(t, json.Unmarshal(resp.Data, &rows))
	assert.Len(t, rows, 3)
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

func TestHealthHandler(t *testing.T) {
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	NewHealthHandler(fakePinger{}, testutil.NewMockLogger()).HealthCheck(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/health", nil)
	NewHealthHandler(fakePinger{err: errors.New("connection refused")}, testutil.NewMockLogger()).HealthCheck(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
