package superadmin

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexylomedia/superadmin-api/internal/catalog"
	"github.com/nexylomedia/superadmin-api/internal/domain"
)

var fixedNow = time.Date(2025, 11, 20, 15, 30, 0, 0, time.UTC)

func newTestHandler() *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(logger, catalog.New(func() time.Time { return fixedNow }))
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGetTenant_EchoesID(t *testing.T) {
	routes := newTestHandler().Routes()

	tests := map[string]string{
		"tn-001":               "tn-001",
		"tenant-without-match": "tenant-without-match",
		"UPPER_case.42":        "UPPER_case.42",
		"%E2%9C%93":            "✓",
		"%e2%9c%93":            "✓",
		"a%2Fb":                "a/b",
	}

	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			rec := get(t, routes, "/tenants/"+raw)
			require.Equal(t, http.StatusOK, rec.Code)

			var detail domain.TenantDetail
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
			assert.Equal(t, want, detail.ID)
		})
	}
}

func TestGetTenant_KnownAndPlaceholderNames(t *testing.T) {
	routes := newTestHandler().Routes()

	var known, unknown domain.TenantDetail
	require.NoError(t, json.NewDecoder(get(t, routes, "/tenants/tn-001").Body).Decode(&known))
	require.NoError(t, json.NewDecoder(get(t, routes, "/tenants/zzz").Body).Decode(&unknown))

	assert.Equal(t, "Nexylomedia HQ", known.Name)
	assert.Equal(t, "Sample Tenant", unknown.Name)
}

func TestGetPlan(t *testing.T) {
	routes := newTestHandler().Routes()

	rec := get(t, routes, "/plans/growth")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp PlanResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, float64(149), resp.Plan.Price)

	rec = get(t, routes, "/plans/platinum")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"plan not found"}`, rec.Body.String())
}

type failingSource struct {
	Source
}

func (failingSource) Plan(string) (domain.Plan, error) {
	return domain.Plan{}, errors.New("catalog unavailable")
}

func TestGetPlan_UnexpectedError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(logger, failingSource{Source: catalog.New(nil)})

	rec := get(t, h.Routes(), "/plans/growth")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestFeatureFlags_Shape(t *testing.T) {
	rec := get(t, newTestHandler().Routes(), "/feature-flags")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp FeatureFlagsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Contains(t, resp.Flags, "seo_autopilot")
	assert.Contains(t, resp.Flags["seo_autopilot"].TenantsEnabled, "tn-001")
	assert.JSONEq(t, `[]`, mustMarshal(t, resp.Flags["campaign_management"].TenantsEnabled))
}

func TestAuditLogs_OptionalFieldsOmitted(t *testing.T) {
	rec := get(t, newTestHandler().Routes(), "/audit-logs")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw struct {
		Logs []map[string]any `json:"logs"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
	require.NotEmpty(t, raw.Logs)

	last := raw.Logs[len(raw.Logs)-1]
	assert.NotContains(t, last, "tenant")
	assert.NotContains(t, last, "metadata")
}

func TestDashboard_KPIValuesKeepType(t *testing.T) {
	rec := get(t, newTestHandler().Routes(), "/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var raw struct {
		KPIs []struct {
			Label string `json:"label"`
			Value any    `json:"value"`
		} `json:"kpis"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))

	values := map[string]any{}
	for _, k := range raw.KPIs {
		values[k.Label] = k.Value
	}
	assert.Equal(t, float64(28), values["Total tenants"])
	assert.Equal(t, "68k", values["API usage (24h)"])
}

func mustMarshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
