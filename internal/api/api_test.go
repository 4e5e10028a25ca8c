package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/glitzme/internal/db"
	"github.com/erazemk/glitzme/internal/model"
	"github.com/erazemk/glitzme/internal/store"
)

func setupTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	st := store.New(db.NewTestDB(t))
	seeded, err := st.Seed(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)

	server := httptest.NewServer(NewRouter(st))
	t.Cleanup(server.Close)
	return server, st
}

func getJSON(t *testing.T, url string, target any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if target != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
	}
	return resp
}

func TestRentalsEndpoint(t *testing.T) {
	server, st := setupTestServer(t)
	ctx := context.Background()

	var all []model.RentalItem
	resp := getJSON(t, server.URL+"/api/rentals", &all)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.Len(t, all, 9)
	assert.Equal(t, "Tables & Chairs", all[0].Name)

	// Hidden items drop out of the public list.
	_, err := st.UpdateRental(ctx, all[0].ID, model.RentalPatch{IsActive: model.Ptr(false)})
	require.NoError(t, err)

	var active []model.RentalItem
	getJSON(t, server.URL+"/api/rentals", &active)
	assert.Len(t, active, 8)

	var furniture []model.RentalItem
	getJSON(t, server.URL+"/api/rentals?category=furniture", &furniture)
	require.Len(t, furniture, 1)
	assert.Equal(t, "Queens/Throne Chair", furniture[0].Name)

	var none []model.RentalItem
	getJSON(t, server.URL+"/api/rentals?category=spaceships", &none)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCatalogEndpoints(t *testing.T) {
	server, _ := setupTestServer(t)

	var packages []model.PackageItem
	getJSON(t, server.URL+"/api/packages", &packages)
	assert.Len(t, packages, 12)

	var team []model.TeamMember
	getJSON(t, server.URL+"/api/team", &team)
	require.Len(t, team, 3)
	assert.Equal(t, "Ravin Herring", team[0].Name)

	var carousel []model.CarouselItem
	getJSON(t, server.URL+"/api/carousel", &carousel)
	require.Len(t, carousel, 2)
	assert.Equal(t, "GlitzME Rentals Main Logo", carousel[0].Title)
}

func TestSettingsEndpoints(t *testing.T) {
	server, _ := setupTestServer(t)

	var all map[string]string
	getJSON(t, server.URL+"/api/settings", &all)
	assert.Len(t, all, 11)
	assert.Equal(t, "GlitzME Rentals", all["business_name"])

	var one settingResponse
	resp := getJSON(t, server.URL+"/api/settings/phone_primary", &one)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, settingResponse{Key: "phone_primary", Value: "(702) 344-4717"}, one)

	var errBody map[string]string
	resp = getJSON(t, server.URL+"/api/settings/nope", &errBody)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "setting not found", errBody["error"])
}

func TestHealthEndpoint(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	rec := httptest.NewRecorder()
	Health(func() time.Time { return fixed })(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var body healthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, ServiceName, body.Service)
	assert.True(t, fixed.Equal(body.Timestamp))
}

func TestStorageFailureReturns500(t *testing.T) {
	database := db.NewTestDB(t)
	server := httptest.NewServer(NewRouter(store.New(database)))
	t.Cleanup(server.Close)
	database.Close()

	for _, path := range []string{"/api/rentals", "/api/packages", "/api/team", "/api/carousel", "/api/settings", "/api/settings/email"} {
		var body map[string]string
		resp := getJSON(t, server.URL+path, &body)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode, path)
		assert.NotEmpty(t, body["error"], path)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, err := http.Post(server.URL+"/api/rentals", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
