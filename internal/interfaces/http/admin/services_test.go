package admin

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/FatemeGhalandari/ontario-service-finder/internal/admin/application"
	admindomain "github.com/FatemeGhalandari/ontario-service-finder/internal/admin/domain"
	publicdomain "github.com/FatemeGhalandari/ontario-service-finder/internal/public/domain"
)

type fakeServiceService struct {
	created    *publicdomain.Service
	createErr  error
	lastCreate adminapp.CreateServiceCommand
	updated    *publicdomain.Service
	updateErr  error
	lastUpdate adminapp.UpdateServiceCommand
	lastID     int64
	deleteErr  error
}

func (f *fakeServiceService) Create(_ context.Context, cmd adminapp.CreateServiceCommand) (*publicdomain.Service, error) {
	f.lastCreate = cmd
	return f.created, f.createErr
}

func (f *fakeServiceService) Update(_ context.Context, id int64, cmd adminapp.UpdateServiceCommand) (*publicdomain.Service, error) {
	f.lastID = id
	f.lastUpdate = cmd
	return f.updated, f.updateErr
}

func (f *fakeServiceService) Delete(_ context.Context, id int64) error {
	f.lastID = id
	return f.deleteErr
}

type fakeStatsService struct {
	overview *admindomain.StatsOverview
	err      error
}

func (f *fakeStatsService) Overview(context.Context) (*admindomain.StatsOverview, error) {
	return f.overview, f.err
}

func passthrough(next http.Handler) http.Handler { return next }

func newTestRouter(services adminapp.ServiceService, stats adminapp.StatsService) http.Handler {
	handler := NewHandler(Config{
		Logger:   log.New(io.Discard, "", 0),
		Services: services,
		Stats:    stats,
	})
	router := chi.NewRouter()
	handler.Register(router, passthrough, passthrough)
	return router
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func createdService() *publicdomain.Service {
	category := "Health"
	return &publicdomain.Service{
		ID:        11,
		Name:      "Downtown Community Health Centre",
		Address:   "123 Queen St W",
		City:      "Toronto",
		Category:  &category,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestServiceCreate(t *testing.T) {
	services := &fakeServiceService{created: createdService()}
	router := newTestRouter(services, &fakeStatsService{})

	body := `{
		"name": "  Downtown Community Health Centre  ",
		"address": "123 Queen St W",
		"city": "Toronto",
		"category": "Health",
		"phone": "",
		"latitude": "43.65107",
		"longitude": -79.347015
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/services", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "Downtown Community Health Centre", services.lastCreate.Name)
	require.NotNil(t, services.lastCreate.Category)
	require.Equal(t, "Health", *services.lastCreate.Category)
	// empty string optional normalizes to null
	require.Nil(t, services.lastCreate.Phone)
	require.NotNil(t, services.lastCreate.Latitude)
	require.InDelta(t, 43.65107, *services.lastCreate.Latitude, 1e-9)
	require.NotNil(t, services.lastCreate.Longitude)

	var created publicdomain.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, int64(11), created.ID)
}

func TestServiceCreateValidation(t *testing.T) {
	services := &fakeServiceService{}
	router := newTestRouter(services, &fakeStatsService{})

	body := `{
		"name": "A",
		"address": "abc",
		"city": "Toronto",
		"latitude": 91,
		"longitude": "east"
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/services", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Path    string `json:"path"`
			Message string `json:"message"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Validation failed", resp.Error)

	messages := make(map[string]string)
	for _, detail := range resp.Details {
		messages[detail.Path] = detail.Message
	}
	require.Equal(t, "Name must be at least 2 characters", messages["name"])
	require.Equal(t, "Address must be at least 5 characters", messages["address"])
	require.Equal(t, "Latitude must be between -90 and 90", messages["latitude"])
	require.Equal(t, "Longitude must be a number", messages["longitude"])
	require.NotContains(t, messages, "city")
}

func TestServiceCreateInvalidJSON(t *testing.T) {
	router := newTestRouter(&fakeServiceService{}, &fakeStatsService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPost, "/services", `{"name": `))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestServiceUpdatePartialSemantics(t *testing.T) {
	services := &fakeServiceService{updated: createdService()}
	router := newTestRouter(services, &fakeStatsService{})

	body := `{"name": "Renamed Centre", "phone": null, "latitude": null}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPut, "/services/11", body))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(11), services.lastID)

	cmd := services.lastUpdate
	require.True(t, cmd.Name.Set)
	require.NotNil(t, cmd.Name.Value)
	require.Equal(t, "Renamed Centre", *cmd.Name.Value)
	// null on an optional field clears it
	require.True(t, cmd.Phone.Set)
	require.Nil(t, cmd.Phone.Value)
	require.True(t, cmd.Latitude.Set)
	require.Nil(t, cmd.Latitude.Value)
	// untouched keys stay untouched
	require.False(t, cmd.Address.Set)
	require.False(t, cmd.City.Set)
	require.False(t, cmd.Website.Set)
	require.False(t, cmd.Longitude.Set)
}

func TestServiceUpdateRejectsNullRequiredField(t *testing.T) {
	services := &fakeServiceService{}
	router := newTestRouter(services, &fakeStatsService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPut, "/services/11", `{"city": null}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "City cannot be null")
}

func TestServiceUpdateNotFound(t *testing.T) {
	services := &fakeServiceService{updateErr: mongo.ErrNoDocuments}
	router := newTestRouter(services, &fakeStatsService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPut, "/services/999", `{"name": "Whatever Centre"}`))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Service not found")
}

func TestServiceUpdateInvalidID(t *testing.T) {
	router := newTestRouter(&fakeServiceService{}, &fakeStatsService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(http.MethodPut, "/services/abc", `{}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid service id")
}

func TestServiceDelete(t *testing.T) {
	services := &fakeServiceService{}
	router := newTestRouter(services, &fakeStatsService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/services/4", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, int64(4), services.lastID)
	require.Empty(t, rec.Body.String())
}

func TestServiceDeleteNotFound(t *testing.T) {
	services := &fakeServiceService{deleteErr: mongo.ErrNoDocuments}
	router := newTestRouter(services, &fakeStatsService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/services/999", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Service not found")
}

func TestStatsOverview(t *testing.T) {
	stats := &fakeStatsService{overview: &admindomain.StatsOverview{
		TotalServices: 10,
		ByCity:        map[string]int64{"Toronto": 5, "Hamilton": 1},
		ByCategory:    map[string]int64{"Health": 1, admindomain.UncategorizedLabel: 2},
	}}
	router := newTestRouter(&fakeServiceService{}, stats)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body statsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, int64(10), body.TotalServices)
	require.Equal(t, int64(5), body.ByCity["Toronto"])
	require.Equal(t, int64(2), body.ByCategory["Uncategorized"])
}

func TestStatsFailure(t *testing.T) {
	stats := &fakeStatsService{err: context.DeadlineExceeded}
	router := newTestRouter(&fakeServiceService{}, stats)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Failed to fetch stats")
}
