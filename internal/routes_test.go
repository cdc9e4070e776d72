package internal

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cpd/internal/controllers"
	"cpd/internal/services"
	"cpd/internal/storage"
	"cpd/internal/structures"
	"cpd/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeTestScheduler struct {
	started, stopped bool
}

func (s *routeTestScheduler) Init() { s.started = true }
func (s *routeTestScheduler) Stop() { s.stopped = true }

func newTestApp(t *testing.T) *App {
	t.Helper()
	conf := &structures.Config{WebServer: structures.Server{Host: "127.0.0.1", Port: 0}}
	logger := &testutil.MockLogger{}
	metrics := testutil.NewMockMetrics()
	store := storage.NewMemoryStore()

	library := services.NewLibraryService(conf, store, logger, metrics)
	notifications := services.NewNotificationService(conf, store, logger, metrics)
	revenue := services.NewRevenueService(conf, store, logger, metrics)
	playback := services.NewPlaybackService(library, revenue, logger, metrics)
	publication := services.NewPublicationService(library, notifications, playback, services.NewReferenceResolver(conf), logger, metrics)

	router := InitRoutes(
		controllers.NewApiController(logger, library, publication, playback, testutil.NewMockCache()),
		controllers.NewNotificationController(logger, notifications),
		controllers.NewRevenueController(revenue),
	)
	return NewApp(controllers.NewHealthController(logger, library, notifications, revenue), &routeTestScheduler{}, conf, logger, router, metrics)
}

func do(app *App, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	app.WebServer.Handler.ServeHTTP(rr, req)
	return rr
}

func TestInitRoutes_RegistersRoutes(t *testing.T) {
	router := InitRoutes(&controllers.ApiController{}, &controllers.NotificationController{}, &controllers.RevenueController{})
	urls := make([]string, 0)
	for _, r := range router.GetRoutes() {
		urls = append(urls, r.Url)
	}
	assert.Equal(t, []string{
		"/library",
		"/library/view",
		"/notifications",
		"/notifications/read",
		"/notifications/read-all",
		"/revenue/stats",
		"/revenue/records",
	}, urls)
}

func TestApp_PublishViewStatsFlow(t *testing.T) {
	app := newTestApp(t)

	rr := do(app, http.MethodPost, "/library", `{"id":"v1","title":"Intro","description":"First lesson","instructorId":"i1","instructorName":"Ada"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(app, http.MethodPost, "/library/view?id=v1", "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(app, http.MethodGet, "/library", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"viewCount":1`)

	rr = do(app, http.MethodGet, "/revenue/stats?i=i1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"totalViews":1`)

	rr = do(app, http.MethodGet, "/notifications?s=admin", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"priority":"medium"`)

	rr = do(app, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"library_items":1`)
}

func TestApp_MethodNotAllowed(t *testing.T) {
	app := newTestApp(t)
	rr := do(app, http.MethodPut, "/library", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "DELETE, GET, POST", rr.Header().Get("Allow"))
}

func TestApp_UnknownPath(t *testing.T) {
	app := newTestApp(t)
	rr := do(app, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestApp_MetricsRouteOnlyWhenEnabled(t *testing.T) {
	app := newTestApp(t)
	rr := do(app, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
