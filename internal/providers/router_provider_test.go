package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dummyHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	})
}

func serve(h http.Handler, method string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/test", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouterProvider_GetAddsRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler("ok"))

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/test", routes[0].Url)
}

func TestRouterProvider_MultipleRoutesKeepOrder(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/a", dummyHandler("ok"))
	rp.Post("/b", dummyHandler("ok"))
	rp.Get("/c", dummyHandler("ok"))

	routes := rp.GetRoutes()
	require.Len(t, routes, 3)
	assert.Equal(t, "/a", routes[0].Url)
	assert.Equal(t, "/b", routes[1].Url)
	assert.Equal(t, "/c", routes[2].Url)
}

func TestRouterProvider_MethodsShareOneRoute(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler("get"))
	rp.Post("/test", dummyHandler("post"))
	rp.Delete("/test", dummyHandler("delete"))

	routes := rp.GetRoutes()
	require.Len(t, routes, 1)
	h := routes[0].Handler

	assert.Equal(t, "get", serve(h, http.MethodGet).Body.String())
	assert.Equal(t, "post", serve(h, http.MethodPost).Body.String())
	assert.Equal(t, "delete", serve(h, http.MethodDelete).Body.String())
}

func TestRouterProvider_WrongMethod(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/test", dummyHandler("ok"))
	rp.Get("/test", dummyHandler("ok"))

	rr := serve(rp.GetRoutes()[0].Handler, http.MethodPut)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "GET, POST", rr.Header().Get("Allow"))
}

func TestRouterProvider_GetRouteRejectsPost(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/test", dummyHandler("ok"))

	rr := serve(rp.GetRoutes()[0].Handler, http.MethodPost)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
