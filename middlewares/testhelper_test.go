package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/langneg/internal"
)

// routes adapts a plain function to the internal.Handler interface.
type routes func(r internal.Router)

func (fn routes) Routes(r internal.Router) { fn(r) }

// handle registers h at GET pattern behind the given options and serves one request.
func handle(t *testing.T, req *http.Request, pattern string, h internal.HandlerFunc, opts ...internal.Option) *httptest.ResponseRecorder {
	t.Helper()

	opts = append(opts, internal.WithHandlers(routes(func(r internal.Router) {
		r.GET(pattern, h)
	})))
	app := internal.New(opts...)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func get(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}
