package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httputil "github.com/soapboxsocial/tracker/pkg/http"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.JsonSuccess(w)
	})

	r, err := http.NewRequest("POST", "/track", nil)
	if err != nil {
		t.Fatal(err)
	}

	r.Header.Set("Origin", "https://example.com")

	rr := httptest.NewRecorder()
	httputil.CORS(next).ServeHTTP(rr, r)

	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("unexpected allow origin %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
}
