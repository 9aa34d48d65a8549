package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httputil "github.com/soapboxsocial/tracker/pkg/http"
)

func TestJsonError(t *testing.T) {
	rr := httptest.NewRecorder()

	httputil.JsonError(rr, http.StatusBadRequest, httputil.ErrorCodeInvalidArgument, "distinctId is not a valid string")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rr.Code)
	}

	if rr.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("unexpected content type %s", rr.Header().Get("Content-Type"))
	}

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	err := json.NewDecoder(rr.Body).Decode(&body)
	if err != nil {
		t.Fatal(err)
	}

	if body.Code != httputil.ErrorCodeInvalidArgument {
		t.Fatalf("unexpected code %d", body.Code)
	}

	if body.Message != "distinctId is not a valid string" {
		t.Fatalf("unexpected message %s", body.Message)
	}
}

func TestJsonSuccess(t *testing.T) {
	rr := httptest.NewRecorder()

	httputil.JsonSuccess(rr)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rr.Code)
	}

	expected := "{\"success\":true}\n"
	if rr.Body.String() != expected {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}
