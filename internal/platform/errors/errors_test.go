package errors

import (
	"net/http"
	"testing"
)

func TestHTTPStatusCodeMapping(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeValidation:   http.StatusBadRequest,
		ErrorCodeNotFound:     http.StatusNotFound,
		ErrorCodeDuplicateKey: http.StatusConflict,
		ErrorCodeUnknown:      http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatusCode(code); got != want {
			t.Fatalf("code %d -> %d, want %d", code, got, want)
		}
	}
}

func TestWithFieldSurvivesWrapping(t *testing.T) {
	err := WithField(Validationf("start is after end"), "dateWindow")
	e, ok := As(err)
	if !ok {
		t.Fatalf("not a platform error: %v", err)
	}
	if e.Field() != "dateWindow" {
		t.Fatalf("field = %q", e.Field())
	}
	if !IsCode(err, ErrorCodeValidation) {
		t.Fatalf("code = %v", CodeOf(err))
	}
}

func TestCodeOf_PlainError(t *testing.T) {
	if got := CodeOf(New(ErrorCodeDB, "boom")); got != ErrorCodeDB {
		t.Fatalf("code = %v", got)
	}
}
