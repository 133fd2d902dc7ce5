package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrorCodeNotFound, "entry missing")
	if plain.Error() != "entry missing" {
		t.Fatalf("plain message = %q", plain.Error())
	}

	cause := stderrs.New("socket closed")
	wrapped := Wrap(cause, ErrorCodeUnavailable, "backend down")
	if wrapped.Error() != "backend down: socket closed" {
		t.Fatalf("wrapped message = %q", wrapped.Error())
	}
	if !stderrs.Is(wrapped, cause) {
		t.Fatal("wrapped error should match its cause via errors.Is")
	}
}

func TestCodeOfAndIsCode(t *testing.T) {
	err := RateLimitedf("upstream throttled")
	if CodeOf(err) != ErrorCodeTooManyRequests {
		t.Fatalf("CodeOf = %v", CodeOf(err))
	}
	if !IsCode(err, ErrorCodeTooManyRequests) {
		t.Fatal("IsCode should match")
	}
	if IsCode(err, ErrorCodeNotFound) {
		t.Fatal("IsCode mismatched code should be false")
	}
	if CodeOf(stderrs.New("foreign")) != ErrorCodeUnknown {
		t.Fatal("foreign errors default to Unknown")
	}
}

func TestCodeSurvivesWrapping(t *testing.T) {
	inner := RateLimitedf("429 from upstream")
	outer := Wrap(inner, ErrorCodeUnavailable, "generative call failed")

	// the outermost code wins
	if CodeOf(outer) != ErrorCodeUnavailable {
		t.Fatalf("CodeOf outer = %v", CodeOf(outer))
	}
	if Root(outer).Error() != "429 from upstream" {
		t.Fatalf("Root = %q", Root(outer).Error())
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeDuplicateKey, http.StatusConflict},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeDB, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatusCode(tc.code); got != tc.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", tc.code, got, tc.want)
		}
	}
}

func TestWireFrom(t *testing.T) {
	w := WireFrom(WithField(Newf(ErrorCodeValidation, "too short"), "text"))
	if w.Code != ErrorCodeValidation || w.Field != "text" || w.Message != "too short" {
		t.Fatalf("WireFrom = %+v", w)
	}

	w = WireFrom(stderrs.New("boom"))
	if w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("WireFrom foreign = %+v", w)
	}

	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom nil = %+v", w)
	}
}

func TestWithOp(t *testing.T) {
	err := WithOp(DBf("query failed"), "cache.get")
	e, ok := As(err)
	if !ok || e.Op() != "cache.get" {
		t.Fatalf("WithOp not applied: %+v", e)
	}

	foreign := stderrs.New("x")
	if WithOp(foreign, "op") != foreign {
		t.Fatal("WithOp should pass foreign errors through")
	}
}
