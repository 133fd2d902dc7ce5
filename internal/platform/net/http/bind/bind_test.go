package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "lingo/internal/platform/errors"
)

// shared payload for many tests
type payload struct {
	Text       string `json:"text" validate:"required,min=1"`
	TargetLang string `json:"target_lang" validate:"required,lang_code"`
}

func TestParseJSON_Success(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"hello","target_lang":"fr"}`))
	got, err := ParseJSON[payload](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "hello" || got.TargetLang != "fr" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_EmptyBody_Disallow(t *testing.T) {
	req := httptest.NewRequest("POST", "/", http.NoBody)
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_EmptyBody_SafeMethodTolerated(t *testing.T) {
	req := httptest.NewRequest("GET", "/", http.NoBody)
	got, err := ParseJSON[payload](req)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != (payload{}) {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestParseJSON_AllowEmptyBody_EOF_OK(t *testing.T) {
	type emptyOK struct {
		Note string `json:"note"`
	}
	opts := JSONOptions{AllowEmptyBody: true}
	req := httptest.NewRequest("POST", "/", http.NoBody)

	got, err := ParseJSON[emptyOK](req, opts)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != (emptyOK{}) {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{`))
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"hi","target_lang":"fr","nope":1}`))
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_TrailingData(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"hi","target_lang":"fr"}{"again":true}`))
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_ValidationFailure(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"","target_lang":"fr"}`))
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_LangCodeTag(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"hi","target_lang":"!!"}`))
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestIsLangCode(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"en", true},
		{"fr-CA", true},
		{"zh-Hant", true},
		{"spa", true},
		{"", false},
		{"e", false},
		{"english", false},
		{"en_US", false},
		{"fr-", false},
	}
	for _, tc := range cases {
		if got := IsLangCode(tc.in); got != tc.want {
			t.Fatalf("IsLangCode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFromContext_RoundTrip(t *testing.T) {
	mw := JSON[payload]()
	var seen *payload
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext[payload](r)
	}))
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"text":"hi","target_lang":"de"}`))
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen == nil || seen.TargetLang != "de" {
		t.Fatalf("payload not found on context: %+v", seen)
	}
}
