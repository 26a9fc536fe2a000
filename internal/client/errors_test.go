package client

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, body string) any {
	t.Helper()

	var payload any
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("bad test fixture %q: %v", body, err)
	}
	return payload
}

func TestCanonicalFieldKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"Title", "title"},
		{"ReleaseDate", "releaseDate"},
		{"updateMovie.ReleaseDate", "releaseDate"},
		{"movie[0].Rating", "rating"},
		{"movies[12]", "12"},
		{"already", "already"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := canonicalFieldKey(tt.key); got != tt.want {
			t.Errorf("canonicalFieldKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestNormalizeMapsValidationErrors(t *testing.T) {
	payload := decode(t, `{
		"title": "One or more validation errors occurred.",
		"status": 400,
		"errors": {
			"Title": ["The Title field is required."],
			"Description": ["The Description field is required."],
			"ReleaseDate": ["The ReleaseDate field is not a valid date."]
		}
	}`)

	n := NormalizeProblemDetails(payload)

	want := FieldErrors{
		"title":       {"The Title field is required."},
		"description": {"The Description field is required."},
		"releaseDate": {"The ReleaseDate field is not a valid date."},
	}
	if !reflect.DeepEqual(n.FieldErrors, want) {
		t.Errorf("FieldErrors = %v, want %v", n.FieldErrors, want)
	}

	if n.Status != 400 {
		t.Errorf("Status = %d, want 400", n.Status)
	}
	if n.Title != "One or more validation errors occurred." {
		t.Errorf("Title = %q, want passthrough", n.Title)
	}
}

func TestNormalizeHandlesNestedKeys(t *testing.T) {
	payload := decode(t, `{"errors": {"movie[0].Rating": ["y"]}}`)

	n := NormalizeProblemDetails(payload)

	if got := n.FieldErrors["rating"]; len(got) != 1 || got[0] != "y" {
		t.Errorf("FieldErrors[rating] = %v, want [y]", got)
	}
}

func TestNormalizeMergesRawKeysIntoOneCanonicalKey(t *testing.T) {
	payload := decode(t, `{"errors": {
		"Rating": ["a"],
		"updateMovie.Rating": ["b"]
	}}`)

	n := NormalizeProblemDetails(payload)

	got := n.FieldErrors["rating"]
	if len(got) != 2 {
		t.Fatalf("FieldErrors[rating] = %v, want two entries", got)
	}
}

func TestNormalizeSuppressesGenericValidationTitle(t *testing.T) {
	payload := decode(t, `{
		"title": "One or more validation errors occurred.",
		"status": 400,
		"errors": {"Title": ["x"]}
	}`)

	n := NormalizeProblemDetails(payload)

	if len(n.GeneralErrors) != 0 {
		t.Errorf("GeneralErrors = %v, want empty", n.GeneralErrors)
	}
}

func TestNormalizeCollectsDetailAndTitle(t *testing.T) {
	payload := decode(t, `{"detail": "Oops", "title": "An error occurred.", "status": 500}`)

	n := NormalizeProblemDetails(payload)

	want := []string{"Oops", "An error occurred."}
	if !reflect.DeepEqual(n.GeneralErrors, want) {
		t.Errorf("GeneralErrors = %v, want %v", n.GeneralErrors, want)
	}
	if n.Status != 500 {
		t.Errorf("Status = %d, want 500", n.Status)
	}
}

func TestNormalizeDeduplicatesGeneralErrors(t *testing.T) {
	payload := decode(t, `{"detail": "Oops", "title": "Oops"}`)

	n := NormalizeProblemDetails(payload)

	if len(n.GeneralErrors) != 1 || n.GeneralErrors[0] != "Oops" {
		t.Errorf("GeneralErrors = %v, want [Oops]", n.GeneralErrors)
	}
}

func TestNormalizeNeverFails(t *testing.T) {
	for _, input := range []any{nil, decode(t, `{}`), decode(t, `null`), decode(t, `[1,2]`), decode(t, `"oops"`), decode(t, `{"errors": "nope", "status": "500", "title": 7}`)} {
		n := NormalizeProblemDetails(input)

		if n.FieldErrors == nil || len(n.FieldErrors) != 0 {
			t.Errorf("input %v: FieldErrors = %v, want empty map", input, n.FieldErrors)
		}
		if n.GeneralErrors == nil || len(n.GeneralErrors) != 0 {
			t.Errorf("input %v: GeneralErrors = %v, want empty slice", input, n.GeneralErrors)
		}
		if n.Status != 0 || n.Title != "" {
			t.Errorf("input %v: unexpected passthrough %d %q", input, n.Status, n.Title)
		}
	}
}

func TestFirstMessagePreference(t *testing.T) {
	n := NormalizedErrors{
		FieldErrors:   FieldErrors{"title": {"field message"}},
		GeneralErrors: []string{"general message"},
		Title:         "a title",
	}
	if got := n.FirstMessage(); got != "field message" {
		t.Errorf("got %q, want field message first", got)
	}

	n.FieldErrors = FieldErrors{}
	if got := n.FirstMessage(); got != "general message" {
		t.Errorf("got %q, want general message next", got)
	}

	n.GeneralErrors = nil
	if got := n.FirstMessage(); got != "a title" {
		t.Errorf("got %q, want title last", got)
	}
}
