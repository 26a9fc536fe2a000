package data

import (
	"strings"
	"testing"
	"time"

	"moviecollection/internal/validator"
)

func validInput() *MovieInput {
	return &MovieInput{
		Title:       "Arrival",
		Description: "First contact",
		Rating:      RatingPG13,
		ReleaseDate: time.Now().UTC().Add(-7 * 24 * time.Hour),
	}
}

func checkInvalid(t *testing.T, input *MovieInput, field, message string) {
	t.Helper()

	v := validator.New()
	ValidateMovieInput(v, input)

	if v.Valid() {
		t.Fatalf("expected validation to fail for field %s", field)
	}

	for _, got := range v.Errors[field] {
		if strings.Contains(got, message) {
			return
		}
	}
	t.Errorf("Errors[%q] = %v, want a message containing %q", field, v.Errors[field], message)
}

func TestValidateMovieInputPasses(t *testing.T) {
	v := validator.New()
	ValidateMovieInput(v, validInput())

	if !v.Valid() {
		t.Errorf("expected valid input, got errors %v", v.Errors)
	}
}

func TestValidateMovieInputTitleRequired(t *testing.T) {
	input := validInput()
	input.Title = ""

	checkInvalid(t, input, "Title", "must be provided")
}

func TestValidateMovieInputDescriptionRequired(t *testing.T) {
	input := validInput()
	input.Description = ""

	checkInvalid(t, input, "Description", "must be provided")
}

func TestValidateMovieInputDescriptionLength(t *testing.T) {
	input := validInput()
	input.Description = strings.Repeat("x", 250)

	v := validator.New()
	ValidateMovieInput(v, input)
	if !v.Valid() {
		t.Errorf("250 characters should pass, got errors %v", v.Errors)
	}

	input.Description = strings.Repeat("x", 251)
	checkInvalid(t, input, "Description", "must not be more than 250 characters long")
}

func TestValidateMovieInputDescriptionEqualsTitle(t *testing.T) {
	input := validInput()
	input.Description = input.Title

	checkInvalid(t, input, "Description", "must be different from Title")
}

func TestValidateMovieInputRatingUnset(t *testing.T) {
	input := validInput()
	input.Rating = RatingUnknown

	checkInvalid(t, input, "Rating", "must be provided")
}

func TestValidateMovieInputRatingUnrecognized(t *testing.T) {
	input := validInput()
	input.Rating = Rating(42)

	checkInvalid(t, input, "Rating", "must be a recognized rating")
}

func TestValidateMovieInputReleaseDateRequired(t *testing.T) {
	input := validInput()
	input.ReleaseDate = time.Time{}

	checkInvalid(t, input, "ReleaseDate", "must be provided")
}

func TestValidateMovieInputReleaseDateBoundary(t *testing.T) {
	input := validInput()
	input.ReleaseDate = time.Now().UTC()

	v := validator.New()
	ValidateMovieInput(v, input)
	if !v.Valid() {
		t.Errorf("release date equal to now should pass, got errors %v", v.Errors)
	}

	input.ReleaseDate = time.Now().UTC().Add(time.Minute)
	checkInvalid(t, input, "ReleaseDate", "must not be in the future")
}

func TestValidateMovieInputReportsAllViolations(t *testing.T) {
	v := validator.New()
	ValidateMovieInput(v, &MovieInput{})

	for _, field := range []string{"Title", "Description", "Rating", "ReleaseDate"} {
		if len(v.Errors[field]) == 0 {
			t.Errorf("expected a violation for %s, got none", field)
		}
	}
}
