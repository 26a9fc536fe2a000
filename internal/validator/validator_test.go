package validator

import "testing"

func TestValidatorStartsValid(t *testing.T) {
	v := New()

	if !v.Valid() {
		t.Error("new validator should be valid")
	}
}

func TestCheckRecordsOnlyFailures(t *testing.T) {
	v := New()

	v.Check(true, "Title", "must be provided")
	if !v.Valid() {
		t.Error("passing check should not record an error")
	}

	v.Check(false, "Title", "must be provided")
	if v.Valid() {
		t.Error("failing check should record an error")
	}
	if got := v.Errors["Title"]; len(got) != 1 || got[0] != "must be provided" {
		t.Errorf("Errors[%q] = %v, want one entry", "Title", got)
	}
}

func TestAddErrorAppendsToSameKey(t *testing.T) {
	v := New()

	v.AddError("Description", "must be provided")
	v.AddError("Description", "must be different from Title")

	got := v.Errors["Description"]
	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	if got[0] != "must be provided" || got[1] != "must be different from Title" {
		t.Errorf("messages out of order: %v", got)
	}
}
