package validator

// Validator accumulates validation failures keyed by field name.
// Every violated rule is recorded, not just the first one per field,
// so a single response can report all the problems with a payload.
type Validator struct {
	Errors map[string][]string
}

func New() *Validator {
	return &Validator{Errors: make(map[string][]string)}
}

// Valid reports whether no failures have been recorded.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError appends a message to the list for the given field key.
func (v *Validator) AddError(key, message string) {
	v.Errors[key] = append(v.Errors[key], message)
}

// Check records message against key when ok is false.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}
