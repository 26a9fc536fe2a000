package data

import (
	"errors"
	"strconv"
)

var ErrInvalidRatingFormat = errors.New("invalid rating format")

// Rating is the MPAA-style classification of a movie. The zero value is
// RatingUnknown, which is what an absent rating decodes to; writes reject it
// during validation.
type Rating int32

const (
	RatingUnknown Rating = iota
	RatingG
	RatingPG
	RatingPG13
	RatingR
	RatingNC17
	RatingX
)

var ratingNames = map[Rating]string{
	RatingUnknown: "Unknown",
	RatingG:       "G",
	RatingPG:      "PG",
	RatingPG13:    "PG13",
	RatingR:       "R",
	RatingNC17:    "NC17",
	RatingX:       "X",
}

var ratingValues = map[string]Rating{
	"Unknown": RatingUnknown,
	"G":       RatingG,
	"PG":      RatingPG,
	"PG13":    RatingPG13,
	"R":       RatingR,
	"NC17":    RatingNC17,
	"X":       RatingX,

	// display aliases accepted on input, never emitted
	"N/R":   RatingUnknown,
	"PG-13": RatingPG13,
	"NC-17": RatingNC17,
}

// IsValid reports whether r is a recognized member of the enumeration,
// including the Unknown sentinel.
func (r Rating) IsValid() bool {
	_, ok := ratingNames[r]
	return ok
}

func (r Rating) String() string {
	if name, ok := ratingNames[r]; ok {
		return name
	}
	return "Unknown"
}

// DisplayName returns the hyphenated form used in UIs, e.g. "PG-13".
func (r Rating) DisplayName() string {
	switch r {
	case RatingPG13:
		return "PG-13"
	case RatingNC17:
		return "NC-17"
	case RatingUnknown:
		return "N/R"
	default:
		return r.String()
	}
}

// MarshalJSON satisfies json.Marshaler so ratings travel as their symbolic
// name rather than a number.
func (r Rating) MarshalJSON() ([]byte, error) {
	name, ok := ratingNames[r]
	if !ok {
		return nil, ErrInvalidRatingFormat
	}

	return []byte(strconv.Quote(name)), nil
}

// UnmarshalJSON satisfies json.Unmarshaler. A value that is not a quoted,
// recognized rating name yields ErrInvalidRatingFormat, which the HTTP
// boundary turns into a plain 400.
func (r *Rating) UnmarshalJSON(jsonValue []byte) error {
	name, err := strconv.Unquote(string(jsonValue))
	if err != nil {
		return ErrInvalidRatingFormat
	}

	rating, ok := ratingValues[name]
	if !ok {
		return ErrInvalidRatingFormat
	}

	*r = rating

	return nil
}
