package client

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// title ASP.NET-style servers attach to every validation problem; it carries
// no information beyond the field errors themselves
const defaultValidationTitle = "One or more validation errors occurred."

// FieldErrors maps canonical field keys to their messages.
type FieldErrors map[string][]string

// NormalizedErrors is the stable shape the UI layer consumes, regardless of
// what the server actually sent.
type NormalizedErrors struct {
	FieldErrors   FieldErrors
	GeneralErrors []string
	Status        int    // zero when the payload carried no numeric status
	Title         string // empty when the payload carried no title
}

// canonicalFieldKey reduces a server-reported field name to a stable client
// key: the last dot/bracket-delimited segment with its first letter
// lower-cased, so "updateMovie.ReleaseDate" and "movie[0].Rating" become
// "releaseDate" and "rating".
func canonicalFieldKey(key string) string {
	segments := strings.FieldsFunc(key, func(r rune) bool {
		return r == '.' || r == '[' || r == ']'
	})

	last := key
	if len(segments) > 0 {
		last = segments[len(segments)-1]
	}
	if last == "" {
		return key
	}

	first, size := utf8.DecodeRuneInString(last)

	return string(unicode.ToLower(first)) + last[size:]
}

// NormalizeProblemDetails converts a decoded server error payload of unknown
// shape into a NormalizedErrors value. It never fails: absent, malformed or
// null input yields an empty-but-valid result.
func NormalizeProblemDetails(input any) NormalizedErrors {
	out := NormalizedErrors{
		FieldErrors:   FieldErrors{},
		GeneralErrors: []string{},
	}

	payload, ok := input.(map[string]any)
	if !ok {
		return out
	}

	if status, ok := payload["status"].(float64); ok {
		out.Status = int(status)
	}
	if title, ok := payload["title"].(string); ok {
		out.Title = title
	}

	// validation errors dictionary: { field: [message, ...] }
	if rawErrors, ok := payload["errors"].(map[string]any); ok {
		// JSON object order is not observable through a Go map; walk the raw
		// keys in sorted order so merging into canonical keys is deterministic
		keys := make([]string, 0, len(rawErrors))
		for key := range rawErrors {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		for _, key := range keys {
			messages, ok := rawErrors[key].([]any)
			if !ok {
				continue
			}

			canonical := canonicalFieldKey(key)

			// entries for the same canonical key append rather than overwrite
			for _, message := range messages {
				if s, ok := message.(string); ok {
					out.FieldErrors[canonical] = append(out.FieldErrors[canonical], s)
				}
			}
		}
	}

	// collect human-friendly messages for non-validation problems, skipping
	// the generic validation title and exact duplicates
	var general []string
	if detail, ok := payload["detail"].(string); ok && strings.TrimSpace(detail) != "" {
		general = append(general, strings.TrimSpace(detail))
	}
	if title, ok := payload["title"].(string); ok && strings.TrimSpace(title) != "" && title != defaultValidationTitle {
		general = append(general, strings.TrimSpace(title))
	}

	for _, message := range general {
		if !slices.Contains(out.GeneralErrors, message) {
			out.GeneralErrors = append(out.GeneralErrors, message)
		}
	}

	return out
}

// FirstMessage returns the most specific message available: the first field
// error, then the first general error, then the payload title. The empty
// string means the payload offered nothing usable.
func (n NormalizedErrors) FirstMessage() string {
	if len(n.FieldErrors) > 0 {
		keys := make([]string, 0, len(n.FieldErrors))
		for key := range n.FieldErrors {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		for _, key := range keys {
			if len(n.FieldErrors[key]) > 0 {
				return n.FieldErrors[key][0]
			}
		}
	}

	if len(n.GeneralErrors) > 0 {
		return n.GeneralErrors[0]
	}

	return n.Title
}
