// Package model defines the records each service persists and the inbound
// payloads it accepts. Payload fields are pointers so a missing field can be
// told apart from a zero value; every declared field is required and
// validation fails closed with per-field messages.
package model

// ValidationErrors maps a field name to its error messages, serialized
// directly as the 400 response body.
type ValidationErrors map[string][]string

// MissingField is the message reported for a required field absent from the
// request body.
const MissingField = "Missing data for required field."

func (v ValidationErrors) add(field, msg string) {
	v[field] = append(v[field], msg)
}
