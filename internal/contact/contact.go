// Package contact extracts contact details from free-text appointment
// descriptions. Appointments are created by hand, so the description is
// unstructured: a phone number somewhere in the text and optionally a
// "Naam:" line with the customer's name.
package contact

import (
	"regexp"
	"strings"

	"afspraaksms/internal/models"
)

var (
	// Optional leading +, then digits possibly separated by
	// whitespace, first and last character a digit.
	phonePattern = regexp.MustCompile(`\+?\d[\d\s]{7,20}\d`)

	// The name runs until the first non-letter, non-space character,
	// so a newline ends it.
	namePattern = regexp.MustCompile(`Naam:\s*([A-Za-z ]+)`)

	whitespace = regexp.MustCompile(`\s+`)
)

// Parse extracts a phone number and name from an appointment
// description. A missing phone is reported as an empty string, never
// an error; the caller skips the appointment. The name, when found,
// is returned with a single leading space so templates can write
// "Beste{name}," uniformly.
func Parse(description string) models.ContactInfo {
	var info models.ContactInfo

	if m := phonePattern.FindString(description); m != "" {
		info.Phone = whitespace.ReplaceAllString(m, "")
	}

	if m := namePattern.FindStringSubmatch(description); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			info.Name = " " + name
		}
	}

	return info
}
