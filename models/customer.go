package models

import (
	"regexp"
	"strings"
)

var (
	nonDigitRe = regexp.MustCompile(`\D`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// CustomerDetails is captured once per checkout flow and snapshotted into
// each placed order.
type CustomerDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// Validate checks field-level rules and returns one message per failing
// field, keyed by field name. An empty map means the details are valid.
func (d CustomerDetails) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}

	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if len(nonDigitRe.ReplaceAllString(d.Phone, "")) != 10 {
		errs["phone"] = "Phone number must be 10 digits"
	}

	if d.Email != "" && !emailRe.MatchString(d.Email) {
		errs["email"] = "Invalid email format"
	}

	return errs
}
