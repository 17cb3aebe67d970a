package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/devfolio-app/portfolio-backend/internal/contact/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Length caps count runes, not bytes, so multibyte names are not
// penalized for their encoding.
const (
	maxNameLen    = 100
	maxSubjectLen = 150
	maxMessageLen = 5000
)

// Validate checks a submission and returns a field→message map. An empty
// map means the submission is valid. Honeypot content is not a validation
// concern; callers short-circuit on it before validating.
func Validate(sub domain.Submission) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(sub.Name)
	if name == "" {
		errs["name"] = "Name is required."
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs["name"] = "Name is too long."
	}

	email := strings.TrimSpace(sub.Email)
	if email == "" {
		errs["email"] = "Email is required."
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "Enter a valid email address."
	}

	subject := strings.TrimSpace(sub.Subject)
	if subject == "" {
		errs["subject"] = "Subject is required."
	} else if utf8.RuneCountInString(subject) > maxSubjectLen {
		errs["subject"] = "Subject is too long."
	}

	message := strings.TrimSpace(sub.Message)
	if message == "" {
		errs["message"] = "Message is required."
	} else if utf8.RuneCountInString(message) > maxMessageLen {
		errs["message"] = "Message is too long."
	}

	return errs
}
