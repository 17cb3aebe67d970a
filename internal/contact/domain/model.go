package domain

import "time"

// Submission is one contact-form message. Website is the hidden honeypot
// field: humans never fill it, bots do.
type Submission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Website    string    `json:"website,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

// UpstreamResult is the decoded reply from the delivery endpoint.
type UpstreamResult struct {
	OK          bool
	StatusCode  int
	Message     string
	FieldErrors map[string]string
}
