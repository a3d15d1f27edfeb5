package contact

import (
	"time"

	"github.com/google/uuid"
)

// Submission is one message sent through the contact form.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Signup is one newsletter subscription.
type Signup struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitRequest is the contact form payload.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
