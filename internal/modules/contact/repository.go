package contact

import "context"

// Repository stores contact submissions and newsletter signups.
type Repository interface {
	SaveSubmission(ctx context.Context, s *Submission) error
	SaveSignup(ctx context.Context, email string) (created bool, err error)
}
