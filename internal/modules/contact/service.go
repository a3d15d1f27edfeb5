package contact

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNameRequired    = errors.New("contact: name is required")
	ErrEmailRequired   = errors.New("contact: email is required")
	ErrEmailInvalid    = errors.New("contact: email address is not valid")
	ErrMessageRequired = errors.New("contact: message is required")
)

// Service handles contact form submissions and newsletter signups.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Submission, error)
	Subscribe(ctx context.Context, email string) error
}

type service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Submission, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMessageRequired
	}

	sub := &Submission{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now(),
	}
	if err := s.repo.SaveSubmission(ctx, sub); err != nil {
		return nil, err
	}
	s.log.Info("contact form submitted",
		zap.String("id", sub.ID.String()),
		zap.String("subject", sub.Subject))
	return sub, nil
}

func (s *service) Subscribe(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	created, err := s.repo.SaveSignup(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	if created {
		s.log.Info("newsletter signup", zap.String("email", email))
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailInvalid
	}
	return nil
}
