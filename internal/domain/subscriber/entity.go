package subscriber

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmailTooLong = errors.New("email is too long (max 254 characters)")
)

const MaxEmailLength = 254

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is normalized to lower case so uniqueness is case-insensitive.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > MaxEmailLength {
		return Email{}, ErrEmailTooLong
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) String() string {
	return e.value
}

type Subscriber struct {
	id        uuid.UUID
	email     Email
	createdAt time.Time
}

func NewSubscriber(email Email, now time.Time) *Subscriber {
	return &Subscriber{
		id:        uuid.New(),
		email:     email,
		createdAt: now,
	}
}

func ReconstructSubscriber(id uuid.UUID, email Email, createdAt time.Time) *Subscriber {
	return &Subscriber{id: id, email: email, createdAt: createdAt}
}

func (s *Subscriber) ID() uuid.UUID        { return s.id }
func (s *Subscriber) Email() Email         { return s.email }
func (s *Subscriber) CreatedAt() time.Time { return s.createdAt }
