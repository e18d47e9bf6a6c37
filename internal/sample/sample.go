// Package sample serves the fixed demo data behind the /api routes.
package sample

import (
	"context"
	"math/rand/v2"
	"time"

	"sampleapp/internal/apperror"
)

const (
	maxJitter      = 100 * time.Millisecond
	errorThreshold = 0.7

	SimulatedErrorMessage = "시뮬레이션된 에러입니다"
	NormalMessage         = "정상 응답"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Message struct {
	Message string `json:"message"`
}

var users = []User{
	{ID: 1, Name: "홍길동", Email: "hong@example.com"},
	{ID: 2, Name: "김철수", Email: "kim@example.com"},
	{ID: 3, Name: "이영희", Email: "lee@example.com"},
}

type Service struct {
	float func() float64
	sleep func(ctx context.Context, d time.Duration) error
}

type Option func(*Service)

// WithRandom replaces the [0,1) source used for jitter and error draws.
func WithRandom(f func() float64) Option {
	return func(s *Service) { s.float = f }
}

func WithSleep(f func(ctx context.Context, d time.Duration) error) Option {
	return func(s *Service) { s.sleep = f }
}

func NewService(opts ...Option) *Service {
	s := &Service{
		float: rand.Float64,
		sleep: sleepContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Users returns the fixed user list after a 0-100ms delay.
func (s *Service) Users(ctx context.Context) ([]User, error) {
	delay := time.Duration(s.float() * float64(maxJitter))
	if err := s.sleep(ctx, delay); err != nil {
		return nil, err
	}
	out := make([]User, len(users))
	copy(out, users)
	return out, nil
}

// Simulate fails with a non-operational INTERNAL_SERVER_ERROR roughly 30% of
// the time.
func (s *Service) Simulate() (Message, error) {
	if s.float() > errorThreshold {
		return Message{}, apperror.Internal(SimulatedErrorMessage)
	}
	return Message{Message: NormalMessage}, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
