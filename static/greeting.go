package static

import (
	"context"

	"github.com/innermond/greet"
)

// GreetingService serves a greeting fixed at construction time.
type GreetingService struct {
	greeting *greet.Greeting
}

func NewGreetingService() *GreetingService {
	return &GreetingService{greeting: greet.DefaultGreeting()}
}

func (s *GreetingService) Greeting(ctx context.Context) (*greet.Greeting, error) {
	if err := ctx.Err(); err != nil {
		return nil, greet.Errorf(greet.EINTERNAL, "greeting: %s", err).Wrap(err)
	}

	// callers get their own body so the stored one stays fixed
	body := make([]byte, len(s.greeting.Body))
	copy(body, s.greeting.Body)

	return &greet.Greeting{
		Status:      s.greeting.Status,
		ContentType: s.greeting.ContentType,
		Body:        body,
	}, nil
}
