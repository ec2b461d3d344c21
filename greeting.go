package greet

import "context"

const (
	GreetingContentType = "text/plain"
	GreetingBody        = "Hello from Python!"
)

// Greeting is the fixed response served for every GET.
type Greeting struct {
	Status      int
	ContentType string
	Body        []byte
}

func DefaultGreeting() *Greeting {
	return &Greeting{
		Status:      200,
		ContentType: GreetingContentType,
		Body:        []byte(GreetingBody),
	}
}

type GreetingService interface {
	Greeting(ctx context.Context) (*Greeting, error)
}
