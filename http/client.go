package http

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/innermond/greet"
)

// Client fetches the greeting from a running server.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

func NewClient(u string) *Client {
	return &Client{
		URL:        u,
		HTTPClient: http.DefaultClient,
	}
}

func (c *Client) Greeting(ctx context.Context) (*greet.Greeting, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, greet.Errorf(greet.EINVALID, "bad url %q", c.URL).Wrap(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, greet.Errorf(codeFromErrorStatus(resp.StatusCode), "%s", strings.TrimSpace(string(body)))
	}

	return &greet.Greeting{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
