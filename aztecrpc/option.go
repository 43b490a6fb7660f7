package aztecrpc

import (
	"context"
	"net/http"

	"github.com/goware/logger"
)

type Option func(*Provider)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Retrier runs fn until it succeeds or gives up. *breaker.Breaker satisfies it.
type Retrier interface {
	Do(ctx context.Context, fn func() error) error
}

func WithHTTPClient(c httpClient) Option {
	return func(p *Provider) {
		p.httpClient = c
	}
}

func WithLogger(log logger.Logger) Option {
	return func(p *Provider) {
		p.log = log
	}
}

func WithBreaker(br Retrier) Option {
	return func(p *Provider) {
		p.br = br
	}
}

// WithNamespace overrides the method prefix. An empty namespace sends method
// names as they are.
func WithNamespace(namespace string) Option {
	return func(p *Provider) {
		p.namespace = namespace
	}
}

// WithUserAgent sets the User-Agent header on the default http client. It has no
// effect when combined with WithHTTPClient.
func WithUserAgent(userAgent string) Option {
	return func(p *Provider) {
		p.userAgent = userAgent
	}
}
