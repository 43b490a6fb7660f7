package aztecrpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/0xsequence/aztekit/aztecrpc/jsonrpc"
	"github.com/go-chi/transport"
	"github.com/goware/breaker"
	"github.com/goware/logger"
	"github.com/goware/superr"
)

// Provider is a JSON-RPC client for a PXE node. It is safe for concurrent use.
type Provider struct {
	log        logger.Logger
	nodeURL    string
	namespace  string
	userAgent  string
	httpClient httpClient
	br         Retrier

	lastID atomic.Uint64
}

var (
	ErrEmptyResponse = errors.New("aztecrpc: empty response")
	ErrNotReady      = errors.New("aztecrpc: pxe is not ready")
)

func NewProvider(cfg Config, options ...Option) (*Provider, error) {
	cfg = cfg.withDefaults()

	p := &Provider{
		nodeURL:   cfg.URL,
		namespace: cfg.Namespace,
		userAgent: cfg.UserAgent,
	}
	for _, opt := range options {
		opt(p)
	}

	if p.log == nil {
		p.log = logger.NewLogger(logger.LogLevel_INFO)
	}
	if p.httpClient == nil {
		base := http.DefaultTransport
		if p.userAgent != "" {
			base = transport.Chain(base, transport.SetHeader("User-Agent", p.userAgent))
		}
		p.httpClient = &http.Client{Transport: base, Timeout: cfg.RequestTimeout}
	}
	if p.br == nil {
		p.br = breaker.New(p.log, cfg.ReadyDelay, 1, cfg.ReadyAttempts)
	}
	return p, nil
}

func (p *Provider) URL() string {
	return p.nodeURL
}

func (p *Provider) method(name string) string {
	if p.namespace == "" {
		return name
	}
	return p.namespace + "_" + name
}

func (p *Provider) Do(ctx context.Context, calls ...Call) error {
	if len(calls) == 0 {
		return nil
	}

	batch := make(BatchCall, 0, len(calls))
	for i, call := range calls {
		if call.err != nil {
			return fmt.Errorf("aztecrpc: call %d has an error: %w", i, call.err)
		}
		call.request.ID = p.lastID.Add(1)
		call.request.Method = p.method(call.request.Method)
		batch = append(batch, &call)
	}

	b, err := batch.MarshalJSON()
	if err != nil {
		return fmt.Errorf("aztecrpc: failed to marshal JSONRPC request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.nodeURL, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("aztecrpc: failed to initialize http.Request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	p.log.Debugf("aztecrpc: -> %s", b)

	res, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("aztecrpc: failed to send request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("aztecrpc: failed to read response: %w", err)
	}
	if len(body) == 0 {
		if res.StatusCode >= 400 {
			return fmt.Errorf("aztecrpc: http status %d", res.StatusCode)
		}
		return ErrEmptyResponse
	}

	p.log.Debugf("aztecrpc: <- %s", body)

	if err := batch.UnmarshalJSON(body); err != nil {
		if res.StatusCode >= 400 {
			return fmt.Errorf("aztecrpc: http status %d: %s", res.StatusCode, bytes.TrimSpace(body))
		}
		return fmt.Errorf("aztecrpc: %w", err)
	}

	for _, call := range batch {
		if call.err != nil {
			continue
		}
		if call.response == nil {
			call.err = ErrEmptyResponse
			continue
		}
		if call.resultFn == nil {
			continue
		}
		if err := call.resultFn(call.response.Result); err != nil {
			call.err = err
		}
	}

	return batch.ErrorOrNil()
}

// WaitForReady polls getNodeInfo until the node answers, retrying with the
// provider's breaker. A node that does not know the method fails at once.
func (p *Provider) WaitForReady(ctx context.Context) (*NodeInfo, error) {
	var info *NodeInfo
	attempt := 0
	err := p.br.Do(ctx, func() error {
		attempt++
		ni, err := p.GetNodeInfo(ctx)
		if errors.Is(err, jsonrpc.ErrMethodNotFound) {
			// the node is up but does not serve the pxe namespace
			return superr.New(breaker.ErrFatal, err)
		}
		if err != nil {
			p.log.Infof("aztecrpc: waiting for pxe at %s (attempt %d): %v", p.nodeURL, attempt, err)
			return err
		}
		info = ni
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrNotReady, p.nodeURL, err)
	}
	p.log.Infof("aztecrpc: pxe at %s is ready, node version %s", p.nodeURL, info.NodeVersion)
	return info, nil
}
