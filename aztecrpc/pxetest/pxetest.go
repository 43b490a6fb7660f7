// Package pxetest runs an in-process fake PXE node for tests.
package pxetest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/0xsequence/aztekit/aztecrpc/jsonrpc"
)

// Handler answers one method call. Returning a *jsonrpc.Error produces a
// JSON-RPC error response; any other error becomes an internal error.
type Handler func(params []json.RawMessage) (any, error)

type Request struct {
	Method string
	Params []json.RawMessage
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]Handler
	requests []Request
	headers  []http.Header
}

// NewServer starts a fake node. Handlers are keyed by full method name,
// including any namespace prefix, ie. `pxe_getBlockNumber`.
func NewServer(handlers map[string]Handler) *Server {
	s := &Server{handlers: map[string]Handler{}}
	for k, v := range handlers {
		s.handlers[k] = v
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	return s
}

func (s *Server) Handle(method string, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method] = h
}

// Methods returns the method names received so far, in order.
func (s *Server) Methods() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	for i, r := range s.requests {
		out[i] = r.Method
	}
	return out
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) LastHeader() http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.headers) == 0 {
		return nil
	}
	return s.headers[len(s.headers)-1]
}

type request struct {
	Version string            `json:"jsonrpc"`
	ID      uint64            `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.headers = append(s.headers, r.Header.Clone())
	s.mu.Unlock()

	batched := strings.HasPrefix(strings.TrimSpace(string(body)), "[")
	var reqs []request
	if batched {
		err = json.Unmarshal(body, &reqs)
	} else {
		reqs = make([]request, 1)
		err = json.Unmarshal(body, &reqs[0])
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	responses := make([]jsonrpc.Message, len(reqs))
	for i, req := range reqs {
		responses[i] = s.call(req)
	}

	w.Header().Set("Content-Type", "application/json")
	if batched {
		_ = json.NewEncoder(w).Encode(responses)
	} else {
		_ = json.NewEncoder(w).Encode(responses[0])
	}
}

func (s *Server) call(req request) jsonrpc.Message {
	s.mu.Lock()
	s.requests = append(s.requests, Request{Method: req.Method, Params: req.Params})
	h, ok := s.handlers[req.Method]
	s.mu.Unlock()

	if !ok {
		return jsonrpc.NewResponse(req.ID, nil, jsonrpc.NewError(jsonrpc.CodeMethodNotFound, "method not found: %s", req.Method))
	}

	out, err := h(req.Params)
	if err != nil {
		if rpcErr, ok := err.(*jsonrpc.Error); ok {
			return jsonrpc.NewResponse(req.ID, nil, rpcErr)
		}
		return jsonrpc.NewResponse(req.ID, nil, jsonrpc.NewError(jsonrpc.CodeInternalError, "%s", err.Error()))
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return jsonrpc.NewResponse(req.ID, nil, jsonrpc.NewError(jsonrpc.CodeInternalError, "%s", err.Error()))
	}
	return jsonrpc.NewResponse(req.ID, raw, nil)
}

// Result returns a handler that always answers with v.
func Result(v any) Handler {
	return func([]json.RawMessage) (any, error) {
		return v, nil
	}
}
