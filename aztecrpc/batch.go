package aztecrpc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/0xsequence/aztekit/aztecrpc/jsonrpc"
	"github.com/0xsequence/aztekit/sonic"
)

// BatchCall is the set of calls sent in one HTTP round trip. A single call is
// sent as a plain request object, which older PXE builds require.
type BatchCall []*Call

func (b BatchCall) MarshalJSON() ([]byte, error) {
	if len(b) == 1 {
		return sonic.Config.Marshal(b[0].request)
	}
	msgs := make([]jsonrpc.Message, len(b))
	for i, c := range b {
		msgs[i] = c.request
	}
	return sonic.Config.Marshal(msgs)
}

// UnmarshalJSON matches responses to calls by id; the node may answer a batch in
// any order.
func (b BatchCall) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty response body")
	}

	var msgs []*jsonrpc.Message
	if data[0] == '[' {
		if err := sonic.Config.Unmarshal(data, &msgs); err != nil {
			return fmt.Errorf("invalid batch response: %w", err)
		}
	} else {
		var msg jsonrpc.Message
		if err := sonic.Config.Unmarshal(data, &msg); err != nil {
			return fmt.Errorf("invalid response: %w", err)
		}
		msgs = []*jsonrpc.Message{&msg}
	}
	if len(msgs) == 0 {
		return fmt.Errorf("empty batch response")
	}

	pending := make(map[uint64]*Call, len(b))
	for i, c := range b {
		if c == nil {
			return fmt.Errorf("nil call at index %d", i)
		}
		if _, dup := pending[c.request.ID]; dup {
			return fmt.Errorf("duplicate request id %d", c.request.ID)
		}
		pending[c.request.ID] = c
	}

	for i, msg := range msgs {
		if msg == nil {
			return fmt.Errorf("nil response at index %d", i)
		}
		c, ok := pending[msg.ID]
		if !ok {
			return fmt.Errorf("response id %d does not match any request", msg.ID)
		}
		if c.response != nil {
			return fmt.Errorf("duplicate response for id %d", msg.ID)
		}
		c.response = msg
		if msg.Error != nil {
			c.err = *msg.Error
		}
	}
	return nil
}

// ErrorOrNil collects the failed calls, in request order.
func (b BatchCall) ErrorOrNil() error {
	var errs BatchError
	for i, c := range b {
		if c.err != nil {
			errs = append(errs, &CallError{Index: i, Method: c.request.Method, Err: c.err})
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CallError is the failure of one call, labelled with the PXE method it invoked.
type CallError struct {
	Index  int
	Method string
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %v", e.Method, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// BatchError holds every failed call of a batch. errors.Is and errors.As see
// through to each node error, ie. errors.Is(err, jsonrpc.ErrMethodNotFound).
type BatchError []*CallError

func (e BatchError) Error() string {
	switch len(e) {
	case 0:
		return ""
	case 1:
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, c := range e {
		msgs[i] = c.Error()
	}
	return fmt.Sprintf("%d calls failed: %s", len(e), strings.Join(msgs, "; "))
}

func (e BatchError) Unwrap() []error {
	errs := make([]error, len(e))
	for i, c := range e {
		errs[i] = c
	}
	return errs
}
