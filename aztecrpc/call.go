package aztecrpc

import (
	"encoding/json"

	"github.com/0xsequence/aztekit/aztecrpc/jsonrpc"
)

type Call struct {
	request  jsonrpc.Message
	response *jsonrpc.Message
	resultFn func(message json.RawMessage) error
	err      error
}

func NewCall(method string, params ...any) Call {
	return NewCallBuilder[any](method, nil, params...).Into(nil)
}

// Err is the error recorded for the call by its builder or by the last Do.
func (c *Call) Err() error {
	return c.err
}

type IntoFn[T any] func(raw json.RawMessage, ret *T) error

// CallBuilder describes a PXE method call before its result destination is known.
// Method names are given without the namespace prefix; the provider adds it.
type CallBuilder[T any] struct {
	err    error
	method string
	params []any
	intoFn IntoFn[T]
}

func NewCallBuilder[T any](method string, intoFn IntoFn[T], params ...any) CallBuilder[T] {
	return CallBuilder[T]{
		method: method,
		params: params,
		intoFn: intoFn,
	}
}

func (b CallBuilder[T]) Into(ret *T) Call {
	if b.err != nil {
		return Call{err: b.err}
	}
	return Call{
		request: jsonrpc.NewRequest(0, b.method, b.params),
		resultFn: func(message json.RawMessage) error {
			if ret == nil {
				return nil
			}
			if b.intoFn != nil {
				return b.intoFn(message, ret)
			}
			return json.Unmarshal(message, ret)
		},
	}
}
