package jsonrpc

import (
	"encoding/json"
	"fmt"
)

const Version = "2.0"

// Standard JSON-RPC 2.0 error codes. The PXE reports application failures, such
// as a reverted simulation or a nullifier conflict, with CodeServerError.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
	CodeServerError    = -32000
)

var (
	ErrMethodNotFound = Error{Code: CodeMethodNotFound, Message: "method not found"}
	ErrInvalidParams  = Error{Code: CodeInvalidParams, Message: "invalid params"}
)

type Message struct {
	Version string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Method  string          `json:"method,omitempty"`
	Params  []any           `json:"params"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

func NewRequest(id uint64, method string, params []any) Message {
	if params == nil {
		params = []any{}
	}
	return Message{
		Version: Version,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

// NewResponse answers the request with the given id, with either a result or an error.
func NewResponse(id uint64, result json.RawMessage, err *Error) Message {
	return Message{Version: Version, ID: id, Result: result, Error: err}
}

type Error struct {
	Code    int             `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func NewError(code int, format string, a ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	if len(e.Data) > 0 && string(e.Data) != "null" {
		return fmt.Sprintf("rpc error %d: %s (data: %s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Is matches errors by code, so errors.Is(err, ErrMethodNotFound) holds for any
// message the node chose.
func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case Error:
		return t.Code == e.Code
	case *Error:
		return t != nil && t.Code == e.Code
	}
	return false
}
