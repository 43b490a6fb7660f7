package azteccoder

import (
	"fmt"
	"strings"

	"github.com/0xsequence/aztekit/aztecartifact"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FunctionSelector is the 4-byte identifier of a function, as 8 lowercase hex
// characters without the 0x prefix, ie. `27e740b2`.
type FunctionSelector string

func (s FunctionSelector) String() string {
	return string(s)
}

// Hex returns the 0x-prefixed form used in transaction requests.
func (s FunctionSelector) Hex() string {
	return "0x" + string(s)
}

// CanonicalType renders a single parameter type the way it appears in a signature.
func CanonicalType(typ aztecartifact.AbiType) string {
	return typ.String()
}

// CanonicalSignature returns `name(type1,type2,...)` for the given parameters.
func CanonicalSignature(name string, params []aztecartifact.AbiParameter) string {
	types := make([]string, len(params))
	for i, p := range params {
		types[i] = CanonicalType(p.Type)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(types, ","))
}

// SelectorFromSignature hashes a canonical signature with keccak256 and keeps the
// first 4 bytes of the digest.
func SelectorFromSignature(signature string) FunctionSelector {
	digest := Keccak256([]byte(signature))
	return FunctionSelector(hexutil.Encode(digest[:4])[2:])
}

func NewFunctionSelector(name string, params []aztecartifact.AbiParameter) FunctionSelector {
	return SelectorFromSignature(CanonicalSignature(name, params))
}

func SelectorOf(fn *aztecartifact.FunctionArtifact) FunctionSelector {
	return NewFunctionSelector(fn.Name, fn.Parameters)
}

// ParseFunctionSelector normalizes s, with or without 0x prefix, into a selector.
func ParseFunctionSelector(s string) (FunctionSelector, error) {
	h := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if len(h) != 8 {
		return "", fmt.Errorf("%w: '%s' must be 8 hex characters", ErrInvalidSelector, s)
	}
	if _, err := hexutil.Decode("0x" + h); err != nil {
		return "", fmt.Errorf("%w: '%s' is not hex", ErrInvalidSelector, s)
	}
	return FunctionSelector(h), nil
}
