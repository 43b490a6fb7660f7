// Package aztecfield provides Fr, the field element value every encoded contract
// argument is flattened into.
//
// Fr is a plain arbitrary-precision non-negative integer. No modular reduction is ever
// performed; interpreting the value within the backend's scalar field is left to the
// caller (see InField).
package aztecfield

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

var (
	ErrInvalidDecimal = errors.New("aztecfield: invalid decimal value")
	ErrInvalidHex     = errors.New("aztecfield: invalid hex value")
	ErrNegative       = errors.New("aztecfield: negative value")
	ErrOverflow       = errors.New("aztecfield: value exceeds 256 bits")
)

// Zero is the zero field element, used to pad fixed-length strings.
var Zero = Fr{}

var modulus = fr.Modulus()

type Fr struct {
	v *big.Int // nil means zero
}

func FromByte(b byte) Fr {
	return FromUint64(uint64(b))
}

func FromUint64(v uint64) Fr {
	if v == 0 {
		return Fr{}
	}
	return Fr{v: new(big.Int).SetUint64(v)}
}

func FromBool(b bool) Fr {
	if b {
		return FromUint64(1)
	}
	return Fr{}
}

// FromDecimal parses a base-10 string of digits. Signs, whitespace and prefixes
// are rejected.
func FromDecimal(s string) (Fr, error) {
	if s == "" {
		return Fr{}, fmt.Errorf("%w: empty string", ErrInvalidDecimal)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Fr{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Fr{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	return Fr{v: v}, nil
}

// FromHex parses a 0x-prefixed hex string. Leading zeros are allowed, so the padded
// 32-byte form returned by the node round-trips.
func FromHex(s string) (Fr, error) {
	if !HasHexPrefix(s) {
		return Fr{}, fmt.Errorf("%w: missing 0x prefix in %q", ErrInvalidHex, s)
	}
	digits := s[2:]
	if digits == "" {
		return Fr{}, fmt.Errorf("%w: empty hex string", ErrInvalidHex)
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return Fr{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return Fr{v: v}, nil
}

// HasHexPrefix reports whether s starts with 0x or 0X.
func HasHexPrefix(s string) bool {
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// FromBig copies b into a new Fr.
func FromBig(b *big.Int) (Fr, error) {
	if b == nil {
		return Fr{}, nil
	}
	if b.Sign() < 0 {
		return Fr{}, fmt.Errorf("%w: %s", ErrNegative, b.String())
	}
	return Fr{v: new(big.Int).Set(b)}, nil
}

func MustFromDecimal(s string) Fr {
	f, err := FromDecimal(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Big returns a copy of the underlying integer.
func (f Fr) Big() *big.Int {
	if f.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(f.v)
}

func (f Fr) IsZero() bool {
	return f.v == nil || f.v.Sign() == 0
}

func (f Fr) Cmp(o Fr) int {
	return f.Big().Cmp(o.Big())
}

func (f Fr) Equal(o Fr) bool {
	return f.Cmp(o) == 0
}

// InField reports whether the value is a canonical element of the BN254 scalar field.
func (f Fr) InField() bool {
	return f.Big().Cmp(modulus) < 0
}

func (f Fr) String() string {
	return f.Big().String()
}

// Hex returns the 32-byte, zero-padded, 0x-prefixed encoding used on the wire.
func (f Fr) Hex() (string, error) {
	u, overflow := uint256.FromBig(f.Big())
	if overflow {
		return "", fmt.Errorf("%w: %s", ErrOverflow, f.String())
	}
	b := u.Bytes32()
	return hexutil.Encode(b[:]), nil
}

func (f Fr) MarshalJSON() ([]byte, error) {
	h, err := f.Hex()
	if err != nil {
		return nil, err
	}
	return []byte(`"` + h + `"`), nil
}

func (f *Fr) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	var (
		v   Fr
		err error
	)
	if HasHexPrefix(s) {
		v, err = FromHex(s)
	} else {
		v, err = FromDecimal(s)
	}
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// HexValues renders a sequence of field elements into their wire form.
func HexValues(values []Fr) ([]string, error) {
	out := make([]string, len(values))
	for i, v := range values {
		h, err := v.Hex()
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = h
	}
	return out, nil
}
