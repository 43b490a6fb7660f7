package azteccoder

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"reflect"
	"strconv"

	"github.com/0xsequence/aztekit/aztecartifact"
	"github.com/0xsequence/aztekit/aztecfield"
)

// ArgumentEncoder flattens raw argument values into field elements following a
// function's parameter schema. An encoder is built for a single Encode call.
//
// Raw values are what a JSON decoder produces: nil, bool, string, json.Number,
// float64, []any and map[string]any. Go integers, *big.Int and other slices are
// accepted as well for callers building arguments by hand.
type ArgumentEncoder struct {
	params    []aztecartifact.AbiParameter
	args      []any
	flattened []aztecfield.Fr
}

func NewArgumentEncoder(params []aztecartifact.AbiParameter, args []any) *ArgumentEncoder {
	return &ArgumentEncoder{params: params, args: args}
}

// Encode returns the flattened arguments in declaration order, depth-first. On
// error no partial output is returned.
func (e *ArgumentEncoder) Encode() ([]aztecfield.Fr, error) {
	if len(e.args) != len(e.params) {
		return nil, pathError(ErrArgumentCountMismatch, "arguments", "expected %d values, got %d", len(e.params), len(e.args))
	}

	size := 0
	for _, p := range e.params {
		size += p.Type.LeafCount()
	}
	e.flattened = make([]aztecfield.Fr, 0, size)

	for i, param := range e.params {
		if err := e.encodeArgument(param.Type, e.args[i], param.Name); err != nil {
			e.flattened = nil
			return nil, err
		}
	}
	return e.flattened, nil
}

func EncodeArguments(params []aztecartifact.AbiParameter, args []any) ([]aztecfield.Fr, error) {
	return NewArgumentEncoder(params, args).Encode()
}

// EncodeValue flattens a single value of the given type.
func EncodeValue(typ aztecartifact.AbiType, value any) ([]aztecfield.Fr, error) {
	return EncodeArguments([]aztecartifact.AbiParameter{{Name: "value", Type: typ}}, []any{value})
}

func (e *ArgumentEncoder) push(f aztecfield.Fr) {
	e.flattened = append(e.flattened, f)
}

func (e *ArgumentEncoder) encodeArgument(typ aztecartifact.AbiType, arg any, path string) error {
	switch typ.Kind {
	case aztecartifact.KindField:
		return e.encodeField(arg, path)

	case aztecartifact.KindBoolean:
		b, ok := arg.(bool)
		if !ok {
			return pathError(ErrUnsupportedValueShape, path, "expected boolean, got %s", describe(arg))
		}
		e.push(aztecfield.FromBool(b))
		return nil

	case aztecartifact.KindArray:
		list, ok := asList(arg)
		if !ok {
			return pathError(ErrUnsupportedValueShape, path, "expected array, got %s", describe(arg))
		}
		if len(list) != typ.Length {
			return pathError(ErrArrayLengthMismatch, path, "expected %d elements, got %d", typ.Length, len(list))
		}
		if typ.Elem == nil {
			return pathError(ErrUnsupportedValueShape, path, "array type has no element type")
		}
		for i, elem := range list {
			if err := e.encodeArgument(*typ.Elem, elem, indexPath(path, i)); err != nil {
				return err
			}
		}
		return nil

	case aztecartifact.KindString:
		s, ok := arg.(string)
		if !ok {
			return pathError(ErrUnsupportedValueShape, path, "expected string, got %s", describe(arg))
		}
		runes := []rune(s)
		for i := 0; i < typ.Length; i++ {
			if i >= len(runes) {
				e.push(aztecfield.Zero)
				continue
			}
			r := runes[i]
			if r > 0xff {
				return pathError(ErrUnsupportedValueShape, path, "character %q at position %d does not fit in a single byte", r, i)
			}
			e.push(aztecfield.FromByte(byte(r)))
		}
		return nil

	case aztecartifact.KindStruct:
		obj, ok := arg.(map[string]any)
		if !ok {
			return pathError(ErrUnsupportedValueShape, path, "expected object, got %s", describe(arg))
		}
		for _, field := range typ.Fields {
			fieldPath := path + "." + field.Name
			value, ok := obj[field.Name]
			if !ok {
				return pathError(ErrMissingStructField, fieldPath, "field '%s' is missing", field.Name)
			}
			if err := e.encodeArgument(field.Type, value, fieldPath); err != nil {
				return err
			}
		}
		return nil

	case aztecartifact.KindInteger:
		return e.encodeInteger(typ, arg, path)

	default:
		return pathError(ErrUnsupportedValueShape, path, "unknown abi type kind '%s'", typ.Kind)
	}
}

func (e *ArgumentEncoder) encodeField(arg any, path string) error {
	switch v := arg.(type) {
	case bool:
		e.push(aztecfield.FromBool(v))
		return nil

	case string:
		var (
			f   aztecfield.Fr
			err error
		)
		if aztecfield.HasHexPrefix(v) {
			f, err = aztecfield.FromHex(v)
		} else {
			f, err = aztecfield.FromDecimal(v)
		}
		if err != nil {
			return pathError(ErrUnparsableInteger, path, "%v", err)
		}
		e.push(f)
		return nil
	}

	n, ok, err := asInteger(arg)
	if !ok {
		return pathError(ErrUnsupportedValueShape, path, "expected number, decimal string or boolean for field, got %s", describe(arg))
	}
	if err != nil {
		return pathError(ErrUnparsableInteger, path, "%v", err)
	}
	if n.Sign() < 0 {
		return pathError(ErrUnsupportedValueShape, path, "negative value %s cannot be encoded as a field", n.String())
	}
	f, _ := aztecfield.FromBig(n)
	e.push(f)
	return nil
}

// encodeInteger range checks the value against the declared width. Signed values
// are stored as two's complement within width bits.
func (e *ArgumentEncoder) encodeInteger(typ aztecartifact.AbiType, arg any, path string) error {
	var n *big.Int

	if s, ok := arg.(string); ok {
		v, ok := new(big.Int).SetString(s, 10)
		if !ok || s == "" || s[0] == '+' {
			return pathError(ErrUnparsableInteger, path, "'%s' is not a decimal integer", s)
		}
		n = v
	} else {
		v, ok, err := asInteger(arg)
		if !ok {
			return pathError(ErrUnsupportedValueShape, path, "expected decimal string or number for %s, got %s", typ.String(), describe(arg))
		}
		if err != nil {
			return pathError(ErrUnparsableInteger, path, "%v", err)
		}
		n = v
	}

	if typ.Width <= 0 || typ.Width > aztecartifact.MaxIntegerWidth {
		return pathError(ErrUnsupportedValueShape, path, "integer type has invalid width %d", typ.Width)
	}
	width := typ.Width
	if !typ.Signed() {
		if n.Sign() < 0 || n.BitLen() > width {
			return pathError(ErrIntegerOutOfRange, path, "%s does not fit in %s", n.String(), typ.String())
		}
		f, _ := aztecfield.FromBig(n)
		e.push(f)
		return nil
	}

	if n.Sign() >= 0 {
		if n.BitLen() > width-1 {
			return pathError(ErrIntegerOutOfRange, path, "%s does not fit in %s", n.String(), typ.String())
		}
		f, _ := aztecfield.FromBig(n)
		e.push(f)
		return nil
	}

	// -2^(width-1) is the only negative value whose magnitude needs width bits
	abs := new(big.Int).Neg(n)
	if abs.BitLen() > width || (abs.BitLen() == width && abs.TrailingZeroBits() != uint(width-1)) {
		return pathError(ErrIntegerOutOfRange, path, "%s does not fit in %s", n.String(), typ.String())
	}
	f, _ := aztecfield.FromBig(new(big.Int).Add(n, new(big.Int).Lsh(big.NewInt(1), uint(width))))
	e.push(f)
	return nil
}

// asInteger converts a numeric raw value into an integer. ok is false when arg is
// not a number at all; err is set when it is a number but not an integral one.
func asInteger(arg any) (n *big.Int, ok bool, err error) {
	switch v := arg.(type) {
	case json.Number:
		if i, ok := new(big.Int).SetString(v.String(), 10); ok {
			return i, true, nil
		}
		f, _, ferr := big.ParseFloat(v.String(), 10, 1024, big.ToNearestEven)
		if ferr != nil || !f.IsInt() {
			return nil, true, errNotIntegral
		}
		i, _ := f.Int(nil)
		return i, true, nil
	case float64:
		return floatInteger(v)
	case float32:
		return floatInteger(float64(v))
	case *big.Int:
		if v == nil {
			return nil, false, nil
		}
		return new(big.Int).Set(v), true, nil
	case int:
		return big.NewInt(int64(v)), true, nil
	case int8:
		return big.NewInt(int64(v)), true, nil
	case int16:
		return big.NewInt(int64(v)), true, nil
	case int32:
		return big.NewInt(int64(v)), true, nil
	case int64:
		return big.NewInt(v), true, nil
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true, nil
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true, nil
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true, nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true, nil
	case uint64:
		return new(big.Int).SetUint64(v), true, nil
	default:
		return nil, false, nil
	}
}

func floatInteger(v float64) (*big.Int, bool, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return nil, true, errNotIntegral
	}
	i, _ := big.NewFloat(v).Int(nil)
	return i, true, nil
}

var errNotIntegral = errors.New("number is not an integer")

func asList(arg any) ([]any, bool) {
	if list, ok := arg.([]any); ok {
		return list, true
	}
	rv := reflect.ValueOf(arg)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	list := make([]any, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list, true
}

func indexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func describe(arg any) string {
	switch arg.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int:
		return "number"
	case map[string]any:
		return "object"
	}
	if _, ok := asList(arg); ok {
		return "array"
	}
	return reflect.TypeOf(arg).String()
}
