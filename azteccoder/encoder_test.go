package azteccoder

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/0xsequence/aztekit/aztecartifact"
	"github.com/0xsequence/aztekit/aztecfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fieldT = aztecartifact.FieldType()
	boolT  = aztecartifact.BooleanType()
)

func frs(values ...uint64) []aztecfield.Fr {
	out := make([]aztecfield.Fr, len(values))
	for i, v := range values {
		out[i] = aztecfield.FromUint64(v)
	}
	return out
}

func assertFrs(t *testing.T, expected, actual []aztecfield.Fr) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.True(t, expected[i].Equal(actual[i]), "element %d: expected %s, got %s", i, expected[i], actual[i])
	}
}

func TestEncodeValue(t *testing.T) {
	ab := aztecartifact.StructType("AB",
		aztecartifact.StructField{Name: "a", Type: fieldT},
		aztecartifact.StructField{Name: "b", Type: boolT},
	)

	cases := []struct {
		name     string
		typ      aztecartifact.AbiType
		value    any
		expected []aztecfield.Fr
	}{
		{"field number", fieldT, 42, frs(42)},
		{"field json number", fieldT, json.Number("42"), frs(42)},
		{"field float", fieldT, float64(300), frs(300)},
		{"field decimal string", fieldT, "1000", frs(1000)},
		{"field hex string", fieldT, "0x0000000000000000000000000000000000000000000000000000000017f12888", frs(0x17f12888)},
		{"field hex upper prefix", fieldT, "0X10", frs(16)},
		{"field bool", fieldT, true, frs(1)},
		{"boolean true", boolT, true, frs(1)},
		{"boolean false", boolT, false, frs(0)},
		{"array", aztecartifact.ArrayType(fieldT, 3), []any{1, 2, 3}, frs(1, 2, 3)},
		{"typed slice", aztecartifact.ArrayType(fieldT, 2), []int{5, 6}, frs(5, 6)},
		{"empty array", aztecartifact.ArrayType(fieldT, 0), []any{}, frs()},
		{"string padded", aztecartifact.StringType(5), "Bob", frs('B', 'o', 'b', 0, 0)},
		{"string exact", aztecartifact.StringType(3), "Bob", frs('B', 'o', 'b')},
		{"string truncated", aztecartifact.StringType(2), "Bob", frs('B', 'o')},
		{"string latin1", aztecartifact.StringType(2), "é", frs(0xe9, 0)},
		{"struct", ab, map[string]any{"a": 7, "b": false}, frs(7, 0)},
		{"struct extra fields ignored", ab, map[string]any{"b": true, "zzz": "x", "a": "9"}, frs(9, 1)},
		{"unsigned", aztecartifact.IntegerType(false, 32), "4294967295", frs(4294967295)},
		{"unsigned number", aztecartifact.IntegerType(false, 8), 255, frs(255)},
		{"signed positive", aztecartifact.IntegerType(true, 8), 127, frs(127)},
		{"signed negative", aztecartifact.IntegerType(true, 8), -1, frs(255)},
		{"signed min", aztecartifact.IntegerType(true, 8), "-128", frs(128)},
		{"signed 64", aztecartifact.IntegerType(true, 64), json.Number("-2"), frs(0xfffffffffffffffe)},
		{"signed 1 bit", aztecartifact.IntegerType(true, 1), -1, frs(1)},
		{"nested arrays", aztecartifact.ArrayType(aztecartifact.ArrayType(boolT, 2), 2), []any{[]any{true, false}, []any{false, true}}, frs(1, 0, 0, 1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := EncodeValue(c.typ, c.value)
			require.NoError(t, err)
			assertFrs(t, c.expected, out)
			assert.Len(t, out, c.typ.LeafCount())
		})
	}
}

func TestEncodeWideIntegers(t *testing.T) {
	huge := "340282366920938463463374607431768211455" // 2^128 - 1
	out, err := EncodeValue(aztecartifact.IntegerType(false, 128), huge)
	require.NoError(t, err)
	assert.Equal(t, huge, out[0].String())

	out, err = EncodeValue(aztecartifact.IntegerType(false, 128), json.Number(huge))
	require.NoError(t, err)
	assert.Equal(t, huge, out[0].String())

	n, _ := new(big.Int).SetString(huge, 10)
	out, err = EncodeValue(fieldT, n)
	require.NoError(t, err)
	assert.Equal(t, huge, out[0].String())

	// values are never reduced, even past the field modulus
	past := "21888242871839275222246405745257275088548364400416034343698204186575808495618"
	out, err = EncodeValue(fieldT, past)
	require.NoError(t, err)
	assert.Equal(t, past, out[0].String())
	assert.False(t, out[0].InField())

	_, err = EncodeValue(aztecartifact.IntegerType(false, 128), "340282366920938463463374607431768211456")
	assert.ErrorIs(t, err, ErrIntegerOutOfRange)
}

func TestEncodeErrors(t *testing.T) {
	ab := aztecartifact.StructType("AB",
		aztecartifact.StructField{Name: "a", Type: fieldT},
		aztecartifact.StructField{Name: "b", Type: boolT},
	)

	cases := []struct {
		name string
		typ  aztecartifact.AbiType
		val  any
		err  error
		path string
	}{
		{"field null", fieldT, nil, ErrUnsupportedValueShape, "value"},
		{"field object", fieldT, map[string]any{}, ErrUnsupportedValueShape, "value"},
		{"field bad string", fieldT, "12abc", ErrUnparsableInteger, "value"},
		{"field negative", fieldT, -3, ErrUnsupportedValueShape, "value"},
		{"field fraction", fieldT, 1.5, ErrUnparsableInteger, "value"},
		{"boolean string", boolT, "true", ErrUnsupportedValueShape, "value"},
		{"boolean number", boolT, 1, ErrUnsupportedValueShape, "value"},
		{"array short", aztecartifact.ArrayType(fieldT, 3), []any{1, 2}, ErrArrayLengthMismatch, "value"},
		{"array long", aztecartifact.ArrayType(fieldT, 1), []any{1, 2}, ErrArrayLengthMismatch, "value"},
		{"array not list", aztecartifact.ArrayType(fieldT, 1), "1", ErrUnsupportedValueShape, "value"},
		{"array bad element", aztecartifact.ArrayType(boolT, 2), []any{true, "no"}, ErrUnsupportedValueShape, "value[1]"},
		{"string number", aztecartifact.StringType(3), 7, ErrUnsupportedValueShape, "value"},
		{"string wide rune", aztecartifact.StringType(3), "a€", ErrUnsupportedValueShape, "value"},
		{"struct not object", ab, []any{1, true}, ErrUnsupportedValueShape, "value"},
		{"struct missing", ab, map[string]any{"a": 1}, ErrMissingStructField, "value.b"},
		{"struct bad field", ab, map[string]any{"a": 1, "b": 0}, ErrUnsupportedValueShape, "value.b"},
		{"integer bad string", aztecartifact.IntegerType(false, 32), "ten", ErrUnparsableInteger, "value"},
		{"integer plus sign", aztecartifact.IntegerType(false, 32), "+1", ErrUnparsableInteger, "value"},
		{"integer bool", aztecartifact.IntegerType(false, 32), true, ErrUnsupportedValueShape, "value"},
		{"integer fraction", aztecartifact.IntegerType(false, 32), json.Number("2.5"), ErrUnparsableInteger, "value"},
		{"unsigned negative", aztecartifact.IntegerType(false, 32), "-1", ErrIntegerOutOfRange, "value"},
		{"unsigned overflow", aztecartifact.IntegerType(false, 8), 256, ErrIntegerOutOfRange, "value"},
		{"signed overflow", aztecartifact.IntegerType(true, 8), 128, ErrIntegerOutOfRange, "value"},
		{"signed underflow", aztecartifact.IntegerType(true, 8), "-129", ErrIntegerOutOfRange, "value"},
		{"signed underflow power of two", aztecartifact.IntegerType(true, 8), "-256", ErrIntegerOutOfRange, "value"},
		{"signed 1 bit positive", aztecartifact.IntegerType(true, 1), 1, ErrIntegerOutOfRange, "value"},
		{"integer too wide", aztecartifact.IntegerType(true, 1<<40), -1, ErrUnsupportedValueShape, "value"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := EncodeValue(c.typ, c.val)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, c.err)
			assert.Contains(t, err.Error(), c.path)
		})
	}
}

func TestEncodeArgumentsNamesParameter(t *testing.T) {
	params := []aztecartifact.AbiParameter{
		{Name: "owner", Type: fieldT},
		{Name: "amounts", Type: aztecartifact.ArrayType(fieldT, 3)},
	}

	_, err := EncodeArguments(params, []any{1, []any{1, 2}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArrayLengthMismatch)
	assert.Contains(t, err.Error(), "amounts")

	_, err = EncodeArguments(params, []any{1})
	assert.ErrorIs(t, err, ErrArgumentCountMismatch)

	out, err := EncodeArguments(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEncodeNestedPaths(t *testing.T) {
	artifact := loadPriceFeed(t)
	fn, err := GetFunctionArtifact(artifact, "set_feeds")
	require.NoError(t, err)

	args, err := ParseArgsJSON([]byte(`[
		[
			{"id": 1, "price": "100000000000000000000", "name": "ETH"},
			{"id": 2, "price": 5, "extra": true}
		],
		true
	]`))
	require.NoError(t, err)

	_, err = EncodeArguments(fn.Parameters, args)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingStructField)
	assert.Contains(t, err.Error(), "feeds[1].name")

	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "feeds[1].name", encErr.Path)
}

func TestEncodeFunctionArguments(t *testing.T) {
	artifact := loadPriceFeed(t)
	fn, err := GetFunctionArtifact(artifact, "set_feeds")
	require.NoError(t, err)

	args, err := ParseArgsJSON([]byte(`[
		[
			{"id": 1, "price": "100000000000000000000", "name": "ETH"},
			{"id": 4294967295, "price": 5, "name": "BTC/USD!"}
		],
		true
	]`))
	require.NoError(t, err)

	out, err := NewArgumentEncoder(fn.Parameters, args).Encode()
	require.NoError(t, err)

	expectedLen := 0
	for _, p := range fn.Parameters {
		expectedLen += p.Type.LeafCount()
	}
	require.Len(t, out, expectedLen)
	require.Len(t, out, 21)

	assert.Equal(t, "1", out[0].String())
	assert.Equal(t, "100000000000000000000", out[1].String())
	assertFrs(t, frs('E', 'T', 'H', 0, 0, 0, 0, 0), out[2:10])
	assert.Equal(t, "4294967295", out[10].String())
	assert.Equal(t, "5", out[11].String())
	assertFrs(t, frs('B', 'T', 'C', '/', 'U', 'S', 'D', '!'), out[12:20])
	assert.Equal(t, "1", out[20].String())
}

func TestParseArgs(t *testing.T) {
	args, err := ParseArgsJSON([]byte(`[18446744073709551617, "x", [1], {"a": null}]`))
	require.NoError(t, err)
	require.Len(t, args, 4)
	assert.Equal(t, json.Number("18446744073709551617"), args[0])

	_, err = ParseArgsJSON([]byte(`{"not": "an array"}`))
	assert.Error(t, err)

	args, err = ParseArgsJSON([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, args)

	raw := ParseArgsStrings([]string{"42", "Bob", "true", "[1,2]", `{"a":1}`, `"7"`})
	require.Len(t, raw, 6)
	assert.Equal(t, json.Number("42"), raw[0])
	assert.Equal(t, "Bob", raw[1])
	assert.Equal(t, true, raw[2])
	assert.Equal(t, []any{json.Number("1"), json.Number("2")}, raw[3])
	assert.Equal(t, map[string]any{"a": json.Number("1")}, raw[4])
	assert.Equal(t, "7", raw[5])
}
