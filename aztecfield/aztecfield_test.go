package aztecfield

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	assert.True(t, FromByte(42).Equal(FromUint64(42)))
	assert.True(t, FromUint64(0).Equal(Zero))
	assert.True(t, FromBool(true).Equal(FromUint64(1)))
	assert.True(t, FromBool(false).IsZero())

	v, err := FromDecimal("340282366920938463463374607431768211456")
	require.NoError(t, err)
	assert.Equal(t, "340282366920938463463374607431768211456", v.String())

	b, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10)
	w, err := FromBig(b)
	require.NoError(t, err)
	assert.True(t, v.Equal(w))

	// FromBig copies its input
	b.SetInt64(1)
	assert.Equal(t, "340282366920938463463374607431768211456", w.String())
}

func TestFromDecimalInvalid(t *testing.T) {
	for _, in := range []string{"", "-1", "+1", "1.5", "0x10", " 1", "abc"} {
		_, err := FromDecimal(in)
		assert.ErrorIs(t, err, ErrInvalidDecimal, in)
	}
}

func TestFromBigNegative(t *testing.T) {
	_, err := FromBig(big.NewInt(-5))
	assert.ErrorIs(t, err, ErrNegative)
}

func TestHex(t *testing.T) {
	h, err := FromUint64(0x17f12888).Hex()
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000017f12888", h)

	back, err := FromHex(h)
	require.NoError(t, err)
	assert.True(t, back.Equal(FromUint64(0x17f12888)))

	over := new(big.Int).Lsh(big.NewInt(1), 256)
	f, err := FromBig(over)
	require.NoError(t, err)
	_, err = f.Hex()
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = FromHex("1234")
	assert.ErrorIs(t, err, ErrInvalidHex)
	_, err = FromHex("0x")
	assert.ErrorIs(t, err, ErrInvalidHex)
	_, err = FromHex("0xzz")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestInField(t *testing.T) {
	assert.True(t, FromUint64(7).InField())

	p := MustFromDecimal("21888242871839275222246405745257275088548364400416034343698204186575808495617")
	assert.False(t, p.InField())

	pMinusOne := MustFromDecimal("21888242871839275222246405745257275088548364400416034343698204186575808495616")
	assert.True(t, pMinusOne.InField())
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal([]Fr{FromUint64(1), Zero})
	require.NoError(t, err)
	assert.Equal(t, `["0x0000000000000000000000000000000000000000000000000000000000000001","0x0000000000000000000000000000000000000000000000000000000000000000"]`, string(data))

	var out []Fr
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 2)
	assert.True(t, out[0].Equal(FromUint64(1)))
	assert.True(t, out[1].IsZero())

	var dec Fr
	require.NoError(t, json.Unmarshal([]byte(`"99"`), &dec))
	assert.Equal(t, "99", dec.String())

	var upper Fr
	require.NoError(t, json.Unmarshal([]byte(`"0X1F"`), &upper))
	assert.Equal(t, "31", upper.String())
}

func TestHasHexPrefix(t *testing.T) {
	assert.True(t, HasHexPrefix("0x10"))
	assert.True(t, HasHexPrefix("0X10"))
	assert.False(t, HasHexPrefix("10"))
	assert.False(t, HasHexPrefix("x10"))
}

func TestHexValues(t *testing.T) {
	out, err := HexValues([]Fr{FromByte('B'), Zero})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0x0000000000000000000000000000000000000000000000000000000000000042",
		"0x0000000000000000000000000000000000000000000000000000000000000000",
	}, out)
}
