package aztecartifact

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArtifactFile(t *testing.T) {
	artifact, err := ParseArtifactFile("testdata/price_feed.json")
	require.NoError(t, err)

	assert.Equal(t, "PriceFeed", artifact.Name)
	assert.Equal(t, []string{"constructor", "set_just_field", "set_feeds", "get_feed", "set_delta"}, artifact.FunctionNames())
	assert.NotZero(t, artifact.Checksum)
	assert.JSONEq(t, `{"just_field":{"slot":"0x0000000000000000000000000000000000000000000000000000000000000001"}}`, string(artifact.StorageLayout))

	ctor, ok := artifact.Function("constructor")
	require.True(t, ok)
	assert.Equal(t, FunctionTypePrivate, ctor.FunctionType)
	assert.True(t, ctor.IsInitializer)
	assert.Equal(t, []byte{0, 1, 2, 3}, ctor.Bytecode)
	require.NotNil(t, ctor.VerificationKey)
	assert.Equal(t, "AAAA", *ctor.VerificationKey)
	require.Len(t, ctor.Parameters, 1)
	assert.Equal(t, KindStruct, ctor.Parameters[0].Type.Kind)
	assert.Equal(t, "inner", ctor.Parameters[0].Type.Fields[0].Name)

	setter, ok := artifact.Function("set_just_field")
	require.True(t, ok)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, setter.Bytecode)
	assert.Nil(t, setter.VerificationKey)
	assert.Nil(t, setter.Debug)

	feeds, ok := artifact.Function("set_feeds")
	require.True(t, ok)
	require.NotNil(t, feeds.Debug)
	typ := feeds.Parameters[0].Type
	assert.Equal(t, KindArray, typ.Kind)
	assert.Equal(t, 2, typ.Length)
	require.NotNil(t, typ.Elem)
	assert.Equal(t, "price_feed::Feed", typ.Elem.Path)
	assert.Equal(t, 2*(1+1+8), typ.LeafCount())

	getFeed, ok := artifact.Function("get_feed")
	require.True(t, ok)
	assert.True(t, getFeed.IsStatic)
	assert.Equal(t, []AbiType{FieldType()}, getFeed.ReturnTypes)

	_, ok = artifact.Function("nope")
	assert.False(t, ok)
}

func TestParseNargoArtifact(t *testing.T) {
	artifact, err := ParseArtifactFile("testdata/nargo_counter.json")
	require.NoError(t, err)

	assert.Equal(t, "Counter", artifact.Name)
	require.Len(t, artifact.Functions, 2)

	inc := artifact.Functions[0]
	require.Len(t, inc.Parameters, 2)
	assert.Equal(t, "by", inc.Parameters[1].Name)
	assert.Equal(t, IntegerType(false, 64), inc.Parameters[1].Type)
	assert.Equal(t, "abc", inc.DebugSymbols)
	assert.Len(t, inc.Bytecode, 10)

	assert.Equal(t, FunctionTypeUtility, artifact.Functions[1].FunctionType)
	assert.NotEmpty(t, artifact.FileMap)
}

func TestParseArtifactJSONErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		msg  string
	}{
		{"malformed", `{"name":`, "unable to decode"},
		{"wrong shape", `{"name":"X","functions":{}}`, "unable to decode"},
		{"empty name", `{"name":"","functions":[]}`, "contract name is empty"},
		{"empty function name", `{"name":"X","functions":[{"name":""}]}`, "function name is empty"},
		{"duplicate function", `{"name":"X","functions":[{"name":"a"},{"name":"a"}]}`, "duplicate function 'a'"},
		{"unknown kind", `{"name":"X","functions":[{"name":"a","parameters":[{"name":"p","type":{"kind":"tuple"}}]}]}`, "unknown abi type kind 'tuple'"},
		{"missing kind", `{"name":"X","functions":[{"name":"a","parameters":[{"name":"p","type":{}}]}]}`, "missing its kind"},
		{"array without element", `{"name":"X","functions":[{"name":"a","parameters":[{"name":"p","type":{"kind":"array","length":2}}]}]}`, "missing its element type"},
		{"zero width integer", `{"name":"X","functions":[{"name":"a","parameters":[{"name":"p","type":{"kind":"integer","sign":"unsigned","width":0}}]}]}`, "width must be between 1 and 256"},
		{"wide integer", `{"name":"X","functions":[{"name":"a","parameters":[{"name":"p","type":{"kind":"integer","sign":"signed","width":257}}]}]}`, "got 257"},
		{"bad sign", `{"name":"X","functions":[{"name":"a","parameters":[{"name":"p","type":{"kind":"integer","sign":"maybe","width":8}}]}]}`, "invalid integer sign"},
		{"duplicate struct field", `{"name":"X","functions":[{"name":"a","parameters":[{"name":"p","type":{"kind":"struct","fields":[{"name":"x","type":{"kind":"field"}},{"name":"x","type":{"kind":"field"}}]}}]}]}`, "duplicate struct field 'x'"},
		{"bad bytecode", `{"name":"X","functions":[{"name":"a","bytecode":"!!!"}]}`, "invalid base64 bytecode"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseArtifactJSON([]byte(c.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.msg)
		})
	}
}

func TestLeafCountAndString(t *testing.T) {
	point := StructType("Point",
		StructField{Name: "x", Type: FieldType()},
		StructField{Name: "y", Type: FieldType()},
		StructField{Name: "label", Type: StringType(4)},
	)

	cases := []struct {
		typ    AbiType
		leaves int
		str    string
	}{
		{FieldType(), 1, "field"},
		{BooleanType(), 1, "bool"},
		{IntegerType(false, 32), 1, "u32"},
		{IntegerType(true, 8), 1, "i8"},
		{StringType(5), 5, "string[5]"},
		{StringType(0), 0, "string[0]"},
		{ArrayType(FieldType(), 3), 3, "field[3]"},
		{ArrayType(ArrayType(BooleanType(), 2), 3), 6, "bool[2][3]"},
		{point, 6, "struct"},
		{ArrayType(point, 2), 12, "struct[2]"},
		{StructType("Empty"), 0, "struct"},
	}

	for _, c := range cases {
		assert.Equal(t, c.leaves, c.typ.LeafCount(), c.str)
		assert.Equal(t, c.str, c.typ.String())
		assert.NoError(t, c.typ.Validate("p"))
	}
}

func TestContractRegistry(t *testing.T) {
	registry := NewContractRegistry()
	require.NoError(t, registry.LoadDir("testdata"))
	assert.Equal(t, []string{"Counter", "PriceFeed"}, registry.ContractNames())

	feed, ok := registry.Get("PriceFeed")
	require.True(t, ok)
	assert.Len(t, feed.Functions, 5)

	// re-adding the identical document is fine
	data, err := os.ReadFile("testdata/price_feed.json")
	require.NoError(t, err)
	require.NoError(t, registry.Add(MustParseArtifactJSON(data)))
	assert.Len(t, registry.ContractNames(), 2)

	// a different document under the same name is rejected
	other := MustParseArtifactJSON([]byte(`{"name":"PriceFeed","functions":[]}`))
	assert.Error(t, registry.Add(other))

	assert.Error(t, registry.Add(&ContractArtifact{}))
	assert.Panics(t, func() { registry.MustGet("Missing") })
}
