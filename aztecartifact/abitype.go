package aztecartifact

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

type AbiKind string

const (
	KindField   AbiKind = "field"
	KindBoolean AbiKind = "boolean"
	KindArray   AbiKind = "array"
	KindString  AbiKind = "string"
	KindStruct  AbiKind = "struct"
	KindInteger AbiKind = "integer"
)

// MaxIntegerWidth is the widest integer type accepted in a schema.
const MaxIntegerWidth = 256

type Sign string

const (
	Unsigned Sign = "unsigned"
	Signed   Sign = "signed"
)

// AbiType describes the shape of a single function parameter. It is a tagged union
// over Kind; only the fields of the active variant are meaningful:
//
//	array:   Elem, Length
//	string:  Length
//	struct:  Fields, Path
//	integer: Sign, Width
//
// Nested types are owned by their parent node, so a schema is always an acyclic tree.
type AbiType struct {
	Kind   AbiKind       `json:"kind"`
	Length int           `json:"length,omitempty"`
	Elem   *AbiType      `json:"type,omitempty"`
	Fields []StructField `json:"fields,omitempty"`
	Path   string        `json:"path,omitempty"`
	Sign   Sign          `json:"sign,omitempty"`
	Width  int           `json:"width,omitempty"`
}

type StructField struct {
	Name string  `json:"name"`
	Type AbiType `json:"type"`
}

func FieldType() AbiType {
	return AbiType{Kind: KindField}
}

func BooleanType() AbiType {
	return AbiType{Kind: KindBoolean}
}

func ArrayType(elem AbiType, length int) AbiType {
	return AbiType{Kind: KindArray, Elem: &elem, Length: length}
}

func StringType(length int) AbiType {
	return AbiType{Kind: KindString, Length: length}
}

func StructType(path string, fields ...StructField) AbiType {
	return AbiType{Kind: KindStruct, Path: path, Fields: fields}
}

func IntegerType(signed bool, width int) AbiType {
	sign := Unsigned
	if signed {
		sign = Signed
	}
	return AbiType{Kind: KindInteger, Sign: sign, Width: width}
}

func (t AbiType) Signed() bool {
	return t.Sign == Signed
}

// LeafCount returns the number of field elements a conforming value of this type
// flattens into. It depends on the type only, never on the value.
func (t AbiType) LeafCount() int {
	switch t.Kind {
	case KindField, KindBoolean, KindInteger:
		return 1
	case KindString:
		return t.Length
	case KindArray:
		if t.Elem == nil {
			return 0
		}
		return t.Length * t.Elem.LeafCount()
	case KindStruct:
		n := 0
		for _, f := range t.Fields {
			n += f.Type.LeafCount()
		}
		return n
	default:
		return 0
	}
}

// String renders the canonical form used in function signatures, ie. `field`,
// `u32`, `field[3]` or `string[5]`. Structs render as the literal `struct`
// regardless of their fields.
func (t AbiType) String() string {
	switch t.Kind {
	case KindField:
		return "field"
	case KindBoolean:
		return "bool"
	case KindArray:
		if t.Elem == nil {
			return fmt.Sprintf("<invalid>[%d]", t.Length)
		}
		return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Length)
	case KindString:
		return fmt.Sprintf("string[%d]", t.Length)
	case KindStruct:
		return "struct"
	case KindInteger:
		if t.Signed() {
			return fmt.Sprintf("i%d", t.Width)
		}
		return fmt.Sprintf("u%d", t.Width)
	default:
		return fmt.Sprintf("<unknown:%s>", t.Kind)
	}
}

// Validate checks the type tree is well formed. path names the node in errors.
func (t AbiType) Validate(path string) error {
	switch t.Kind {
	case KindField, KindBoolean:
		return nil

	case KindArray:
		if t.Elem == nil {
			return fmt.Errorf("%s: array type is missing its element type", path)
		}
		if t.Length < 0 {
			return fmt.Errorf("%s: negative array length %d", path, t.Length)
		}
		return t.Elem.Validate(path + "[]")

	case KindString:
		if t.Length < 0 {
			return fmt.Errorf("%s: negative string length %d", path, t.Length)
		}
		return nil

	case KindStruct:
		seen := mapset.NewThreadUnsafeSet[string]()
		for _, f := range t.Fields {
			if f.Name == "" {
				return fmt.Errorf("%s: struct field with empty name", path)
			}
			if !seen.Add(f.Name) {
				return fmt.Errorf("%s: duplicate struct field '%s'", path, f.Name)
			}
			if err := f.Type.Validate(path + "." + f.Name); err != nil {
				return err
			}
		}
		return nil

	case KindInteger:
		if t.Width <= 0 || t.Width > MaxIntegerWidth {
			return fmt.Errorf("%s: integer width must be between 1 and %d, got %d", path, MaxIntegerWidth, t.Width)
		}
		if t.Sign != Signed && t.Sign != Unsigned {
			return fmt.Errorf("%s: invalid integer sign '%s'", path, t.Sign)
		}
		return nil

	case "":
		return fmt.Errorf("%s: abi type is missing its kind", path)

	default:
		return fmt.Errorf("%s: unknown abi type kind '%s'", path, strings.ToLower(string(t.Kind)))
	}
}

type AbiParameter struct {
	Name       string  `json:"name"`
	Type       AbiType `json:"type"`
	Visibility string  `json:"visibility,omitempty"`
}

// ParameterTypes returns the ordered types of params.
func ParameterTypes(params []AbiParameter) []AbiType {
	types := make([]AbiType, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return types
}
