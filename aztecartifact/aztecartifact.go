package aztecartifact

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/0xsequence/aztekit/sonic"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/zeebo/xxh3"
)

type FunctionType string

const (
	FunctionTypePrivate FunctionType = "private"
	FunctionTypePublic  FunctionType = "public"
	FunctionTypeUtility FunctionType = "utility"
)

// ContractArtifact is the typed schema of a compiled contract. It is built once by
// ParseArtifactJSON and must be treated as read-only afterwards.
type ContractArtifact struct {
	Name      string
	Functions []FunctionArtifact

	// Auxiliary metadata, carried through opaquely.
	NonDispatchPublicFunctions json.RawMessage
	Outputs                    json.RawMessage
	StorageLayout              json.RawMessage
	Notes                      json.RawMessage
	FileMap                    json.RawMessage

	// Checksum is the xxh3 hash of the source document.
	Checksum uint64
}

type FunctionArtifact struct {
	Name            string
	FunctionType    FunctionType
	IsInitializer   bool
	IsStatic        bool
	Parameters      []AbiParameter
	ReturnTypes     []AbiType
	Bytecode        []byte
	VerificationKey *string
	DebugSymbols    string
	Debug           *FunctionDebugMetadata
}

type FunctionDebugMetadata struct {
	Raw json.RawMessage
}

// Function returns the function with an exact name match.
func (a *ContractArtifact) Function(name string) (*FunctionArtifact, bool) {
	for i := range a.Functions {
		if a.Functions[i].Name == name {
			return &a.Functions[i], true
		}
	}
	return nil, false
}

func (a *ContractArtifact) FunctionNames() []string {
	names := make([]string, len(a.Functions))
	for i, f := range a.Functions {
		names[i] = f.Name
	}
	return names
}

// RawArtifact mirrors the artifact document. Both the aztec.js layout (camelCase,
// flat `parameters`) and the raw nargo layout (snake_case, `abi.parameters`) are read.
type RawArtifact struct {
	Name                       string          `json:"name"`
	Functions                  []RawFunction   `json:"functions"`
	NonDispatchPublicFunctions json.RawMessage `json:"nonDispatchPublicFunctions"`
	Outputs                    json.RawMessage `json:"outputs"`
	StorageLayout              json.RawMessage `json:"storageLayout"`
	Notes                      json.RawMessage `json:"notes"`
	FileMap                    json.RawMessage `json:"fileMap"`
	FileMapNargo               json.RawMessage `json:"file_map"`
}

type RawFunction struct {
	Name            string          `json:"name"`
	FunctionType    string          `json:"functionType"`
	IsUnconstrained bool            `json:"is_unconstrained"`
	IsInitializer   bool            `json:"isInitializer"`
	IsStatic        bool            `json:"isStatic"`
	Parameters      []AbiParameter  `json:"parameters"`
	ReturnTypes     []AbiType       `json:"returnTypes"`
	Abi             *RawFunctionAbi `json:"abi"`
	Bytecode        string          `json:"bytecode"`
	VerificationKey *string         `json:"verificationKey"`
	DebugSymbols    string          `json:"debugSymbols"`
	DebugSymbolsRaw string          `json:"debug_symbols"`
	Debug           json.RawMessage `json:"debug"`
}

type RawFunctionAbi struct {
	Parameters []AbiParameter `json:"parameters"`
}

func ParseArtifactJSON(data []byte) (*ContractArtifact, error) {
	var raw RawArtifact
	if err := sonic.Config.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("aztecartifact: unable to decode artifact json: %w", err)
	}

	artifact, err := raw.ToArtifact()
	if err != nil {
		return nil, err
	}
	artifact.Checksum = xxh3.Hash(data)
	return artifact, nil
}

func MustParseArtifactJSON(data []byte) *ContractArtifact {
	artifact, err := ParseArtifactJSON(data)
	if err != nil {
		panic(err)
	}
	return artifact
}

func ParseArtifactFile(path string) (*ContractArtifact, error) {
	filedata, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("aztecartifact: %w", err)
	}
	artifact, err := ParseArtifactJSON(filedata)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return artifact, nil
}

func (r RawArtifact) ToArtifact() (*ContractArtifact, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("aztecartifact: contract name is empty")
	}

	artifact := &ContractArtifact{
		Name:                       r.Name,
		Functions:                  make([]FunctionArtifact, 0, len(r.Functions)),
		NonDispatchPublicFunctions: r.NonDispatchPublicFunctions,
		Outputs:                    r.Outputs,
		StorageLayout:              r.StorageLayout,
		Notes:                      r.Notes,
		FileMap:                    r.FileMap,
	}
	if len(artifact.FileMap) == 0 {
		artifact.FileMap = r.FileMapNargo
	}

	names := mapset.NewThreadUnsafeSet[string]()
	for i, rf := range r.Functions {
		fn, err := rf.toFunction()
		if err != nil {
			return nil, fmt.Errorf("aztecartifact: contract %s function %d: %w", r.Name, i, err)
		}
		if !names.Add(fn.Name) {
			return nil, fmt.Errorf("aztecartifact: contract %s has duplicate function '%s'", r.Name, fn.Name)
		}
		artifact.Functions = append(artifact.Functions, fn)
	}

	return artifact, nil
}

func (rf RawFunction) toFunction() (FunctionArtifact, error) {
	if rf.Name == "" {
		return FunctionArtifact{}, fmt.Errorf("function name is empty")
	}

	params := rf.Parameters
	if params == nil && rf.Abi != nil {
		params = rf.Abi.Parameters
	}
	for _, p := range params {
		if err := p.Type.Validate(rf.Name + "." + p.Name); err != nil {
			return FunctionArtifact{}, err
		}
	}

	bytecode, err := decodeBytecode(rf.Bytecode)
	if err != nil {
		return FunctionArtifact{}, fmt.Errorf("%s: %w", rf.Name, err)
	}

	fnType := FunctionType(rf.FunctionType)
	if fnType == "" && rf.IsUnconstrained {
		fnType = FunctionTypeUtility
	}

	debugSymbols := rf.DebugSymbols
	if debugSymbols == "" {
		debugSymbols = rf.DebugSymbolsRaw
	}

	var debug *FunctionDebugMetadata
	if len(rf.Debug) > 0 && string(rf.Debug) != "null" {
		debug = &FunctionDebugMetadata{Raw: rf.Debug}
	}

	return FunctionArtifact{
		Name:            rf.Name,
		FunctionType:    fnType,
		IsInitializer:   rf.IsInitializer,
		IsStatic:        rf.IsStatic,
		Parameters:      params,
		ReturnTypes:     rf.ReturnTypes,
		Bytecode:        bytecode,
		VerificationKey: rf.VerificationKey,
		DebugSymbols:    debugSymbols,
		Debug:           debug,
	}, nil
}

// decodeBytecode accepts 0x-prefixed hex or standard base64, which is what the
// noir toolchain emits.
func decodeBytecode(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	if strings.HasPrefix(s, "0x") {
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex bytecode: %w", err)
		}
		return b, nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 bytecode: %w", err)
	}
	return b, nil
}
