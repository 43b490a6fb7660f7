package aztectxn

import (
	"github.com/0xsequence/aztekit/aztecfield"
)

// HashedValues pairs a call's flattened arguments with their hash.
type HashedValues struct {
	Values []aztecfield.Fr `json:"values"`
	Hash   aztecfield.Fr   `json:"hash"`
}

// TxExecutionRequest is the payload handed to simulateTx and proveTx.
type TxExecutionRequest struct {
	Origin            string          `json:"origin"`
	FunctionSelector  string          `json:"functionSelector"`
	Args              []aztecfield.Fr `json:"args"`
	FirstCallArgsHash aztecfield.Fr   `json:"firstCallArgsHash"`
	TxContext         TxContext       `json:"txContext"`
	AuthWitnesses     []any           `json:"authWitnesses"`
	ArgsOfCalls       []HashedValues  `json:"argsOfCalls"`
	Capsules          []any           `json:"capsules"`
}

// ArgsHasher computes firstCallArgsHash from the flattened arguments.
type ArgsHasher func(args []aztecfield.Fr) (aztecfield.Fr, error)

// ZeroArgsHasher always returns zero. Sandboxes with hash checks disabled
// accept it.
func ZeroArgsHasher([]aztecfield.Fr) (aztecfield.Fr, error) {
	return aztecfield.Zero, nil
}
