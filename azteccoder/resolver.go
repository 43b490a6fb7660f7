package azteccoder

import (
	"fmt"

	"github.com/0xsequence/aztekit/aztecartifact"
)

// GetFunctionArtifact finds a function by exact name, or failing that, by selector.
// Selectors are recomputed on every call; artifacts are small enough that this
// never matters.
func GetFunctionArtifact(artifact *aztecartifact.ContractArtifact, nameOrSelector string) (*aztecartifact.FunctionArtifact, error) {
	if artifact == nil {
		return nil, fmt.Errorf("%w '%s': artifact is nil", ErrUnknownFunction, nameOrSelector)
	}

	if fn, ok := artifact.Function(nameOrSelector); ok {
		return fn, nil
	}

	selector, err := ParseFunctionSelector(nameOrSelector)
	if err == nil {
		for i := range artifact.Functions {
			fn := &artifact.Functions[i]
			if SelectorOf(fn) == selector {
				return fn, nil
			}
		}
	}

	return nil, fmt.Errorf("%w '%s' in contract %s", ErrUnknownFunction, nameOrSelector, artifact.Name)
}
