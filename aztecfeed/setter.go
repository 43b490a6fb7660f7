package aztecfeed

import (
	"context"

	"github.com/0xsequence/aztekit/aztecartifact"
	"github.com/0xsequence/aztekit/aztecfield"
	"github.com/0xsequence/aztekit/aztectxn"
)

// Setter publishes a new feed value and returns a reference to the submission,
// typically a tx hash.
type Setter interface {
	Set(ctx context.Context, value aztecfield.Fr) (string, error)
}

type SetterFunc func(ctx context.Context, value aztecfield.Fr) (string, error)

func (f SetterFunc) Set(ctx context.Context, value aztecfield.Fr) (string, error) {
	return f(ctx, value)
}

// TxSetter publishes values by calling a single-argument contract function,
// `set_just_field` unless Function says otherwise.
type TxSetter struct {
	PXE      aztectxn.PXE
	Wallet   string
	Contract string
	Artifact *aztecartifact.ContractArtifact
	Function string
	Options  []aztectxn.Option
}

func (s *TxSetter) Set(ctx context.Context, value aztecfield.Fr) (string, error) {
	function := s.Function
	if function == "" {
		function = "set_just_field"
	}
	in, err := aztectxn.NewInteraction(s.Wallet, s.Contract, s.Artifact, function, []any{value.String()}, s.Options...)
	if err != nil {
		return "", err
	}
	return in.Send(ctx, s.PXE)
}
