package aztectxn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/0xsequence/aztekit/aztecartifact"
	"github.com/0xsequence/aztekit/azteccoder"
	"github.com/0xsequence/aztekit/aztecfield"
	"github.com/0xsequence/aztekit/aztecrpc"
	"github.com/goware/logger"
	"github.com/goware/superr"
)

var (
	ErrFieldOverflow = errors.New("aztectxn: argument is not a valid field element")
	ErrSimulate      = errors.New("aztectxn: simulateTx failed")
	ErrProve         = errors.New("aztectxn: proveTx failed")
	ErrSend          = errors.New("aztectxn: sendTx failed")
)

// PXE is the subset of the node api an interaction needs. *aztecrpc.Provider
// implements it.
type PXE interface {
	SimulateTx(ctx context.Context, txRequest any, opts aztecrpc.SimulateOptions) (*aztecrpc.SimulationResult, error)
	ProveTx(ctx context.Context, txRequest any, privateExecutionResult json.RawMessage) (*aztecrpc.ProvingResult, error)
	SendTx(ctx context.Context, tx json.RawMessage) (string, error)
}

var _ PXE = (*aztecrpc.Provider)(nil)

// Interaction is a resolved and encoded call of one contract function.
//
// The tx request names no target: the PXE routes the call through the Wallet
// account's entrypoint. Contract only labels logs.
type Interaction struct {
	Wallet   string
	Contract string
	Artifact *aztecartifact.ContractArtifact
	Function *aztecartifact.FunctionArtifact
	Selector azteccoder.FunctionSelector
	Args     []aztecfield.Fr

	txContext  TxContext
	argsHasher ArgsHasher
	simulate   aztecrpc.SimulateOptions
	log        logger.Logger
}

type Option func(*Interaction)

func WithTxContext(txContext TxContext) Option {
	return func(i *Interaction) {
		i.txContext = txContext
	}
}

func WithArgsHasher(h ArgsHasher) Option {
	return func(i *Interaction) {
		i.argsHasher = h
	}
}

func WithSimulateOptions(opts aztecrpc.SimulateOptions) Option {
	return func(i *Interaction) {
		i.simulate = opts
	}
}

func WithLogger(log logger.Logger) Option {
	return func(i *Interaction) {
		i.log = log
	}
}

// NewInteraction resolves nameOrSelector in the artifact and encodes args
// against its parameters. Every encoded element must lie in the BN254 scalar
// field; nothing is reduced.
func NewInteraction(wallet, contract string, artifact *aztecartifact.ContractArtifact, nameOrSelector string, args []any, options ...Option) (*Interaction, error) {
	fn, err := azteccoder.GetFunctionArtifact(artifact, nameOrSelector)
	if err != nil {
		return nil, err
	}

	encoded, err := azteccoder.EncodeArguments(fn.Parameters, args)
	if err != nil {
		return nil, fmt.Errorf("aztectxn: %s: %w", fn.Name, err)
	}
	for i, f := range encoded {
		if !f.InField() {
			return nil, fmt.Errorf("%w: %s element %d is %s", ErrFieldOverflow, fn.Name, i, f.String())
		}
	}

	in := &Interaction{
		Wallet:     wallet,
		Contract:   contract,
		Artifact:   artifact,
		Function:   fn,
		Selector:   azteccoder.SelectorOf(fn),
		Args:       encoded,
		txContext:  DefaultTxContext,
		argsHasher: ZeroArgsHasher,
		simulate:   aztecrpc.DefaultSimulateOptions,
	}
	for _, opt := range options {
		opt(in)
	}
	if in.log == nil {
		in.log = logger.NewLogger(logger.LogLevel_INFO)
	}
	return in, nil
}

// Request builds the execution request sent to the node.
func (in *Interaction) Request() (*TxExecutionRequest, error) {
	hash, err := in.argsHasher(in.Args)
	if err != nil {
		return nil, fmt.Errorf("aztectxn: hashing arguments of %s: %w", in.Function.Name, err)
	}
	args := append([]aztecfield.Fr{}, in.Args...)
	return &TxExecutionRequest{
		Origin:            in.Wallet,
		FunctionSelector:  in.Selector.Hex(),
		Args:              args,
		FirstCallArgsHash: hash,
		TxContext:         in.txContext,
		AuthWitnesses:     []any{},
		ArgsOfCalls:       []HashedValues{{Values: args, Hash: hash}},
		Capsules:          []any{},
	}, nil
}

// Simulate runs simulateTx only. Utility and static functions stop here.
func (in *Interaction) Simulate(ctx context.Context, pxe PXE) (*aztecrpc.SimulationResult, error) {
	req, err := in.Request()
	if err != nil {
		return nil, err
	}
	res, err := pxe.SimulateTx(ctx, req, in.simulate)
	if err != nil {
		return nil, superr.New(ErrSimulate, err)
	}
	return res, nil
}

// Send simulates, proves and submits the call, stopping at the first failing
// stage. It returns the tx hash reported by the node.
func (in *Interaction) Send(ctx context.Context, pxe PXE) (string, error) {
	req, err := in.Request()
	if err != nil {
		return "", err
	}

	in.log.Debugf("aztectxn: simulating %s (%s) on %s", in.Function.Name, in.Selector, in.Contract)
	sim, err := pxe.SimulateTx(ctx, req, in.simulate)
	if err != nil {
		return "", superr.New(ErrSimulate, err)
	}

	in.log.Debugf("aztectxn: proving %s", in.Function.Name)
	proved, err := pxe.ProveTx(ctx, req, sim.PrivateExecutionResult)
	if err != nil {
		return "", superr.New(ErrProve, err)
	}

	txHash, err := pxe.SendTx(ctx, proved.Tx)
	if err != nil {
		return "", superr.New(ErrSend, err)
	}
	in.log.Infof("aztectxn: sent %s on %s, tx %s", in.Function.Name, in.Contract, txHash)
	return txHash, nil
}
