package aztectxn

import "github.com/0xsequence/aztekit/aztecfield"

type Gas struct {
	DaGas uint64 `json:"daGas"`
	L2Gas uint64 `json:"l2Gas"`
}

type GasFees struct {
	FeePerDaGas aztecfield.Fr `json:"feePerDaGas"`
	FeePerL2Gas aztecfield.Fr `json:"feePerL2Gas"`
}

type GasSettings struct {
	GasLimits             Gas     `json:"gasLimits"`
	TeardownGasLimits     Gas     `json:"teardownGasLimits"`
	MaxFeesPerGas         GasFees `json:"maxFeesPerGas"`
	MaxPriorityFeesPerGas GasFees `json:"maxPriorityFeesPerGas"`
}

type TxContext struct {
	ChainID     aztecfield.Fr `json:"chainId"`
	Version     aztecfield.Fr `json:"version"`
	GasSettings GasSettings   `json:"gasSettings"`
}

var DefaultGasSettings = GasSettings{
	GasLimits:         Gas{DaGas: 1_000_000_000, L2Gas: 1_000_000_000},
	TeardownGasLimits: Gas{DaGas: 6_000_000, L2Gas: 6_000_000},
	MaxFeesPerGas:     GasFees{FeePerL2Gas: aztecfield.FromUint64(0x2aa8)},
}

// DefaultTxContext targets a local sandbox.
var DefaultTxContext = TxContext{
	ChainID:     aztecfield.FromUint64(1),
	Version:     aztecfield.FromUint64(1),
	GasSettings: DefaultGasSettings,
}
