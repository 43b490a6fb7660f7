package aztecrpc

import "encoding/json"

type NodeInfo struct {
	NodeVersion               string          `json:"nodeVersion"`
	L1ChainID                 uint64          `json:"l1ChainId"`
	RollupVersion             uint64          `json:"rollupVersion"`
	ENR                       string          `json:"enr,omitempty"`
	L1ContractAddresses       json.RawMessage `json:"l1ContractAddresses,omitempty"`
	ProtocolContractAddresses json.RawMessage `json:"protocolContractAddresses,omitempty"`
}

type ContractInstance struct {
	Address                 string `json:"address"`
	Version                 any    `json:"version,omitempty"`
	Salt                    string `json:"salt,omitempty"`
	Deployer                string `json:"deployer,omitempty"`
	CurrentContractClassID  string `json:"currentContractClassId"`
	OriginalContractClassID string `json:"originalContractClassId,omitempty"`
	InitializationHash      string `json:"initializationHash,omitempty"`
}

type ContractMetadata struct {
	ContractInstance           *ContractInstance `json:"contractInstance"`
	IsContractInitialized      bool              `json:"isContractInitialized"`
	IsContractPubliclyDeployed bool              `json:"isContractPubliclyDeployed"`
}

// SimulateOptions are the trailing positional parameters of simulateTx.
type SimulateOptions struct {
	SimulatePublic     bool
	MsgSender          *string
	SkipTxValidation   bool
	SkipFeeEnforcement bool
	Scopes             []string
}

var DefaultSimulateOptions = SimulateOptions{SimulatePublic: true}

func (o SimulateOptions) params(txRequest any) []any {
	var msgSender, scopes any
	if o.MsgSender != nil {
		msgSender = *o.MsgSender
	}
	if o.Scopes != nil {
		scopes = o.Scopes
	}
	return []any{txRequest, o.SimulatePublic, msgSender, o.SkipTxValidation, o.SkipFeeEnforcement, scopes}
}

// SimulationResult keeps the private execution result opaque; it is only ever
// handed back to proveTx.
type SimulationResult struct {
	PrivateExecutionResult json.RawMessage `json:"privateExecutionResult"`
	PublicOutput           json.RawMessage `json:"publicOutput,omitempty"`
}

type ProvingResult struct {
	Tx json.RawMessage `json:"tx"`
}

type provingRequest struct {
	TxRequest              any             `json:"txRequest"`
	PrivateExecutionResult json.RawMessage `json:"privateExecutionResult"`
}
