package aztecrpc

import (
	"encoding/json"
	"fmt"
	"strings"
)

func GetNodeInfo() CallBuilder[*NodeInfo] {
	return NewCallBuilder[*NodeInfo]("getNodeInfo", nil)
}

func GetBlockNumber() CallBuilder[uint64] {
	return NewCallBuilder[uint64]("getBlockNumber", intoUint64)
}

func GetContracts() CallBuilder[[]string] {
	return NewCallBuilder[[]string]("getContracts", nil)
}

func GetContractMetadata(address string) CallBuilder[*ContractMetadata] {
	return NewCallBuilder[*ContractMetadata]("getContractMetadata", nil, address)
}

func SimulateTx(txRequest any, opts SimulateOptions) CallBuilder[*SimulationResult] {
	return NewCallBuilder[*SimulationResult]("simulateTx", nil, opts.params(txRequest)...)
}

func ProveTx(txRequest any, privateExecutionResult json.RawMessage) CallBuilder[*ProvingResult] {
	b := NewCallBuilder[*ProvingResult]("proveTx", nil, provingRequest{
		TxRequest:              txRequest,
		PrivateExecutionResult: privateExecutionResult,
	})
	if len(privateExecutionResult) == 0 {
		b.err = fmt.Errorf("aztecrpc: proveTx requires a private execution result")
	}
	return b
}

func SendTx(tx json.RawMessage) CallBuilder[string] {
	b := NewCallBuilder[string]("sendTx", intoTxHash, tx)
	if len(tx) == 0 {
		b.err = fmt.Errorf("aztecrpc: sendTx requires a proven tx")
	}
	return b
}

// intoUint64 accepts both plain numbers and 0x hex quantities.
func intoUint64(raw json.RawMessage, ret *uint64) error {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v, err := n.Int64()
		if err != nil || v < 0 {
			return fmt.Errorf("aztecrpc: invalid number %s", raw)
		}
		*ret = uint64(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("aztecrpc: invalid number %s: %w", raw, err)
	}
	var v uint64
	if _, err := fmt.Sscanf(s, "0x%x", &v); err != nil {
		return fmt.Errorf("aztecrpc: invalid number %q: %w", s, err)
	}
	*ret = v
	return nil
}

// intoTxHash reads sendTx results, which are either a bare hash string or an
// object carrying the hash.
func intoTxHash(raw json.RawMessage, ret *string) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*ret = s
		return nil
	}
	var obj struct {
		Hash   string `json:"hash"`
		TxHash string `json:"txHash"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("aztecrpc: unexpected sendTx result %s: %w", raw, err)
	}
	*ret = strings.TrimSpace(obj.Hash + obj.TxHash)
	if *ret == "" {
		return fmt.Errorf("aztecrpc: sendTx result %s has no hash", raw)
	}
	return nil
}
