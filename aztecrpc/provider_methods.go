package aztecrpc

import (
	"context"
	"encoding/json"
)

func (p *Provider) GetNodeInfo(ctx context.Context) (*NodeInfo, error) {
	var ret *NodeInfo
	err := p.Do(ctx, GetNodeInfo().Into(&ret))
	if err == nil && ret == nil {
		return nil, ErrEmptyResponse
	}
	return ret, err
}

func (p *Provider) GetBlockNumber(ctx context.Context) (uint64, error) {
	var ret uint64
	err := p.Do(ctx, GetBlockNumber().Into(&ret))
	return ret, err
}

func (p *Provider) GetContracts(ctx context.Context) ([]string, error) {
	var ret []string
	err := p.Do(ctx, GetContracts().Into(&ret))
	return ret, err
}

func (p *Provider) GetContractMetadata(ctx context.Context, address string) (*ContractMetadata, error) {
	var ret *ContractMetadata
	err := p.Do(ctx, GetContractMetadata(address).Into(&ret))
	return ret, err
}

func (p *Provider) SimulateTx(ctx context.Context, txRequest any, opts SimulateOptions) (*SimulationResult, error) {
	var ret *SimulationResult
	err := p.Do(ctx, SimulateTx(txRequest, opts).Into(&ret))
	if err == nil && (ret == nil || len(ret.PrivateExecutionResult) == 0) {
		return nil, ErrEmptyResponse
	}
	return ret, err
}

func (p *Provider) ProveTx(ctx context.Context, txRequest any, privateExecutionResult json.RawMessage) (*ProvingResult, error) {
	var ret *ProvingResult
	err := p.Do(ctx, ProveTx(txRequest, privateExecutionResult).Into(&ret))
	if err == nil && (ret == nil || len(ret.Tx) == 0) {
		return nil, ErrEmptyResponse
	}
	return ret, err
}

func (p *Provider) SendTx(ctx context.Context, tx json.RawMessage) (string, error) {
	var ret string
	err := p.Do(ctx, SendTx(tx).Into(&ret))
	return ret, err
}
