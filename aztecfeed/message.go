package aztecfeed

import (
	"encoding/json"
	"fmt"

	"github.com/0xsequence/aztekit/aztecfield"
)

const (
	ActionSet = "set"
	ActionGet = "get"
)

type Request struct {
	Action string      `json:"action"`
	Value  json.Number `json:"value,omitempty"`
}

type Response struct {
	Status string      `json:"status,omitempty"`
	Value  json.Number `json:"value,omitempty"`
	TxHash string      `json:"txHash,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func numberOf(f aztecfield.Fr) json.Number {
	return json.Number(f.String())
}

func parseNumber(n json.Number) (aztecfield.Fr, error) {
	if n == "" {
		return aztecfield.Zero, fmt.Errorf("aztecfeed: missing value")
	}
	return aztecfield.FromDecimal(n.String())
}
