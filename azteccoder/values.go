package azteccoder

import (
	"fmt"

	"github.com/0xsequence/aztekit/sonic"
)

// ParseArgsJSON decodes a JSON array of raw argument values. Numbers are kept as
// json.Number so integers wider than 53 bits are not rounded.
func ParseArgsJSON(data []byte) ([]any, error) {
	var args []any
	if err := sonic.NumberConfig.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("azteccoder: arguments must be a json array: %w", err)
	}
	if args == nil {
		args = []any{}
	}
	return args, nil
}

// ParseArgsStrings turns command line style arguments into raw values: each entry
// is decoded as JSON when possible, and kept as a plain string otherwise. This lets
// `42`, `true`, `[1,2]` and `{"a":1}` pass through typed while `Bob` stays a string.
func ParseArgsStrings(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		var decoded any
		if err := sonic.NumberConfig.UnmarshalFromString(v, &decoded); err != nil {
			args[i] = v
			continue
		}
		args[i] = decoded
	}
	return args
}
