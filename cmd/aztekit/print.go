package main

import (
	"github.com/0xsequence/aztekit/sonic"
)

// PrettyJSON renders v as indented JSON without a trailing newline.
func PrettyJSON(v any) (string, error) {
	b, err := sonic.Config.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
