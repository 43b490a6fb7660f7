package sonic

import "github.com/bytedance/sonic"

var Config = sonic.Config{
	// We can set this to true after updating `MarshalText()` methods to return quoted strings.
	NoQuoteTextMarshaler:    false,
	NoValidateJSONMarshaler: true,
	NoValidateJSONSkip:      true,
	SortMapKeys:             true,
}.Froze()

// NumberConfig decodes untyped JSON numbers into json.Number instead of float64, so
// contract arguments wider than 53 bits survive decoding intact.
var NumberConfig = sonic.Config{
	UseNumber:               true,
	NoValidateJSONMarshaler: true,
}.Froze()
