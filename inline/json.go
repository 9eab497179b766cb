package inline

import (
	"encoding/json"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/vpcalc/vpcalc/calc"
)

// Output is the structured result of an evaluation.
type Output struct {
	Tokens  []string  `json:"tokens" jsonschema:"description=Labels fed to the calculator in order."`
	Stack   []float64 `json:"stack" jsonschema:"description=Stack contents after the last processed label; top first. Overflowed values are strings such as +Inf."`
	Display string    `json:"display" jsonschema:"description=Text on the display after the last processed label."`
	Error   string    `json:"error,omitempty" jsonschema:"description=Message of the first failed operation."`
}

type outputJSON struct {
	Tokens  []string    `json:"tokens"`
	Stack   calc.Values `json:"stack"`
	Display string      `json:"display"`
	Error   string      `json:"error,omitempty"`
}

// MarshalJSON writes non-finite stack values as strings.
func (o Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(outputJSON{o.Tokens, o.Stack, o.Display, o.Error})
}

func (o *Output) UnmarshalJSON(data []byte) error {
	var raw outputJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Output{raw.Tokens, raw.Stack, raw.Display, raw.Error}
	return nil
}

// JSONSchemaExtend documents the string form of non-finite stack values.
func (Output) JSONSchemaExtend(schema *jsonschema.Schema) {
	stack, ok := schema.Properties.Get("stack")
	if !ok {
		return
	}

	stack.Items = &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "number"},
			{Type: "string", Enum: []any{"+Inf", "-Inf", "NaN"}},
		},
	}
}

func writeJson(out io.Writer, output *Output) error {
	return json.NewEncoder(out).Encode(output)
}
