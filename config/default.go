package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vpcalc/vpcalc/color"
	"github.com/vpcalc/vpcalc/constant"
	"github.com/vpcalc/vpcalc/key"
	"github.com/vpcalc/vpcalc/style"
)

// Field is a configuration key with its default value and description.
type Field struct {
	Key         string
	Value       any
	Description string
}

var fields = []Field{
	{key.CalcPrecision, -1, "Digits after the decimal point when displaying numbers.\nNegative values print the shortest exact form"},
	{key.SessionSave, true, "Save the stack when the calculator exits"},
	{key.SessionRestore, true, "Restore the stack saved by the previous run"},
	{key.TUIShowKeypad, true, "Render the keypad next to the display"},
	{key.TUIShowIndices, false, "Prefix stack rows with their depth (0 is the top)"},
	{key.TUIStackWidth, 24, "Width of the stack panel in columns"},
	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)"},
	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},
	{key.CliColored, true, "Enable colored CLI output"},
}

// Default maps every configuration key to its field.
var Default = make(map[string]Field, len(fields))

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func init() {
	for _, field := range fields {
		if _, exists := Default[field.Key]; exists {
			panic("duplicate config key: " + field.Key)
		}

		Default[field.Key] = field
		EnvExposed = append(EnvExposed, field.Key)
	}
}

// Env returns the environment variable overriding this field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", f.Value)
	}
}

// MarshalJSON renders the field with its current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// highlight colors booleans by truth and strings in yellow.
func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)("true")
		}
		return style.Fg(color.Red)("false")
	case string:
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    viper.Get,
	"hl":       highlight,
	"typename": (*Field).typeName,
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ typename . }}`))
