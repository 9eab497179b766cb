package cmd

import (
	"encoding/json"
	"io"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vpcalc/vpcalc/calc"
	"github.com/vpcalc/vpcalc/filesystem"
	"github.com/vpcalc/vpcalc/inline"
	"github.com/vpcalc/vpcalc/key"
)

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON object")
	evalCmd.Flags().StringP("output", "o", "", "Write the result to a file instead of stdout")
	evalCmd.Flags().BoolP("keep-going", "k", false, "Continue after a failed label and exit successfully")
}

func completionLabels(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(calc.Tokens(), func(t calc.Token, _ int) string {
		return t.String()
	}), cobra.ShellCompDirectiveNoFileComp
}

// evalCmd evaluates keypad labels given as arguments.
var evalCmd = &cobra.Command{
	Use:   "eval [labels...]",
	Short: "Evaluate keypad labels without user interaction",
	Long: `Feed keypad labels to a fresh calculator and print the resulting stack, top first.

Labels: 0-9 . + - * / CHS CLx BS Enter
An argument containing spaces holds several labels.`,
	Example: `  vpcalc eval 3 Enter 4 +
  vpcalc eval "1 2 . 5 Enter 2 *" --json`,
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionLabels,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			writer io.Writer = cmd.OutOrStdout()
			file   afero.File
		)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			var err error
			file, err = filesystem.API().Create(output)
			handleErr(err)
			writer = file
		}

		options := &inline.Options{
			Out:       writer,
			Labels:    args,
			Json:      lo.Must(cmd.Flags().GetBool("json")),
			KeepGoing: lo.Must(cmd.Flags().GetBool("keep-going")),
			Precision: viper.GetInt(key.CalcPrecision),
		}

		err := inline.Run(options)

		// handleErr exits, so the file is closed first
		if file != nil {
			if closeErr := file.Close(); err == nil {
				err = closeErr
			}
		}

		handleErr(err)
	},
}

func init() {
	evalCmd.AddCommand(evalSchemaCmd)
}

// evalSchemaCmd prints the JSON schema of the eval --json output.
var evalSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the eval output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return "inline." + t.Name()
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(&inline.Output{})))
	},
}
