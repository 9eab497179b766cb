package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vpcalc/vpcalc/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)
}

// miniCmd runs the calculator as a line prompt.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Run the calculator as a line prompt",
	Long: `Read keypad labels line by line and print the stack after each line.

Labels: 0-9 . + - * / CHS CLx BS Enter
Type quit or press ctrl+c to leave.`,
	Example: "  vpcalc mini --precision 2",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(mini.Run(&mini.Options{Out: cmd.OutOrStdout()}))
	},
}
