// Package cmd implements the command-line interface for vpcalc.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vpcalc/vpcalc/color"
	"github.com/vpcalc/vpcalc/constant"
	"github.com/vpcalc/vpcalc/icon"
	"github.com/vpcalc/vpcalc/key"
	"github.com/vpcalc/vpcalc/log"
	"github.com/vpcalc/vpcalc/style"
	"github.com/vpcalc/vpcalc/tui"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().IntP("precision", "p", -1, "Decimals shown for results, negative for the shortest exact form")
	lo.Must0(viper.BindPFlag(key.CalcPrecision, rootCmd.PersistentFlags().Lookup("precision")))

	rootCmd.PersistentFlags().BoolP("save", "s", true, "Save the stack when leaving")
	lo.Must0(viper.BindPFlag(key.SessionSave, rootCmd.PersistentFlags().Lookup("save")))

	rootCmd.PersistentFlags().BoolP("restore", "r", true, "Restore the stack saved by the previous run")
	lo.Must0(viper.BindPFlag(key.SessionRestore, rootCmd.PersistentFlags().Lookup("restore")))

	rootCmd.Flags().BoolP("keypad", "k", true, "Show the keypad next to the display")
	lo.Must0(viper.BindPFlag(key.TUIShowKeypad, rootCmd.Flags().Lookup("keypad")))
}

// rootCmd opens the full-screen calculator.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "A visual postfix calculator for the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.Fg(color.HiPurple)(style.Italic("    - A visual postfix calculator for the terminal")),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := tui.Options{
			Precision: viper.GetInt(key.CalcPrecision),
			Restore:   viper.GetBool(key.SessionRestore),
			Save:      viper.GetBool(key.SessionSave),
		}
		handleErr(tui.Run(&options))
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
