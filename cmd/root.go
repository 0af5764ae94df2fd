// Package cmd implements the command-line interface for cadence.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cadence-dl/cadence/color"
	"github.com/cadence-dl/cadence/constant"
	"github.com/cadence-dl/cadence/icon"
	"github.com/cadence-dl/cadence/key"
	"github.com/cadence-dl/cadence/log"
	"github.com/cadence-dl/cadence/style"
	"github.com/cadence-dl/cadence/util"
	"github.com/cadence-dl/cadence/version"
	"github.com/cadence-dl/cadence/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("region", "r", "", "Override the storefront region for catalog lookups")
	lo.Must0(viper.BindPFlag(key.CatalogRegion, rootCmd.PersistentFlags().Lookup("region")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

const rootTagline = "Resolve streaming-catalog URLs into normalized media records"

// rootCmd defines the entry point for the cadence application.
var rootCmd = &cobra.Command{
	Use:   constant.Cadence,
	Short: rootTagline,
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render(wrapToTerminal("    - "+rootTagline)),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// wrapToTerminal soft-wraps a line to the current terminal width so the help
// banner stays readable in narrow windows.
func wrapToTerminal(s string) string {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// Execute initializes child command routing and processes the CLI entry point.
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
