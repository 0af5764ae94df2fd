// Package cmd implements the command-line interface for cadence.
package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cadence-dl/cadence/auth"
	"github.com/cadence-dl/cadence/color"
	"github.com/cadence-dl/cadence/extractor"
	"github.com/cadence-dl/cadence/icon"
	"github.com/cadence-dl/cadence/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// vendorNames are the account-scoped services a user token can be stored for.
// Sub-extractors of a vendor share the same token, so only the bare vendor
// names are offered here.
func vendorNames() []string {
	names := lo.Map(extractor.All(), func(e extractor.Extractor, _ int) string {
		name, _, _ := strings.Cut(e.Name(), ":")
		return name
	})
	return lo.Uniq(names)
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("token", "t", "", "Provide the media-user-token directly instead of prompting")
	lo.Must0(loginCmd.RegisterFlagCompletionFunc("token", cobra.NoFileCompletions))
}

// loginCmd stores an account media-user-token in the system keyring.
var loginCmd = &cobra.Command{
	Use:   "login [vendor]",
	Short: "Store an account token for a vendor in the system keyring",
	Long: `Store an account media-user-token for a vendor in the system keyring.
The token unlocks account-scoped catalog features such as lyrics.
Without a vendor argument an interactive picker is shown.`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return vendorNames(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		var vendor string
		if len(args) == 1 {
			vendor = args[0]
			if !lo.Contains(vendorNames(), vendor) {
				handleErr(fmt.Errorf("unknown vendor %s", style.Fg(color.Red)(vendor)))
			}
		} else {
			handleErr(survey.AskOne(&survey.Select{
				Message: "Which vendor is the token for?",
				Options: vendorNames(),
			}, &vendor))
		}

		token := lo.Must(cmd.Flags().GetString("token"))
		if token == "" {
			handleErr(survey.AskOne(&survey.Password{
				Message: "Paste the media-user-token:",
			}, &token, survey.WithValidator(survey.Required)))
		}

		handleErr(auth.SetMediaUserToken(vendor, token))

		fmt.Printf(
			"%s stored token for %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(vendor),
		)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// logoutCmd removes a stored vendor token from the system keyring.
var logoutCmd = &cobra.Command{
	Use:   "logout [vendor]",
	Short: "Remove a stored vendor token from the system keyring",
	Args:  cobra.ExactArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return vendorNames(), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		vendor := args[0]
		handleErr(auth.DeleteMediaUserToken(vendor))

		fmt.Printf(
			"%s removed token for %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(vendor),
		)
	},
}
