// Package cmd implements the command-line interface for cadence.
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cadence-dl/cadence/color"
	"github.com/cadence-dl/cadence/storefront"
	"github.com/cadence-dl/cadence/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(regionsCmd)

	regionsCmd.Flags().BoolP("raw", "r", false, "Suppress storefront identifiers in the output")
	regionsCmd.SetOut(os.Stdout)
}

// regionsCmd displays the region codes recognized for catalog lookups.
var regionsCmd = &cobra.Command{
	Use:   "regions [code]",
	Short: "Display the region codes recognized for catalog lookups",
	Long: `Display the two-letter region codes recognized for catalog lookups,
along with the numeric storefront identifier each one maps to.
With a code argument only that region is resolved.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		codeStyle := style.Fg(color.Purple)
		idStyle := style.Fg(color.Yellow)

		if len(args) == 1 {
			region := args[0]
			id, ok := storefront.Lookup(region)
			if !ok {
				handleErr(fmt.Errorf(
					"unknown region %s, did you mean %s?",
					style.Fg(color.Red)(region),
					idStyle(strings.ToLower(storefront.Suggest(region))),
				))
			}

			if raw {
				cmd.Println(id)
				return
			}

			cmd.Printf("%s %s\n", codeStyle(strings.ToUpper(region)), idStyle(fmt.Sprint(id)))
			return
		}

		regions := storefront.Regions()
		sort.Strings(regions)

		for _, region := range regions {
			if raw {
				cmd.Println(region)
				continue
			}

			id, _ := storefront.Lookup(region)
			cmd.Printf("%s %s\n", codeStyle(region), idStyle(fmt.Sprint(id)))
		}
	},
}
