// Package cmd implements the command-line interface for cadence.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/cadence-dl/cadence/color"
	"github.com/cadence-dl/cadence/extractor"
	"github.com/cadence-dl/cadence/filesystem"
	"github.com/cadence-dl/cadence/style"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("extractor", "e", "", "Force a specific extractor instead of matching by URL")
	lo.Must0(extractCmd.RegisterFlagCompletionFunc("extractor", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return extractor.Names(), cobra.ShellCompDirectiveNoFileComp
	}))

	extractCmd.Flags().StringP("output", "o", "", "Write the record to a file instead of stdout")
	extractCmd.Flags().BoolP("compact", "c", false, "Emit the record as a single line of JSON")

	extractCmd.SetOut(os.Stdout)
}

// errUnknownExtractor builds a "did you mean" error for a mistyped extractor name.
func errUnknownExtractor(name string) error {
	msg := fmt.Sprintf("unknown extractor %s", style.Fg(color.Red)(name))

	if matches := fuzzy.RankFindNormalizedFold(name, extractor.Names()); len(matches) > 0 {
		sort.Sort(matches)
		msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(matches[0].Target))
	}

	return errors.New(msg)
}

// extractCmd resolves a catalog URL into a normalized media record.
var extractCmd = &cobra.Command{
	Use:   "extract [url]",
	Short: "Resolve a streaming-catalog URL into a normalized media record",
	Long: `Resolve a streaming-catalog URL into a normalized JSON media record:
metadata, renditions, thumbnails, subtitles and child entries.
The extractor is picked by URL pattern unless one is forced with --extractor.`,
	Args:    cobra.ExactArgs(1),
	Example: "  cadence extract https://music.apple.com/us/song/numb/1440843092",
	Run: func(cmd *cobra.Command, args []string) {
		rawURL := args[0]

		var (
			e  extractor.Extractor
			ok bool
		)
		if name := lo.Must(cmd.Flags().GetString("extractor")); name != "" {
			if e, ok = extractor.ByName(name); !ok {
				handleErr(errUnknownExtractor(name))
			}
			if !e.Match(rawURL) {
				handleErr(fmt.Errorf("%s does not recognize this URL", e.Name()))
			}
		} else if e, ok = extractor.ForURL(rawURL); !ok {
			handleErr(errors.New("no extractor recognizes this URL"))
		}

		item, err := e.Extract(rawURL)
		handleErr(err)

		record, err := renderItem(item, lo.Must(cmd.Flags().GetBool("compact")))
		handleErr(err)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			handleErr(filesystem.API().WriteFile(output, record, os.ModePerm))
			return
		}

		cmd.Println(string(record))
	},
}

func renderItem(item any, compact bool) ([]byte, error) {
	if compact {
		return json.Marshal(item)
	}
	return json.MarshalIndent(item, "", "  ")
}
