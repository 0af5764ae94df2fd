// Package cmd implements the command-line interface for cadence.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/cadence-dl/cadence/media"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("compact", "c", false, "Emit the schema as a single line of JSON")
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd emits the JSON schema of the media record produced by extract.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Display the JSON schema of the media record produced by extract",
	Long: `Display the JSON schema of the normalized media record emitted by the
extract command, for consumers that validate or generate bindings.`,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := jsonschema.Reflector{
			// options stay inline in the record, there is no $defs consumer
			DoNotReference: true,
		}

		schema := reflector.Reflect(&media.Item{})

		var (
			out []byte
			err error
		)
		if lo.Must(cmd.Flags().GetBool("compact")) {
			out, err = json.Marshal(schema)
		} else {
			out, err = json.MarshalIndent(schema, "", "  ")
		}
		handleErr(err)

		cmd.Println(string(out))
	},
}
