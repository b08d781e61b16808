package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/anitable/anitable/inline"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("captions", "c", false, "Schema of `cap --json` instead of `list --json`")
}

func outputSchema(captions bool) *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch strings.ToLower(name) {
		case "anime", "caption":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	if captions {
		return reflector.Reflect(&inline.CaptionsOutput{})
	}
	return reflector.Reflect(&inline.ScheduleOutput{})
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the --json output",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(outputSchema(lo.Must(cmd.Flags().GetBool("captions")))))
	},
}
