package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"redmine-plugin-setup/src/manifest"
	"redmine-plugin-setup/src/rewriter"
)

func newShowCmd(stdout, stderr io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the metadata currently declared in the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, stderr)
			if err != nil {
				return err
			}
			rec, err := rewriter.Current(s.path)
			if err != nil {
				return s.explain(err)
			}
			switch output {
			case "json":
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			case "yaml":
				enc := yaml.NewEncoder(stdout)
				enc.SetIndent(2)
				if err := enc.Encode(rec); err != nil {
					return err
				}
				return enc.Close()
			case "table", "":
				return renderRecord(stdout, manifest.SetupFields(s.catalog.Labels), rec)
			default:
				return fmt.Errorf("unsupported --output: %s", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table|json|yaml")
	return cmd
}

func renderRecord(w io.Writer, spec manifest.FieldSpec, rec manifest.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tLABEL\tVALUE")
	for _, f := range spec {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Name, f.Label, rec.Get(f.Name))
	}
	return tw.Flush()
}
