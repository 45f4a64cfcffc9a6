package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"redmine-plugin-setup/src/backup"
	"redmine-plugin-setup/src/rewriter"
)

func newBackupsCmd(stdout, stderr io.Writer) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "List the backups kept next to the manifest, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, stderr)
			if err != nil {
				return err
			}
			if _, err := rewriter.Current(s.path); err != nil {
				return s.explain(err)
			}
			entries, err := backup.List(s.path)
			if err != nil {
				return err
			}
			switch output {
			case "json":
				if entries == nil {
					entries = []backup.Entry{}
				}
				enc := json.NewEncoder(stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			case "table", "":
				return renderTable(stdout, entries)
			default:
				return fmt.Errorf("unsupported --output: %s", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table|json")
	return cmd
}

func renderTable(w io.Writer, entries []backup.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tTIMESTAMP\tSIZE\tSHA256")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Path, e.Timestamp.Format("2006-01-02 15:04:05"), e.Size, e.SHA256)
	}
	return tw.Flush()
}
