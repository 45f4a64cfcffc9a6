package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"redmine-plugin-setup/src/manifest"
	"redmine-plugin-setup/src/preset"
	"redmine-plugin-setup/src/rewriter"
)

func newSetupCmd(stdout, stderr io.Writer) *cobra.Command {
	return newRewriteCmd(stdout, stderr, "setup",
		"Set the plugin id and metadata of a freshly copied plugin skeleton",
		manifest.SetupFields)
}

func newUpdateCmd(stdout, stderr io.Writer) *cobra.Command {
	return newRewriteCmd(stdout, stderr, "update",
		"Update the metadata (name, author, version, ...) of an existing plugin",
		manifest.UpdateFields)
}

func newRewriteCmd(stdout, stderr io.Writer, use, short string, fields func(map[string]string) manifest.FieldSpec) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, stderr)
			if err != nil {
				return err
			}
			spec := fields(s.catalog.Labels)
			answers, err := preset.ParseAll(sets)
			if err != nil {
				return err
			}
			for f := range answers {
				if !contains(spec.Names(), f) {
					return fmt.Errorf("field %s is not handled by %s", f, use)
				}
			}

			rw := rewriter.New(rewriter.Config{
				Path:     s.path,
				Fields:   spec,
				Messages: s.catalog.Messages,
				Preset:   answers,
				Safety:   s.safety,
			}, cmd.InOrStdin(), stdout, s.log)
			_, err = rw.Run()
			return s.explain(err)
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Answer a field up front as field=value (repeatable); its prompt is skipped")
	return cmd
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
