package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"redmine-plugin-setup/src/locale"
	"redmine-plugin-setup/src/logging"
	"redmine-plugin-setup/src/rewriter"
	"redmine-plugin-setup/src/safety"
)

// DefaultManifest is the manifest path used when --manifest is not given.
const DefaultManifest = "init.rb"

// addGlobalFlags adds persistent flags shared by every subcommand.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("manifest", "m", DefaultManifest, "Path to the plugin manifest")
	cmd.PersistentFlags().String("locale", locale.Default, "Language of prompts and messages (en|ja)")
	cmd.PersistentFlags().String("labels", "", "TOML or YAML file overriding prompt labels and messages")
	cmd.PersistentFlags().String("log-level", logging.DefaultLevel, "Diagnostic log level (debug|info|warn|error|disabled)")
	cmd.PersistentFlags().Bool("dry-run", false, "Show planned changes without writing any file")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Assume 'yes' to confirmations")
	cmd.PersistentFlags().Bool("force", false, "Allow restoring from a file that is not a backup of the manifest")
}

// getSafetyOptions reads global flags into a safety.Options struct.
func getSafetyOptions(cmd *cobra.Command) safety.Options {
	dry, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
	yes, _ := cmd.Root().PersistentFlags().GetBool("yes")
	force, _ := cmd.Root().PersistentFlags().GetBool("force")
	return safety.Options{DryRun: dry, Yes: yes, Force: force}
}

// settings is the resolved global configuration of one invocation.
type settings struct {
	path    string
	catalog *locale.Catalog
	safety  safety.Options
	log     zerolog.Logger
}

func loadSettings(cmd *cobra.Command, stderr io.Writer) (settings, error) {
	flags := cmd.Root().PersistentFlags()
	path, _ := flags.GetString("manifest")
	name, _ := flags.GetString("locale")
	labels, _ := flags.GetString("labels")
	level, _ := flags.GetString("log-level")

	log, err := logging.New(stderr, level)
	if err != nil {
		return settings{}, err
	}
	cat, err := locale.Load(name)
	if err != nil {
		return settings{}, err
	}
	if labels != "" {
		override, err := locale.LoadFile(labels)
		if err != nil {
			return settings{}, err
		}
		cat.Merge(override)
	}
	if path == "" {
		path = DefaultManifest
	}
	return settings{path: path, catalog: cat, safety: getSafetyOptions(cmd), log: log}, nil
}

// explain replaces a missing-manifest error with the localized message.
func (s settings) explain(err error) error {
	if errors.Is(err, rewriter.ErrManifestNotFound) {
		return &messageError{msg: fmt.Sprintf(s.catalog.Messages.NotFound, s.path), err: err}
	}
	return err
}

// messageError shows msg to the operator while keeping err for errors.Is.
type messageError struct {
	msg string
	err error
}

func (e *messageError) Error() string { return e.msg }

func (e *messageError) Unwrap() error { return e.err }
