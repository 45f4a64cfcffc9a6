package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"redmine-plugin-setup/src/cli"
	"redmine-plugin-setup/src/version"
)

func TestRootHelp_ShowsUsage(t *testing.T) {
	var out, err bytes.Buffer
	cmd := cli.NewRootCmd(&out, &err)
	cmd.SetArgs([]string{"--help"})

	if _, e := cmd.ExecuteC(); e != nil {
		t.Fatalf("unexpected error: %v", e)
	}
	o := out.String()
	if !strings.Contains(o, "Usage:") || !strings.Contains(o, "redmine-plugin-setup") {
		t.Fatalf("help output missing expected content; got: %s", o)
	}
	for _, sub := range []string{"setup", "update", "show", "backups", "restore", "version"} {
		if !strings.Contains(o, sub) {
			t.Fatalf("help output missing subcommand %q; got: %s", sub, o)
		}
	}
}

func TestGlobalFlags_Present(t *testing.T) {
	cmd := cli.NewRootCmd(nil, nil)
	for _, name := range []string{"manifest", "locale", "labels", "log-level", "dry-run", "yes", "force"} {
		if f := cmd.PersistentFlags().Lookup(name); f == nil {
			t.Fatalf("missing global flag --%s", name)
		}
	}
	if got := cmd.PersistentFlags().Lookup("manifest").DefValue; got != cli.DefaultManifest {
		t.Fatalf("--manifest default = %q, want %q", got, cli.DefaultManifest)
	}
}

func TestVersionCommand_PrintsVersion(t *testing.T) {
	var out, err bytes.Buffer
	cmd := cli.NewRootCmd(&out, &err)
	cmd.SetArgs([]string{"version"})

	if _, e := cmd.ExecuteC(); e != nil {
		t.Fatalf("unexpected error: %v", e)
	}
	o := out.String()
	if !strings.HasPrefix(o, "redmine-plugin-setup "+version.Version+" (") {
		t.Fatalf("expected version %q in output; got: %s", version.Version, o)
	}
}

func TestVersionCommand_Short(t *testing.T) {
	var out, err bytes.Buffer
	cmd := cli.NewRootCmd(&out, &err)
	cmd.SetArgs([]string{"version", "--short"})

	if _, e := cmd.ExecuteC(); e != nil {
		t.Fatalf("unexpected error: %v", e)
	}
	if got := out.String(); got != version.Version+"\n" {
		t.Fatalf("version --short = %q, want %q", got, version.Version+"\n")
	}
}
