// Package rewriter runs the interactive metadata update of a Redmine plugin
// manifest: read the current values, ask for replacements, confirm, back up and
// overwrite.
package rewriter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"

	"redmine-plugin-setup/src/backup"
	"redmine-plugin-setup/src/fileutil"
	"redmine-plugin-setup/src/locale"
	"redmine-plugin-setup/src/manifest"
	"redmine-plugin-setup/src/safety"
	"redmine-plugin-setup/src/ui"
)

// ErrManifestNotFound is returned before any prompting when the manifest does not exist.
var ErrManifestNotFound = errors.New("manifest not found")

// Config describes one rewrite session.
type Config struct {
	// Path is the manifest file, usually init.rb of the plugin.
	Path string
	// Fields are prompted for in order.
	Fields manifest.FieldSpec
	// Messages are the console strings of the chosen locale.
	Messages locale.Messages
	// Preset holds answers given up front; their prompts are skipped.
	Preset manifest.Record
	Safety safety.Options
	// Now defaults to time.Now. It names the backup.
	Now func() time.Time
}

// Result reports what a run did.
type Result struct {
	// Confirmed is true when the operator (or --yes) accepted the update.
	Confirmed bool
	// Changes lists the fields whose value differs from the manifest.
	Changes []manifest.Change
	// BackupPath is set when a backup was written.
	BackupPath string
}

// Rewriter is a single-use interactive session over one manifest.
type Rewriter struct {
	cfg Config
	in  *bufio.Reader
	out io.Writer
	ui  *ui.Printer
	log zerolog.Logger
}

// New returns a Rewriter reading answers from in and writing the conversation to out.
func New(cfg Config, in io.Reader, out io.Writer, log zerolog.Logger) *Rewriter {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if in == nil {
		in = eofReader{}
	}
	return &Rewriter{
		cfg: cfg,
		in:  safety.LineReader(in),
		out: out,
		ui:  ui.New(out),
		log: log,
	}
}

// Run executes the whole session. A cancelled or dry run is not an error.
func (r *Rewriter) Run() (Result, error) {
	info, original, err := readManifest(r.cfg.Path)
	if err != nil {
		return Result{}, err
	}
	r.ui.Title(r.cfg.Messages.Title)

	current := manifest.Extract(string(original))
	r.log.Debug().Str("path", r.cfg.Path).Msgf("current values: %s", pretty.Sprint(current))

	proposed, err := r.Prompt(current)
	if err != nil {
		return Result{}, err
	}
	for _, w := range manifest.Validate(proposed) {
		r.log.Warn().Msg(w)
	}

	res := Result{Changes: manifest.Changes(current, proposed, r.cfg.Fields)}
	ok, err := r.Confirm(proposed, res.Changes)
	if err != nil {
		return res, err
	}
	if !ok {
		if r.cfg.Safety.DryRun {
			r.ui.Success(r.cfg.Messages.DryRun)
		} else {
			r.ui.Failure(r.cfg.Messages.Cancelled)
		}
		return res, nil
	}
	res.Confirmed = true

	res.BackupPath, err = r.Apply(original, current, proposed, info.Mode())
	if err != nil {
		return res, err
	}
	r.ui.Success(fmt.Sprintf(r.cfg.Messages.Updated, r.cfg.Path))
	return res, nil
}

// Current returns the values currently declared in the manifest at path.
func Current(path string) (manifest.Record, error) {
	_, data, err := readManifest(path)
	if err != nil {
		return nil, err
	}
	return manifest.Extract(string(data)), nil
}

func readManifest(path string) (os.FileInfo, []byte, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("stat manifest: %w", err)
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("manifest %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read manifest: %w", err)
	}
	return info, data, nil
}

// Prompt asks for every configured field in order. An empty answer keeps the
// current value. Fields with a preset value are not asked.
func (r *Rewriter) Prompt(current manifest.Record) (manifest.Record, error) {
	proposed := current.Clone()
	r.ui.Line("")
	r.ui.Line(r.cfg.Messages.Intro)
	r.ui.Line("")
	for _, f := range r.cfg.Fields {
		if v, ok := r.cfg.Preset[f.Name]; ok {
			r.log.Debug().Str("field", f.Name).Str("value", v).Msg("using preset value")
			proposed[f.Name] = v
			continue
		}
		cur := current.Get(f.Name)
		r.ui.Prompt(f.Label, cur)
		answer, err := safety.ReadLine(r.in)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		if answer != "" {
			proposed[f.Name] = answer
		}
	}
	return proposed, nil
}

// Confirm shows the proposed values and the pending changes, then asks for a
// yes/no answer.
func (r *Rewriter) Confirm(proposed manifest.Record, changes []manifest.Change) (bool, error) {
	r.ui.Section(r.cfg.Messages.Review)
	for _, f := range r.cfg.Fields {
		r.ui.Value(f.Label, proposed.Get(f.Name))
	}
	if len(changes) > 0 {
		r.ui.Section(r.cfg.Messages.Changes)
		for _, c := range changes {
			r.ui.Change(c.Label, c.Old, c.New)
		}
	}
	r.ui.Line("")
	return safety.Confirm(r.cfg.Safety, r.in, r.out, r.cfg.Messages.Question)
}

// Apply rewrites the declarations of original to proposed, writes the backup and
// then replaces the manifest. It returns the backup path.
func (r *Rewriter) Apply(original []byte, current, proposed manifest.Record, mode os.FileMode) (string, error) {
	updated, unmatched := manifest.Apply(string(original), proposed)
	for _, f := range unmatched {
		if proposed.Get(f) != current.Get(f) {
			r.log.Warn().Str("field", f).Msg("no declaration found in manifest; value not written")
		}
	}

	backupPath, err := backup.Create(r.cfg.Path, original, mode, r.cfg.Now())
	if err != nil {
		return "", err
	}
	r.ui.Line(fmt.Sprintf(r.cfg.Messages.BackupCreated, backupPath))

	if err := fileutil.WriteFileAtomic(r.cfg.Path, []byte(updated), mode.Perm()); err != nil {
		return backupPath, fmt.Errorf("write manifest: %w", err)
	}
	r.log.Info().Str("path", r.cfg.Path).Str("backup", backupPath).Msg("manifest updated")
	return backupPath, nil
}

// Restore replaces the manifest with backupPath after confirmation. Unless
// Safety.Force is set, backupPath must be a backup of this manifest.
func (r *Rewriter) Restore(backupPath string) (Result, error) {
	if _, _, err := readManifest(r.cfg.Path); err != nil {
		return Result{}, err
	}
	if _, ok := backup.Timestamp(r.cfg.Path, backupPath); !ok && !r.cfg.Safety.Force {
		return Result{}, fmt.Errorf("%s is not a backup of %s (use --force to restore it anyway)", backupPath, r.cfg.Path)
	}
	if _, err := os.Stat(backupPath); err != nil {
		return Result{}, fmt.Errorf("stat backup: %w", err)
	}

	ok, err := safety.Confirm(r.cfg.Safety, r.in, r.out, fmt.Sprintf(r.cfg.Messages.RestoreQuestion, r.cfg.Path, backupPath))
	if err != nil {
		return Result{}, err
	}
	if !ok {
		if r.cfg.Safety.DryRun {
			r.ui.Success(r.cfg.Messages.DryRun)
		} else {
			r.ui.Failure(r.cfg.Messages.Cancelled)
		}
		return Result{}, nil
	}

	safetyPath, err := backup.Restore(r.cfg.Path, backupPath, r.cfg.Now())
	res := Result{Confirmed: true, BackupPath: safetyPath}
	if safetyPath != "" {
		r.ui.Line(fmt.Sprintf(r.cfg.Messages.BackupCreated, safetyPath))
	}
	if err != nil {
		return res, err
	}
	r.ui.Success(fmt.Sprintf(r.cfg.Messages.Restored, r.cfg.Path, backupPath))
	return res, nil
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
