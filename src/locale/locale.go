// Package locale provides the prompt labels and console messages of the tool.
// Catalogues for English and Japanese are embedded; a labels file can override
// any subset of them.
package locale

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Default is the locale used when none is requested.
const Default = "en"

//go:embed catalogs/*.toml
var catalogs embed.FS

// Messages are the console strings. Fields holding %s verbs are formatted with
// paths by the caller.
type Messages struct {
	Title           string `toml:"title" yaml:"title"`
	Intro           string `toml:"intro" yaml:"intro"`
	Review          string `toml:"review" yaml:"review"`
	Changes         string `toml:"changes" yaml:"changes"`
	Question        string `toml:"question" yaml:"question"`
	Updated         string `toml:"updated" yaml:"updated"`
	Cancelled       string `toml:"cancelled" yaml:"cancelled"`
	DryRun          string `toml:"dry_run" yaml:"dry_run"`
	NotFound        string `toml:"not_found" yaml:"not_found"`
	BackupCreated   string `toml:"backup_created" yaml:"backup_created"`
	RestoreQuestion string `toml:"restore_question" yaml:"restore_question"`
	Restored        string `toml:"restored" yaml:"restored"`
}

// Catalog is one set of labels and messages.
type Catalog struct {
	Labels   map[string]string `toml:"labels" yaml:"labels"`
	Messages Messages          `toml:"messages" yaml:"messages"`
}

// Available returns the names of the embedded catalogues.
func Available() []string {
	des, err := catalogs.ReadDir("catalogs")
	if err != nil {
		return nil
	}
	var names []string
	for _, de := range des {
		names = append(names, strings.TrimSuffix(de.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}

// Load returns the embedded catalogue for name ("en", "ja").
func Load(name string) (*Catalog, error) {
	if name == "" {
		name = Default
	}
	data, err := catalogs.ReadFile("catalogs/" + strings.ToLower(name) + ".toml")
	if err != nil {
		return nil, fmt.Errorf("unknown locale %q; available: %s", name, strings.Join(Available(), ", "))
	}
	c := &Catalog{}
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse locale %s: %w", name, err)
	}
	return c, nil
}

// LoadFile reads a labels file. The format is chosen by extension: .toml, or
// .yaml/.yml.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &Catalog{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		return nil, fmt.Errorf("unsupported labels file %q; expected .toml, .yaml or .yml", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse labels file %s: %w", path, err)
	}
	return c, nil
}

// Merge overlays every non-empty label and message of o onto c.
func (c *Catalog) Merge(o *Catalog) {
	if o == nil {
		return
	}
	if c.Labels == nil {
		c.Labels = map[string]string{}
	}
	for k, v := range o.Labels {
		if v != "" {
			c.Labels[k] = v
		}
	}
	m, om := &c.Messages, o.Messages
	overlay(&m.Title, om.Title)
	overlay(&m.Intro, om.Intro)
	overlay(&m.Review, om.Review)
	overlay(&m.Changes, om.Changes)
	overlay(&m.Question, om.Question)
	overlay(&m.Updated, om.Updated)
	overlay(&m.Cancelled, om.Cancelled)
	overlay(&m.DryRun, om.DryRun)
	overlay(&m.NotFound, om.NotFound)
	overlay(&m.BackupCreated, om.BackupCreated)
	overlay(&m.RestoreQuestion, om.RestoreQuestion)
	overlay(&m.Restored, om.Restored)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
