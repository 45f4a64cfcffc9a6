package manifest

import (
	"fmt"
	"regexp"
	"strings"
)

// Record holds the metadata values of one manifest, keyed by field name.
// A missing key and an empty value mean the same thing.
type Record map[string]string

// Get returns the value for field, or "" when absent.
func (r Record) Get(field string) string {
	return r[field]
}

// Clone returns an independent copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Change describes one field whose proposed value differs from the current one.
type Change struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// Changes lists the fields of spec whose value differs between current and proposed,
// in spec order.
func Changes(current, proposed Record, spec FieldSpec) []Change {
	var out []Change
	for _, f := range spec {
		old, nv := current.Get(f.Name), proposed.Get(f.Name)
		if old == nv {
			continue
		}
		out = append(out, Change{Field: f.Name, Label: f.Label, Old: old, New: nv})
	}
	return out
}

var pluginIDValue = regexp.MustCompile(`^\w+$`)

// Validate returns human-readable warnings for values that would produce a
// manifest Redmine cannot load. It never rejects a record.
func Validate(r Record) []string {
	var warnings []string
	if id := r.Get(FieldPluginID); id != "" && !pluginIDValue.MatchString(id) {
		warnings = append(warnings, fmt.Sprintf("plugin id %q is not a valid Ruby symbol and will not be recognised on the next run", id))
	}
	for _, f := range KnownFields {
		if f == FieldPluginID {
			continue
		}
		if strings.ContainsAny(r.Get(f), `'"`) {
			warnings = append(warnings, fmt.Sprintf("%s contains a quote character and will break the declaration", f))
		}
	}
	return warnings
}
