package preset

import (
	"fmt"
	"strings"

	"redmine-plugin-setup/src/manifest"
)

// Assignment is a parsed --set argument.
// Example: name=My Plugin
type Assignment struct {
	// Raw is the original input string.
	Raw string
	// Field is the manifest field name, lower-cased.
	Field string
	// Value is everything after the first '='. It is kept verbatim so values may
	// contain '=' and surrounding spaces.
	Value string
}

// Parse parses an assignment like "version=1.2.0".
func Parse(raw string) (Assignment, error) {
	a := Assignment{Raw: raw}
	i := strings.Index(raw, "=")
	if i <= 0 {
		return a, fmt.Errorf("invalid assignment %q; expected format '<field>=<value>' (e.g., 'version=1.0.0')", raw)
	}
	field := strings.ToLower(strings.TrimSpace(raw[:i]))
	if !manifest.IsKnown(field) {
		return a, fmt.Errorf("unknown field %q; expected one of %s", field, strings.Join(manifest.KnownFields, ", "))
	}
	a.Field = field
	a.Value = raw[i+1:]
	if a.Value == "" {
		return a, fmt.Errorf("value for %s must not be empty", field)
	}
	return a, nil
}

// ParseAll parses every assignment into a record. A later assignment for the same
// field overrides an earlier one.
func ParseAll(raws []string) (manifest.Record, error) {
	rec := manifest.Record{}
	for _, raw := range raws {
		a, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		rec[a.Field] = a.Value
	}
	return rec, nil
}

// String returns the canonical form of the assignment.
func (a Assignment) String() string {
	if a.Field != "" {
		return fmt.Sprintf("%s=%s", a.Field, a.Value)
	}
	return a.Raw
}
