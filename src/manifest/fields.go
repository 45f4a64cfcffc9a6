package manifest

// Field names understood by the rewriter. Each one corresponds to a declaration
// inside the Redmine::Plugin.register block of init.rb.
const (
	FieldPluginID    = "plugin_id"
	FieldName        = "name"
	FieldAuthor      = "author"
	FieldDescription = "description"
	FieldVersion     = "version"
	FieldURL         = "url"
	FieldAuthorURL   = "author_url"
)

// KnownFields lists every field in canonical order.
var KnownFields = []string{
	FieldPluginID,
	FieldName,
	FieldAuthor,
	FieldDescription,
	FieldVersion,
	FieldURL,
	FieldAuthorURL,
}

// IsKnown reports whether name is one of KnownFields.
func IsKnown(name string) bool {
	for _, f := range KnownFields {
		if f == name {
			return true
		}
	}
	return false
}

// Field pairs a field name with the label shown to the operator.
type Field struct {
	Name  string
	Label string
}

// FieldSpec is the ordered set of fields a run prompts for. Order is significant:
// it drives both the prompt sequence and the review listing.
type FieldSpec []Field

// SetupFields returns every known field, plugin id first.
func SetupFields(labels map[string]string) FieldSpec {
	return newSpec(KnownFields, labels)
}

// UpdateFields returns the metadata fields without the plugin id.
func UpdateFields(labels map[string]string) FieldSpec {
	return newSpec(KnownFields[1:], labels)
}

func newSpec(names []string, labels map[string]string) FieldSpec {
	spec := make(FieldSpec, 0, len(names))
	for _, n := range names {
		label := labels[n]
		if label == "" {
			label = n
		}
		spec = append(spec, Field{Name: n, Label: label})
	}
	return spec
}

// Names returns the field names in order.
func (s FieldSpec) Names() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.Name
	}
	return out
}

// Label returns the label for name, or name itself if the spec does not contain it.
func (s FieldSpec) Label(name string) string {
	for _, f := range s {
		if f.Name == name {
			return f.Label
		}
	}
	return name
}
