package manifest

import (
	"regexp"
	"sort"
)

// Every pattern captures three groups: the text before the value, the value, and
// the text after it. Only the second group is ever rewritten.
var registerPattern = regexp.MustCompile(`(Redmine::Plugin\.register\s+:)(\w+)()`)

var patterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(KnownFields))
	for _, f := range KnownFields {
		m[f] = patternFor(f)
	}
	return m
}()

func patternFor(field string) *regexp.Regexp {
	if field == FieldPluginID {
		return registerPattern
	}
	// The leading word boundary keeps "url" from matching inside "author_url".
	// Without it a manifest declaring author_url first would report the author
	// URL as the project URL.
	return regexp.MustCompile(`\b(` + regexp.QuoteMeta(field) + `\s+['"])([^'"]*)(['"])`)
}

func lookup(field string) *regexp.Regexp {
	if re, ok := patterns[field]; ok {
		return re
	}
	return patternFor(field)
}

// Extract reads the current value of every known field from contents. The first
// matching declaration wins; a field without one is recorded as "".
func Extract(contents string) Record {
	rec := make(Record, len(KnownFields))
	for _, f := range KnownFields {
		rec[f] = ""
		if m := lookup(f).FindStringSubmatch(contents); m != nil {
			rec[f] = m[2]
		}
	}
	return rec
}

type span struct {
	field      string
	start, end int
}

// Apply substitutes the value of the first declaration of every field present in
// proposed and returns the new text together with the fields that had no
// declaration to rewrite. Text outside the value spans is preserved byte for byte.
func Apply(contents string, proposed Record) (string, []string) {
	var (
		spans     []span
		unmatched []string
	)
	for _, f := range KnownFields {
		if _, ok := proposed[f]; !ok {
			continue
		}
		loc := lookup(f).FindStringSubmatchIndex(contents)
		if loc == nil {
			unmatched = append(unmatched, f)
			continue
		}
		spans = append(spans, span{field: f, start: loc[4], end: loc[5]})
	}

	// Locate everything against the original text, then splice back to front so
	// earlier offsets stay valid.
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start > spans[j].start })
	out := contents
	last := -1
	for _, s := range spans {
		if s.start == last {
			continue
		}
		last = s.start
		out = out[:s.start] + proposed[s.field] + out[s.end:]
	}
	return out, unmatched
}
