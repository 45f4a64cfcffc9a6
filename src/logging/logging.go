// Package logging builds the diagnostic logger. Diagnostics go to stderr so the
// prompt/answer exchange on stdout stays clean.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps routine runs quiet; only warnings reach the operator.
const DefaultLevel = "warn"

// New returns a console logger writing to w at the given level name
// (trace, debug, info, warn, error, disabled).
func New(w io.Writer, level string) (zerolog.Logger, error) {
	if w == nil {
		return zerolog.Nop(), nil
	}
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	l := zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}).Level(lvl)
	return l, nil
}
