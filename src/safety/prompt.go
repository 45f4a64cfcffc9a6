package safety

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prompts the user to confirm a potentially destructive action.
// - If opts.DryRun is true, it returns false but no error (no action should be taken).
// - If opts.Yes is true, it returns true without prompting.
// Only "y" and "yes" (any case) are affirmative; an empty line or EOF declines.
func Confirm(opts Options, in io.Reader, out io.Writer, question string) (bool, error) {
	if opts.DryRun {
		// No changes in dry-run mode; treat as declined.
		return false, nil
	}
	if opts.Yes {
		return true, nil
	}
	if out != nil {
		fmt.Fprintf(out, "%s (y/N): ", strings.TrimSpace(question))
	}
	if in == nil {
		return false, nil
	}
	line, err := ReadLine(LineReader(in))
	if err != nil {
		return false, err
	}
	return IsAffirmative(line), nil
}

// IsAffirmative reports whether answer is "y" or "yes", ignoring case and
// surrounding whitespace.
func IsAffirmative(answer string) bool {
	ans := strings.TrimSpace(strings.ToLower(answer))
	return ans == "y" || ans == "yes"
}

// LineReader returns in as a *bufio.Reader, wrapping it only when needed. Callers
// that read several answers from one stream must share the returned reader so
// buffered input is not lost between prompts.
func LineReader(in io.Reader) *bufio.Reader {
	if br, ok := in.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(in)
}

// ReadLine reads one line and strips the trailing line ending. EOF is not an
// error: whatever was read before it (often nothing) is returned.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
