package safety_test

import (
	"bytes"
	"strings"
	"testing"

	"redmine-plugin-setup/src/safety"
)

func TestConfirm_AutoYes(t *testing.T) {
	in := strings.NewReader("")
	var out bytes.Buffer
	ok, err := safety.Confirm(safety.Options{Yes: true}, in, &out, "proceed?")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("expected auto-yes to confirm")
	}
	if out.Len() != 0 {
		t.Fatalf("auto-yes should not prompt; got %q", out.String())
	}
}

func TestConfirm_DryRun(t *testing.T) {
	in := strings.NewReader("y\n")
	var out bytes.Buffer
	ok, err := safety.Confirm(safety.Options{DryRun: true, Yes: true}, in, &out, "proceed?")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("expected dry-run to decline")
	}
}

func TestConfirm_UserInput(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"  Yes \r\n", true},
		{"y", true},
		{"n\n", false},
		{"No\n", false},
		{"\n", false},
		{"", false},
		{"ok\n", false},
		{"yess\n", false},
	}
	for _, c := range cases {
		in := strings.NewReader(c.in)
		var out bytes.Buffer
		got, err := safety.Confirm(safety.Options{}, in, &out, "apply changes?")
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Fatalf("input %q: got %v want %v", c.in, got, c.want)
		}
		if !strings.Contains(out.String(), "apply changes? (y/N): ") {
			t.Fatalf("prompt missing question; got %q", out.String())
		}
	}
}

func TestConfirm_NilInputDeclines(t *testing.T) {
	ok, err := safety.Confirm(safety.Options{}, nil, nil, "proceed?")
	if err != nil || ok {
		t.Fatalf("got (%v, %v), want (false, nil)", ok, err)
	}
}

func TestReadLine_SharedReader(t *testing.T) {
	r := safety.LineReader(strings.NewReader("first\r\n\nthird"))
	if safety.LineReader(r) != r {
		t.Fatalf("LineReader should reuse an existing *bufio.Reader")
	}
	want := []string{"first", "", "third", "", ""}
	for i, w := range want {
		got, err := safety.ReadLine(r)
		if err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if got != w {
			t.Fatalf("line %d = %q, want %q", i, got, w)
		}
	}
}

func TestReadLine_KeepsInnerWhitespace(t *testing.T) {
	got, err := safety.ReadLine(safety.LineReader(strings.NewReader("  My Plugin  \n")))
	if err != nil {
		t.Fatal(err)
	}
	if got != "  My Plugin  " {
		t.Fatalf("got %q", got)
	}
}
