package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/gommon/color"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCli(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(configEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"-no-color"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCliRun(t *testing.T) {
	path := writeFile(t, "sum.hl", "print(\"sum\")\nreduce(|a b| a + b, 1 to 5)\n")

	for _, args := range [][]string{{"run", path}, {path}} {
		code, stdout, stderr := runCli(t, args...)
		if code != 0 || stdout != "sum\n10\n" || stderr != "" {
			t.Errorf("%v: unexpected result %d %q %q", args, code, stdout, stderr)
		}
	}
}

func TestCliRunVerbose(t *testing.T) {
	path := writeFile(t, "v.hl", "x := 1+1\nx")

	expected := "x := 1 + 1\nx\n2\n"
	for _, args := range [][]string{{"run", path, "--verbose"}, {"-verbose", "run", path}} {
		code, stdout, _ := runCli(t, args...)
		if code != 0 || stdout != expected {
			t.Errorf("%v: unexpected result %d %q", args, code, stdout)
		}
	}
}

func TestCliErrors(t *testing.T) {
	path := writeFile(t, "bad.hl", "print(1)\nx := 1 / 0")
	code, stdout, stderr := runCli(t, "run", path)
	if code != 1 || stdout != "1\n" || stderr != "runtime error on line 2: Division by zero\n" {
		t.Errorf("unexpected result %d %q %q", code, stdout, stderr)
	}

	path = writeFile(t, "syntax.hl", "a := )\nb := )")
	code, stdout, stderr = runCli(t, "run", path)
	if code != 1 || stdout != "" || stderr != "line 1: Expect expression.\nline 2: Expect expression.\n" {
		t.Errorf("unexpected result %d %q %q", code, stdout, stderr)
	}

	code, _, stderr = runCli(t, "run", filepath.Join(t.TempDir(), "nope.hl"))
	if code != 1 || !strings.Contains(stderr, "nope.hl") {
		t.Errorf("unexpected result %d %q", code, stderr)
	}

	if code, _, _ := runCli(t); code != 2 {
		t.Errorf("missing command should fail with 2, found %d", code)
	}
	if code, _, _ := runCli(t, "-log-level", "loud", "version"); code != 2 {
		t.Errorf("bad log level should fail with 2, found %d", code)
	}
}

func TestCliTokensAndAst(t *testing.T) {
	path := writeFile(t, "t.hl", "x := 1 + 2 * 3")

	code, stdout, _ := runCli(t, "tokens", path)
	if code != 0 || len(strings.Split(strings.TrimSpace(stdout), "\n")) != 8 {
		t.Errorf("unexpected tokens %d %q", code, stdout)
	}

	code, stdout, _ = runCli(t, "ast", path)
	if code != 0 || stdout != "x := 1 + (2 * 3)\n" {
		t.Errorf("unexpected ast %d %q", code, stdout)
	}
}

func TestCliVersion(t *testing.T) {
	code, stdout, _ := runCli(t, "version")
	if code != 0 || stdout != "henry "+version+"\n" {
		t.Errorf("unexpected result %d %q", code, stdout)
	}
}

type scriptedLines struct {
	lines   []string
	prompts []string
}

func (s *scriptedLines) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func TestReadByParseProbe(t *testing.T) {
	ln := &scriptedLines{lines: []string{"f := |x| {", "  x * 2", "}", "f(2)"}}

	src, ok := readByParseProbe(ln, "> ", "... ")
	if !ok || src != "f := |x| {\n  x * 2\n}" {
		t.Errorf("unexpected source %q", src)
	}
	if strings.Join(ln.prompts, "|") != "> |... |... " {
		t.Errorf("unexpected prompts %q", ln.prompts)
	}

	src, ok = readByParseProbe(ln, "> ", "... ")
	if !ok || src != "f(2)" {
		t.Errorf("unexpected source %q", src)
	}

	if _, ok := readByParseProbe(ln, "> ", "... "); ok {
		t.Error("end of input should stop reading")
	}
}

func TestRepl(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := &cli{
		cfg:    defaultConfig(),
		stdout: &stdout,
		stderr: &stderr,
	}
	c.cfg.Color = false
	c.log = c.cfg.logger(io.Discard)
	c.color = color.New()
	c.color.Disable()

	ln := &scriptedLines{lines: []string{"x := 20", "x +", "1", ":what", "y", ""}}
	var history []string
	if code := c.repl(ln, func(s string) { history = append(history, s) }); code != 0 {
		t.Errorf("unexpected exit code %d", code)
	}

	expected := "20\n21\nunknown command. Type :quit to exit.\n\n"
	if stdout.String() != expected {
		t.Errorf("unexpected output %q", stdout.String())
	}
	if stderr.String() != "runtime error on line 1: Undefined variable y\n" {
		t.Errorf("unexpected errors %q", stderr.String())
	}
	if strings.Join(history, "|") != "x := 20|x + 1|y" {
		t.Errorf("unexpected history %q", history)
	}
}
