package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"henrylang/internal"

	"github.com/peterh/liner"
)

const promptCont = "... "

// lineReader is the part of liner.State the REPL reads from
type lineReader interface {
	Prompt(prompt string) (string, error)
}

func (c *cli) cmdRepl() int {
	fmt.Fprintf(c.stdout, "henry %s, type :quit to exit\n", version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := c.cfg.historyPath()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	return c.repl(ln, ln.AppendHistory)
}

func (c *cli) repl(ln lineReader, remember func(string)) int {
	interp := internal.NewInterpreter(
		stdPrinter{c.stdout},
		internal.WithLogger(c.log),
		internal.WithVerbose(c.cfg.Verbose),
	)

	for {
		code, ok := readByParseProbe(ln, c.cfg.Prompt, promptCont)
		if !ok {
			fmt.Fprintln(c.stdout)
			return 0
		}

		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit", ":q":
				return 0
			default:
				fmt.Fprintln(c.stdout, "unknown command. Type :quit to exit.")
			}
			continue
		}

		remember(strings.ReplaceAll(code, "\n", " "))
		value, err := interp.Run(code)
		if err != nil {
			c.printError(err)
			continue
		}
		fmt.Fprintln(c.stdout, internal.FormatValue(value))
	}
}

// readByParseProbe keeps reading lines while the collected source ends in
// the middle of a construct
func readByParseProbe(ln lineReader, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C drops the pending input
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if internal.IsIncomplete(internal.Check(src)) {
			continue
		}
		return src, true
	}
}
