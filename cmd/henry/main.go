package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"henrylang/internal"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

const version = "0.1.0"

const usage = `Usage:
  henry [flags] run FILE [--verbose]
  henry [flags] FILE
  henry [flags] repl
  henry [flags] tokens FILE
  henry [flags] ast FILE
  henry version

Flags:`

type stdPrinter struct {
	w io.Writer
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.w, a...)
}

// cli carries what every command needs
type cli struct {
	cfg    config
	log    *logrus.Logger
	color  *color.Color
	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("henry", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("verbose", false, "print each statement before evaluating it")
	noColor := fs.Bool("no-color", false, "disable colored output")
	logLevel := fs.String("log-level", "", "diagnostics level: panic, fatal, error, warn, info, debug")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(configPath())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "verbose":
			cfg.Verbose = *verbose
		case "no-color":
			cfg.Color = !*noColor
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	c := &cli{
		cfg:    cfg,
		log:    cfg.logger(stderr),
		color:  color.New(),
		stdout: stdout,
		stderr: stderr,
	}
	c.color.SetOutput(stderr)
	if !cfg.Color {
		c.color.Disable()
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	switch rest[0] {
	case "run":
		return c.cmdRun(rest[1:])
	case "repl":
		return c.cmdRepl()
	case "tokens":
		return c.cmdTokens(rest[1:])
	case "ast":
		return c.cmdAst(rest[1:])
	case "version":
		fmt.Fprintln(stdout, "henry", version)
		return 0
	case "help", "-h", "--help":
		fs.Usage()
		return 0
	}
	return c.cmdRun(rest)
}

// fileArg returns the source file named in args. --verbose is accepted
// after the file name.
func (c *cli) fileArg(args []string) (string, bool) {
	path := ""
	for _, arg := range args {
		if arg == "--verbose" || arg == "-verbose" {
			c.cfg.Verbose = true
			continue
		}
		if path != "" {
			return "", false
		}
		path = arg
	}
	return path, path != ""
}

func (c *cli) readSource(args []string) (string, bool) {
	path, ok := c.fileArg(args)
	if !ok {
		fmt.Fprintln(c.stderr, usage)
		return "", false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		c.printError(err)
		return "", false
	}
	c.log.WithField("file", path).Debug("read source")
	return string(b), true
}

func (c *cli) printError(err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintln(c.stderr, c.color.Red(line))
	}
}

func (c *cli) cmdRun(args []string) int {
	source, ok := c.readSource(args)
	if !ok {
		return 1
	}

	interp := internal.NewInterpreter(
		stdPrinter{c.stdout},
		internal.WithLogger(c.log),
		internal.WithVerbose(c.cfg.Verbose),
	)
	value, err := interp.Run(source)
	if err != nil {
		c.printError(err)
		return 1
	}
	fmt.Fprintln(c.stdout, internal.FormatValue(value))
	return 0
}

func (c *cli) cmdTokens(args []string) int {
	source, ok := c.readSource(args)
	if !ok {
		return 1
	}

	tokens, err := internal.Scan(source)
	for _, tk := range tokens {
		fmt.Fprintln(c.stdout, tk.String())
	}
	if err != nil {
		c.printError(err)
		return 1
	}
	return 0
}

func (c *cli) cmdAst(args []string) int {
	source, ok := c.readSource(args)
	if !ok {
		return 1
	}

	tokens, err := internal.Scan(source)
	if err != nil {
		c.printError(err)
		return 1
	}
	stmts, err := internal.Parse(tokens)
	for _, st := range stmts {
		fmt.Fprintln(c.stdout, internal.Format(st))
	}
	if err != nil {
		c.printError(err)
		return 1
	}
	return 0
}
