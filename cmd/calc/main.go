// Command calc evaluates programs in a small calculator language.
//
//	calc 'let r = 2; 3.14159 * r * r'
//	echo 'x * 2' | calc --set x=21 --ast
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/alecthomas/descent/internal/calc"
)

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		AST     bool               `help:"Print the AST before evaluating."`
		Trace   bool               `help:"Trace the parse to stderr."`
		Set     map[string]float64 `short:"s" help:"Predeclare a variable, eg. --set x=1."`
		Program string             `arg:"" optional:"" help:"Program to evaluate (read from stdin if omitted)."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Evaluate calculator programs.`),
		kong.Vars{"version": version},
	)
	err := run(os.Stdin, os.Stdout, os.Stderr)
	kctx.FatalIfErrorf(err)
}

func run(stdin io.Reader, stdout, stderr io.Writer) error {
	filename := "<arg>"
	source := cli.Program
	if source == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return err
		}
		filename, source = "<stdin>", string(data)
	}
	globals := make([]string, 0, len(cli.Set))
	for name := range cli.Set {
		globals = append(globals, name)
	}
	sort.Strings(globals)
	options := []calc.Option{}
	if cli.Trace {
		options = append(options, calc.Trace(stderr))
	}
	program, err := calc.Parse(filename, source, globals, options...)
	if err != nil {
		return err
	}
	if cli.AST {
		repr.New(stdout, repr.Indent("  "), repr.OmitEmpty(true)).Println(program)
	}
	value, err := program.Eval(cli.Set)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, value)
	return nil
}
