// Command bidifmt inspects and wraps bidirectional text on the command line.
//
// Usage:
//
//	bidifmt estimate [--markup] [<text>…]
//	bidifmt wrap [--dir=…] [--span] [--no-reset] [<text>…]
//	bidifmt attr [--dir=…] [--value] [<text>…]
//	bidifmt mark
//
// The context direction is given with --context=ltr|rtl|unknown, or
// --context=auto to derive it from the user's locale. Commands taking text
// read standard input when no text arguments are given.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/npillmayer/bidifmt"
	"github.com/npillmayer/bidifmt/formatter"
)

// CLI defines the command-line interface of bidifmt.
var CLI struct {
	Context string `help:"Context direction: ltr, rtl, unknown, or auto to detect from the locale." default:"unknown"`

	Estimate EstimateCmd `cmd:"" help:"Estimate the overall direction of text."`
	Wrap     WrapCmd     `cmd:"" help:"Wrap text for embedding into the context."`
	Attr     AttrCmd     `cmd:"" help:"Print a dir-attribute declaring the direction of text."`
	Mark     MarkCmd     `cmd:"" help:"Print the directional mark of the context."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("bidifmt"),
		kong.Description("Inspect and wrap bidirectional text."))
	ctx.FatalIfErrorf(ctx.Run())
}

// contextDir resolves the global --context flag.
func contextDir() (bidifmt.Direction, error) {
	if strings.EqualFold(CLI.Context, "auto") {
		return bidifmt.ContextFromEnvironment(), nil
	}
	return bidifmt.ParseDirection(CLI.Context)
}

// knownDir resolves an optional --dir flag; an empty flag returns Neutral
// and leaves the direction to estimation.
func knownDir(flag string) (bidifmt.Direction, error) {
	if flag == "" {
		return bidifmt.Neutral, nil
	}
	return bidifmt.ParseDirection(flag)
}

// argText joins the text arguments, or reads standard input if there are none.
func argText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(input), "\n"), nil
}

// EstimateCmd estimates the overall direction of text.
type EstimateCmd struct {
	Markup bool     `help:"Treat the text as markup-bearing: skip tags and entities."`
	Text   []string `arg:"" optional:"" help:"Text to estimate."`
}

func (cmd *EstimateCmd) Run() error {
	text, err := argText(cmd.Text)
	if err != nil {
		return err
	}
	fmt.Println(bidifmt.EstimateDirection(text, cmd.Markup))
	return nil
}

// WrapCmd wraps text for embedding into the context.
type WrapCmd struct {
	Dir     string   `help:"Known direction of the text (skips estimation)."`
	Span    bool     `help:"Wrap in a span container instead of invisible characters; escapes the text."`
	NoReset bool     `help:"Do not append a trailing directional mark."`
	Text    []string `arg:"" optional:"" help:"Text to wrap."`
}

func (cmd *WrapCmd) Run() error {
	context, err := contextDir()
	if err != nil {
		return err
	}
	dir, err := knownDir(cmd.Dir)
	if err != nil {
		return err
	}
	text, err := argText(cmd.Text)
	if err != nil {
		return err
	}
	f := formatter.New(context)
	if cmd.Span {
		var v formatter.Markup = formatter.HTMLEscape(text)
		if cmd.Dir == "" {
			v = f.Wrap(v, !cmd.NoReset)
		} else {
			v = f.WrapWithKnownDir(dir, v, !cmd.NoReset)
		}
		fmt.Println(v.(formatter.HTML))
		return nil
	}
	if cmd.Dir == "" {
		fmt.Println(f.UnicodeWrap(text, !cmd.NoReset))
	} else {
		fmt.Println(f.UnicodeWrapWithKnownDir(dir, text, false, !cmd.NoReset))
	}
	return nil
}

// AttrCmd prints a dir-attribute declaring the direction of text.
type AttrCmd struct {
	Dir   string   `help:"Known direction (skips estimation)."`
	Value bool     `help:"Print only the attribute value."`
	Text  []string `arg:"" optional:"" help:"Text to declare."`
}

func (cmd *AttrCmd) Run() error {
	context, err := contextDir()
	if err != nil {
		return err
	}
	f := formatter.New(context)
	if cmd.Dir != "" {
		dir, err := bidifmt.ParseDirection(cmd.Dir)
		if err != nil {
			return err
		}
		if cmd.Value {
			fmt.Println(f.KnownDirAttrValue(dir))
		} else {
			fmt.Println(f.KnownDirAttr(dir))
		}
		return nil
	}
	text, err := argText(cmd.Text)
	if err != nil {
		return err
	}
	if cmd.Value {
		fmt.Println(f.DirAttrValue(text, false))
	} else {
		fmt.Println(f.DirAttr(text, false))
	}
	return nil
}

// MarkCmd prints the directional mark of the context.
type MarkCmd struct{}

func (cmd *MarkCmd) Run() error {
	context, err := contextDir()
	if err != nil {
		return err
	}
	fmt.Println(formatter.New(context).Mark())
	return nil
}
