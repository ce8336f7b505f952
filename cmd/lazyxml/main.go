// Command lazyxml tokenizes an XML document and prints the event stream,
// one event per line with its byte offset. It exists for eyeballing what
// the tokenizer makes of a given input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	lazyxml "github.com/biggeezerdevelopment/lazyxml-go"
)

var cli struct {
	Path   string `arg:"" optional:"" type:"existingfile" help:"XML file to tokenize. Reads stdin when omitted."`
	NoTrim bool   `help:"Emit text runs with surrounding whitespace intact."`
	Attrs  bool   `help:"Also tokenize the attribute region of every tag."`
}

var (
	openColor  = color.New(color.FgGreen)
	closeColor = color.New(color.FgBlue)
	emptyColor = color.New(color.FgCyan)
	textColor  = color.New(color.Faint)
	attrColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed, color.Bold)
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("lazyxml"),
		kong.Description("Print the lazyxml event stream of a document."),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	data, err := readInput()
	if err != nil {
		return err
	}

	r := lazyxml.NewReader(data).TrimWhitespace(!cli.NoTrim)
	for {
		start := r.Offset()
		ev, err := r.Next()
		if err != nil {
			printErr(err)
			os.Exit(1)
		}
		if ev.Type == lazyxml.EventEOF {
			return nil
		}
		printEvent(start, ev)
		if cli.Attrs && ev.Type != lazyxml.EventText {
			if err := printAttrs(ev); err != nil {
				printErr(err)
				os.Exit(1)
			}
		}
	}
}

func readInput() ([]byte, error) {
	if cli.Path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(cli.Path)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func printEvent(start int, ev lazyxml.Event) {
	c := textColor
	switch ev.Type {
	case lazyxml.EventOpenTag:
		c = openColor
	case lazyxml.EventCloseTag:
		c = closeColor
	case lazyxml.EventEmptyTag:
		c = emptyColor
	}
	fmt.Printf("%8d  %s", start, c.Sprintf("%-8s", ev.Type))
	if len(ev.Name) > 0 {
		fmt.Printf("  %s", ev.Name)
	}
	if len(ev.Content) > 0 {
		fmt.Printf("  %q", ev.Content)
	}
	fmt.Println()
}

func printAttrs(ev lazyxml.Event) error {
	it := ev.Attrs()
	for it.Scan() {
		a := it.Attr()
		fmt.Printf("%8s  %s\n", "", attrColor.Sprintf("%s=%q", a.Key, a.Value))
	}
	return it.Err()
}

func printErr(err error) {
	fmt.Fprintln(os.Stderr, errColor.Sprint("error: "), err)
}
