// mdv renders markdown as styled text for the terminal.
//
// Usage:
//
//	mdv README.md
//	mdv -p README.md        # scrollable pager
//	cat notes.md | mdv
//	mdv -theme mono doc.md  # unstyled output
//
// Width defaults to the terminal width (80 when stdout is not a
// terminal); -width overrides it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/dkoosis/mdv/internal/pager"
	"github.com/dkoosis/mdv/internal/theme"
	"github.com/dkoosis/mdv/pkg/markdown"
	"github.com/dkoosis/mdv/pkg/renderer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mdv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	widthFlag := fs.Int("width", 0, "Wrap width (0 = detect terminal width)")
	themeFlag := fs.String("theme", "default", "Theme: default, mono, or a YAML file path")
	tabFlag := fs.Int("tab", renderer.DefaultTabWidth, "Indent width in spaces")
	noReflowFlag := fs.Bool("no-reflow", false, "Disable width-aware text reflow")
	prefixFlag := fs.Bool("section-prefix", false, "Prefix headings with # markers")
	sanitizeFlag := fs.Bool("sanitize", false, "Drop javascript: links")
	highlightFlag := fs.String("highlight", "monokai", "Chroma style for code blocks")
	pagerFlag := fs.Bool("p", false, "View output in a scrollable pager")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	source, err := readSource(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "mdv: %v\n", err)
		return 2
	}

	t, err := theme.Load(*themeFlag)
	if err != nil {
		fmt.Fprintf(stderr, "mdv: %v\n", err)
		return 2
	}
	profile := termenv.ANSI256
	if t.Name == "mono" {
		profile = termenv.Ascii
	}
	styles, tableOpts := t.Compile(profile)

	width := *widthFlag
	if width <= 0 {
		width = terminalWidth(stdout)
	}

	r := renderer.New(renderer.Options{
		Width:             width,
		TabWidth:          *tabFlag,
		ReflowText:        !*noReflowFlag,
		ShowSectionPrefix: *prefixFlag,
		Unescape:          true,
		Emoji:             true,
		SanitizeLinks:     *sanitizeFlag,
		HighlightTheme:    *highlightFlag,
		Styles:            styles,
		Table:             tableOpts,
	})

	output := markdown.Render(source, r)

	if *pagerFlag && isTTYWriter(stdout) {
		if err := pager.Run(output); err != nil {
			fmt.Fprintf(stderr, "mdv: pager: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprint(stdout, output)
	return 0
}

// readSource reads the single file argument, or stdin when no file is
// named.
func readSource(args []string, stdin io.Reader) ([]byte, error) {
	switch len(args) {
	case 0:
		return io.ReadAll(stdin)
	case 1:
		return os.ReadFile(args[0])
	default:
		return nil, fmt.Errorf("expected one file argument, got %d", len(args))
	}
}

// terminalWidth returns the width of the terminal behind w, or the
// renderer default when w is not a terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return renderer.DefaultWidth
}

func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
