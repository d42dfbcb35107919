package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	apppkg "github.com/ianprime0509/spg/internal/app"
	"github.com/ianprime0509/spg/internal/textio"
)

const defaultTabWidth = 8

func printHelp() {
	fmt.Print(`spg - simple terminal pager

USAGE:
    spg [OPTIONS] [FILE]

Reads FILE, or standard input when no file is given.

OPTIONS:
    -h, --help       Show this help message and exit
    -t, --tab N      Render tab stops every N columns (default 8)

KEYS:
    j/k              Scroll down/up one line
    d/u              Scroll down/up half a screen
    f/b, Space       Scroll down/up a full screen
    g/G              Go to top/bottom
    /  ?             Search forward/backward
    n/N              Repeat search, same/opposite direction
    q                Quit
`)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "spg: %v\n", err)
	os.Exit(1)
}

func parseArgs(args []string) (path string, tabWidth int, err error) {
	tabWidth = defaultTabWidth
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "-t" || arg == "--tab":
			if i+1 >= len(args) {
				return "", 0, fmt.Errorf("%s requires a value", arg)
			}
			i++
			tabWidth, err = strconv.Atoi(args[i])
			if err != nil || tabWidth < 1 {
				return "", 0, fmt.Errorf("invalid tab width %q", args[i])
			}
		case strings.HasPrefix(arg, "--tab="):
			value := strings.TrimPrefix(arg, "--tab=")
			tabWidth, err = strconv.Atoi(value)
			if err != nil || tabWidth < 1 {
				return "", 0, fmt.Errorf("invalid tab width %q", value)
			}
		case strings.HasPrefix(arg, "-") && arg != "-":
			return "", 0, fmt.Errorf("unknown option %q", arg)
		default:
			if path != "" {
				return "", 0, fmt.Errorf("only one file may be paged")
			}
			path = arg
		}
	}
	return path, tabWidth, nil
}

func openContent(path string) (io.Reader, string, func(), error) {
	if path == "" || path == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, "", nil, fmt.Errorf("missing filename (%q for help)", "spg --help")
		}
		return os.Stdin, "(stdin)", func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, "", nil, err
	}
	return file, path, func() { _ = file.Close() }, nil
}

func main() {
	// fatal exits without running defers, so all cleanup lives in run.
	if err := run(); err != nil {
		fatal(err)
	}
}

func run() error {
	path, tabWidth, err := parseArgs(os.Args[1:])
	if err != nil {
		return err
	}

	content, name, closeContent, err := openContent(path)
	if err != nil {
		return err
	}
	defer closeContent()

	source, _, err := textio.NewSource(content)
	if err != nil {
		return err
	}

	app, err := apppkg.NewApplication(source, name, tabWidth)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run()
}
