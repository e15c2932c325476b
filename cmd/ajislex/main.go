// Command ajislex is a test driver for the AJIS lexer: it reads a file or
// stdin, lexes it to completion, and prints the resulting tokens (or the
// first diagnostic, pretty-printed, on failure). It is not part of the
// lexer's public surface.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/repr"

	"github.com/afrowaveltd/ajis/diagprint"
	"github.com/afrowaveltd/ajis/lexer"
	"github.com/afrowaveltd/ajis/token"
)

func main() {
	log.SetFlags(0)

	inputFile := flag.String("file", "", "path to the AJIS source file (default: stdin)")
	allowSeparators := flag.Bool("separators", false, "allow thousands separators in numeric literals")
	allowMultiline := flag.Bool("multiline-strings", false, "allow literal newlines inside strings")
	noColor := flag.Bool("no-color", false, "disable ANSI color in diagnostic output")
	dump := flag.Bool("dump", false, "print tokens with github.com/alecthomas/repr instead of one line each")
	flag.Parse()

	source, filename, err := readSource(*inputFile)
	if err != nil {
		log.Fatalf("ajislex: %v", err)
	}

	opts := lexer.Options{
		AllowNumberSeparators: *allowSeparators,
		AllowMultilineStrings: *allowMultiline,
	}
	l := lexer.New(source, opts)

	var tokens []token.Token
	for {
		tok, d := l.Next()
		if !d.IsOK() {
			diagprint.Pretty(os.Stderr, filename, source, d, !*noColor)
			os.Exit(1)
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	if *dump {
		repr.Println(tokens)
		return
	}
	for _, tok := range tokens {
		fmt.Printf("%-10s %d..%d\n", tok.Kind, tok.Span.Offset, tok.Span.End())
	}
}

func readSource(path string) ([]byte, string, error) {
	if path == "" {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return source, "<stdin>", nil
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return source, path, nil
}
