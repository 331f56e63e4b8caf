// Command tokendump scans a schema description source file and prints its
// token stream, for manual inspection of the lexer's behavior on real input.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"

	"github.com/lukeod/lextok/diag"
	"github.com/lukeod/lextok/lexer"
	"github.com/lukeod/lextok/source"
)

func main() {
	log.SetFlags(0)

	inputPath := flag.String("file", "", "Path to the source file to tokenize")
	format := flag.String("format", "text", "Output format: text or repr")
	reportWhitespace := flag.Bool("report-whitespace", false, "Emit WHITESPACE tokens")
	reportNewlines := flag.Bool("report-newlines", false, "Emit NEWLINE tokens distinct from WHITESPACE")
	shellComments := flag.Bool("shell-comments", false, "Use '#' line comments instead of '//' and '/* */'")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("Error: -file flag is required")
	}
	if *format != "text" && *format != "repr" {
		log.Fatalf("Error: invalid -format %q. Must be 'text' or 'repr'", *format)
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		log.Fatalf("Error opening %s: %v", *inputPath, err)
	}
	defer f.Close()

	var opts []lexer.Option
	if *reportWhitespace {
		opts = append(opts, lexer.WithReportWhitespace(true))
	}
	if *reportNewlines {
		opts = append(opts, lexer.WithReportNewlines(true))
	}
	if *shellComments {
		opts = append(opts, lexer.WithCommentStyle(lexer.CommentStyleShell))
	}

	sink := &diag.CollectingSink{}
	stream := source.NewReaderSource(f, source.DefaultChunkSize)
	t := lexer.New(nil, stream, sink, opts...)
	defer t.Fini()

	tokens := t.TokenizeAll()

	for _, tok := range tokens {
		switch *format {
		case "repr":
			repr.Println(tok)
		default:
			fmt.Printf("%d:%d-%d\t%s\t%q\n", tok.Line, tok.Column, tok.EndColumn, tok.Type, tok.Text)
		}
	}

	if len(sink.Diagnostics) > 0 {
		log.Printf("%d diagnostic(s):", len(sink.Diagnostics))
		for _, d := range sink.Diagnostics {
			log.Println(d.String())
		}
	}

	if err := t.Err(); err != nil {
		log.Fatalf("Error reading input: %v", err)
	}
}
