package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/holmium-go/holmium"
	"github.com/holmium-go/holmium/internal/cliutil"
	"github.com/holmium-go/holmium/nodedbg"
	"github.com/holmium-go/holmium/xnethtml"
)

type cmdopts struct {
	Compact  bool   `long:"compact" description:"disable pretty-printing"`
	Encoding string `long:"encoding" description:"output character encoding (default utf-8)"`
	Tree     bool   `long:"tree" description:"print the parsed tree structure instead of serializing"`
	Config   string `long:"config" description:"path to a YAML configuration file"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("holmium-fmt: using holmium version %s\n", holmium.Version)
}

func showUsage() {
	fmt.Printf(`Usage : holmium-fmt [options] HTMLfiles ...
	Parse the HTML files and print the re-serialized result
	--version : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	cfg := &Config{}
	if opts.Config != "" {
		cfg, err = LoadConfig(opts.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	}

	options := []holmium.Option{
		holmium.WithClassifier(cfg.Table()),
	}
	if opts.Compact || cfg.Compact {
		options = append(options, holmium.WithPrettyPrint(false))
	}
	switch {
	case opts.Encoding != "":
		options = append(options, holmium.WithEncoding(opts.Encoding))
	case cfg.Encoding != "":
		options = append(options, holmium.WithEncoding(cfg.Encoding))
	}
	s := holmium.New(options...)

	inputCh := make(chan io.Reader)
	errCh := make(chan error)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- fh
			}
		}()
	case !cliutil.IsTTY(os.Stdin):
		go func() {
			defer close(inputCh)
			inputCh <- os.Stdin
		}()
	default:
		showUsage()
		return 1
	}

	for in := range inputCh {
		doc, err := xnethtml.Parse(in)
		if c, ok := in.(io.Closer); ok && in != os.Stdin {
			c.Close()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		if opts.Tree {
			fmt.Print(nodedbg.Sprint(doc))
			continue
		}

		if err := s.DumpDoc(os.Stdout, doc); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s", err)
		return 1
	default:
	}

	return 0
}
