// make_xftmpl - compile textual X-file templates to the binary token stream
//
// Usage:
//
//	make_xftmpl [OPTIONS] INFILE
//
// Options:
//
//	-H        Output a C header file instead of a binary file
//	-i NAME   Output a C header file, data in variable NAME
//	-s NAME   In a C header file, define NAME to be the data size
//	-o FILE   Write output to FILE (default: stdout)
//	-v        Verbose diagnostics
//	-log FILE Duplicate diagnostics to FILE
//
// An INFILE of "-" reads standard input. When writing to a named file, a
// failed or interrupted run removes the partial output before exiting.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	slogmulti "github.com/samber/slog-multi"

	"github.com/RazZziel/wine/xftmpl"
)

func main() {
	var (
		headerMode  bool
		incVarName  string
		incSizeName string
		outfileName string
		verbose     bool
		logFile     string
	)
	flag.BoolVar(&headerMode, "H", false, "output a C header file instead of a binary file")
	flag.StringVar(&incVarName, "i", "", "output a C header file, data in variable `NAME`")
	flag.StringVar(&incSizeName, "s", "", "in a C header file, define `NAME` to be the data size")
	flag.StringVar(&outfileName, "o", "-", "write output to `FILE`")
	flag.BoolVar(&verbose, "v", false, "verbose diagnostics")
	flag.StringVar(&logFile, "log", "", "duplicate diagnostics to `FILE`")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	infileName := flag.Arg(0)

	logger, closeLog := newLogger(verbose, logFile)
	defer closeLog()

	if incVarName != "" {
		headerMode = true
	}

	// Flags win over in-file pragmas: pre-seeding makes the pragma's
	// first-occurrence-wins rule skip them.
	dirs := xftmpl.Directives{Name: incVarName, Size: incSizeName}

	result, err := xftmpl.CompileFile(infileName, dirs)
	if err != nil {
		fatal(err)
	}
	logger.Debug("compiled template",
		"input", infileName,
		"bytes", len(result.Data),
		"var", result.Directives.Name,
		"size", result.Directives.Size)

	var out io.Writer = os.Stdout
	var guard *outputGuard
	if outfileName == "-" {
		outfileName = "stdout"
	} else {
		f, err := os.Create(outfileName)
		if err != nil {
			fatal(err)
		}
		guard = newOutputGuard(outfileName)
		defer f.Close()
		out = f
	}

	if headerMode {
		err = xftmpl.WriteHeader(out, result.Data, xftmpl.HeaderOptions{
			InputName:  infileName,
			OutputName: outfileName,
			VarName:    result.Directives.Name,
			SizeName:   result.Directives.Size,
		})
	} else {
		err = xftmpl.WriteRaw(out, result.Data)
	}
	if err != nil {
		if guard != nil {
			guard.cleanup()
		}
		fatal(err)
	}

	if guard != nil {
		guard.disarm()
	}
	logger.Debug("wrote output", "output", outfileName, "header", headerMode)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: make_xftmpl [OPTIONS] INFILE\n"+
		"Options:\n"+
		"  -H        Output to a c header file instead of a binary file\n"+
		"  -i NAME   Output to a c header file, data in variable NAME\n"+
		"  -s NAME   In a c header file, define NAME to be the data size\n"+
		"  -o FILE   Write output to FILE\n"+
		"  -v        Verbose diagnostics\n"+
		"  -log FILE Duplicate diagnostics to FILE\n")
}

// fatal reports an error and exits non-zero. Lexical errors already carry
// their file:line location; everything else gets the program-name prefix.
func fatal(err error) {
	var lexErr *xftmpl.LexError
	if errors.As(err, &lexErr) {
		fmt.Fprintln(os.Stderr, lexErr.Error())
	} else {
		fmt.Fprintf(os.Stderr, "make_xftmpl: error: %v\n", err)
	}
	os.Exit(1)
}

// newLogger builds the diagnostic logger: a text handler on stderr, fanned
// out to a log file when one is requested.
func newLogger(verbose bool, logFile string) (*slog.Logger, func()) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}
	closeLog := func() {}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "make_xftmpl: open log file: %v\n", err)
		} else {
			handlers = append(handlers,
				slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
			closeLog = func() { f.Close() }
		}
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeLog
}

// outputGuard removes a partially written output file on any non-success
// exit path, including interrupt signals.
type outputGuard struct {
	path string
	sigs chan os.Signal
	done chan struct{}
}

func newOutputGuard(path string) *outputGuard {
	g := &outputGuard{
		path: path,
		sigs: make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(g.sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		select {
		case <-g.sigs:
			os.Remove(g.path)
			os.Exit(1)
		case <-g.done:
		}
	}()
	return g
}

// disarm marks the output complete; the file is kept.
func (g *outputGuard) disarm() {
	signal.Stop(g.sigs)
	close(g.done)
}

// cleanup removes the partial output after a failure.
func (g *outputGuard) cleanup() {
	signal.Stop(g.sigs)
	close(g.done)
	os.Remove(g.path)
}
