// Command unescape decodes backslash escape sequences from stdin or from
// files named as arguments, writing the decoded text to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/unescape"
	"github.com/jcorbin/unescape/internal/flushio"
	"github.com/jcorbin/unescape/internal/panicerr"
)

func main() {
	var timeout time.Duration
	var trace bool
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.Parse()

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logf := func(string, ...interface{}) {}
	if trace {
		logf = log.Printf
	}

	if err := run(ctx, flag.Args(), os.Stdin, os.Stdout, logf); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

// run decodes stdin when no names are given, or every named file
// concurrently, writing results to out in argument order. The first decode
// or read error aborts the whole run; nothing is written after a failure.
func run(ctx context.Context, names []string, in io.Reader, out io.Writer, logf func(string, ...interface{})) error {
	var results []string

	if len(names) == 0 {
		res, err := decodeReader("<stdin>", in, logf)
		if err != nil {
			return err
		}
		results = []string{res}
	} else {
		results = make([]string, len(names))
		group, ctx := errgroup.WithContext(ctx)
		for i, name := range names {
			i, name := i, name
			group.Go(func() error {
				return panicerr.Recover(name, func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					f, err := os.Open(name)
					if err != nil {
						return err
					}
					defer f.Close()
					results[i], err = decodeReader(name, f, logf)
					return err
				})
			})
		}
		if err := group.Wait(); err != nil {
			return err
		}
	}

	wf := flushio.NewWriteFlusher(out)
	for _, res := range results {
		if _, err := io.WriteString(wf, res); err != nil {
			return err
		}
	}
	return wf.Flush()
}

func decodeReader(name string, r io.Reader, logf func(string, ...interface{})) (string, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return "", err
	}
	res, err := unescape.Decode(string(b))
	if err != nil {
		return "", fmt.Errorf("%v: %w", name, err)
	}
	logf("decoded %v: %v bytes in, %v bytes out", name, len(b), len(res))
	return res, nil
}
