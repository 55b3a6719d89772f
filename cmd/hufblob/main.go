// Command hufblob compresses and decompresses files with the hufblob
// Huffman codec.
//
// Usage:
//
//	hufblob compress   -in FILE -out DIR [-padding full|minimal] [-verify]
//	hufblob decompress -in FILE -out DIR
//	hufblob inspect    -in FILE
//	hufblob compare    -in FILE
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/arloliu/hufblob"
	"github.com/arloliu/hufblob/compress"
	"github.com/arloliu/hufblob/errs"
	"github.com/arloliu/hufblob/fileio"
	"github.com/arloliu/hufblob/format"
)

var errUsage = errors.New("usage: hufblob <compress|decompress|inspect|compare> -in FILE [-out DIR]")

func main() {
	logger := log.New(os.Stderr, "hufblob: ", 0)
	os.Exit(run(os.Args[1:], os.Stdout, logger))
}

func run(args []string, stdout io.Writer, logger *log.Logger) int {
	if len(args) == 0 {
		logger.Println(errUsage)
		return 2
	}

	notifier := fileio.LogNotifier{Logger: logger}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "compress":
		err = runCompress(rest, notifier)
	case "decompress":
		err = runDecompress(rest, notifier)
	case "inspect":
		err = runInspect(rest, stdout)
	case "compare":
		err = runCompare(rest, stdout)
	default:
		logger.Printf("unknown command %q", cmd)
		logger.Println(errUsage)

		return 2
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		// compress and decompress already reported through the notifier
		if !errors.As(err, new(reportedError)) {
			logger.Println(err)
		}

		return 1
	}

	return 0
}

// reportedError marks an error the notifier has already logged.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	in := fs.String("in", "", "input file")

	return fs, in
}

func runCompress(args []string, n fileio.Notifier) error {
	fs, in := newFlagSet("compress")
	out := fs.String("out", ".", "output directory")
	padding := fs.String("padding", "full", "padding policy: full or minimal")
	verify := fs.Bool("verify", false, "decode the artifact again and compare checksums")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errUsage
	}

	policy, err := parsePadding(*padding)
	if err != nil {
		return err
	}

	_, err = fileio.Run("compress", func() (string, error) {
		return fileio.CompressFile(*in, *out, hufblob.WithPaddingPolicy(policy), hufblob.WithVerify(*verify))
	}, n)
	if err != nil {
		return reportedError{err}
	}

	return nil
}

func runDecompress(args []string, n fileio.Notifier) error {
	fs, in := newFlagSet("decompress")
	out := fs.String("out", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errUsage
	}

	_, err := fileio.Run("decompress", func() (string, error) {
		return fileio.DecompressFile(*in, *out)
	}, n)
	if err != nil {
		return reportedError{err}
	}

	return nil
}

func runInspect(args []string, w io.Writer) error {
	fs, in := newFlagSet("inspect")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errUsage
	}

	artifact, err := fileio.ReadFile(*in)
	if err != nil {
		return err
	}

	info, err := hufblob.Inspect(artifact)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "original length: %d bytes\n", info.OriginalLength)
	fmt.Fprintf(w, "artifact size:   %d bytes\n", info.ArtifactSize)
	fmt.Fprintf(w, "ratio:           %.3f (%.1f%% saved)\n", info.Ratio(), info.SpaceSavings())
	fmt.Fprintf(w, "tree bits:       %d\n", info.TreeBits)
	fmt.Fprintf(w, "payload bits:    %d\n", info.PayloadBits)
	fmt.Fprintf(w, "padding bits:    %d\n", info.Padding)
	fmt.Fprintf(w, "checksum:        %016x\n", info.Checksum)
	_, err = info.Table.Dump(w)

	return err
}

func runCompare(args []string, w io.Writer) error {
	fs, in := newFlagSet("compare")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return errUsage
	}

	data, err := fileio.ReadFile(*in)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-8s %12s %8s %9s\n", "codec", "size", "ratio", "savings")
	for _, ct := range compress.Builtin() {
		stats, err := compress.Measure(ct, data)
		if errors.Is(err, errs.ErrEmptyInput) {
			fmt.Fprintf(w, "%-8s %12s\n", ct, "n/a (empty input)")
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-8s %12d %8.3f %8.1f%%\n", ct, stats.CompressedSize, stats.CompressionRatio(), stats.SpaceSavings())
	}

	return nil
}

func parsePadding(s string) (format.PaddingPolicy, error) {
	switch s {
	case "full":
		return format.PaddingAlwaysFull, nil
	case "minimal":
		return format.PaddingMinimal, nil
	default:
		return 0, fmt.Errorf("unknown padding policy %q", s)
	}
}
