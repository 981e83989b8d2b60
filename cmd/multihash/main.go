package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/Hussein-Mazeh/multihash/auth"
	"github.com/Hussein-Mazeh/multihash/internal/config"
	"github.com/Hussein-Mazeh/multihash/internal/logger"
	"github.com/Hussein-Mazeh/multihash/internal/passin"
	"github.com/Hussein-Mazeh/multihash/krypto"
)

const usageLine = "Usage: multihash [-list] [-warn-weak] [-v] <algorithm> <count> <salt>"

// Exit codes. Scripts depend on these values.
const (
	exitOK               = 0
	exitUsage            = 1
	exitCount            = 2
	exitUnknownAlgorithm = 3
	exitContextCreate    = 4
	exitDigestInit       = 5
	exitSaltUpdate       = 6
	exitPasswordUpdate   = 7
	exitDigestFinal      = 8
	exitIO               = 9
)

type userError struct {
	msg  string
	code int
}

func (e userError) Error() string { return e.msg }

type ioError struct {
	err error
}

func (e ioError) Error() string { return e.err.Error() }
func (e ioError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	err := execute(args, stdin, stdout, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	return handleError(stderr, err)
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("multihash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var list, verbose, warnWeak bool
	fs.BoolVar(&list, "list", false, "print the supported algorithms and exit")
	fs.BoolVar(&warnWeak, "warn-weak", false, "warn on stderr when the password is weak (default $MULTIHASH_WARN_WEAK)")
	fs.BoolVar(&verbose, "v", false, "log diagnostics to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stderr, fs)
			return err
		}
		return userError{msg: usageLine, code: exitUsage}
	}

	reg := krypto.LoadDigests()
	defer reg.Close()

	if list {
		for _, name := range reg.Names() {
			if _, err := fmt.Fprintln(stdout, name); err != nil {
				return ioError{fmt.Errorf("write algorithm list: %w", err)}
			}
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return userError{msg: err.Error(), code: exitUsage}
	}
	if !flagSet(fs, "warn-weak") {
		warnWeak = cfg.WarnWeak
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log := logger.New(stderr, level)

	if fs.NArg() != 3 {
		return userError{msg: usageLine, code: exitUsage}
	}
	algorithm, salt := fs.Arg(0), []byte(fs.Arg(2))

	count := parseCount(fs.Arg(1))
	if count <= 0 {
		return userError{msg: "Please give a positive count", code: exitCount}
	}

	// Resolve the name before reading stdin so a typo fails without a prompt.
	alg, err := reg.Lookup(algorithm)
	if err != nil {
		return err
	}

	pw, err := passin.Read(stdin, stderr, cfg.Prompt)
	if err != nil {
		return ioError{err}
	}
	defer krypto.Wipe(pw)

	if warnWeak {
		if err := auth.CheckPolicy(pw); err != nil {
			fmt.Fprintf(stderr, "warning: %v\n", err)
		}
	}

	start := time.Now()
	digest, err := reg.Stretch(alg.Name, salt, count, pw)
	if err != nil {
		return err
	}
	defer krypto.Wipe(digest)

	log.Debug("stretch complete",
		"algorithm", alg.Name,
		"count", count,
		"digest_size", alg.Size,
		"elapsed", time.Since(start),
	)

	if _, err := stdout.Write(digest); err != nil {
		return ioError{fmt.Errorf("write digest: %w", err)}
	}
	if _, err := io.WriteString(stdout, "\n"); err != nil {
		return ioError{fmt.Errorf("write digest: %w", err)}
	}
	return nil
}

func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// parseCount reads a count the way C's atoi does: leading whitespace and an
// optional sign, then decimal digits up to the first other byte. No digits
// yields 0. Values beyond the int range saturate.
func parseCount(s string) int {
	i := 0
	for i < len(s) && strings.IndexByte(" \t\n\v\f\r", s[i]) >= 0 {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			break
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}

func handleError(stderr io.Writer, err error) int {
	if err == nil {
		return exitOK
	}

	var uerr userError
	if errors.As(err, &uerr) {
		fmt.Fprintln(stderr, uerr.msg)
		return uerr.code
	}

	var ierr ioError
	if errors.As(err, &ierr) {
		fmt.Fprintf(stderr, "i/o error: %v\n", ierr.err)
		return exitIO
	}

	switch krypto.KindOf(err) {
	case krypto.KindInvalidCount:
		fmt.Fprintln(stderr, "Please give a positive count")
		return exitCount
	case krypto.KindUnknownAlgorithm:
		fmt.Fprintf(stderr, "Unknown hash algorithm %q\n", unknownName(err))
		return exitUnknownAlgorithm
	case krypto.KindContextCreate:
		return internalError(stderr, err, exitContextCreate)
	case krypto.KindDigestInit:
		return internalError(stderr, err, exitDigestInit)
	case krypto.KindSaltUpdate:
		return internalError(stderr, err, exitSaltUpdate)
	case krypto.KindPasswordUpdate:
		return internalError(stderr, err, exitPasswordUpdate)
	case krypto.KindDigestFinal:
		return internalError(stderr, err, exitDigestFinal)
	}

	fmt.Fprintf(stderr, "unexpected error: %v\n", err)
	return exitIO
}

func internalError(stderr io.Writer, err error, code int) int {
	fmt.Fprintf(stderr, "Internal error: %v\n", err)
	return code
}

func unknownName(err error) string {
	var kerr *krypto.Error
	if errors.As(err, &kerr) {
		return kerr.Algorithm
	}
	return ""
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w, "Reads the password from stdin up to a NUL byte (or EOF) and prints")
	fmt.Fprintln(w, "the salted, iterated digest in lowercase hex.")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
