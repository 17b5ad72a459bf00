// Command ludolph prints an arbitrary-precision approximation of π.
//
// Usage:
//
//	ludolph [-method leibniz|bbp|chudnovsky] [-terms N] [-workers P]
//	        [-precision D] [-digits D]
//
// The leibniz method sums -terms series terms at -precision significant
// digits. The bbp and chudnovsky methods target -digits significant digits
// directly (falling back to -precision when -digits is unset).
//
// Exit codes: 0 on success, 2 on an invalid argument, 1 on a computation
// failure. The decimal goes to stdout; errors go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/ericlagergren/decimal"

	"github.com/ludolph/ludolph/bbp"
	"github.com/ludolph/ludolph/chudnovsky"
	"github.com/ludolph/ludolph/leibniz"
	"github.com/ludolph/ludolph/numeric"
	"github.com/ludolph/ludolph/parallel"
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitBadRequest = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ludolph", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		method    = fs.String("method", "leibniz", "estimator: leibniz, bbp or chudnovsky")
		terms     = fs.Int("terms", 1_000_000, "number of series terms (leibniz only)")
		workers   = fs.Int("workers", runtime.NumCPU(), "number of parallel workers")
		precision = fs.Int("precision", 100, "significant decimal digits")
		digits    = fs.Int("digits", 0, "digit target for bbp/chudnovsky (default: precision)")
	)
	if err := fs.Parse(args); err != nil {
		return exitBadRequest
	}

	target := *digits
	if target == 0 {
		target = *precision
	}

	pi, err := estimate(ctx, *method, *terms, *workers, *precision, target)
	if err != nil {
		fmt.Fprintln(stderr, "ludolph:", err)
		if invalidArgument(err) {
			return exitBadRequest
		}

		return exitFailure
	}

	fmt.Fprintln(stdout, pi)

	return exitOK
}

func estimate(ctx context.Context, method string, terms, workers, precision, digits int) (*decimal.Big, error) {
	switch method {
	case "leibniz":
		return leibniz.Estimate(ctx, terms,
			leibniz.WithWorkers(workers),
			leibniz.WithPrecision(precision),
		)
	case "bbp":
		return bbp.Estimate(ctx, digits, bbp.WithWorkers(workers))
	case "chudnovsky":
		return chudnovsky.Estimate(ctx, digits, chudnovsky.WithWorkers(workers))
	default:
		return nil, fmt.Errorf("%w: %q (want leibniz, bbp or chudnovsky)", errUnknownMethod, method)
	}
}

// invalidArgument reports whether err is one of the argument-validation
// sentinels, as opposed to a runtime computation failure.
func invalidArgument(err error) bool {
	for _, sentinel := range []error{
		leibniz.ErrBadTerms,
		leibniz.ErrBadWorkers,
		leibniz.ErrBadPrecision,
		bbp.ErrBadDigits,
		bbp.ErrBadWorkers,
		chudnovsky.ErrBadDigits,
		chudnovsky.ErrBadWorkers,
		numeric.ErrBadPrecision,
		parallel.ErrBadTotal,
		parallel.ErrBadParts,
		errUnknownMethod,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

// errUnknownMethod classifies a bad -method value as an argument error.
var errUnknownMethod = errors.New("unknown method")
