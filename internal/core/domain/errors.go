package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyInput is returned when no positive coins remain after normalization.
	ErrEmptyInput = zerr.New("coin set is empty after removing non-positive values")

	// ErrNonCoprime is returned when the gcd of the coin set, or of a pair, is not 1.
	ErrNonCoprime = zerr.New("coins are not coprime")

	// ErrValueTooLarge is returned when a coin exceeds the fixed-width limit of the chosen algorithm.
	ErrValueTooLarge = zerr.New("coin value too large")

	// ErrBoundExceeded is returned when the derived sieve bound exceeds the hard ceiling.
	ErrBoundExceeded = zerr.New("sieve bound exceeds ceiling")

	// ErrUnresolved is returned when round-robin leaves a residue class unsettled or the
	// sieve bound turns out not to cover the largest gap.
	ErrUnresolved = zerr.New("frobenius number could not be resolved")

	// ErrInvalidCoin is returned when a coin literal cannot be parsed as an integer.
	ErrInvalidCoin = zerr.New("invalid coin value")

	// ErrInvalidThreads is returned when a configured thread count is not a positive integer.
	ErrInvalidThreads = zerr.New("invalid thread count")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrBatchEmpty is returned when a batch file contains no coin sets.
	ErrBatchEmpty = zerr.New("batch file contains no coin sets")

	// ErrWatchFailed is returned when the batch file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch batch file")

	// ErrKnownCaseFailed is returned when the self-check produces an unexpected result.
	ErrKnownCaseFailed = zerr.New("known case check failed")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)
