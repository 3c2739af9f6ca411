package casevariant

import (
	"context"
	"fmt"
	"time"
)

// cancelCheckInterval is how many candidates are tested between checks of the
// search context.
const cancelCheckInterval = 4096

// Strategy selects how the search space is walked.
type Strategy uint8

const (
	// StrategyExhaustive tests every variant in index order.
	StrategyExhaustive Strategy = iota

	// StrategyPruned treats the candidate as a base-58 number and skips
	// whole ranges of variants that share the same payload. It only finds
	// candidates decoding to 25 bytes.
	StrategyPruned
)

var strategyNames = map[Strategy]string{
	StrategyExhaustive: "exhaustive",
	StrategyPruned:     "pruned",
}

// String returns the strategy name as accepted by ParseStrategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	str := fmt.Sprintf("unknown search strategy %q", name)
	return 0, searchError(ErrUnknownStrategy, str, nil)
}

// Match is a case variant that passed validation.
type Match struct {
	Address string
	Index   uint64
	Version byte
}

// Stats summarises a search.
type Stats struct {
	Candidates         uint64
	DecodeFailures     uint64
	ChecksumMismatches uint64
	LengthMismatches   uint64
	Found              uint64
	Elapsed            time.Duration
}

func (s *Stats) record(r Result) {
	s.Candidates++
	switch r.Reason {
	case ReasonDecode:
		s.DecodeFailures++
	case ReasonChecksum:
		s.ChecksumMismatches++
	case ReasonLength:
		s.LengthMismatches++
	}
	if r.Outcome == Valid {
		s.Found++
	}
}

// Config controls a search.
type Config struct {
	Strategy  Strategy
	Validator Validator

	// OnProgress, if non-nil, is called by the exhaustive strategy every
	// ProgressInterval candidates with the number tested so far and the
	// size of the search space.
	OnProgress       func(tested, total uint64)
	ProgressInterval uint64
}

// Search tests the case variants of seed and calls emit for every valid one,
// in ascending variant index order. Invalid candidates never abort the search;
// it only returns early when ctx is done, in which case the stats gathered so
// far are returned along with an ErrCancelled error.
func Search(ctx context.Context, seed string, cfg Config,
	emit func(Match)) (*Stats, error) {

	start := time.Now()

	var (
		stats *Stats
		err   error
	)
	switch cfg.Strategy {
	case StrategyExhaustive:
		stats, err = searchExhaustive(ctx, seed, cfg, emit)
	case StrategyPruned:
		stats, err = searchPruned(ctx, seed, cfg, emit)
	default:
		str := fmt.Sprintf("unknown search strategy %v", cfg.Strategy)
		return nil, searchError(ErrUnknownStrategy, str, nil)
	}
	if stats != nil {
		stats.Elapsed = time.Since(start)
	}
	return stats, err
}

func searchExhaustive(ctx context.Context, seed string, cfg Config,
	emit func(Match)) (*Stats, error) {

	variants, err := Variants(seed)
	if err != nil {
		return nil, err
	}

	log.Debugf("Testing %d variants of %s (%d letters)", variants.Len(),
		seed, variants.Letters())

	stats := &Stats{}
	for variants.Next() {
		if stats.Candidates%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return stats, searchError(ErrCancelled,
					"search interrupted", err)
			}
		}

		candidate := variants.Candidate()
		result := cfg.Validator.Check(candidate)
		stats.record(result)

		if result.Outcome == Valid {
			log.Tracef("Variant %d is valid: %s", variants.Index(),
				candidate)
			emit(Match{
				Address: candidate,
				Index:   variants.Index(),
				Version: result.Version,
			})
		}

		if cfg.OnProgress != nil && cfg.ProgressInterval > 0 &&
			stats.Candidates%cfg.ProgressInterval == 0 {

			cfg.OnProgress(stats.Candidates, variants.Len())
		}
	}

	if cfg.OnProgress != nil && (cfg.ProgressInterval == 0 ||
		stats.Candidates%cfg.ProgressInterval != 0) {

		cfg.OnProgress(stats.Candidates, variants.Len())
	}
	return stats, nil
}
