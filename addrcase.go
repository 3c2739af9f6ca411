package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/czh0526/addrcase/casevariant"
	"github.com/czh0526/addrcase/netparams"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

const appVersion = "0.1.0"

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := addrcaseMain(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// addrcaseMain is the real main function. It is necessary to work around the
// fact that deferred functions do not run when os.Exit() is called.
func addrcaseMain(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		if isHelp(err) {
			fmt.Fprintln(os.Stdout, err)
			return nil
		}
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	if cfg.ShowVersion {
		fmt.Printf("addrcase version %s (Go version %s %s/%s)\n", appVersion,
			runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	}

	setLogLevels(cfg.DebugLevel)
	if cfg.NoColor {
		color.NoColor = true
	}

	// Validate the seed before anything is started so a bad argument
	// fails fast with a clear message.
	variants, err := casevariant.Variants(cfg.Seed)
	if err != nil {
		log.Errorf("Invalid seed: %v", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	addInterruptHandler(cancel)

	log.Infof("Searching %d case variants of %s using the %v strategy",
		variants.Len(), cfg.Seed, cfg.strategy)

	searchCfg := casevariant.Config{
		Strategy:  cfg.strategy,
		Validator: casevariant.Validator{DecodedLen: cfg.DecodedLen},
	}
	if cfg.Progress && cfg.strategy == casevariant.StrategyExhaustive {
		bar := newProgressBar(os.Stderr, variants.Len())
		defer bar.Finish()

		searchCfg.ProgressInterval = defaultProgressInterval
		searchCfg.OnProgress = func(tested, _ uint64) {
			_ = bar.Set64(int64(tested))
		}
	}

	rep := newReporter(os.Stdout, cfg.params)
	stats, err := casevariant.Search(ctx, cfg.Seed, searchCfg, rep.found)
	if stats != nil {
		logStats(stats)
	}
	if err != nil {
		if casevariant.IsError(err, casevariant.ErrCancelled) {
			log.Warnf("Search stopped before the search space was " +
				"exhausted, results are incomplete")
		} else {
			log.Errorf("Search failed: %v", err)
		}
		return err
	}

	if stats.Found == 0 {
		log.Infof("No valid variant found")
	}
	return nil
}

func logStats(stats *casevariant.Stats) {
	log.Infof("Tested %d candidates in %v, found %d", stats.Candidates,
		stats.Elapsed.Round(time.Millisecond), stats.Found)
	log.Debugf("Rejected %d on decode, %d on checksum, %d on length",
		stats.DecodeFailures, stats.ChecksumMismatches,
		stats.LengthMismatches)
}

func newProgressBar(w io.Writer, total uint64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		int64(total),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Testing variants"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("variants/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionFullWidth(),
	)
}

// reporter prints every recovered string as soon as the search emits it.
type reporter struct {
	w         io.Writer
	params    *netparams.Params
	highlight func(a ...interface{}) string
}

func newReporter(w io.Writer, params *netparams.Params) *reporter {
	return &reporter{
		w:         w,
		params:    params,
		highlight: color.New(color.FgGreen, color.Bold).SprintFunc(),
	}
}

func (r *reporter) found(m casevariant.Match) {
	fmt.Fprintf(r.w, "Found valid address: %s (%s, %s)\n",
		r.highlight(m.Address), r.params.AddressKind(m.Version), r.params.Name)
}
