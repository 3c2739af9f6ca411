package main

import (
	"errors"
	"fmt"

	"github.com/czh0526/addrcase/casevariant"
	"github.com/czh0526/addrcase/netparams"
	flags "github.com/jessevdk/go-flags"
)

const (
	// defaultSeed is the garbled address this tool was first written for.
	defaultSeed             = "1lbcfr7sahtd9cgdqo3htmtkv8lk4znx71"
	defaultStrategy         = "exhaustive"
	defaultLogLevel         = "info"
	defaultProgressInterval = 1 << 16
)

type config struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	// Search options
	Seed       string `short:"s" long:"seed" description:"Lowercased base58check string to recover; a positional argument takes precedence"`
	Strategy   string `long:"strategy" description:"Search strategy {exhaustive, pruned}"`
	DecodedLen int    `long:"decodedlen" description:"Only accept variants that decode to this many bytes (0 accepts any length, pruned always uses 25)"`

	// Network used to describe recovered strings
	TestNet3 bool `long:"testnet" description:"Describe results using the test Bitcoin network (version 3) (default mainnet)"`
	RegTest  bool `long:"regtest" description:"Describe results using the regression test network"`
	SimNet   bool `long:"simnet" description:"Describe results using the simulation test network"`
	SigNet   bool `long:"signet" description:"Describe results using the signet test network"`

	// Output options
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	Progress   bool   `long:"progress" description:"Show a progress bar while testing variants (exhaustive strategy only)"`
	NoColor    bool   `long:"nocolor" description:"Disable colored output"`

	strategy casevariant.Strategy
	params   *netparams.Params
}

// errTooManyArgs is returned when more than one seed is given on the command
// line.
var errTooManyArgs = errors.New("at most one seed may be given as an argument")

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
func loadConfig(args []string) (*config, error) {
	cfg := config{
		Seed:       defaultSeed,
		Strategy:   defaultStrategy,
		DebugLevel: defaultLogLevel,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := preParser.ParseArgs(args); err != nil {
		return nil, err
	}
	if preCfg.ShowVersion {
		return &preCfg, nil
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if preCfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w",
				preCfg.ConfigFile, err)
		}
	}

	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	switch len(remaining) {
	case 0:
	case 1:
		cfg.Seed = remaining[0]
	default:
		return nil, fmt.Errorf("%w, got %d", errTooManyArgs, len(remaining))
	}

	if !validLogLevel(cfg.DebugLevel) {
		return nil, fmt.Errorf("the specified debug level [%v] is invalid",
			cfg.DebugLevel)
	}

	cfg.strategy, err = casevariant.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, err
	}

	if cfg.DecodedLen < 0 {
		return nil, fmt.Errorf("decodedlen must not be negative, got %d",
			cfg.DecodedLen)
	}
	if cfg.strategy == casevariant.StrategyPruned && cfg.DecodedLen != 0 &&
		cfg.DecodedLen != 25 {

		return nil, fmt.Errorf("the pruned strategy only finds 25 byte "+
			"strings, decodedlen %d cannot be used with it", cfg.DecodedLen)
	}

	numNets := 0
	cfg.params = &netparams.MainNetParams
	if cfg.TestNet3 {
		numNets++
		cfg.params = &netparams.TestNetParams
	}
	if cfg.RegTest {
		numNets++
		cfg.params = &netparams.RegressionNetParams
	}
	if cfg.SimNet {
		numNets++
		cfg.params = &netparams.SimNetParams
	}
	if cfg.SigNet {
		numNets++
		cfg.params = &netparams.SigNetParams
	}
	if numNets > 1 {
		return nil, errors.New("the testnet, regtest, simnet and signet " +
			"params can't be used together -- choose one")
	}

	return &cfg, nil
}

// isHelp reports whether err is the go-flags error for a help request.
func isHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}
