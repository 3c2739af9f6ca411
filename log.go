package main

import (
	"os"

	"github.com/btcsuite/btclog"
	"github.com/czh0526/addrcase/casevariant"
)

// Loggers per subsystem. A single backend logger is created and all subsystem
// loggers created from it will write to the backend.
var (
	backendLog = btclog.NewBackend(os.Stderr)

	log     = backendLog.Logger("ACRS")
	cvarLog = backendLog.Logger("CVAR")
)

func init() {
	casevariant.UseLogger(cvarLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"ACRS": log,
	"CVAR": cvarLog,
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level. Invalid levels are ignored; loadConfig rejects them up front.
func setLogLevels(logLevel string) {
	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		return
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}

func validLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}
