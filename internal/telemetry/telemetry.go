// Package telemetry is the narrow slog wrapper the VM step loop and the
// tamper monitor narrate through. Unlike a generic Log(level, msg, args...)
// escape hatch, each exported function fixes its own vocabulary (a step's
// pc/instr/poison, a run's key length, a monitor trip's observed gap) so a
// caller can't accidentally log the register file a debugging attacker
// would want to see.
package telemetry

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel selects how much of a run gets narrated to stderr. It is its
// own type so go-flags can parse it directly off each binary's --loglevel
// flag via `choice:` struct tags.
type LogLevel string

const (
	LogLevelNone  LogLevel = "none"
	LogLevelInfo  LogLevel = "info"
	LogLevelDebug LogLevel = "debug"
)

var logger *slog.Logger

// Setup installs the process-wide logger. Below LogLevelInfo nothing is
// narrated at all; banners and result lines are the program's actual
// output and always go to stdout regardless of this setting.
func Setup(level LogLevel) {
	sink := io.Discard
	slogLevel := slog.LevelInfo
	switch level {
	case LogLevelDebug:
		sink = os.Stderr
		slogLevel = slog.LevelDebug
	case LogLevelInfo:
		sink = os.Stderr
	}
	logger = slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{Level: slogLevel}))
}

// Step narrates one VM dispatch at debug level. Registers are deliberately
// never passed here: logging them would hand an attacker the decryption
// derivation the tamper monitor exists to obscure.
func Step(variant string, pc int, instr string, poison uint64) {
	if logger == nil {
		return
	}
	logger.Debug("step", "variant", variant, "pc", pc, "instr", instr, "poison", poison)
}

// RunStarted narrates the key length a run begins with.
func RunStarted(variant string, keyLen int) {
	if logger == nil {
		return
	}
	logger.Info("run started", "variant", variant, "key-length", keyLen)
}

// RunComplete narrates a run's chaos-draw count once the VM reaches its
// terminal state.
func RunComplete(variant string, draws int) {
	if logger == nil {
		return
	}
	logger.Info("run complete", "variant", variant, "draws", draws)
}

// Tripped narrates the monitor's one-way transition into tampering state,
// carrying the heartbeat gap that triggered it.
func Tripped(gap time.Duration) {
	if logger == nil {
		return
	}
	logger.Info("tamper monitor tripped", "gap-ms", gap.Milliseconds())
}
