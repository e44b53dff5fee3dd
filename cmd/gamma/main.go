// Command gamma is the Variant C crackme: a 16-register VM whose opcodes
// and operand indices never appear in the instruction stream at all — they
// are drawn live from the chaos stream seeded by the entered key. The
// embedded code/cipher pair is produced offline by cmd/gammakeygen.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chzyer/readline"
	"github.com/jessevdk/go-flags"

	"crackme/internal/banner"
	"crackme/internal/monitor"
	"crackme/internal/obfstring"
	"crackme/internal/telemetry"
	gvm "crackme/internal/vm"
	"crackme/internal/vmgamma"
)

const (
	stringKey = 0xAA
	stringMod = 13

	pollEvery   = 50 * time.Millisecond
	threshold   = 200 * time.Millisecond
	poisonValue = 0xFF
	resumeDelay = time.Microsecond
)

var encodedStrings = map[string][]byte{
	"banner": obfstring.Encode("=== GAMMA SECURITY LAYER ===", stringKey, stringMod),
	"prompt": obfstring.Encode("Input Authorization Key: ", stringKey, stringMod),
	"result": obfstring.Encode("System Output", stringKey, stringMod),
}

func decoded(name string) string {
	return obfstring.Decode(encodedStrings[name], stringKey, stringMod)
}

type options struct {
	LogLevel telemetry.LogLevel `short:"l" long:"loglevel" description:"Set the level of logging" choice:"none" choice:"info" choice:"debug" default:"info"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	telemetry.Setup(opts.LogLevel)

	banner.Print(decoded("banner"))

	rl, err := readline.New(decoded("prompt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start line reader: %v\n", err)
		os.Exit(0)
	}
	defer rl.Close()

	key, err := rl.Readline()
	if err != nil {
		os.Exit(0)
	}

	telemetry.RunStarted("gamma", len(key))

	mon := monitor.New(pollEvery, threshold, poisonValue)
	mon.Start()

	v := vmgamma.New(key, EncryptedCode, SecretCipher, mon)
	gvm.Drive(context.Background(), v, resumeDelay)

	mon.Stop()

	telemetry.RunComplete("gamma", v.DrawCount())

	banner.Output(decoded("result"), string(v.Output()))
}
