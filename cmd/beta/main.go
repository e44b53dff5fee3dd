// Command beta is the Variant B crackme: an 8-register unsigned VM whose
// program is built from the key's length, with AssertEq-driven early exit
// and an epilogue that decrypts (or garbles) a fixed message depending on
// the terminal register state.
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
	"crackme/internal/vmbeta"
)

const (
	stringKey = 0x33
	stringMod = 7

	pollEvery   = 100 * time.Millisecond
	threshold   = 500 * time.Millisecond
	poisonValue = 0xDEADBEEFCAFEBABE
	resumeDelay = time.Microsecond
)

var secretCipher = obfstring.Encode("Access Granted! Welcome to the BETA sector.", stringKey, stringMod)

var encodedStrings = map[string][]byte{
	"banner": obfstring.Encode("--- BETA LOCK SYSTEM ---", stringKey, stringMod),
	"prompt": obfstring.Encode("Authenticate: ", stringKey, stringMod),
	"result": obfstring.Encode("System Response", stringKey, stringMod),
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

	telemetry.RunStarted("beta", len(key))

	mon := monitor.New(pollEvery, threshold, poisonValue)
	mon.Start()

	v := vmbeta.New(key, mon)
	gvm.Drive(context.Background(), v, resumeDelay)

	mon.Stop()

	// No if(success) here on purpose: the plaintext only falls out of
	// Output when every AssertEq along the way actually passed. A wrong
	// key or a tamper trip just changes the mask.
	plaintext := obfstring.Decode(secretCipher, stringKey, stringMod)
	banner.Output(decoded("result"), string(v.Output([]byte(plaintext))))
}
