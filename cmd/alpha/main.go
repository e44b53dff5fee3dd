// Command alpha is the Variant A crackme: an 8-register signed VM checking
// a single character of the key against a fixed, built-in program.
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
	"crackme/internal/vmalpha"
)

const (
	stringKey = 0x55
	stringMod = 3

	pollEvery   = 100 * time.Millisecond
	threshold   = 100 * time.Millisecond
	poisonValue = 0x1337
	resumeDelay = 10 * time.Microsecond
)

var encodedStrings = map[string][]byte{
	"banner":  obfstring.Encode("################################\n#   TOP TIER CRACKME v1.0      #\n################################", stringKey, stringMod),
	"prompt":  obfstring.Encode("Enter Key: ", stringKey, stringMod),
	"granted": obfstring.Encode("[+] ACCESS GRANTED. Welcome, Master.", stringKey, stringMod),
	"denied":  obfstring.Encode("[-] ACCESS DENIED. The system is locked.", stringKey, stringMod),
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

	telemetry.RunStarted("alpha", len(key))

	mon := monitor.New(pollEvery, threshold, poisonValue)
	mon.Start()

	v := vmalpha.New(key, mon)
	gvm.Drive(context.Background(), v, resumeDelay)

	mon.Stop()

	if v.Success() {
		banner.Granted(decoded("granted"))
	} else {
		banner.Denied(decoded("denied"))
	}
}
