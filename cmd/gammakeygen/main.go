// Command gammakeygen is the offline companion to cmd/gamma: given an
// intended key and plaintext, it forges a (code, cipher) pair that the
// online VM will decode back to that plaintext for that key only, and
// garbles it for anything else.
//
// It shares vmgamma's Draw* helpers and SeedRegisters rather than
// reimplementing the chaos draw order, so its output can never drift out
// of alignment (P2) with what internal/vmgamma.VM actually does.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"crackme/internal/chaos"
	"crackme/internal/vmgamma"
)

type options struct {
	Key       string `short:"k" long:"key" description:"The key that must unlock this program" required:"true"`
	Plaintext string `short:"p" long:"plaintext" description:"The message to embed" required:"true"`
	Format    string `short:"f" long:"format" description:"Output format" choice:"go" choice:"hex" default:"go"`
	Out       string `short:"o" long:"out" description:"Output file path; stdout if omitted"`
}

// forge builds the (code, cipher) pair for key/plaintext by forcing every
// decoded opcode to OpMov: DrawOpcodeMask's result XORed with the raw code
// byte must land on OpMov, so the raw byte is simply OpMov XOR the mask the
// VM will independently draw at that same step.
func forge(key, plaintext string) (code, cipher []byte) {
	c := chaos.New(key)

	var regs [vmgamma.RegisterCount]uint64
	vmgamma.SeedRegisters(c, &regs)

	code = make([]byte, vmgamma.StepBudget)
	for i := 0; i < vmgamma.StepBudget; i++ {
		mask := vmgamma.DrawOpcodeMask(c)
		code[i] = byte(vmgamma.OpMov) ^ mask

		idx1, idx2 := vmgamma.DrawOperandIndices(c)
		regs[idx1] = regs[idx2]
	}

	pt := []byte(plaintext)
	cipher = make([]byte, len(pt))
	for i, b := range pt {
		cipher[i] = b ^ byte(regs[i%vmgamma.RegisterCount]&0xFF)
	}
	return code, cipher
}

func goSource(code, cipher []byte) string {
	var b strings.Builder
	b.WriteString("package main\n\n")
	writeSlice(&b, "EncryptedCode", code)
	b.WriteString("\n")
	writeSlice(&b, "SecretCipher", cipher)
	return b.String()
}

func writeSlice(b *strings.Builder, name string, data []byte) {
	fmt.Fprintf(b, "var %s = []byte{\n", name)
	for i := 0; i < len(data); i += 12 {
		end := i + 12
		if end > len(data) {
			end = len(data)
		}
		b.WriteString("\t")
		for _, v := range data[i:end] {
			fmt.Fprintf(b, "0x%02X, ", v)
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
}

func hexSource(code, cipher []byte) string {
	return fmt.Sprintf("EncryptedCode %s\nSecretCipher %s\n", hex.EncodeToString(code), hex.EncodeToString(cipher))
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

	code, cipher := forge(opts.Key, opts.Plaintext)

	var out string
	switch opts.Format {
	case "hex":
		out = hexSource(code, cipher)
	default:
		out = goSource(code, cipher)
	}

	if opts.Out == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(opts.Out, []byte(out), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", opts.Out, err)
		os.Exit(1)
	}
}
