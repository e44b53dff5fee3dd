package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crackme/internal/monitor"
	gvm "crackme/internal/vm"
	"crackme/internal/vmgamma"
)

func TestForgeRoundTripsThroughTheRealVM(t *testing.T) {
	key := "correct-horse-battery-staple"
	plaintext := "the vault is open"

	code, cipher := forge(key, plaintext)

	mon := monitor.New(time.Hour, time.Hour, 0xFF)
	v := vmgamma.New(key, code, cipher, mon)
	gvm.Drive(context.Background(), v, time.Microsecond)

	require.Equal(t, plaintext, string(v.Output()))
}

func TestForgeGarblesUnderWrongKey(t *testing.T) {
	key := "correct-horse-battery-staple"
	plaintext := "the vault is open"
	code, cipher := forge(key, plaintext)

	mon := monitor.New(time.Hour, time.Hour, 0xFF)
	v := vmgamma.New("wrong-horse", code, cipher, mon)
	gvm.Drive(context.Background(), v, time.Microsecond)

	require.NotEqual(t, plaintext, string(v.Output()))
}

func TestGoSourceFormatProducesBothVars(t *testing.T) {
	code, cipher := forge("k", "hi")
	src := goSource(code, cipher)

	require.Contains(t, src, "var EncryptedCode = []byte{")
	require.Contains(t, src, "var SecretCipher = []byte{")
}

func TestHexSourceFormatIsOneLinePerArray(t *testing.T) {
	code, cipher := forge("k", "hi")
	src := hexSource(code, cipher)

	require.Contains(t, src, "EncryptedCode ")
	require.Contains(t, src, "SecretCipher ")
	require.Equal(t, 2, strings.Count(src, "\n"))
}
