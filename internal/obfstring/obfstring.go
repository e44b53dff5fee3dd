// Package obfstring reproduces the three challenges' compile-time string
// obfuscation scheme: byte[i] XOR key XOR (i mod m). The scheme itself is
// explicitly out of scope for design (spec.md §1) — this is a direct,
// minimal port of XStr::decrypt()/s(), not a new design.
package obfstring

// Encode XORs s with the scheme so the result can be embedded as a byte
// literal; Decode reverses it. They're the same operation (XOR is its own
// inverse), kept as two names because that's how the three challenges use
// them: Encode at "build time" by cmd/*'s string tables, Decode at first
// use.
func Encode(s string, key byte, mod int) []byte {
	return xorScheme([]byte(s), key, mod)
}

func Decode(enc []byte, key byte, mod int) string {
	return string(xorScheme(enc, key, mod))
}

func xorScheme(b []byte, key byte, mod int) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[i] = c ^ key ^ byte(i%mod)
	}
	return out
}
