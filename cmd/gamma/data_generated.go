package main

// Generated offline by cmd/gammakeygen for key "the-gamma-core-key" against
// the plaintext "Congratulations! The Gamma core has been dissolved."
// Do not hand-edit; regenerate with cmd/gammakeygen instead.

var EncryptedCode = []byte{
	0x39, 0xB2, 0xD3, 0x06, 0x77, 0xD6, 0x34, 0xD4, 0xFB, 0x24, 0xAE, 0x0A,
	0xE5, 0x2C, 0x3C, 0x82, 0xAD, 0x40, 0x58, 0x03, 0xA8, 0x69, 0xFD, 0xF3,
	0x8A, 0xE4, 0xC4, 0xDA, 0x31, 0x25, 0x1D, 0x4A, 0x07, 0xCE, 0x56, 0xE4,
	0x40, 0xDF, 0x8C, 0x02, 0xB9, 0x04, 0x37, 0xC1, 0x17, 0x2F, 0x5D, 0x4F,
	0x7B, 0xC9, 0xF4, 0x70, 0xCF, 0x69, 0xE1, 0x8F, 0x5B, 0xA8, 0xF6, 0x01,
	0xC0, 0xCE, 0x72, 0x44, 0xE0, 0x39, 0x57, 0x3C, 0x90, 0x47, 0xBD, 0x6F,
	0xE0, 0xBB, 0x36, 0x20, 0x7B, 0xA3, 0x33, 0x83, 0x94, 0x3D, 0x6A, 0xC4,
	0xA9, 0x6B, 0x7F, 0x3C, 0xD5, 0x0F, 0x8F, 0xA4, 0x81, 0x12, 0x37, 0x25,
	0xE0, 0x41, 0x9F, 0x84, 0x36, 0x72, 0x57, 0xAC, 0xF8, 0xCD, 0xBB, 0x9E,
	0x35, 0xA7, 0x43, 0x0E, 0xA9, 0xF3, 0x69, 0x33, 0x30, 0x86, 0x5D, 0xD6,
	0x9D, 0xA6, 0xCC, 0xB5, 0xB7, 0xED, 0xC3, 0xCC, 0x1C, 0xE5, 0x03, 0xF4,
	0xDD, 0x15, 0xD7, 0xF8, 0xB0, 0x7A, 0xBA, 0xC5, 0xA7, 0xCF, 0xD4, 0xE4,
	0x8C, 0xC4, 0x9C, 0x42, 0x5F, 0x5E, 0x70, 0x68, 0x9C, 0xF1, 0xAA, 0x11,
	0x67, 0x7F, 0x54, 0x68, 0xA9, 0xE8, 0xBF, 0x68, 0xD8, 0x88, 0xDC, 0xC5,
	0x14, 0x06, 0xAB, 0x58, 0x85, 0x8A, 0xCA, 0x5C, 0x8A, 0xAB, 0xC1, 0xE1,
	0x5F, 0x17, 0x53, 0x15, 0x19, 0x6D, 0xFD, 0xB3, 0x66, 0xE9, 0x94, 0xE4,
	0x77, 0xFB, 0x09, 0xB0, 0xE0, 0x9A, 0xDA, 0x42, 0x84, 0x15, 0x75, 0x8B,
	0xA7, 0x40, 0x84, 0x75, 0x71, 0x88, 0x3D, 0xD9, 0x72, 0x64, 0x50, 0xC1,
	0xA7, 0x47, 0xC5, 0xD6, 0x06, 0xF5, 0xCA, 0x3C, 0x06, 0x59, 0x61, 0x8B,
	0xB3, 0x44, 0xE5, 0x9C, 0x8C, 0x53, 0xC4, 0x96, 0x94, 0x26, 0x45, 0x0E,
	0x7C, 0x4C, 0x11, 0x8A, 0x82, 0x76, 0xC1, 0x10, 0x70, 0x43, 0x3A, 0x78,
	0x79, 0x89, 0xF8, 0x50,
}

var SecretCipher = []byte{
	0xB4, 0x98, 0xAB, 0x90, 0x85, 0x96, 0xB1, 0xB0, 0xA9, 0x96, 0xB1, 0xAC,
	0x98, 0xAB, 0xB6, 0xD6, 0xD7, 0xA3, 0xAD, 0x92, 0xD7, 0xB0, 0xA4, 0xA8,
	0xA8, 0x96, 0xE5, 0xA6, 0x98, 0xB7, 0xA0, 0xD7, 0x9F, 0x96, 0xB6, 0xD7,
	0x95, 0x92, 0xA0, 0xAB, 0xE5, 0x93, 0xAC, 0xB6, 0x84, 0xAA, 0xA9, 0x81,
	0x92, 0x93, 0xEB,
}
