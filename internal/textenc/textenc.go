// Package textenc resolves named character encodings and decodes raw file
// bytes into text.
//
// Encoding names follow the WHATWG registry (via x/text's htmlindex), so the
// usual aliases like "latin1", "iso-8859-1", and "windows-1252" all work.
// UTF-8 and the empty name short-circuit to a plain byte-to-string
// conversion; no reverse-safe boundary detection is attempted for multi-byte
// encodings.
package textenc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Default is the encoding assumed when the caller names none.
const Default = "utf-8"

// Resolve maps an encoding name to a decoder source. The empty string and
// UTF-8 aliases resolve to nil, which Decode treats as a passthrough.
func Resolve(name string) (encoding.Encoding, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := htmlindex.Get(normalized)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

// Decode converts raw bytes to a string using enc. A nil enc returns the
// bytes unchanged, which is correct for UTF-8 input.
func Decode(enc encoding.Encoding, raw []byte) (string, error) {
	if enc == nil {
		return string(raw), nil
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(decoded), nil
}
