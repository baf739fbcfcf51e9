package testutil

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LoadHex reads a testdata fixture holding hex text and decodes it to bytes.
// Whitespace and newlines in the fixture are ignored.
func LoadHex(t *testing.T, rel string) []byte {
	t.Helper()
	text := string(readTestdata(t, rel))
	text = strings.Join(strings.Fields(text), "")
	data, err := hex.DecodeString(text)
	if err != nil {
		t.Fatalf("decode hex fixture %s: %v", rel, err)
	}
	return data
}

// LoadText returns a testdata fixture as a string with the trailing newline
// stripped.
func LoadText(t *testing.T, rel string) string {
	t.Helper()
	return strings.TrimRight(string(readTestdata(t, rel)), "\n")
}

func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	candidates := []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
	}
	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return nil
}
