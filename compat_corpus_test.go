package prs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestCompatibility_ThirdPartyCorpus checks streams produced by other PRS
// encoders: decode, re-encode, decode again. The re-encoded stream is not
// expected to be bit-identical, only to decode to the same data.
func TestCompatibility_ThirdPartyCorpus(t *testing.T) {
	corpusDir := filepath.Join("ref", "prs-corpus", "compressed")

	if _, err := os.Stat(corpusDir); err != nil {
		t.Skipf("compat corpus not found: %v", err)
	}

	entries, err := os.ReadDir(corpusDir)
	if err != nil {
		t.Fatalf("ReadDir(%q): %v", corpusDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".prs" {
			continue
		}

		testName := entry.Name()
		t.Run(testName, func(t *testing.T) {
			compressedPath := filepath.Join(corpusDir, testName)
			compressedData, err := os.ReadFile(compressedPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", compressedPath, err)
			}

			decoded, err := Decompress(compressedData)
			if err != nil {
				t.Fatalf("Decompress(%q): %v", testName, err)
			}

			reEncoded, err := Compress(decoded)
			if err != nil {
				t.Fatalf("Compress(%q): %v", testName, err)
			}

			reDecoded, err := Decompress(reEncoded)
			if err != nil {
				t.Fatalf("Decompress of re-encoded %q: %v", testName, err)
			}

			if !bytes.Equal(reDecoded, decoded) {
				t.Fatalf("re-encode round-trip mismatch for %q: got=%d want=%d",
					testName, len(reDecoded), len(decoded))
			}
		})
	}
}
