package prs

import "io"

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own.
func DecompressFromReader(r io.Reader) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Decompress(src)
}
