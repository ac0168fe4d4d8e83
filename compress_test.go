package prs

import (
	"bytes"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "two-bytes", data: []byte{0xAB, 0xCD}},
		{name: "short-text", data: []byte("hello world, prs test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "window-spanning", data: bytes.Repeat([]byte("0123456789abcdef"), 16384)},
	}
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			cmp, err := Compress(in.data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if len(cmp) < 3 {
				t.Fatalf("compressed data too short: %d", len(cmp))
			}
			if !bytes.Equal(cmp[len(cmp)-2:], []byte{0x00, 0x00}) {
				t.Fatalf("missing stream terminator: % x", cmp[len(cmp)-2:])
			}
			if len(cmp) > MaxCompressedSize(len(in.data)) {
				t.Fatalf("compressed size %d exceeds MaxCompressedSize %d",
					len(cmp), MaxCompressedSize(len(in.data)))
			}

			out, err := Decompress(cmp)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(out, in.data) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
			}

			outReader, err := DecompressFromReader(bytes.NewReader(cmp))
			if err != nil {
				t.Fatalf("DecompressFromReader failed: %v", err)
			}
			if !bytes.Equal(outReader, in.data) {
				t.Fatalf("reader round-trip mismatch: got=%d want=%d", len(outReader), len(in.data))
			}
		})
	}
}

func TestCompress_ExactStreams(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{
			// Terminator only: control byte with bits 0,1 then the zero word.
			name: "empty",
			in:   nil,
			want: []byte{0x02, 0x00, 0x00},
		},
		{
			// One literal, then the terminator bits land in the same control byte.
			name: "single-byte",
			in:   []byte{0x41},
			want: []byte{0x05, 0x41, 0x00, 0x00},
		},
		{
			// Literal, short copy length 3 offset -1, end.
			name: "four-identical",
			in:   []byte{0x41, 0x41, 0x41, 0x41},
			want: []byte{0x51, 0x41, 0xFF, 0x00, 0x00},
		},
		{
			// Three literals, short copy length 3 offset -3, end. The ninth
			// control bit forces a second control byte after the offset payload.
			name: "abcabc",
			in:   []byte("abcabc"),
			want: []byte{0x47, 'a', 'b', 'c', 0xFD, 0x01, 0x00, 0x00},
		},
		{
			// Literal, long copy small length 6 offset -1 (short copies cap at
			// length 5), end.
			name: "seven-zeros",
			in:   bytes.Repeat([]byte{0x00}, 7),
			want: []byte{0x15, 0x00, 0xFC, 0xFF, 0x00, 0x00},
		},
		{
			// Ten literals, then a long copy large: length 10 exceeds the
			// 3-bit packed form, so it takes the extension byte.
			name: "ten-byte-period",
			in:   []byte("abcdefghijabcdefghij"),
			want: []byte{
				0xFF, 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h',
				0x2B, 'i', 'j', 0xB0, 0xFF, 0x09, 0x00, 0x00,
			},
		},
		{
			// Literal, long copy large length 256 offset -1, long copy large
			// for the remaining 43 bytes, end.
			name: "run-of-300",
			in:   bytes.Repeat([]byte{0xAA}, 300),
			want: []byte{0x55, 0xAA, 0xF8, 0xFF, 0xFF, 0xF8, 0xFF, 0x2A, 0x00, 0x00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compress(tt.in)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("stream mismatch:\n got % x\nwant % x", got, tt.want)
			}

			out, err := Decompress(got)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(out, tt.in) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(tt.in))
			}
		})
	}
}

func TestCompress_RunLengthTail(t *testing.T) {
	// Periodic input ending on either half of the period (even and odd sizes)
	// exercises the slow-path handling at the last one and two source bytes.
	for _, size := range []int{6, 7, 8, 9, 255, 256, 257, 258} {
		data := bytes.Repeat([]byte("AB"), size)[:size]

		cmp, err := Compress(data)
		if err != nil {
			t.Fatalf("Compress failed for size %d: %v", size, err)
		}

		out, err := Decompress(cmp)
		if err != nil {
			t.Fatalf("Decompress failed for size %d: %v", size, err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch for size %d", size)
		}
	}
}

func TestCompress_LargeIdenticalInput(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 1<<20)

	cmp, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// One literal plus a chain of 256-byte copies at offset -1. Each long copy
	// costs 3 payload bytes and 2 control bits, so the stream is about 1.3% of
	// the input.
	copies := (len(data) - 1 + maxCopyLength - 1) / maxCopyLength
	controlBits := 1 + 2*copies + 2
	want := (controlBits+7)/8 + 1 + 3*copies + 2
	if len(cmp) > want {
		t.Fatalf("all-identical input compressed poorly: %d bytes, want at most %d", len(cmp), want)
	}

	out, err := Decompress(cmp)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("round-trip mismatch")
	}
}

func TestCompressInto_OutputTooSmall(t *testing.T) {
	data := []byte("compress-into")

	_, err := CompressInto(data, make([]byte, MaxCompressedSize(len(data))-1))
	if err != ErrOutputOverrun {
		t.Fatalf("expected ErrOutputOverrun, got %v", err)
	}
}

func TestCompressInto_MatchesCompress(t *testing.T) {
	data := bytes.Repeat([]byte("into-buffer"), 512)

	cmp, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	dst := make([]byte, MaxCompressedSize(len(data)))
	n, err := CompressInto(data, dst)
	if err != nil {
		t.Fatalf("CompressInto failed: %v", err)
	}

	if !bytes.Equal(dst[:n], cmp) {
		t.Fatal("CompressInto output differs from Compress")
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello world"))
	f.Add(bytes.Repeat([]byte{0x00}, 1024))
	f.Add(bytes.Repeat([]byte("abc"), 500))
	f.Add([]byte{0x41, 0x41, 0x41, 0x41})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp, err := Compress(data)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		if len(cmp) > MaxCompressedSize(len(data)) {
			t.Fatalf("compressed size %d exceeds bound %d", len(cmp), MaxCompressedSize(len(data)))
		}

		size, err := DecompressedSize(cmp)
		if err != nil {
			t.Fatalf("DecompressedSize failed: %v", err)
		}
		if size != len(data) {
			t.Fatalf("size estimate %d, want %d", size, len(data))
		}

		out, err := Decompress(cmp)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
