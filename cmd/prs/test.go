package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	flag "github.com/spf13/pflag"

	"github.com/woozymasta/prs"
)

// cmdTest round-trips every file under --source: compress, estimate the
// decompressed size, decompress, and compare with the original. jobs is the
// worker count; 0 means one worker per CPU (the test_mt variant). Files are
// independent, so this is the only place the tool runs the codec in
// parallel.
func cmdTest(out, errOut io.Writer, args []string, jobs int) int {
	flagSet := flag.NewFlagSet("test", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	source := flagSet.String("source", "", "file or directory to test")

	if err := flagSet.Parse(args); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	if *source == "" {
		fmt.Fprintln(errOut, "error: --source is required")
		return 1
	}

	files, _, err := collectFiles(*source)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) && len(files) > 0 {
		jobs = len(files)
	}

	var (
		mu     sync.Mutex
		failed bool
	)

	paths := make(chan string)

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for path := range paths {
				err := testFile(path)

				mu.Lock()
				if err != nil {
					fmt.Fprintf(errOut, "FAIL: %s: %v\n", path, err)
					failed = true
				} else {
					fmt.Fprintf(out, "TEST: %s\n", path)
				}
				mu.Unlock()
			}
		}()
	}

	for _, path := range files {
		paths <- path
	}
	close(paths)
	wg.Wait()

	if failed {
		return 1
	}

	return 0
}

// testFile checks the round-trip contract for one file: the estimator and
// the decoder must agree on the size, and the decoded bytes must equal the
// original.
func testFile(path string) error {
	original, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if len(original) == 0 {
		return nil
	}

	compressed, err := prs.Compress(original)
	if err != nil {
		return err
	}

	estimate, err := prs.DecompressedSize(compressed)
	if err != nil {
		return err
	}

	decoded := make([]byte, estimate)
	n, err := prs.DecompressInto(compressed, decoded)
	if err != nil {
		return err
	}

	if n != estimate {
		return fmt.Errorf("decompressed length %d does not match estimate %d", n, estimate)
	}

	if !bytes.Equal(original, decoded) {
		return fmt.Errorf("decompressed data does not match original")
	}

	return nil
}
