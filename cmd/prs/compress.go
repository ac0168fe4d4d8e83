package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"

	"github.com/woozymasta/prs"
)

// sourceTargetOptions holds the flags shared by compress and decompress.
type sourceTargetOptions struct {
	source string
	target string
}

func parseSourceTargetFlags(name string, errOut io.Writer, args []string) (sourceTargetOptions, int) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	source := flagSet.String("source", "", "file or directory to process")
	target := flagSet.String("target", "", "optional output file or directory")

	if err := flagSet.Parse(args); err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return sourceTargetOptions{}, 1
	}

	if *source == "" {
		fmt.Fprintln(errOut, "error: --source is required")
		return sourceTargetOptions{}, 1
	}

	return sourceTargetOptions{source: *source, target: *target}, 0
}

func cmdCompress(out, errOut io.Writer, args []string) int {
	opts, code := parseSourceTargetFlags("compress", errOut, args)
	if code != 0 {
		return code
	}

	files, isDir, err := collectFiles(opts.source)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	for _, inputPath := range files {
		outputPath, err := compressOutputPath(opts, inputPath, isDir)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}

		fmt.Fprintf(out, "COMPRESS: %s\n", inputPath)

		if err := compressFile(inputPath, outputPath, opts.target == ""); err != nil {
			fmt.Fprintf(errOut, "error: %s: %v\n", inputPath, err)
			return 1
		}
	}

	return 0
}

// compressOutputPath builds the destination path for one input file: next to
// the source in in-place mode, mirrored under --target otherwise.
func compressOutputPath(opts sourceTargetOptions, inputPath string, isDir bool) (string, error) {
	if opts.target == "" {
		return inputPath + prsExt, nil
	}

	if isDir {
		rel, err := filepath.Rel(opts.source, inputPath)
		if err != nil {
			return "", err
		}

		return filepath.Join(opts.target, rel) + prsExt, nil
	}

	if fi, err := os.Stat(opts.target); err == nil && fi.IsDir() {
		return filepath.Join(opts.target, filepath.Base(inputPath)+prsExt), nil
	}

	return opts.target, nil
}

// compressFile compresses one file. In-place mode removes the original after
// the .prs file has been written.
func compressFile(inputPath, outputPath string, inPlace bool) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	compressed, err := prs.Compress(data)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(outputPath, compressed); err != nil {
		return err
	}

	if inPlace {
		return os.Remove(inputPath)
	}

	return nil
}

// writeFileAtomic writes data to path via a rename, creating parent
// directories as needed. A crash mid-write must not leave a truncated file.
func writeFileAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return atomic.WriteFile(path, bytes.NewReader(data))
}
