package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/woozymasta/prs"
)

func cmdDecompress(out, errOut io.Writer, args []string) int {
	opts, code := parseSourceTargetFlags("decompress", errOut, args)
	if code != 0 {
		return code
	}

	files, isDir, err := collectFiles(opts.source)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	for _, inputPath := range files {
		// Only .prs files are candidates; anything else in a directory walk
		// is silently skipped, matching the compressor's output convention.
		if !hasPrsExt(inputPath) {
			if !isDir {
				fmt.Fprintf(errOut, "error: %s: not a %s file\n", inputPath, prsExt)
				return 1
			}

			continue
		}

		outputPath, err := decompressOutputPath(opts, inputPath, isDir)
		if err != nil {
			fmt.Fprintln(errOut, "error:", err)
			return 1
		}

		fmt.Fprintf(out, "DECOMPRESS: %s\n", inputPath)

		if err := decompressFile(inputPath, outputPath, opts.target == ""); err != nil {
			fmt.Fprintf(errOut, "error: %s: %v\n", inputPath, err)
			return 1
		}
	}

	return 0
}

// decompressOutputPath strips the .prs extension, mirroring under --target
// when one is given.
func decompressOutputPath(opts sourceTargetOptions, inputPath string, isDir bool) (string, error) {
	if opts.target == "" {
		return stripPrsExt(inputPath), nil
	}

	if isDir {
		rel, err := filepath.Rel(opts.source, inputPath)
		if err != nil {
			return "", err
		}

		return stripPrsExt(filepath.Join(opts.target, rel)), nil
	}

	if fi, err := os.Stat(opts.target); err == nil && fi.IsDir() {
		return filepath.Join(opts.target, stripPrsExt(filepath.Base(inputPath))), nil
	}

	return opts.target, nil
}

// decompressFile decompresses one file. In-place mode removes the .prs file
// after the output has been written.
func decompressFile(inputPath, outputPath string, inPlace bool) error {
	compressed, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	data, err := prs.Decompress(compressed)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(outputPath, data); err != nil {
		return err
	}

	if inPlace {
		return os.Remove(inputPath)
	}

	return nil
}
