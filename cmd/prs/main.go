// Package main provides prs, a compressor and decompressor for the Sega PRS
// format.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

func run(out, errOut io.Writer, args []string) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 1
	}

	switch args[0] {
	case "compress":
		return cmdCompress(out, errOut, args[1:])
	case "decompress":
		return cmdDecompress(out, errOut, args[1:])
	case "test":
		return cmdTest(out, errOut, args[1:], 1)
	case "test_mt":
		return cmdTest(out, errOut, args[1:], 0)
	case "help", "--help", "-h":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "error: unknown command %q\n", args[0])
		printUsage(errOut)

		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: prs <command> [flags]

Commands:
  compress    --source <path> [--target <path>]   Compress a file or directory to .prs
  decompress  --source <path> [--target <path>]   Decompress .prs files
  test        --source <path>                     Round-trip every file and compare
  test_mt     --source <path>                     Same as test, across all CPUs
`)
}
