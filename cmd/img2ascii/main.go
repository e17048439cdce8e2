package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	imagetoascii "github.com/0xAstaaa/ImageToAscii"
)

const usage = `Usage: img2ascii <image> [width] [inv]
  image : path to a png/jpg/gif/bmp/tiff/webp file
  width : desired output width in characters (default %d)
  inv   : if present (e.g. 'inv'), invert ascii brightness mapping
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintf(stderr, usage, imagetoascii.DefaultWidth)
		return 1
	}

	path := args[0]

	// Malformed or non-positive widths silently fall back to the
	// default rather than failing the run.
	width := imagetoascii.DefaultWidth
	if len(args) >= 2 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			width = n
		}
	}

	invert := false
	if len(args) >= 3 {
		invert = args[2] == "inv" || args[2] == "invert"
	}

	img, err := imagetoascii.LoadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load image '%s': %v\n", path, err)
		return 2
	}

	conv := imagetoascii.New(
		imagetoascii.WithWidth(width),
		imagetoascii.WithInvert(invert),
	)

	out := bufio.NewWriter(stdout)
	if err := conv.Render(out, img); err != nil {
		fmt.Fprintf(stderr, "writing output: %v\n", err)
		return 1
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(stderr, "writing output: %v\n", err)
		return 1
	}
	return 0
}
