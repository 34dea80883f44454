// mandel renders the Mandelbrot set as ASCII art, a BMP file or in the terminal.
package main

import "github.com/marben/mandel_bmp/internal/cli"

func main() {
	cli.Execute()
}
