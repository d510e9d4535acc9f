package main

import (
	"os"
	sys "os"
)

func run() int { return 0 }

func main() {
	if run() != 0 {
		sys.Exit(2) // want "direct call os.Exit is not allowed in main function"
	}
	os.Exit(run()) // want "direct call os.Exit is not allowed in main function"
}

func helper() {
	os.Exit(1)
}
