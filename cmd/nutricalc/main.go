package main

import "os"

func main() {
	// cobra has already printed the error.
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}
