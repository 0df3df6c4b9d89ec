package main

import (
	"fmt"
	"os"
)

func main() {
	ctl := newApp(handleLoggingParams)
	if err := ctl.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
