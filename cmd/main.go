package main

import (
	"os"

	"swayn-kiosk/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
