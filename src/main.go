package main

import (
	"os"

	"Backend-Career-Advisor/src/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
