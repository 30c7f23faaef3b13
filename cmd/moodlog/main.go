package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/chaz8081/moodlog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// storage failures already printed their one-line summary
		if !errors.Is(err, cli.ErrReported) {
			fmt.Printf("error: %v\n", err)
		}
		os.Exit(1)
	}
}
