package main

import (
	"context"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/dmitrymomot/chatstamp/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
