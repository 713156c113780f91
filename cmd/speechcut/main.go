package main

import (
	"fmt"
	"os"

	"speechcut/cmd/speechcut/cmd"
	"speechcut/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
