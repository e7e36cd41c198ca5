package main

import (
	"fmt"
	"log"
	"os"

	"card-shuffler-go/cmd/shuffler/cmd"
	"card-shuffler-go/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("shuffler: %v", err)
	}

	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
