package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/arthur-debert/boil/pkg/cli"
)

func main() {
	// A local .env may supply BOILERPLATES_PATH or EDITOR; a missing
	// file is not an error.
	_ = godotenv.Load()

	os.Exit(cli.New().Run(os.Args))
}
