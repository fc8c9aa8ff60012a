package main

import (
	"fmt"
	"os"

	"github.com/postinst/postinst/cmd"
	"github.com/postinst/postinst/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, errors.FormatForCLI(err))
		os.Exit(1)
	}
}
