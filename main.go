package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/shush/cmd"
	kerrors "github.com/PolarWolf314/shush/internal/errors"
	"github.com/PolarWolf314/shush/internal/ui"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		var exitErr *kerrors.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprint(os.Stderr, ui.ErrorMessage(err))
		os.Exit(1)
	}
}
