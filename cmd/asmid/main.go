package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/borgdylan/Managed.Reflection/internal/cli"
	"github.com/borgdylan/Managed.Reflection/pkg/assembly"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(assembly.ExitPanic)
		}
	}()

	if os.Getenv("ASMID_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrNonEquivalent) {
			os.Exit(assembly.ExitNonEquivalent)
		}
		os.Exit(assembly.ExitCodeForError(err))
	}
}
