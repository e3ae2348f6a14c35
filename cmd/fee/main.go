package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
)

func main() {
	// UTF-8 fallback keeps non-ASCII names readable on terminals with a vague locale.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(color.Error, color.RedString("fee: %v", err))
		os.Exit(1)
	}
}
