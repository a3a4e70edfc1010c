// Command nodeimg renders JSON node documents to images.
//
// Usage:
//
//	nodeimg render card.json -o card.png
//	nodeimg render card.json --width 600 --dpr 2 -f webp > card.webp
//	nodeimg measure card.json
//	nodeimg animate frames.json -o spinner.png --loops 0
//
// Settings are read from ./nodeimg.yaml (or --config), NODEIMG_* environment
// variables and flags, in increasing precedence.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "nodeimg:", err)
		os.Exit(1)
	}
}
