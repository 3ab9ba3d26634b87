// Command wren is the UCI-like command loop: it wires protocol.Loop to
// stdin/stdout and exits 0 on a clean quit.
package main

import (
	"os"

	"wren/protocol"
)

func main() {
	loop := protocol.NewLoop(os.Stdout, os.Stderr)
	loop.Run(os.Stdin)
}
