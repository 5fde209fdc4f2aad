// Command wakupayload is a thin operational harness around package payload:
// it encodes a payload to the wire format described by the codec, or
// decodes one back, so the library can be exercised from a shell without
// writing a throwaway Go program. It carries no codec logic of its own.
package main

import (
	"fmt"
	"os"

	"github.com/waku-org/go-waku-payload/cmd/wakupayload/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wakupayload:", err)
		os.Exit(1)
	}
}
