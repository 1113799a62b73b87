// Command larek is a terminal storefront for the web-larek shop API.
package main

import (
	"os"

	"github.com/Iron-Ham/larek/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
