// Command scriptrun is the shiro language's CLI entry point.
package main

import (
	"os"

	"github.com/shiroscript/shiro/cmd/scriptrun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
