package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "scriptrun",
	Short: "shiro script interpreter",
	Long: `scriptrun runs programs written in shiro, a small dynamically-typed
scripting language: values coerce loosely between strings, numbers,
booleans and chars, objects and arrays live on a shared heap, and
"use" imports either a native library (an @-prefixed path) or another
source file.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
