// Package cmd implements the urlhaus-mcp CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/urlhaus-mcp/urlhaus-mcp/internal/config"
)

// rootCmd is the base command. Running it with no arguments starts the
// stdio MCP server, so the binary can be dropped into any MCP client
// configuration without flags.
var rootCmd = &cobra.Command{
	Use:   "urlhaus-mcp",
	Short: "urlhaus-mcp — MCP server for the URLhaus threat-intelligence API",
	Long: "urlhaus-mcp exposes URLhaus malware-URL lookups (recent feeds, URL/host/payload " +
		"lookups, tag and signature search) as MCP tools over stdio.",
	RunE: runServe,
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = config.Version

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
}
