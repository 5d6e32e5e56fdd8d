package main

import (
	"fmt"
	"log"
	"os"

	"github.com/graalign/graalign/graalmcp"
	"github.com/graalign/graalign/internal/version"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const serverName = "graalign"

func main() {
	// MCP uses stdout for JSON-RPC, so all logging goes to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	server := mcpserver.NewMCPServer(
		serverName,
		version.Short(),
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	graalmcp.RegisterTools(server, graalmcp.NewDependencies(nil))

	log.Printf("Starting %s MCP server %s\n", serverName, version.Short())
	log.Println("Registered tools:")
	log.Println("  - align_pdgs: align a PDG pair or an original against a batch of suspects")
	log.Println("  - describe_alignment: summarize a previously computed align_pdgs run")
	log.Println("")
	log.Println("Server ready - waiting for MCP client connection...")

	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
