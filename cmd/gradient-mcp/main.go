package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/gradient-mcp/internal/palette"
	"github.com/ironsheep/gradient-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("gradient-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("gradient-mcp - MCP server for image palettes and CSS gradients")
			fmt.Println()
			fmt.Println("Usage: gradient-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  GRADIENT_MCP_LOG_LEVEL=debug       Enable debug logging")
			fmt.Println("  GRADIENT_MCP_GRID_SIZE=10          Sampling cell size in pixels")
			fmt.Println("  GRADIENT_MCP_PALETTE_SIZE=3        Colors kept by the top policy")
			fmt.Println("  GRADIENT_MCP_STYLE=linear          linear, radial or splotch")
			fmt.Println("  GRADIENT_MCP_POLICY=top            top or brightest")
			fmt.Println("  GRADIENT_MCP_HUE_FILTER=true       Drop near-duplicate hues")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := palette.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	srv := server.New(cfg)
	if os.Getenv("GRADIENT_MCP_LOG_LEVEL") == "debug" {
		log.Printf("Gradient MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Config: %+v", cfg)
		srv.SetDebug(true)
	}

	server.Version = Version
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
