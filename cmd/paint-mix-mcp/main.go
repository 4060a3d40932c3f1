package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/paint-mix-mcp/internal/server"
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
			fmt.Printf("paint-mix-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("paint-mix-mcp - MCP server for mixing paint colors by value, chroma and hue")
			fmt.Println()
			fmt.Println("Usage: paint-mix-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PAINT_MIX_LOG_LEVEL=debug      Enable debug logging")
			fmt.Printf("  PAINT_MIX_DEFAULT_STEP=%.2f    Default adjustment step (0-1)\n", server.DefaultStep)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := server.Config{
		Version: Version,
		Debug:   os.Getenv("PAINT_MIX_LOG_LEVEL") == "debug",
	}
	if cfg.Debug {
		log.Printf("Paint Mix MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if v := os.Getenv("PAINT_MIX_DEFAULT_STEP"); v != "" {
		step, err := strconv.ParseFloat(v, 64)
		if err != nil || step <= 0 || step > 1 {
			log.Fatalf("Invalid PAINT_MIX_DEFAULT_STEP %q: want a number in (0, 1]", v)
		}
		cfg.DefaultStep = step
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
