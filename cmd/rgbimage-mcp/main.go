package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/rgbimage-mcp/internal/config"
	"github.com/ironsheep/rgbimage-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := ""

	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("rgbimage-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("rgbimage-mcp - MCP server for in-memory RGB images")
			fmt.Println()
			fmt.Println("Usage: rgbimage-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println("  --config <path>  Read settings from this TOML file (must exist)")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  RGBIMAGE_MCP_LOG_LEVEL=debug      Enable debug logging")
			fmt.Println("  RGBIMAGE_MCP_CONFIG=<path>        Read settings from this TOML file")
			fmt.Println()
			fmt.Println("Without RGBIMAGE_MCP_CONFIG, settings are read from")
			fmt.Println("$XDG_CONFIG_HOME/rgbimage-mcp/config.toml when it exists.")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		case "--config", "-c":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "--config requires a file path")
				os.Exit(2)
			}
			configPath = os.Args[2]
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("RGB Image MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadConfig reads path when given, otherwise the default locations
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
