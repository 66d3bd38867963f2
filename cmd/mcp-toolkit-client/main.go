// Command mcp-toolkit-client is a demonstration MCP client. By default it
// reaches an MCP toolkit over stdio through a Docker-run socat bridge; with
// --http-url it speaks streamable HTTP to a server directly instead. Either
// way it lists the server's prompts, resources, and tools, then invokes one
// tool and prints the result.
//
// Configuration comes from the environment (MCP_HOST, MCP_PORT,
// MCP_DOCKER_IMAGE, MCP_LOG_LEVEL, MCP_OTLP_ENDPOINT) with command-line
// flags taking precedence.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ajitpratap0/mcp-sdk-go/pkg/logging"

	"github.com/ajitpratap0/mcp-toolkit-client/internal/config"
	"github.com/ajitpratap0/mcp-toolkit-client/internal/demo"
	"github.com/ajitpratap0/mcp-toolkit-client/internal/tracing"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	cfg := parseFlags(os.Args[1:])
	logger := newLogger()
	logging.SetGlobalLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := tracing.Setup(Version)
	if err != nil {
		logger.Warn("tracing disabled", logging.ErrorField(err))
	} else {
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				logger.Warn("flushing spans", logging.ErrorField(err))
			}
		}()
	}

	// The two flows are mutually exclusive: an HTTP URL means no Docker
	// bridge is launched at all.
	if cfg.HTTPURL != "" {
		demo.RunHTTP(ctx, cfg.HTTPURL, logger, os.Stdout)
		return
	}
	demo.RunStdio(ctx, cfg, logger, os.Stdout)
}

func parseFlags(args []string) config.Config {
	cfg := config.FromEnv()

	fs := flag.NewFlagSet("mcp-toolkit-client", flag.ExitOnError)
	fs.StringVar(&cfg.Host, "host", cfg.Host, "MCP toolkit host the bridge connects to")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "MCP toolkit port the bridge connects to")
	fs.StringVar(&cfg.DockerImage, "docker-image", cfg.DockerImage, "image run as the stdio-to-TCP bridge")
	fs.StringVar(&cfg.Tool, "tool", "", "name of the tool to call (default: first listed)")
	fs.BoolVar(&cfg.ListTools, "list-tools", false, "list server capabilities and exit without calling a tool")
	fs.StringVar(&cfg.HTTPURL, "http-url", "", "streamable HTTP server URL; skips the Docker bridge")
	version := fs.Bool("version", false, "print version and exit")

	fs.Parse(args)

	if *version {
		fmt.Println("mcp-toolkit-client " + Version)
		os.Exit(0)
	}
	return cfg
}

func newLogger() logging.Logger {
	logger := logging.New(os.Stderr, logging.NewTextFormatter())
	switch strings.ToLower(os.Getenv("MCP_LOG_LEVEL")) {
	case "debug":
		logger.SetLevel(logging.DebugLevel)
	case "warn":
		logger.SetLevel(logging.WarnLevel)
	case "error":
		logger.SetLevel(logging.ErrorLevel)
	default:
		logger.SetLevel(logging.InfoLevel)
	}
	return logger
}
