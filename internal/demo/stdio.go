package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/ajitpratap0/mcp-sdk-go/pkg/client"
	"github.com/ajitpratap0/mcp-sdk-go/pkg/logging"
	"github.com/ajitpratap0/mcp-sdk-go/pkg/protocol"
	"github.com/ajitpratap0/mcp-sdk-go/pkg/transport"

	"github.com/ajitpratap0/mcp-toolkit-client/internal/bridge"
	"github.com/ajitpratap0/mcp-toolkit-client/internal/config"
	"github.com/ajitpratap0/mcp-toolkit-client/internal/synth"
)

// StdioOptions carries the stdio flow's per-invocation switches.
type StdioOptions struct {
	// Tool names an explicit tool to call; empty selects the first listed.
	Tool string
	// ListTools stops the flow after the listings, making no tool call.
	ListTools bool
}

// RunStdio connects to the toolkit through the Docker-based stdio bridge,
// lists prompts, resources, and tools, and invokes one tool with synthesized
// arguments. Every failure is reported to out; nothing escapes to the caller.
func RunStdio(ctx context.Context, cfg config.Config, logger logging.Logger, out io.Writer) {
	fmt.Fprintln(out, "=== MCP Stdio Client Demo ===")
	if err := runStdio(ctx, cfg, logger, out); err != nil {
		fmt.Fprintf(out, "Stdio client error: %v\n", err)
	}
}

func runStdio(ctx context.Context, cfg config.Config, logger logging.Logger, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	br := bridge.New(cfg.DockerImage, cfg.Host, cfg.Port, logger)
	if err := br.Start(ctx); err != nil {
		return fmt.Errorf("launching stdio bridge: %w", err)
	}
	defer func() {
		if err := br.Close(); err != nil {
			logger.Warn("closing bridge", logging.ErrorField(err))
		}
	}()

	tc := transport.DefaultTransportConfig(transport.TransportTypeStdio)
	tc.StdioReader = br.Stdout()
	tc.StdioWriter = br.Stdin()
	t, err := transport.NewTransport(tc)
	if err != nil {
		return fmt.Errorf("creating stdio transport: %w", err)
	}

	c := client.New(t,
		client.WithName(clientName),
		client.WithVersion(clientVersion),
		client.WithCapability(protocol.CapabilitySampling, true),
		client.WithCapability(protocol.CapabilityLogging, true),
	)
	// After client.New so the canned responder replaces the SDK's default
	// sample handler.
	t.RegisterRequestHandler(protocol.MethodSample, cannedResponder(logger))

	// The stdio transport delivers responses only from inside Start, so the
	// receive loop has to be running before the initialize handshake.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := t.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	defer func() {
		if err := c.Close(); err != nil {
			logger.Warn("closing client", logging.ErrorField(err))
		}
		cancel()
		if err := g.Wait(); err != nil {
			logger.Warn("transport receive loop", logging.ErrorField(err))
		}
	}()

	fmt.Fprintln(out, "Initializing connection...")
	ictx, span := tracer().Start(ctx, "initialize",
		trace.WithAttributes(attribute.String("mcp.transport", "stdio")))
	err = c.Initialize(ictx)
	span.End()
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection initialized")

	if info := c.ServerInfo(); info != nil {
		logger.Info("connected to server",
			logging.String("name", info.Name),
			logging.String("version", info.Version))
	}

	return runStdioSession(ctx, c, StdioOptions{Tool: cfg.Tool, ListTools: cfg.ListTools}, out)
}

// runStdioSession is the flow proper, from first listing to tool call, over
// an already-initialized session. Each listing is isolated: a failure in one
// category is reported and the remaining listings proceed.
func runStdioSession(ctx context.Context, sess session, opts StdioOptions, out io.Writer) error {
	fmt.Fprintln(out, "\n--- Listing Prompts ---")
	listPrompts(ctx, sess, out)

	fmt.Fprintln(out, "\n--- Listing Resources ---")
	listResources(ctx, sess, out)

	fmt.Fprintln(out, "\n--- Listing Tools ---")
	tools := listTools(ctx, sess, out)

	if opts.ListTools {
		return nil
	}

	selected := selectTool(tools, opts.Tool)
	if selected == nil {
		return nil
	}

	fmt.Fprintf(out, "\n--- Calling Tool: %s ---\n", selected.Name)
	args := synth.Arguments(selected.InputSchema)

	cctx, span := tracer().Start(ctx, "callTool",
		trace.WithAttributes(
			attribute.String("mcp.tool", selected.Name),
			attribute.Int("mcp.tool.args", len(args)),
		))
	result, err := sess.CallTool(cctx, selected.Name, args, nil)
	if err != nil {
		span.RecordError(err)
		span.End()
		fmt.Fprintf(out, "Error calling tool %q: %v\n", selected.Name, err)
		return nil
	}
	span.End()

	if result.Error != "" {
		fmt.Fprintf(out, "Tool error: %s\n", result.Error)
		return nil
	}
	fmt.Fprintf(out, "Tool result: %s\n", string(result.Result))
	return nil
}

func listPrompts(ctx context.Context, sess session, out io.Writer) {
	pctx, span := tracer().Start(ctx, "listPrompts")
	defer span.End()

	prompts, _, err := sess.ListPrompts(pctx, "", nil)
	if err != nil {
		span.RecordError(err)
		fmt.Fprintf(out, "Error listing prompts: %v\n", err)
		return
	}
	if len(prompts) == 0 {
		fmt.Fprintln(out, "No prompts available")
		return
	}
	for _, p := range prompts {
		name := p.Name
		if name == "" {
			name = p.ID
		}
		fmt.Fprintf(out, "Prompt: %s - %s\n", name, p.Description)
	}
}

func listResources(ctx context.Context, sess session, out io.Writer) {
	rctx, span := tracer().Start(ctx, "listResources")
	defer span.End()

	resources, _, _, err := sess.ListResources(rctx, "", false, nil)
	if err != nil {
		span.RecordError(err)
		fmt.Fprintf(out, "Error listing resources: %v\n", err)
		return
	}
	if len(resources) == 0 {
		fmt.Fprintln(out, "No resources available")
		return
	}
	for _, r := range resources {
		fmt.Fprintf(out, "Resource: %s - %s\n", r.URI, r.Name)
	}
}

func listTools(ctx context.Context, sess session, out io.Writer) []protocol.Tool {
	tctx, span := tracer().Start(ctx, "listTools")
	defer span.End()

	tools, _, err := sess.ListTools(tctx, "", nil)
	if err != nil {
		span.RecordError(err)
		fmt.Fprintf(out, "Error listing tools: %v\n", err)
		return nil
	}
	if len(tools) == 0 {
		fmt.Fprintln(out, "No tools available")
		return nil
	}
	for _, tool := range tools {
		fmt.Fprintf(out, "Tool: %s - %s\n", tool.Name, tool.Description)
	}
	return tools
}
