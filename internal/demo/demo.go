// Package demo implements the two demonstration flows of the toolkit client:
// a stdio flow that reaches the toolkit through a Docker-launched socat
// relay, and an HTTP flow against a streamable HTTP endpoint. Each flow is a
// strictly linear sequence of session operations; protocol framing, the
// initialize handshake, and capability negotiation all live in the MCP SDK.
package demo

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/ajitpratap0/mcp-sdk-go/pkg/client"
	"github.com/ajitpratap0/mcp-sdk-go/pkg/protocol"
)

const (
	clientName    = "mcp-toolkit-client"
	clientVersion = "1.0.0"
)

// session is the slice of the SDK client the flows actually use. Keeping it
// narrow lets flow logic run against a fake in tests.
type session interface {
	Initialize(ctx context.Context) error
	ListPrompts(ctx context.Context, tag string, pagination *protocol.PaginationParams) ([]protocol.Prompt, *protocol.PaginationResult, error)
	ListResources(ctx context.Context, uri string, recursive bool, pagination *protocol.PaginationParams) ([]protocol.Resource, []protocol.ResourceTemplate, *protocol.PaginationResult, error)
	ListTools(ctx context.Context, category string, pagination *protocol.PaginationParams) ([]protocol.Tool, *protocol.PaginationResult, error)
	CallTool(ctx context.Context, name string, input interface{}, toolContext interface{}) (*protocol.CallToolResult, error)
	ServerInfo() *protocol.ServerInfo
}

var _ session = (*client.ClientConfig)(nil)

func tracer() trace.Tracer {
	return otel.Tracer("github.com/ajitpratap0/mcp-toolkit-client/internal/demo")
}

// selectTool picks the tool to invoke: the explicitly requested name when it
// appears in the listing, otherwise the first listed tool. An empty listing
// selects nothing.
func selectTool(tools []protocol.Tool, name string) *protocol.Tool {
	if name != "" {
		for i := range tools {
			if tools[i].Name == name {
				return &tools[i]
			}
		}
	}
	if len(tools) == 0 {
		return nil
	}
	return &tools[0]
}
