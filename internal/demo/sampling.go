package demo

import (
	"context"

	"github.com/ajitpratap0/mcp-sdk-go/pkg/logging"
	"github.com/ajitpratap0/mcp-sdk-go/pkg/protocol"
	"github.com/ajitpratap0/mcp-sdk-go/pkg/transport"
)

// Fixed reply for server-issued sample requests.
const (
	sampleReply        = "Hello from MCP client!"
	sampleModel        = "gpt-3.5-turbo"
	sampleFinishReason = "endTurn"
)

// cannedResponder returns a handler that answers every sample request from
// the server with the same assistant reply, regardless of the request's
// content. It must be registered on the transport after the client is
// constructed so it replaces the SDK's default (rejecting) sample handler.
func cannedResponder(logger logging.Logger) transport.RequestHandler {
	return func(ctx context.Context, params interface{}) (interface{}, error) {
		logger.Debug("answering sampling request with canned reply")
		return &protocol.SampleResult{
			Content:      sampleReply,
			Model:        sampleModel,
			FinishReason: sampleFinishReason,
		}, nil
	}
}
