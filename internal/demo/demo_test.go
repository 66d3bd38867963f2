package demo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ajitpratap0/mcp-sdk-go/pkg/protocol"
)

// fakeSession records the operations a flow performs so tests can assert on
// ordering, isolation, and the exact arguments passed to CallTool.
type fakeSession struct {
	prompts    []protocol.Prompt
	promptsErr error

	resources    []protocol.Resource
	resourcesErr error

	tools    []protocol.Tool
	toolsErr error

	callResult *protocol.CallToolResult
	callErr    error

	ops   []string
	calls []recordedCall
}

type recordedCall struct {
	name  string
	input interface{}
}

func (f *fakeSession) Initialize(ctx context.Context) error {
	f.ops = append(f.ops, "initialize")
	return nil
}

func (f *fakeSession) ListPrompts(ctx context.Context, tag string, pagination *protocol.PaginationParams) ([]protocol.Prompt, *protocol.PaginationResult, error) {
	f.ops = append(f.ops, "listPrompts")
	if f.promptsErr != nil {
		return nil, nil, f.promptsErr
	}
	return f.prompts, &protocol.PaginationResult{}, nil
}

func (f *fakeSession) ListResources(ctx context.Context, uri string, recursive bool, pagination *protocol.PaginationParams) ([]protocol.Resource, []protocol.ResourceTemplate, *protocol.PaginationResult, error) {
	f.ops = append(f.ops, "listResources")
	if f.resourcesErr != nil {
		return nil, nil, nil, f.resourcesErr
	}
	return f.resources, nil, &protocol.PaginationResult{}, nil
}

func (f *fakeSession) ListTools(ctx context.Context, category string, pagination *protocol.PaginationParams) ([]protocol.Tool, *protocol.PaginationResult, error) {
	f.ops = append(f.ops, "listTools")
	if f.toolsErr != nil {
		return nil, nil, f.toolsErr
	}
	return f.tools, &protocol.PaginationResult{}, nil
}

func (f *fakeSession) CallTool(ctx context.Context, name string, input interface{}, toolContext interface{}) (*protocol.CallToolResult, error) {
	f.ops = append(f.ops, "callTool")
	f.calls = append(f.calls, recordedCall{name: name, input: input})
	if f.callErr != nil {
		return nil, f.callErr
	}
	if f.callResult != nil {
		return f.callResult, nil
	}
	return &protocol.CallToolResult{Result: json.RawMessage(`"ok"`)}, nil
}

func (f *fakeSession) ServerInfo() *protocol.ServerInfo {
	return &protocol.ServerInfo{Name: "fake-server", Version: "0.0.0"}
}

var errUnavailable = errors.New("capability not supported")

func tool(name string, schema string) protocol.Tool {
	t := protocol.Tool{Name: name, Description: name + " tool"}
	if schema != "" {
		t.InputSchema = json.RawMessage(schema)
	}
	return t
}
