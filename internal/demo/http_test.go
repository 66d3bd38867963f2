package demo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSessionCallsEchoToolWithGreeting(t *testing.T) {
	sess := &fakeSession{tools: namedTools("echo-tool", "uppercase")}
	var out bytes.Buffer

	err := runHTTPSession(context.Background(), sess, &out)

	require.NoError(t, err)
	require.Len(t, sess.calls, 1)
	assert.Equal(t, "echo-tool", sess.calls[0].name)
	assert.Equal(t, map[string]interface{}{"message": "Hello via HTTP!"}, sess.calls[0].input)
}

func TestHTTPSessionCallsNonEchoToolWithEmptyArguments(t *testing.T) {
	sess := &fakeSession{tools: namedTools("uppercase")}
	var out bytes.Buffer

	err := runHTTPSession(context.Background(), sess, &out)

	require.NoError(t, err)
	require.Len(t, sess.calls, 1)
	assert.Equal(t, map[string]interface{}{}, sess.calls[0].input)
}

func TestHTTPSessionNoToolsMakesNoCall(t *testing.T) {
	sess := &fakeSession{}
	var out bytes.Buffer

	err := runHTTPSession(context.Background(), sess, &out)

	require.NoError(t, err)
	assert.Empty(t, sess.calls)
	assert.Contains(t, out.String(), "No tools available")
}

func TestHTTPSessionToolsErrorStillListsResources(t *testing.T) {
	sess := &fakeSession{toolsErr: errUnavailable}
	var out bytes.Buffer

	err := runHTTPSession(context.Background(), sess, &out)

	require.NoError(t, err)
	assert.Empty(t, sess.calls)
	assert.Contains(t, out.String(), "Error with HTTP operations")
	assert.Equal(t, []string{"listTools", "listResources"}, sess.ops)
}

func TestHTTPSessionResourcesErrorReportedNotRaised(t *testing.T) {
	sess := &fakeSession{
		tools:        namedTools("echo"),
		resourcesErr: errUnavailable,
	}
	var out bytes.Buffer

	err := runHTTPSession(context.Background(), sess, &out)

	require.NoError(t, err)
	require.Len(t, sess.calls, 1)
	assert.Contains(t, out.String(), "Error listing resources via HTTP")
}

func TestHTTPArguments(t *testing.T) {
	tests := []struct {
		name string
		want map[string]interface{}
	}{
		{"echo", map[string]interface{}{"message": "Hello via HTTP!"}},
		{"Echo-Tool", map[string]interface{}{"message": "Hello via HTTP!"}},
		{"super_ECHO_v2", map[string]interface{}{"message": "Hello via HTTP!"}},
		{"uppercase", map[string]interface{}{}},
		{"", map[string]interface{}{}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, httpArguments(tc.name), "tool %q", tc.name)
	}
}

func TestIsConnectionError(t *testing.T) {
	urlErr := &url.Error{Op: "Post", URL: "http://localhost:9999/mcp", Err: syscall.ECONNREFUSED}

	assert.True(t, isConnectionError(urlErr))
	assert.True(t, isConnectionError(fmt.Errorf("initialize: %w", urlErr)))
	assert.True(t, isConnectionError(syscall.ECONNREFUSED))
	assert.False(t, isConnectionError(errors.New("method not found")))
	assert.False(t, isConnectionError(errUnavailable))
}
