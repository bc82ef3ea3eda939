package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coinwatch/coinprice/internal/coingecko"
	"github.com/coinwatch/coinprice/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
)

// setupTestEnvironment points the config directory at a clean temp dir.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("COINPRICE_CONFIG_DIR", tempDir)

	return tempDir
}

// newBackedServer creates a Server whose client points at an httptest
// backend serving the given handler.
func newBackedServer(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return &Server{
		cfg:    core.DefaultConfig(),
		client: coingecko.NewClient(ts.URL, time.Second, nil),
	}
}

// newTestRequest creates a CallToolRequest for the price tool.
func newTestRequest(arguments map[string]interface{}) mcp.CallToolRequest {
	return newNamedRequest(toolGetCryptoPrice, arguments)
}

// newNamedRequest creates a CallToolRequest with an explicit tool name.
func newNamedRequest(name string, arguments map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: arguments,
		},
	}
}

// getResultText extracts the text from a CallToolResult for testing.
func getResultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil || len(result.Content) == 0 {
		t.Fatal("expected result with content")
	}
	textContent, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return textContent.Text
}
