package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/coinwatch/coinprice/internal/errors"
	"github.com/mark3labs/mcp-go/mcp"
)

// This file provides stdio transport for the MCP server: newline-delimited
// JSON-RPC messages on stdin/stdout, which is the only process boundary
// coinprice exposes.

// Matches the code mcp-go uses when it rejects an unregistered tool itself.
const codeInvalidParams = -32602

// jsonrpcError is the wire shape of a protocol-level error response.
type jsonrpcError struct {
	JSONRPC string `json:"jsonrpc"`
	ID      any    `json:"id"`
	Error   struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// HandleMessage dispatches one JSON-RPC message. A tools/call request naming
// anything but the registered tool is rejected here, before the MCP library
// sees it, so the protocol error on the wire carries the unknown-tool
// message rather than the library's generic one. Everything else is
// delegated to the underlying MCP server.
func (s *Server) HandleMessage(ctx context.Context, message json.RawMessage) mcp.JSONRPCMessage {
	var envelope struct {
		ID     any    `json:"id"`
		Method string `json:"method"`
		Params struct {
			Name string `json:"name"`
		} `json:"params"`
	}
	if err := json.Unmarshal(message, &envelope); err == nil &&
		envelope.Method == "tools/call" && envelope.Params.Name != toolGetCryptoPrice {
		return newUnknownToolError(envelope.ID, envelope.Params.Name)
	}

	return s.mcp.HandleMessage(ctx, message)
}

// newUnknownToolError builds the protocol-level error response for an
// unregistered tool name.
func newUnknownToolError(id any, name string) mcp.JSONRPCMessage {
	response := jsonrpcError{
		JSONRPC: "2.0",
		ID:      id,
	}
	response.Error.Code = codeInvalidParams
	response.Error.Message = errors.UserMessage(errors.UnknownTool(name))
	return response
}

// listen reads newline-delimited JSON-RPC messages from in and writes one
// response line per request (notifications produce none) until EOF or
// context cancellation.
func (s *Server) listen(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		response := s.HandleMessage(ctx, json.RawMessage(line))
		if response == nil {
			continue
		}

		data, err := json.Marshal(response)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}

		if _, err := fmt.Fprintf(out, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
}
