package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/coinwatch/coinprice/internal/coingecko"
	"github.com/coinwatch/coinprice/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "coinprice"
	serverVersion = "0.1.0"
)

// Server wraps the MCP server with the price lookup dependencies.
// The bootstrap owns the server and client for the process lifetime;
// nothing is reached through package globals.
type Server struct {
	mcp    *server.MCPServer
	cfg    *core.Config
	client *coingecko.Client
}

// NewServer creates and configures the MCP server with the price tool registered.
func NewServer() (*Server, error) {
	// Load configuration
	configDir, err := core.ConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}

	cfg, err := core.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		client: coingecko.NewClient(cfg.API.BaseURL, cfg.HTTPTimeout(), nil),
	}

	// Create MCP server
	s.mcp = server.NewMCPServer(serverName, serverVersion)

	// Register the single tool
	s.registerTools()

	return s, nil
}

// registerTools registers the get-crypto-price tool.
func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool(toolGetCryptoPrice,
		mcp.WithDescription("Fetch current price of a cryptocurrency from CoinGecko"),
		mcp.WithString("coin",
			mcp.Required(),
			mcp.Description("coin identifier, e.g. bitcoin, ethereum")),
		mcp.WithString("currency",
			mcp.Description("fiat currency code, default 'usd'")),
	), s.handleGetCryptoPrice)
}

// Serve starts the MCP server on stdio transport.
func (s *Server) Serve() error {
	fmt.Fprintf(os.Stderr, "%s MCP server ready on stdio\n", serverName)

	ctx := context.Background()
	if err := s.listen(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("failed to serve MCP: %w", err)
	}
	return nil
}

// Serve creates a new MCP server and starts serving on stdio.
func Serve() error {
	srv, err := NewServer()
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Serve(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
