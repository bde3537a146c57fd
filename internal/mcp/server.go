// ABOUTME: MCP server setup for the workout tracking store.
// ABOUTME: Wraps the MCP server around a storage Repository and Tracker.
package mcp

import (
	"context"

	"github.com/harperreed/wodtrack/internal/analytics"
	"github.com/harperreed/wodtrack/internal/storage"
	"github.com/harperreed/wodtrack/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	tracker   *tracker.Tracker
}

// NewServer creates a new MCP server over the given storage.
func NewServer(repo storage.Repository, recovery analytics.Config) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "wodtrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		tracker:   tracker.New(repo, recovery),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
