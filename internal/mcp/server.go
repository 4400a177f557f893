package mcp

import (
	"context"
	"sync"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"dexview/internal/catalog"
)

// Server exposes one long-lived engine session to MCP clients. Tool calls
// may arrive concurrently, so every engine access goes through mu.
type Server struct {
	mu     sync.Mutex
	engine *catalog.Engine
	logger *zap.Logger
	mcp    *sdk.Server
}

func NewServer(engine *catalog.Engine, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine: engine,
		logger: logger,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "dexview",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	var entities int
	s.withEngine(func(e *catalog.Engine) {
		entities = len(e.Entities())
	})
	s.logger.Info("mcp server starting", zap.Int("entities", entities))
	return s.mcp.Run(ctx, transport)
}

func (s *Server) withEngine(fn func(e *catalog.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}
