// Package mcp exposes a running countdown as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/countdown/internal/presentation/graph"
	"github.com/aretw0/countdown/internal/runtime"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/aretw0/countdown/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const graphURI = "countdown://graph"

// StateResponse is the structured result of every tool that touches the machine.
type StateResponse struct {
	State     domain.StateName `json:"state" jsonschema_description:"The current state of the widget"`
	Target    *time.Time       `json:"target,omitempty" jsonschema_description:"The date being counted down to"`
	Remaining domain.Parts     `json:"remaining,omitempty" jsonschema_description:"Remaining day/hour/minute/second"`
}

func toResponse(s domain.Snapshot) StateResponse {
	resp := StateResponse{State: s.State, Remaining: s.Remaining}
	if !s.Target.IsZero() {
		t := s.Target
		resp.Target = &t
	}
	return resp
}

// Server wraps a widget and exposes it as an MCP server.
type Server struct {
	engine    ports.Engine
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP server instance.
func NewServer(engine ports.Engine, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("countdown-mcp", version),
		logger:    logger,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the SSE transport on addr until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL("http://"+addr))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{Addr: addr, Handler: mux}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("get_state",
		mcp.WithDescription("Get the current state of the countdown widget."),
		mcp.WithOutputSchema[StateResponse](),
	), mcp.NewStructuredToolHandler(s.handleGetState))

	s.mcpServer.AddTool(mcp.NewTool("send_input",
		mcp.WithDescription("Dispatch a raw input to the widget, e.g. selectDate or finishCountdown."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Input id")),
		mcp.WithString("parameters", mcp.Description("JSON object of input parameters (default {})")),
		mcp.WithOutputSchema[StateResponse](),
	), mcp.NewStructuredToolHandler(s.handleSendInput))

	s.mcpServer.AddTool(mcp.NewTool("select_date",
		mcp.WithDescription("Pick the target date as a yyyy-mm-dd literal."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Target date, yyyy-mm-dd")),
		mcp.WithOutputSchema[StateResponse](),
	), mcp.NewStructuredToolHandler(s.handleSelectDate))

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the transition table as a Mermaid flowchart."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(s.mermaid()), nil
	})
}

func (s *Server) mermaid() string {
	return graph.GenerateMermaid(runtime.TransitionTable(), &graph.Overlay{Current: s.engine.Snapshot().State})
}

func (s *Server) handleGetState(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (StateResponse, error) {
	return toResponse(s.engine.Snapshot()), nil
}

func (s *Server) handleSendInput(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (StateResponse, error) {
	id, _ := args["id"].(string)
	if id == "" {
		return StateResponse{}, errors.New("id is required")
	}

	params := map[string]any{}
	if raw, ok := args["parameters"].(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &params); err != nil {
			return StateResponse{}, fmt.Errorf("parameters must be a JSON object: %w", err)
		}
		if params == nil {
			params = map[string]any{}
		}
	}

	if err := s.engine.Receive(ctx, map[string]any{"id": id, "parameters": params}); err != nil {
		s.logger.Warn("MCP send_input failed", "input", id, "error", err)
		return StateResponse{}, fmt.Errorf("send_input failed: %w", err)
	}
	return toResponse(s.engine.Snapshot()), nil
}

func (s *Server) handleSelectDate(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (StateResponse, error) {
	date, _ := args["date"].(string)
	if err := s.engine.SelectDate(ctx, date); err != nil {
		return StateResponse{}, fmt.Errorf("select_date failed: %w", err)
	}
	return toResponse(s.engine.Snapshot()), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(graphURI, "Countdown Transition Graph",
		mcp.WithMIMEType("text/plain"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      graphURI,
				MIMEType: "text/plain",
				Text:     s.mermaid(),
			},
		}, nil
	})
}
