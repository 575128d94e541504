package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/dpda"
	"github.com/aretw0/dpda/internal/logging"
	"github.com/aretw0/dpda/pkg/domain"
	"github.com/aretw0/dpda/pkg/session"
	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// topologyURI names the resource holding the automaton description.
const topologyURI = "dpda://topology"

// Server exposes a session.Manager as an MCP server.
type Server struct {
	sessions  *session.Manager
	mcpServer *server.MCPServer
	logger    *slog.Logger
	onVerdict func(domain.Verdict)
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger. Logs must not go to stdout under stdio.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithVerdictObserver is called with the verdict of every read_input answer.
func WithVerdictObserver(fn func(domain.Verdict)) Option {
	return func(s *Server) {
		s.onVerdict = fn
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(sessions *session.Manager, opts ...Option) *Server {
	s := &Server{
		sessions:  sessions,
		mcpServer: server.NewMCPServer("dpda-mcp", strings.TrimSpace(dpda.Version)),
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves over Server-Sent Events on port until ctx is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

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
			return errors.Wrap(err, "could not stop server gracefully")
		}
		return nil
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("start_session",
		mcp.WithDescription("Start a run of the automaton at its initial configuration and return its session."),
		mcp.WithOutputSchema[session.Report](),
	), mcp.NewStructuredToolHandler(s.handleStartSession))

	s.mcpServer.AddTool(mcp.NewTool("read_input",
		mcp.WithDescription("Feed characters to a session, one at a time. Reading stops early if the run becomes trapped."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID returned by start_session")),
		mcp.WithString("input", mcp.Required(), mcp.Description("Characters to read, each from the automaton's alphabet")),
		mcp.WithOutputSchema[session.Report](),
	), mcp.NewStructuredToolHandler(s.handleReadInput))

	s.mcpServer.AddTool(mcp.NewTool("get_status",
		mcp.WithDescription("Report a session's current status and verdict without changing it."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithOutputSchema[session.Report](),
	), mcp.NewStructuredToolHandler(s.handleGetStatus))

	s.mcpServer.AddTool(mcp.NewTool("reset_session",
		mcp.WithDescription("Return a session to state 0 with only the bottom marker $ on the stack."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithOutputSchema[session.Report](),
	), mcp.NewStructuredToolHandler(s.handleResetSession))

	s.mcpServer.AddTool(mcp.NewTool("describe_automaton",
		mcp.WithDescription("Get the states, alphabet, final states and transitions of the automaton."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := s.topologyJSON()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) topologyJSON() ([]byte, error) {
	return json.Marshal(s.sessions.Automaton().Describe())
}

func sessionID(args map[string]interface{}) (string, error) {
	id, _ := args["session_id"].(string)
	if id == "" {
		return "", errors.New("session_id is required")
	}
	return id, nil
}

func (s *Server) handleStartSession(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (session.Report, error) {
	report, err := s.sessions.Start(ctx)
	if err != nil {
		return session.Report{}, errors.Wrap(err, "start failed")
	}
	return *report, nil
}

func (s *Server) handleReadInput(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (session.Report, error) {
	id, err := sessionID(args)
	if err != nil {
		return session.Report{}, err
	}
	input, _ := args["input"].(string)

	report, err := s.sessions.Read(ctx, id, input)
	if report != nil && s.onVerdict != nil {
		s.onVerdict(report.Verdict)
	}
	if err != nil {
		s.logger.Warn("MCP read_input: input rejected", "session_id", id, "error", err)
		return session.Report{}, errors.Wrap(err, "read failed")
	}
	return *report, nil
}

func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (session.Report, error) {
	id, err := sessionID(args)
	if err != nil {
		return session.Report{}, err
	}
	report, err := s.sessions.Status(ctx, id)
	if err != nil {
		return session.Report{}, errors.Wrap(err, "status failed")
	}
	return *report, nil
}

func (s *Server) handleResetSession(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (session.Report, error) {
	id, err := sessionID(args)
	if err != nil {
		return session.Report{}, err
	}
	report, err := s.sessions.Reset(ctx, id)
	if err != nil {
		return session.Report{}, errors.Wrap(err, "reset failed")
	}
	return *report, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(topologyURI, "Automaton Topology",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := s.topologyJSON()
		if err != nil {
			return nil, errors.Wrap(err, "failed to describe automaton")
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      topologyURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
