package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/dpda/pkg/adapters/memory"
	"github.com/aretw0/dpda/pkg/automaton"
	"github.com/aretw0/dpda/pkg/domain"
	"github.com/aretw0/dpda/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	a, err := automaton.New(2, "ab")
	require.NoError(t, err)
	a.AddFinalStates(1)
	require.NoError(t, a.AddTransition(0, 0, 'a', '$', "A$"))
	require.NoError(t, a.AddTransition(0, 0, 'a', 'A', "AA"))
	require.NoError(t, a.AddTransition(0, 1, 'b', 'A', "."))
	require.NoError(t, a.AddTransition(1, 1, 'b', 'A', "."))
	return NewServer(session.NewManager(a, memory.NewStore()), opts...)
}

func TestTools_Session(t *testing.T) {
	var verdicts []domain.Verdict
	s := newTestServer(t, WithVerdictObserver(func(v domain.Verdict) {
		verdicts = append(verdicts, v)
	}))
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	started, err := s.handleStartSession(ctx, req, nil)
	require.NoError(t, err)
	require.NotEmpty(t, started.SessionID)
	assert.Equal(t, "0:$", started.Status)

	args := map[string]interface{}{"session_id": started.SessionID, "input": "aab"}
	report, err := s.handleReadInput(ctx, req, args)
	require.NoError(t, err)
	assert.Equal(t, "1:A$", report.Status)
	assert.Equal(t, domain.VerdictAccepted, report.Verdict)

	report, err = s.handleReadInput(ctx, req, map[string]interface{}{"session_id": started.SessionID, "input": "b"})
	require.NoError(t, err)
	assert.Equal(t, "1:$", report.Status)
	assert.Equal(t, []domain.Verdict{domain.VerdictAccepted, domain.VerdictAccepted}, verdicts)

	report, err = s.handleGetStatus(ctx, req, map[string]interface{}{"session_id": started.SessionID})
	require.NoError(t, err)
	assert.Equal(t, 4, report.Steps)

	report, err = s.handleResetSession(ctx, req, map[string]interface{}{"session_id": started.SessionID})
	require.NoError(t, err)
	assert.Equal(t, "0:$", report.Status)
	assert.Equal(t, domain.VerdictRejected, report.Verdict)
}

func TestTools_Errors(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	req := mcp.CallToolRequest{}

	_, err := s.handleGetStatus(ctx, req, map[string]interface{}{})
	assert.Error(t, err)

	_, err = s.handleGetStatus(ctx, req, map[string]interface{}{"session_id": "missing"})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	started, err := s.handleStartSession(ctx, req, nil)
	require.NoError(t, err)
	_, err = s.handleReadInput(ctx, req, map[string]interface{}{"session_id": started.SessionID, "input": "ax"})
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)
}

func TestTopologyJSON(t *testing.T) {
	s := newTestServer(t)

	raw, err := s.topologyJSON()
	require.NoError(t, err)

	var d automaton.Description
	require.NoError(t, json.Unmarshal(raw, &d))
	assert.Equal(t, 2, d.States)
	assert.Equal(t, "ab", d.Alphabet)
	assert.Equal(t, []int{1}, d.FinalStates)
	assert.Len(t, d.Transitions, 4)
}

func TestTools_Registered(t *testing.T) {
	s := newTestServer(t)

	for _, name := range []string{"start_session", "read_input", "get_status", "reset_session", "describe_automaton"} {
		require.NotNil(t, s.mcpServer.GetTool(name), name)
	}

	reset := s.mcpServer.GetTool("reset_session").Tool
	assert.Contains(t, reset.Description, "bottom marker $")
	assert.NotContains(t, reset.Description, "empty stack")
}
