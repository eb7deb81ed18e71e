package mcp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/aretw0/countdown"
	"github.com/aretw0/countdown/internal/testutils"
	"github.com/aretw0/countdown/pkg/adapters/mcp"
	"github.com/aretw0/countdown/pkg/adapters/memory"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func newServer(t *testing.T) *mcp.Server {
	t.Helper()
	w := countdown.New(memory.NewStore(), nil,
		countdown.WithClock(testutils.NewClock(now)),
		countdown.WithScheduler(testutils.NewScheduler()),
		countdown.WithLocation(time.UTC),
	)
	t.Cleanup(func() { _ = w.Close() })
	require.NoError(t, w.Boot(context.Background()))
	return mcp.NewServer(w, "test", nil)
}

type toolResult struct {
	Result struct {
		IsError           bool              `json:"isError"`
		StructuredContent mcp.StateResponse `json:"structuredContent"`
		Content           []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"result"`
}

func callTool(t *testing.T, s *mcp.Server, name string, args map[string]any) toolResult {
	t.Helper()
	argBytes, err := json.Marshal(args)
	require.NoError(t, err)

	msg := fmt.Sprintf(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":%q,"arguments":%s}}`, name, argBytes)
	resp := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(msg))

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var out toolResult
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func TestServer_GetState(t *testing.T) {
	s := newServer(t)

	res := callTool(t, s, "get_state", map[string]any{})
	assert.False(t, res.Result.IsError)
	assert.Equal(t, domain.StateSelectDate, res.Result.StructuredContent.State)
	assert.Nil(t, res.Result.StructuredContent.Target)
}

func TestServer_SelectDate(t *testing.T) {
	s := newServer(t)

	res := callTool(t, s, "select_date", map[string]any{"date": "2026-10-19"})
	require.False(t, res.Result.IsError)
	assert.Equal(t, domain.StateCountdown, res.Result.StructuredContent.State)
	require.NotNil(t, res.Result.StructuredContent.Target)
	assert.Equal(t, int64(12), res.Result.StructuredContent.Remaining[domain.UnitHour])
}

func TestServer_SendInput(t *testing.T) {
	t.Run("Epoch Millis Parameters", func(t *testing.T) {
		s := newServer(t)
		params := fmt.Sprintf(`{"date": %d}`, now.Add(time.Minute).UnixMilli())

		res := callTool(t, s, "send_input", map[string]any{"id": "dateSelected", "parameters": params})
		require.False(t, res.Result.IsError)
		assert.Equal(t, domain.StateCountdown, res.Result.StructuredContent.State)
	})

	t.Run("Default Parameters", func(t *testing.T) {
		s := newServer(t)
		res := callTool(t, s, "send_input", map[string]any{"id": "selectDate"})
		assert.False(t, res.Result.IsError)
		assert.Equal(t, domain.StateSelectDate, res.Result.StructuredContent.State)
	})

	t.Run("Bad Parameters", func(t *testing.T) {
		s := newServer(t)
		res := callTool(t, s, "send_input", map[string]any{"id": "selectDate", "parameters": "[1,2]"})
		assert.True(t, res.Result.IsError)
	})
}

func TestServer_GetGraph(t *testing.T) {
	s := newServer(t)

	res := callTool(t, s, "get_graph", map[string]any{})
	require.False(t, res.Result.IsError)
	require.NotEmpty(t, res.Result.Content)
	assert.Contains(t, res.Result.Content[0].Text, "graph TD")
	assert.Contains(t, res.Result.Content[0].Text, "class selectDate current;")
}
