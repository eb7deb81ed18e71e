package http_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/countdown"
	"github.com/aretw0/countdown/internal/testutils"
	httpadapter "github.com/aretw0/countdown/pkg/adapters/http"
	"github.com/aretw0/countdown/pkg/adapters/memory"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var now = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func newWidget(t *testing.T, opts ...countdown.Option) *countdown.Widget {
	t.Helper()
	base := []countdown.Option{
		countdown.WithClock(testutils.NewClock(now)),
		countdown.WithScheduler(testutils.NewScheduler()),
		countdown.WithLocation(time.UTC),
	}
	w := countdown.New(memory.NewStore(), nil, append(base, opts...)...)
	t.Cleanup(func() { _ = w.Close() })
	require.NoError(t, w.Boot(context.Background()))
	return w
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) domain.Snapshot {
	t.Helper()
	var snap domain.Snapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snap))
	return snap
}

func TestHandler_State(t *testing.T) {
	h := httpadapter.NewHandler(newWidget(t))

	rec := do(t, h, http.MethodGet, "/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, domain.StateSelectDate, decodeSnapshot(t, rec).State)
}

func TestHandler_PostInput(t *testing.T) {
	target := now.Add(90 * time.Second)

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantState domain.StateName
	}{
		{
			name:      "Date Selected",
			body:      `{"id": "dateSelected", "parameters": {"date": ` + jsonInt(target.UnixMilli()) + `}}`,
			wantCode:  http.StatusOK,
			wantState: domain.StateCountdown,
		},
		{
			name:      "Unhandled Is Not An Error",
			body:      `{"id": "arrived", "parameters": {}}`,
			wantCode:  http.StatusOK,
			wantState: domain.StateSelectDate,
		},
		{
			name:     "Missing Parameters",
			body:     `{"id": "selectDate"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "Numeric Id",
			body:     `{"id": 3, "parameters": {}}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "Malformed JSON",
			body:     `{"id":`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := httpadapter.NewHandler(newWidget(t))

			rec := do(t, h, http.MethodPost, "/input", tt.body)
			require.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantState, decodeSnapshot(t, rec).State)
			}
		})
	}
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestHandler_PostDate(t *testing.T) {
	h := httpadapter.NewHandler(newWidget(t))

	rec := do(t, h, http.MethodPost, "/date", `{"date": "tomorrow"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StateSelectDate, decodeSnapshot(t, rec).State)

	rec = do(t, h, http.MethodPost, "/date", `{"date": "2026-10-19"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decodeSnapshot(t, rec)
	assert.Equal(t, domain.StateCountdown, snap.State)
	assert.Equal(t, domain.Parts{domain.UnitHour: 12, domain.UnitMinute: 0, domain.UnitSecond: 0}, snap.Remaining)
}

func TestHandler_ClosedWidget(t *testing.T) {
	w := newWidget(t)
	h := httpadapter.NewHandler(w)
	require.NoError(t, w.Close())

	rec := do(t, h, http.MethodPost, "/input", `{"id": "selectDate", "parameters": {}}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_Meta(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "probe_total", Help: "probe"})
	reg.MustRegister(counter)
	counter.Inc()

	h := httpadapter.NewHandler(newWidget(t),
		httpadapter.WithVersion("1.2.3"),
		httpadapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/info", "")
	assert.JSONEq(t, `{"app": "countdown-http", "version": "1.2.3"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/graph", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var edges []domain.Edge
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&edges))
	assert.NotEmpty(t, edges)

	rec = do(t, h, http.MethodGet, "/metrics", "")
	assert.Contains(t, rec.Body.String(), "probe_total 1")

	rec = do(t, h, http.MethodOptions, "/input", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, h, http.MethodGet, "/events", "")
	assert.Equal(t, http.StatusNotFound, rec.Code, "events need a stream manager")
}

func TestHandler_Events(t *testing.T) {
	streams := httpadapter.NewStreamManager(nil)
	w := newWidget(t, countdown.WithLifecycleHooks(streams.Hooks()))
	srv := httptest.NewServer(httpadapter.NewHandler(w, httpadapter.WithStreams(streams)))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := bufio.NewScanner(resp.Body)
	readData := func() string {
		for lines.Scan() {
			if data, ok := strings.CutPrefix(lines.Text(), "data: "); ok {
				return data
			}
		}
		return ""
	}

	assert.Contains(t, readData(), `"state":"selectDate"`)
	require.Eventually(t, func() bool { return streams.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, w.SelectDate(context.Background(), "2026-12-25"))

	var event domain.TransitionEvent
	require.NoError(t, json.Unmarshal([]byte(readData()), &event))
	assert.Equal(t, domain.StateSelectDate, event.From)
	assert.Equal(t, domain.StateCountdown, event.To)
	assert.Equal(t, domain.InputDateSelected, event.Input)
}

func TestHandler_OpenAPI(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := httpadapter.NewHandler(newWidget(t),
		httpadapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	)

	rec := do(t, h, http.MethodGet, "/openapi.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))

	var doc struct {
		OpenAPI string                    `yaml:"openapi"`
		Paths   map[string]map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/events")

	// Every documented operation is routed.
	for path, ops := range doc.Paths {
		if path == "/events" {
			continue
		}
		for method := range ops {
			rec := do(t, h, strings.ToUpper(method), path, "")
			assert.NotEqual(t, http.StatusNotFound, rec.Code, "%s %s", method, path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", method, path)
		}
	}

	rec = do(t, h, http.MethodGet, "/swagger", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "url: '/openapi.yaml'")
}
