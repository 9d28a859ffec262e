package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Farmstead_Go/internal/domain"
)

type staticSource struct{ s *domain.Snapshot }

func (f staticSource) Snapshot() *domain.Snapshot { return f.s }

type sseFrame struct {
	id, event string
	data      map[string]interface{}
}

// readFrame reads one "id/event/data" block from the stream
func readFrame(t *testing.T, r *bufio.Reader) sseFrame {
	t.Helper()
	var f sseFrame
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			return f
		case strings.HasPrefix(line, "id: "):
			f.id = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			f.event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &f.data))
		}
	}
}

func TestHandler_StreamsSnapshotAndEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	snap := &domain.Snapshot{Version: 3, Resources: domain.Resources{Turn: 1, ActionsRemaining: 5}}
	srv := httptest.NewServer(Handler(hub, staticSource{s: snap}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=snapshot.updated,turn.advanced", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	r := bufio.NewReader(resp.Body)

	connected := readFrame(t, r)
	assert.Equal(t, EventTypeConnected, connected.event)
	assert.Equal(t, []interface{}{"snapshot.updated", "turn.advanced"}, connected.data["payload"].(map[string]interface{})["filters"])

	initial := readFrame(t, r)
	assert.Equal(t, EventTypeSnapshotUpdated, initial.event)
	assert.Equal(t, 3.0, initial.data["payload"].(map[string]interface{})["version"])

	hub.Broadcast(EventTypeItemBought, ShopPayload{Action: "buy"})
	hub.Broadcast(EventTypeTurnAdvanced, TurnPayload{Turn: 2})

	next := readFrame(t, r)
	assert.Equal(t, EventTypeTurnAdvanced, next.event, "filtered types are skipped")
	assert.NotEmpty(t, next.id)

	cancel()
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHandler_SkipsInitialSnapshotWhenFiltered(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub, staticSource{s: &domain.Snapshot{Version: 1}}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=crop.harvested", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	r := bufio.NewReader(resp.Body)
	assert.Equal(t, EventTypeConnected, readFrame(t, r).event)

	hub.Broadcast(EventTypeCropHarvested, HarvestPayload{PlotID: "plot_0"})
	assert.Equal(t, EventTypeCropHarvested, readFrame(t, r).event)
}
