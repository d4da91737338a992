package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/tickets", "GET", 200, 2*time.Millisecond)
	m.RecordRequest("/tickets", "GET", 200, 4*time.Millisecond)
	m.RecordRequest("/auth/login", "POST", 401, time.Millisecond)
	m.RecordError("/auth/login", "POST", "UNAUTHORIZED")

	snap := m.Snapshot()
	require.Len(t, snap.Requests, 2)
	assert.Equal(t, "/auth/login", snap.Requests[0].Path)
	assert.Equal(t, 401, snap.Requests[0].Status)
	assert.Equal(t, int64(2), snap.Requests[1].Count)
	assert.InDelta(t, 3.0, snap.Requests[1].AvgLatencyMS, 0.001)

	require.Len(t, snap.Errors, 1)
	assert.Equal(t, ErrorStats{Method: "POST", Path: "/auth/login", Code: "UNAUTHORIZED", Count: 1}, snap.Errors[0])
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	assert.Equal(t, Snapshot{}, m.Snapshot())
}
