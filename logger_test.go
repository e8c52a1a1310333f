package sparseset

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/sparseset/resource"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestLogger_TracesOperations(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := New(WithLogger(logger.WithName("players")), WithGrowthPolicy(GrowthExact))
	require.NoError(t, s.Insert(3))
	s.Remove(3)
	require.NoError(t, s.Close())

	records := decodeRecords(t, &buf)
	var msgs []string
	for _, rec := range records {
		msgs = append(msgs, rec["msg"].(string))
		assert.Equal(t, "players", rec["set"])
	}
	assert.Equal(t, []string{
		"buffer grown",
		"buffer grown",
		"insert completed",
		"remove completed",
		"set closed",
	}, msgs)

	assert.Equal(t, "sparse", records[0]["buffer"])
	assert.Equal(t, float64(4), records[0]["new_cap"])
	assert.Equal(t, float64(3), records[2]["entity"])
	assert.Equal(t, float64(0), records[3]["position"])
	assert.Equal(t, float64(3), records[3]["moved"])
}

func TestLogger_InfoLevelIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	s := New(WithLogger(logger))
	defer s.Close()
	require.NoError(t, s.Insert(1))
	s.Remove(1)

	assert.Empty(t, buf.String())
}

func TestLogger_ReportsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	rc := resource.NewController(resource.Config{MemoryLimitBytes: 4})

	s := New(WithLogger(logger), WithGrowthPolicy(GrowthExact), WithResourceController(rc))
	defer s.Close()

	require.Error(t, s.Insert(0))
	requirePrecondition(t, ErrNotPresent, func() { s.Remove(0) })

	records := decodeRecords(t, &buf)
	require.Len(t, records, 3)
	assert.Equal(t, "buffer growth failed", records[0]["msg"])
	assert.Equal(t, "dense", records[0]["buffer"])
	assert.Equal(t, "insert failed", records[1]["msg"])
	assert.Equal(t, "precondition violated", records[2]["msg"])
	assert.Equal(t, "Remove", records[2]["op"])
	assert.Equal(t, "ERROR", records[2]["level"])
}

func TestLogger_Constructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelWarn))
	assert.NotNil(t, NewTextLogger(slog.LevelWarn))
	assert.False(t, NoopLogger().debugEnabled())
}
