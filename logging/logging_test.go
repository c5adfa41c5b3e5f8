package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tubechat.log")

	logger, err := NewFile(path, "info")
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("Video submitted", zap.String("video_id", "dQw4w9WgXcQ"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Video submitted", entry["message"])
	assert.Equal(t, "dQw4w9WgXcQ", entry["video_id"])
	assert.Contains(t, entry, "timestamp")
}

func TestInvalidLevel(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)

	_, err = NewConsole("loud")
	assert.Error(t, err)
}
