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

func TestInitLogger_WritesJSONFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := InitLogger("test", dir)
	require.NoError(t, err)

	logger.Debug("drafted week", zap.Int("assignments", 21))
	_ = logger.Sync()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "test_"))
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".log"))

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &line))
	assert.Equal(t, "drafted week", line["msg"])
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "test", line["env"])
	assert.EqualValues(t, 21, line["assignments"])
}
