package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New(&bytes.Buffer{}, "debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New(&bytes.Buffer{}, "nonsense").GetLevel())
}

func TestLogError_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "error")

	LogError(l, "deals", "Create", "insert deal", map[string]int{"account_id": 3}, errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "deals", entry["module"])
	assert.Equal(t, "Create", entry["funcName"])
	assert.Equal(t, "insert deal", entry["context"])
	assert.Equal(t, map[string]any{"account_id": float64(3)}, entry["data"])
}

func TestLogError_NoData(t *testing.T) {
	var buf bytes.Buffer
	LogError(New(&buf, "error"), "accounts", "Delete", "", nil, errors.New("gone"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "data")
}
