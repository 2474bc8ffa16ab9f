package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_AddsRequestAndUserIDs(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { log = nil })

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "42")
	CtxInfo(ctx, "hello", "k", "v")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "42", entry["user_id"])
	assert.Equal(t, "v", entry["k"])
}

func TestDevelopmentLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("development", &buf)
	t.Cleanup(func() { log = nil })

	Debug("dbg", "a", 1)

	out := buf.String()
	assert.True(t, strings.Contains(out, "level=DEBUG"), out)
	assert.True(t, strings.Contains(out, "a=1"), out)
}

func TestCtxWithError_AttachesError(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { log = nil })

	CtxWithError(context.Background(), "failed", assert.AnError, "path", "/x")

	assert.Contains(t, buf.String(), assert.AnError.Error())
	assert.Contains(t, buf.String(), `"path":"/x"`)
}
