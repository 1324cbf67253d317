package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext_AddsRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { InitWithWriter("test", &bytes.Buffer{}) })

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), 42)
	CtxInfo(ctx, "hello")

	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"user_id":42`)
	assert.Contains(t, out, `"msg":"hello"`)
}

func TestCtxWithError_IncludesError(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { InitWithWriter("test", &bytes.Buffer{}) })

	CtxWithError(context.Background(), "failed", errors.New("boom"), "kind", "favorite")

	out := buf.String()
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"kind":"favorite"`)
	assert.Contains(t, out, `"level":"ERROR"`)
}

func TestGetUserID_Missing(t *testing.T) {
	assert.Equal(t, uint(0), GetUserID(context.Background()))
	assert.Equal(t, "", GetRequestID(context.Background()))
}
