package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/agencysite/pkg/logger"
)

func submissionExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("submission_id", id), true
	}
	return slog.Attr{}, false
}

type ctxKey struct{}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	newLog := func(buf *bytes.Buffer) *slog.Logger {
		return slog.New(logger.NewLogHandlerDecorator(slog.NewJSONHandler(buf, nil), submissionExtractor, nil))
	}
	ctx := context.WithValue(context.Background(), ctxKey{}, "from-ctx")

	t.Run("adds extracted attribute", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		newLog(&buf).InfoContext(ctx, "contact submission accepted")

		line := decodeLines(t, &buf)[0]
		assert.Equal(t, "from-ctx", line["submission_id"])
	})

	t.Run("skips when context has nothing", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		newLog(&buf).InfoContext(context.Background(), "page rendered")

		assert.NotContains(t, decodeLines(t, &buf)[0], "submission_id")
	})

	t.Run("record attribute wins", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		newLog(&buf).InfoContext(ctx, "delivered", slog.String("submission_id", "explicit"))

		assert.Equal(t, 1, strings.Count(buf.String(), `"submission_id"`))
		assert.Equal(t, "explicit", decodeLines(t, &buf)[0]["submission_id"])
	})

	t.Run("bound attribute wins", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		newLog(&buf).With(slog.String("submission_id", "bound")).InfoContext(ctx, "delivered")

		assert.Equal(t, 1, strings.Count(buf.String(), `"submission_id"`))
		assert.Equal(t, "bound", decodeLines(t, &buf)[0]["submission_id"])
	})

	t.Run("group keeps extracted attribute inside", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		newLog(&buf).With(slog.String("submission_id", "outer")).WithGroup("mail").InfoContext(ctx, "sent")

		line := decodeLines(t, &buf)[0]
		assert.Equal(t, "outer", line["submission_id"])
		group, ok := line["mail"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "from-ctx", group["submission_id"])
	})
}
