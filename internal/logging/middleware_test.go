package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Amund211/roster/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequestLoggerMiddleware(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, req *http.Request) map[string]any {
		t.Helper()

		buf := &bytes.Buffer{}
		middleware := logging.NewRequestLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)))

		handler := middleware(func(w http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("test")
		})
		handler(httptest.NewRecorder(), req)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

		correlationID, ok := entry["correlationID"].(string)
		require.True(t, ok)
		_, err := uuid.Parse(correlationID)
		require.NoError(t, err)

		delete(entry, "time")
		delete(entry, "correlationID")
		return entry
	}

	t.Run("all props", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("POST", "/players/42/delete", nil)
		req.SetPathValue("id", "42")
		req.Header.Set("User-Agent", "user-agent/1.0")

		require.Equal(t, map[string]any{
			"level":      "INFO",
			"msg":        "test",
			"methodPath": "POST /players/42/delete",
			"playerID":   "42",
			"userAgent":  "user-agent/1.0",
		}, run(t, req))
	})

	t.Run("missing props", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Del("User-Agent")

		require.Equal(t, map[string]any{
			"level":      "INFO",
			"msg":        "test",
			"methodPath": "GET /",
			"playerID":   "<missing>",
			"userAgent":  "<missing>",
		}, run(t, req))
	})
}
