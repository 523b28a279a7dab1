package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"portfolio-contact-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json output respects level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(&buf, "warn", "json")

		log.Info("hidden")
		log.Warn("shown", "template", "Wasky_Links_Contact")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "shown", line["msg"])
		assert.Equal(t, "Wasky_Links_Contact", line["template"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(&buf, "debug", "TEXT")

		log.Debug("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		for _, level := range []string{"", "verbose"} {
			var buf bytes.Buffer
			log := logger.New(&buf, level, "text")

			log.Debug("hidden")
			log.Info("shown")
			assert.NotContains(t, buf.String(), "hidden", level)
			assert.Contains(t, buf.String(), "msg=shown", level)
		}
	})
}
