package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beka-birhanu/maze-words/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("empty prefix", func(t *testing.T) {
		_, err := New("", config.ColorGreen, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)
	})

	t.Run("levels are tagged", func(t *testing.T) {
		var out bytes.Buffer
		l, err := New("APP", config.ColorGreen, &out)
		require.NoError(t, err)

		l.Info("started")
		l.Warning("slow")
		l.Error("failed")

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		for _, line := range lines {
			assert.Contains(t, line, config.ColorGreen+"[APP]"+config.LogColorReset)
		}
		assert.Contains(t, lines[0], config.LogInfoColor+"[INFO]"+config.LogColorReset+" started")
		assert.Contains(t, lines[1], config.LogWarningColor+"[WARNING]"+config.LogColorReset+" slow")
		assert.Contains(t, lines[2], config.LogErrorColor+"[ERROR]"+config.LogColorReset+" failed")
	})

	t.Run("fields are appended in key order", func(t *testing.T) {
		var out bytes.Buffer
		l, err := New("MAZE", config.ColorCyan, &out)
		require.NoError(t, err)

		l.WithFields(logrus.Fields{"width": 0, "height": 3}).Error("invalid maze dimensions")

		assert.True(t, strings.HasSuffix(out.String(), "invalid maze dimensions height=3 width=0\n"), out.String())
	})

	t.Run("debug is filtered", func(t *testing.T) {
		var out bytes.Buffer
		l, err := New("APP", config.ColorGreen, &out)
		require.NoError(t, err)

		l.WithFields(logrus.Fields{}).Debug("hidden")
		assert.Empty(t, out.String())
	})
}
