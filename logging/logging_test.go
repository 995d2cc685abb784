package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/cliquepart/logging"
)

func TestNew_Levels(t *testing.T) {
	for _, format := range []string{logging.FormatConsole, logging.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			l, err := logging.New("warn", format)
			require.NoError(t, err)
			assert.False(t, l.Core().Enabled(zap.InfoLevel))
			assert.True(t, l.Core().Enabled(zap.WarnLevel))

			l, err = logging.New("debug", format)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(zap.DebugLevel))
		})
	}
}

func TestNew_Rejects(t *testing.T) {
	_, err := logging.New("loud", logging.FormatJSON)
	assert.Error(t, err)

	_, err = logging.New("info", "logfmt")
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}
