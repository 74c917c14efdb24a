package logger

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/triage-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		wantErr  bool
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "case insensitive", logLevel: "INFO"},
		{name: "invalid level", logLevel: "verbose", wantErr: true},
		{name: "empty level", logLevel: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{LogLevel: tt.logLevel})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Same(t, log, slog.Default())
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Run("returns logger stored in context", func(t *testing.T) {
		log := slog.New(slog.NewTextHandler(os.Stderr, nil))
		ctx := WithLogger(context.Background(), log)
		assert.Same(t, log, FromContext(ctx))
	})

	t.Run("falls back to default logger", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("falls back to provided default", func(t *testing.T) {
		def := slog.New(slog.NewTextHandler(os.Stderr, nil))
		assert.Same(t, def, FromContextOrDefault(context.Background(), def))
	})
}
