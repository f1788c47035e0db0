package config

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		quiet bool
		want  log.Level
	}{
		{name: "default", want: log.DefaultConfig().Level},
		{name: "debug", debug: true, want: log.DebugLevel},
		{name: "quiet", quiet: true, want: log.ErrorLevel},
		{name: "debug overrides quiet", debug: true, quiet: true, want: log.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := CreateLogger(tt.debug, tt.quiet)
			assert.NotNil(t, logger)
			assert.Equal(t, tt.want, logger.Level())
		})
	}
}
