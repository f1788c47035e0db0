package detector

import (
	"testing"

	"github.com/retroenv/lorommap/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	d := New(log.NewTestLogger(t))

	tests := []struct {
		name      string
		assemble  bool
		inputFile string
		wantKind  InputKind
	}{
		{
			name:      "explicit asm option",
			assemble:  true,
			inputFile: "game.bin",
			wantKind:  Source,
		},
		{
			name:      "detect from .s extension",
			inputFile: "main.s",
			wantKind:  Source,
		},
		{
			name:      "detect from .bin extension",
			inputFile: "game.bin",
			wantKind:  FlatImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := options.Program{
				Parameters: options.Parameters{Input: tt.inputFile},
				Flags:      options.Flags{Assemble: tt.assemble},
			}

			got := d.Detect(opts)
			assert.Equal(t, tt.wantKind, got)
		})
	}
}

func TestDetectFromFile(t *testing.T) {
	d := New(log.NewTestLogger(t))

	tests := []struct {
		name     string
		filename string
		wantKind InputKind
	}{
		{
			name:     ".asm extension",
			filename: "hello_world.asm",
			wantKind: Source,
		},
		{
			name:     ".S extension (uppercase)",
			filename: "MAIN.S",
			wantKind: Source,
		},
		{
			name:     ".a65 extension",
			filename: "reset.a65",
			wantKind: Source,
		},
		{
			name:     "no extension",
			filename: "game",
			wantKind: FlatImage,
		},
		{
			name:     ".sfc extension",
			filename: "game.sfc",
			wantKind: FlatImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.detectFromFile(tt.filename)
			assert.Equal(t, tt.wantKind, got)
		})
	}
}

func TestInputKindString(t *testing.T) {
	assert.Equal(t, "source", Source.String())
	assert.Equal(t, "flat image", FlatImage.String())
}
