package config

import (
	_ "embed"
)

//go:embed defaults/levelsmith.yaml
var defaultYAML []byte

// DefaultConfig returns the default levelsmith configuration.
func DefaultConfig() Config {
	return Config{
		Levels: LevelsConfig{
			Root: "levels",
		},
		Generator: GeneratorConfig{
			Attempts:   120,
			BaseWidth:  42,
			BaseHeight: 14,
			Workers:    1,
		},
		Storage: StorageConfig{
			Path: "~/.levelsmith/catalog.db",
		},
		Music: MusicConfig{
			Playlist: []string{"cool-hiphop-rap-beat-20230307-191928.mp3"},
			Bitcrusher: BitcrusherConfig{
				Bits:       8,
				SampleRate: 8000,
			},
		},
	}
}
