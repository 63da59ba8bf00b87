// Package config provides YAML-based configuration loading for the level
// toolchain, with embedded defaults so the binary runs without any config
// files installed.
package config

// Config contains all configuration for the levelsmith toolchain.
type Config struct {
	Levels    LevelsConfig    `yaml:"levels"`
	Generator GeneratorConfig `yaml:"generator"`
	Storage   StorageConfig   `yaml:"storage"`
	Music     MusicConfig     `yaml:"music"`
}

// LevelsConfig controls where level directories live.
type LevelsConfig struct {
	Root string `yaml:"root"`
}

// GeneratorConfig tunes the generation loop.
type GeneratorConfig struct {
	Attempts   int `yaml:"attempts"`    // retry ceiling per level
	BaseWidth  int `yaml:"base_width"`  // virtual level-zero width
	BaseHeight int `yaml:"base_height"` // virtual level-zero height
	Workers    int `yaml:"workers"`     // parallel generation workers
}

// StorageConfig points at the catalog database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// MusicConfig is stamped into every level sidecar.
type MusicConfig struct {
	Playlist   []string         `yaml:"playlist"`
	Bitcrusher BitcrusherConfig `yaml:"bitcrusher"`
}

// BitcrusherConfig holds the lo-fi audio effect parameters.
type BitcrusherConfig struct {
	Bits       int `yaml:"bits"`
	SampleRate int `yaml:"sample_rate"`
}
