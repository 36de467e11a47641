// Package config loads demo binary configuration from a TOML file.
package config

import (
	"errors"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

type Cfg struct {
	Log  LogCfg  `toml:"log"`
	Demo DemoCfg `toml:"demo"`
}

type LogCfg struct {
	Level string `toml:"level"` // debug/info/warn/error
}

type DemoCfg struct {
	TickRateMs  int    `toml:"tick_rate_ms"`
	SnapshotDir string `toml:"snapshot_dir"`
}

func NewCfg(path string) (*Cfg, error) {
	c := new(Cfg)
	c.SetDefault()

	err := FromFile(path, c)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Cfg) SetDefault() {
	c.Log.Level = "info"
	c.Demo.TickRateMs = 16
	c.Demo.SnapshotDir = os.TempDir()
}

// FromFile parses the config file at path into dest. A missing file is not
// an error; defaults stand.
func FromFile(path string, dest any) error {
	file, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return err
	}

	defer file.Close() //nolint:errcheck // The file is RO
	return FromReader(file, dest)
}

// FromReader loads config from a reader instance.
func FromReader(reader io.Reader, dest any) error {
	_, err := toml.NewDecoder(reader).Decode(dest)
	if err != nil {
		return err
	}

	return nil
}
