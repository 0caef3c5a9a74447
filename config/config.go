package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.0-BUILD_VERSION"

	DecimalScale    = int32(100)
	DecimalRounding = "down"
	RandomBits      = 64
	CacheSize       = 32
	LogLevel        = 2
)

type Custom struct {
	Decimal struct {
		Scale    int32  `toml:"scale"`
		Rounding string `toml:"rounding"`
	} `toml:"decimal"`
	Random struct {
		Bits int `toml:"bits"`
	} `toml:"random"`
	Cache struct {
		Size int `toml:"size"`
	} `toml:"cache"`
	Log struct {
		Level   int    `toml:"level"`
		Limiter int    `toml:"limiter"`
		Filter  string `toml:"filter"`
	} `toml:"log"`
}

// Initialize reads the TOML file and fills missing keys with defaults,
// an empty file name returns the defaults.
func Initialize(file string) (*Custom, error) {
	var config Custom
	if file != "" {
		f, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		err = toml.Unmarshal(f, &config)
		if err != nil {
			return nil, err
		}
	}
	if config.Decimal.Scale == 0 {
		config.Decimal.Scale = DecimalScale
	}
	if config.Decimal.Rounding == "" {
		config.Decimal.Rounding = DecimalRounding
	}
	if config.Random.Bits == 0 {
		config.Random.Bits = RandomBits
	}
	if config.Cache.Size == 0 {
		config.Cache.Size = CacheSize
	}
	if config.Log.Level == 0 {
		config.Log.Level = LogLevel
	}
	return &config, nil
}
