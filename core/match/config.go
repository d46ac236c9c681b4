package match

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a matching policy is out of range.
var ErrInvalidConfig = errors.New("invalid match config")

// Config holds the matching policy.
type Config struct {
	// Threshold is the minimum score (0-100) for two descriptions to be equivalent.
	Threshold int `mapstructure:"threshold" default:"90"`
	// CacheSize is the number of scored pairs kept in the LRU cache. Zero disables caching.
	CacheSize int `mapstructure:"cache_size" default:"50"`
	// Output is the default destination for merged catalogs.
	Output string `mapstructure:"output" default:"merged.xlsx"`
	// Sheet is the worksheet name used when writing xlsx output.
	Sheet string `mapstructure:"sheet" default:"Sheet1"`
	// InputSheet is the worksheet read from xlsx sources. Empty reads the active sheet.
	InputSheet string `mapstructure:"input_sheet" default:""`
	// Header marks the first spreadsheet row as a header: skipped on read, written on output.
	Header bool `mapstructure:"header" default:"false"`
}

const (
	DefaultThreshold = 90
	DefaultCacheSize = 50
)

// DefaultConfig returns the default matching policy.
func DefaultConfig() Config {
	return Config{
		Threshold: DefaultThreshold,
		CacheSize: DefaultCacheSize,
		Output:    "merged.xlsx",
		Sheet:     "Sheet1",
	}
}

// Validate checks that the policy values are usable.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > MaxScore {
		return fmt.Errorf("%w: threshold %d outside [0,%d]", ErrInvalidConfig, c.Threshold, MaxScore)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: negative cache size %d", ErrInvalidConfig, c.CacheSize)
	}
	return nil
}
