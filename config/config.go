package config

import (
	"fmt"

	"github.com/namsral/flag"
	"github.com/spf13/viper"

	"github.com/dropblox/dropblox-ai/equity"
)

type Config struct {
	MaxDepth    int
	SpaceValue  float64
	FlatValue   float64
	WeightsFile string
	Debug       bool
}

func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("dropblox-ai", flag.ContinueOnError)
	fs.IntVar(&c.MaxDepth, "max-depth", 4, "how many placements ahead to search, past the current block")
	fs.Float64Var(&c.SpaceValue, "space-value", equity.DefaultSpaceValue, "penalty weight for enclosed empty pockets")
	fs.Float64Var(&c.FlatValue, "flat-value", equity.DefaultFlatValue, "penalty weight for column height variance")
	fs.StringVar(&c.WeightsFile, "weights-file", "", "optional config file overriding the scoring weights")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.WeightsFile != "" {
		return c.loadWeightsFile()
	}
	return nil
}

// loadWeightsFile overlays tuning values from the weights file. Only the
// keys present in the file override the flag values.
func (c *Config) loadWeightsFile() error {
	v := viper.New()
	v.SetConfigFile(c.WeightsFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading weights file: %w", err)
	}
	if v.IsSet("space_value") {
		c.SpaceValue = v.GetFloat64("space_value")
	}
	if v.IsSet("flat_value") {
		c.FlatValue = v.GetFloat64("flat_value")
	}
	if v.IsSet("max_depth") {
		c.MaxDepth = v.GetInt("max_depth")
	}
	return nil
}
