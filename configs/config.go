package configs

import (
	"github.com/spf13/viper"
)

// Root is the full run configuration for the nqueens CLI.
type Root struct {
	Size   int
	Solver string

	// Seed seeds the random source; 0 means seed from the clock.
	Seed int64

	// MaxRestarts bounds hill-climbing retries after plateau stops.
	MaxRestarts int

	// Workers sizes the brute-force validation pool; 0 means one per CPU.
	Workers int

	Debug bool
}

func ReadConfig(path string) (Root, error) {
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return Root{}, err
	}
	var c Root
	err := viper.Unmarshal(&c)
	return c, err
}
