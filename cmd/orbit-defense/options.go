package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// options are the host settings, flags override ORBIT_* environment defaults
type options struct {
	configPath    string
	templatesPath string
	seed          uint64
	seedSet       bool
	wsAddr        string
	debug         bool
	mute          bool
}

// loadEnv reads an optional dotenv file without overriding the real environment
func loadEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func parseOptions(args []string) (options, error) {
	var opts options
	seedDefault, seedSet := envUint("ORBIT_SEED")

	flags := flag.NewFlagSet("orbit-defense", flag.ContinueOnError)
	flags.StringVar(&opts.configPath, "config", os.Getenv("ORBIT_CONFIG"), "YAML tuning file")
	flags.StringVar(&opts.templatesPath, "templates", os.Getenv("ORBIT_TEMPLATES"), "YAML threat template file")
	flags.Uint64Var(&opts.seed, "seed", seedDefault, "random seed, overrides the config file")
	flags.StringVar(&opts.wsAddr, "ws", os.Getenv("ORBIT_WS"), "spectator feed address, e.g. :8090")
	flags.BoolVar(&opts.debug, "debug", envBool("ORBIT_DEBUG"), "write logs under ./logs")
	flags.BoolVar(&opts.mute, "mute", envBool("ORBIT_MUTE"), "disable audio")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	opts.seedSet = seedSet
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	return opts, nil
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envUint(key string) (uint64, bool) {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
