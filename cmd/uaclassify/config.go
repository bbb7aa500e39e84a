package main

import "github.com/caarlos0/env/v10"

// config holds process-wide settings sourced from the environment,
// overridable by CLI flags. Mirrors the teacher's preference for
// env-driven configuration over hardcoded constants.
type config struct {
	LogLevel    string `env:"UACLASSIFY_LOG_LEVEL" envDefault:"info"`
	ReplayRPS   int    `env:"UACLASSIFY_REPLAY_RPS" envDefault:"0"`
	BenchWorker int    `env:"UACLASSIFY_BENCH_WORKERS" envDefault:"4"`
}

func loadConfig() (config, error) {
	var c config
	if err := env.Parse(&c); err != nil {
		return config{}, err
	}
	return c, nil
}
