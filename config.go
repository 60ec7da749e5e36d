package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

// Config is the server's top-level configuration, loaded once at startup.
type Config struct {
	Data struct {
		Snapshot   string `yaml:"snapshot"`
		Parameters string `yaml:"parameters"`
	} `yaml:"data"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	AccessEgress struct {
		SpeedMetersPerSecond      float64 `yaml:"speed_meters_per_second"`
		MarginalUtilityOfTimeUtlS float64 `yaml:"marginal_utility_of_time_utl_s"`
		MaxRadiusMeters           float64 `yaml:"max_radius_meters"`
		MaxStops                  int     `yaml:"max_stops"`
	} `yaml:"access_egress"`
}

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	yaml.Unmarshal(data, &config)
	return config
}
