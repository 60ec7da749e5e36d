// Package raptorparams holds the cost-model configuration the raptor
// engine is parameterised by, loaded from YAML and validated the way
// theoremus-urban-solutions-gtfsrt-to-siri validates its own config:
// gopkg.in/yaml.v3 for decoding, github.com/go-playground/validator/v10
// for the sign/range invariants the cost formulas depend on.
package raptorparams

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Parameters is the interface the raptor engine consumes. Kept as an
// interface (rather than a concrete struct) so callers can plug in a
// per-mode override table, a constant table, or anything else without the
// engine caring — the same interface/concrete-implementation split used
// for path weighting elsewhere in this codebase.
type Parameters interface {
	MarginalUtilityOfTravelTime(mode string) float64
	MarginalUtilityOfWaitingPt() float64
	TransferPenaltyTravelTimeToCostFactor() float64
}

// Config is the YAML-decodable, validated concrete implementation of
// Parameters used by the demo server and by tests.
type Config struct {
	MarginalUtilityOfWaitingPtUtlS float64            `yaml:"marginalUtilityOfWaitingPt_utl_s" validate:"lte=0"`
	TransferPenaltyFactor          float64            `yaml:"transferPenaltyTravelTimeToCostFactor" validate:"gte=0"`
	DefaultTravelTimeUtlS          float64            `yaml:"defaultMarginalUtilityOfTravelTime_utl_s" validate:"lte=0"`
	TravelTimeUtlSByMode           map[string]float64 `yaml:"marginalUtilityOfTravelTime_utl_s" validate:"dive,lte=0"`
}

func (self *Config) MarginalUtilityOfTravelTime(mode string) float64 {
	if v, ok := self.TravelTimeUtlSByMode[mode]; ok {
		return v
	}
	return self.DefaultTravelTimeUtlS
}
func (self *Config) MarginalUtilityOfWaitingPt() float64 {
	return self.MarginalUtilityOfWaitingPtUtlS
}
func (self *Config) TransferPenaltyTravelTimeToCostFactor() float64 {
	return self.TransferPenaltyFactor
}

// LoadConfig reads and validates a RaptorParameters config from a YAML file.
func LoadConfig(file string) (*Config, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read raptor parameters file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse raptor parameters file: %w", err)
	}
	v := validator.New()
	if err := v.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid raptor parameters: %w", err)
	}
	return &cfg, nil
}
