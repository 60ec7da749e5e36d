package main

import (
	"github.com/kranich/raptor-core/geo"
	"github.com/kranich/raptor-core/raptor"
)

// resolveAccessEgress finds the initial stops for one side of a query; the
// core itself never resolves coordinates.
func resolveAccessEgress(manager *RoutingManager, lon, lat float64) []raptor.InitialStop {
	center := geo.Coord{lon, lat}
	cfg := manager.config.AccessEgress
	maxStops := cfg.MaxStops
	if maxStops <= 0 {
		maxStops = 5
	}
	return manager.index.Nearby(center, cfg.MaxRadiusMeters, maxStops)
}
