package main

import (
	"sync"

	"golang.org/x/exp/slog"

	"github.com/kranich/raptor-core/raptor"
	"github.com/kranich/raptor-core/raptordata"
	"github.com/kranich/raptor-core/raptorparams"
	"github.com/kranich/raptor-core/stopindex"
)

// RoutingManager owns one query's worth of shared, read-only state (the
// timetable snapshot, the cost model, the stop index) and hands out
// Engines, one per query, from a pool. A single Engine is not safe to
// share across concurrent queries because of its mutable search state; a
// sync.Pool is the idiomatic way to amortize that allocation instead of
// building one from scratch per request.
type RoutingManager struct {
	data       *raptordata.Data
	parameters raptorparams.Parameters
	index      *stopindex.Index
	config     Config

	engines sync.Pool
}

func NewRoutingManager(config Config) *RoutingManager {
	slog.Info("loading timetable snapshot", slog.String("path", config.Data.Snapshot))
	data := raptordata.LoadData(config.Data.Snapshot)

	slog.Info("loading raptor parameters", slog.String("path", config.Data.Parameters))
	parameters, err := raptorparams.LoadConfig(config.Data.Parameters)
	if err != nil {
		slog.Error("failed to load raptor parameters: " + err.Error())
		panic(err)
	}

	model := stopindex.ConstantSpeedWalk{
		SpeedMetersPerSecond:      config.AccessEgress.SpeedMetersPerSecond,
		MarginalUtilityOfTimeUtlS: config.AccessEgress.MarginalUtilityOfTimeUtlS,
	}
	index := stopindex.NewIndex(data.StopFacilityCoords, model)

	manager := &RoutingManager{
		data:       data,
		parameters: parameters,
		index:      index,
		config:     config,
	}
	manager.engines.New = func() any {
		return raptor.NewEngine(manager.data)
	}
	return manager
}

func (self *RoutingManager) borrowEngine() *raptor.Engine {
	return self.engines.Get().(*raptor.Engine)
}

func (self *RoutingManager) returnEngine(e *raptor.Engine) {
	self.engines.Put(e)
}
