package raptordata

import (
	"os"
	"testing"

	"github.com/kranich/raptor-core/geo"
	. "github.com/kranich/raptor-core/util"
)

func sampleData() *Data {
	routes := Array[Route]{{IndexFirstRouteStop: 0, CountRouteStops: 2, IndexFirstDeparture: 0, CountDepartures: 2}}
	routeStops := Array[RouteStop]{
		{TransitRouteIndex: 0, StopFacilityIndex: 0, Mode: "bus", Line: "L1", Stop: "A"},
		{TransitRouteIndex: 0, StopFacilityIndex: 1, ArrivalOffset: 600, Mode: "bus", Line: "L1", Stop: "B"},
	}
	departures := Array[float64]{0, 900}
	routeStopsPerStopFacility := Array[Array[int32]]{{0}, {1}}
	stopFacilityIndices := Dict[StopID, int32]{"A": 0, "B": 1}
	coords := Dict[StopID, geo.Coord]{"A": {13.0, 52.0}, "B": {13.1, 52.1}}
	return NewData(routes, routeStops, departures, nil, routeStopsPerStopFacility, stopFacilityIndices, coords, Config{MinimalTransferTime: 120})
}

func TestCounts(t *testing.T) {
	data := sampleData()
	if data.CountRouteStops() != 2 {
		t.Errorf("CountRouteStops() = %v; want 2", data.CountRouteStops())
	}
	if data.CountStops() != 2 {
		t.Errorf("CountStops() = %v; want 2", data.CountStops())
	}
}

func TestStoreAndLoadRoundTrip(t *testing.T) {
	data := sampleData()
	dir := t.TempDir()
	path := dir + "/snapshot"

	StoreData(data, path)
	loaded := LoadData(path)

	if loaded.CountRouteStops() != data.CountRouteStops() {
		t.Errorf("loaded.CountRouteStops() = %v; want %v", loaded.CountRouteStops(), data.CountRouteStops())
	}
	if loaded.Config.MinimalTransferTime != 120 {
		t.Errorf("loaded.Config.MinimalTransferTime = %v; want 120", loaded.Config.MinimalTransferTime)
	}
	if loaded.RouteStops[1].Stop != "B" {
		t.Errorf("loaded.RouteStops[1].Stop = %v; want B", loaded.RouteStops[1].Stop)
	}
	if loaded.Departures[1] != 900 {
		t.Errorf("loaded.Departures[1] = %v; want 900", loaded.Departures[1])
	}
	if loaded.StopFacilityCoords["B"] != data.StopFacilityCoords["B"] {
		t.Errorf("loaded.StopFacilityCoords[B] = %v; want %v", loaded.StopFacilityCoords["B"], data.StopFacilityCoords["B"])
	}

	if _, err := os.Stat(path + "-departures"); err != nil {
		t.Errorf("expected a separate departures file, stat failed: %v", err)
	}
}
