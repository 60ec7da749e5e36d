package raptordata

import (
	"github.com/kranich/raptor-core/geo"
	. "github.com/kranich/raptor-core/util"
)

// snapshot is the on-disk shape of a Data. RouteStop/StopFacilityIndices
// carry strings, so unlike WriteArrayToFile/ReadArrayFromFile (which
// memcpy fixed-size structs via encoding/binary) the snapshot as a whole
// goes through JSON; only the pure-numeric Departures array is stored with
// the binary helpers, keeping both paths exercised.
type snapshot struct {
	Routes                    Array[Route]
	RouteStops                Array[RouteStop]
	Transfers                 Array[Transfer]
	RouteStopsPerStopFacility Array[Array[int32]]
	StopFacilityIndices       Dict[StopID, int32]
	StopFacilityCoords        Dict[StopID, geo.Coord]
	Config                    Config
}

// StoreData writes a Data snapshot to two files: "path" (the JSON body) and
// "path-departures" (the binary departures array).
func StoreData(data *Data, path string) {
	snap := snapshot{
		Routes:                    data.Routes,
		RouteStops:                data.RouteStops,
		Transfers:                 data.Transfers,
		RouteStopsPerStopFacility: data.RouteStopsPerStopFacility,
		StopFacilityIndices:       data.StopFacilityIndices,
		StopFacilityCoords:        data.StopFacilityCoords,
		Config:                    data.Config,
	}
	WriteJSONToFile(snap, path)
	WriteArrayToFile(data.Departures, path+"-departures")
}

// LoadData reads a snapshot previously written by StoreData. This is the
// only supported way to obtain a *Data from disk (NewData assembles one
// from arrays already in memory): the core never parses timetables.
func LoadData(path string) *Data {
	snap := ReadJSONFromFile[snapshot](path)
	departures := ReadArrayFromFile[float64](path + "-departures")
	return &Data{
		Routes:                    snap.Routes,
		RouteStops:                snap.RouteStops,
		Departures:                departures,
		Transfers:                 snap.Transfers,
		RouteStopsPerStopFacility: snap.RouteStopsPerStopFacility,
		StopFacilityIndices:       snap.StopFacilityIndices,
		StopFacilityCoords:        snap.StopFacilityCoords,
		Config:                    snap.Config,
	}
}
