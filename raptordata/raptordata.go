// Package raptordata is the "graph view": a read-only, index-dense
// timetable snapshot. All identifiers used by the raptor engine are small
// integers indexing into the flat arrays defined here. Loading or parsing
// an actual timetable (GTFS or otherwise) and building this snapshot is
// out of scope for this package; see LoadData for the only supported way
// to obtain one from disk.
package raptordata

import (
	"github.com/kranich/raptor-core/geo"
	. "github.com/kranich/raptor-core/util"
)

// StopID is the external identifier of a stop facility, as handed to the
// engine inside InitialStop.
type StopID string

// Route describes one physical transit line variant: a fixed sequence of
// route-stops shared by all its departures.
type Route struct {
	IndexFirstRouteStop int32
	CountRouteStops     int32
	IndexFirstDeparture int32
	CountDepartures     int32
}

// RouteStop is one position in a route's stop sequence. Mode/Line/RouteName
// are opaque references only ever read back out when a result is emitted;
// the core never branches on their value except Mode, which is used to look
// up a marginal utility of travel time.
type RouteStop struct {
	TransitRouteIndex  int32
	StopFacilityIndex  int32
	ArrivalOffset      float64
	DepartureOffset    float64
	DistanceAlongRoute float64
	IndexFirstTransfer int32
	CountTransfers     int32
	Mode               string
	Line               string
	RouteName          string
	Stop               StopID
}

// Transfer is a walking edge from one route-stop to another.
type Transfer struct {
	ToRouteStop      int32
	TransferTime     float64
	TransferCost     float64
	TransferDistance float64
}

// Config carries the small amount of per-network tuning the core needs
// beyond RaptorParameters.
type Config struct {
	MinimalTransferTime float64
}

// Data is the immutable graph view held by an Engine. It is safe to share
// read-only across any number of engines; nothing in this package ever
// mutates a Data after it is returned by LoadData/NewData.
type Data struct {
	Routes                    Array[Route]
	RouteStops                Array[RouteStop]
	Departures                Array[float64]
	Transfers                 Array[Transfer]
	RouteStopsPerStopFacility Array[Array[int32]]
	StopFacilityIndices       Dict[StopID, int32]
	StopFacilityCoords        Dict[StopID, geo.Coord]
	Config                    Config
}

func (self *Data) CountRouteStops() int {
	return self.RouteStops.Length()
}
func (self *Data) CountStops() int {
	return self.RouteStopsPerStopFacility.Length()
}

// NewData assembles a Data snapshot from already-flattened arrays. It
// performs no validation of route-stop ordering or transfer contiguity;
// those invariants are the responsibility of whatever external component
// built the arrays.
func NewData(routes Array[Route], routeStops Array[RouteStop], departures Array[float64], transfers Array[Transfer], routeStopsPerStopFacility Array[Array[int32]], stopFacilityIndices Dict[StopID, int32], stopFacilityCoords Dict[StopID, geo.Coord], config Config) *Data {
	return &Data{
		Routes:                    routes,
		RouteStops:                routeStops,
		Departures:                departures,
		Transfers:                 transfers,
		RouteStopsPerStopFacility: routeStopsPerStopFacility,
		StopFacilityIndices:       stopFacilityIndices,
		StopFacilityCoords:        stopFacilityCoords,
		Config:                    config,
	}
}
