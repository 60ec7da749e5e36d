// Package stopindex resolves raw coordinates into the access/egress
// raptor.InitialStop lists a query needs, something outside the raptor
// package's own scope. It builds on github.com/tidwall/rtree, a
// dependency azybler-map_router declares but never actually calls (its
// own nearest-edge lookup is a hand-rolled sorted grid); this package
// gives that dependency its first real caller, indexing stop facility
// coordinates instead of road edges.
package stopindex

import (
	"math"

	"github.com/tidwall/rtree"

	"github.com/kranich/raptor-core/geo"
	"github.com/kranich/raptor-core/raptor"
	"github.com/kranich/raptor-core/raptordata"
	. "github.com/kranich/raptor-core/util"
)

// AccessEgressModel turns a straight-line distance into the access/egress
// time and cost an InitialStop carries. A constant-speed walk model is the
// obvious default; callers wanting street-network walk times supply their
// own.
type AccessEgressModel interface {
	Time(distanceMeters float64) float64
	Cost(distanceMeters float64) float64
}

// ConstantSpeedWalk is the default AccessEgressModel: distance / speed for
// time, and speed-independent time-times-disutility for cost.
type ConstantSpeedWalk struct {
	SpeedMetersPerSecond      float64
	MarginalUtilityOfTimeUtlS float64
}

func (self ConstantSpeedWalk) Time(distanceMeters float64) float64 {
	return distanceMeters / self.SpeedMetersPerSecond
}
func (self ConstantSpeedWalk) Cost(distanceMeters float64) float64 {
	return -self.MarginalUtilityOfTimeUtlS * self.Time(distanceMeters)
}

// Index is a spatial nearest-stop-facility resolver over one Data's stop
// facilities.
type Index struct {
	tree  rtree.RTreeG[raptordata.StopID]
	model AccessEgressModel
}

// NewIndex builds an Index from a Data's stop facility coordinates. coords
// is keyed by the same StopID values that appear in
// data.StopFacilityIndices; building it is the caller's responsibility —
// this package never parses a timetable.
func NewIndex(coords Dict[raptordata.StopID, geo.Coord], model AccessEgressModel) *Index {
	idx := &Index{model: model}
	for stop, coord := range coords {
		point := [2]float64{coord.Lon(), coord.Lat()}
		idx.tree.Insert(point, point, stop)
	}
	return idx
}

// Nearby returns the up-to-k nearest stop facilities to center within
// radiusMeters, each wrapped as a raptor.InitialStop with access time/cost
// filled in by the configured AccessEgressModel.
func (self *Index) Nearby(center geo.Coord, radiusMeters float64, k int) []raptor.InitialStop {
	minLon, maxLon := center.Lon()-metersToLonDegrees(radiusMeters, center.Lat()), center.Lon()+metersToLonDegrees(radiusMeters, center.Lat())
	minLat, maxLat := center.Lat()-metersToLatDegrees(radiusMeters), center.Lat()+metersToLatDegrees(radiusMeters)

	type candidate struct {
		stop     raptordata.StopID
		distance float64
	}
	pq := NewPriorityQueue[candidate, float64](16)

	self.tree.Search([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
		func(min, max [2]float64, stop raptordata.StopID) bool {
			coord := geo.Coord{min[0], min[1]}
			distance := geo.HaversineDistance(center, coord)
			if distance <= radiusMeters {
				pq.Enqueue(candidate{stop: stop, distance: distance}, distance)
			}
			return true
		})

	result := make([]raptor.InitialStop, 0, k)
	for pq.Length() > 0 && len(result) < k {
		c, _ := pq.Dequeue()
		result = append(result, raptor.InitialStop{
			Stop:       c.stop,
			AccessTime: self.model.Time(c.distance),
			AccessCost: self.model.Cost(c.distance),
			Distance:   c.distance,
		})
	}
	return result
}

const earthRadiusMeters = 6371000.0

func metersToLatDegrees(meters float64) float64 {
	return meters / earthRadiusMeters * (180.0 / math.Pi)
}
func metersToLonDegrees(meters, atLatDegrees float64) float64 {
	radLat := atLatDegrees * math.Pi / 180.0
	cosLat := math.Cos(radLat)
	if cosLat < 1e-6 {
		cosLat = 1e-6
	}
	return metersToLatDegrees(meters) / cosLat
}
