package raptor

import (
	"github.com/kranich/raptor-core/raptordata"
	"github.com/kranich/raptor-core/route"
)

// InitialStop is an access or egress leg to/from a stop facility, supplied
// by the caller. Building these from raw coordinates is outside the core;
// see the stopindex package.
type InitialStop struct {
	Stop         raptordata.StopID
	AccessTime   float64
	AccessCost   float64
	Distance     float64
	PlanElements []route.PlanElement
}

// pathElement is the RAPTOR predecessor chain node. It is arena-scoped to
// a single query: reachable only from the search state's scratch arrays
// (a returned RaptorRoute copies the values it needs and keeps no
// reference to it), and is discarded wholesale on the next reset.
type pathElement struct {
	comingFrom *pathElement // nil == "none"

	toRouteStop    int32
	hasToRouteStop bool

	// firstDepartureTime is a tagged optional rather than a NaN sentinel.
	firstDepartureTime    float64
	hasFirstDepartureTime bool

	arrivalTime          float64
	arrivalTravelCost    float64
	arrivalTransferCost  float64
	distance             float64
	transferCount        int
	isTransfer           bool
	initialStop          *InitialStop
}

func (self *pathElement) totalCost() float64 {
	return self.arrivalTravelCost + self.arrivalTransferCost
}
