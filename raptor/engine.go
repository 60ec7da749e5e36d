// Package raptor is the RAPTOR core: a rounds-based relaxation over
// generalized cost instead of textbook RAPTOR's arrival time, computed
// against an immutable raptordata.Data graph view.
package raptor

import (
	"math"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"github.com/kranich/raptor-core/raptordata"
	"github.com/kranich/raptor-core/raptorparams"
	"github.com/kranich/raptor-core/route"
)

const (
	maxTransfers                  = 20
	maxTransfersAfterFirstArrival = 2
)

// Engine runs RAPTOR queries against one Data graph view. It is not safe
// for concurrent use; build one Engine per worker thread, all sharing the
// same *raptordata.Data.
type Engine struct {
	data   *raptordata.Data
	state  *searchState
	logger *slog.Logger
}

func NewEngine(data *raptordata.Data) *Engine {
	return &Engine{
		data:   data,
		state:  newSearchState(data),
		logger: slog.Default(),
	}
}

// CalcLeastCostRoute answers a single-departure query, returning the one
// least-cost itinerary, or a RaptorRoute with ArrivalCost == +Inf and no
// legs if none exists.
func (self *Engine) CalcLeastCostRoute(depTime float64, fromFacility, toFacility raptordata.StopID, accessStops, egressStops []InitialStop, parameters raptorparams.Parameters) *route.RaptorRoute {
	queryID := uuid.New()
	state := self.state
	state.reset()

	self.markDestinations(egressStops)
	self.initializeAccessStops(depTime, accessStops)

	allowedTransfersLeft := maxTransfersAfterFirstArrival
	rounds := 0
	for k := 0; k <= maxTransfers; k++ {
		rounds = k
		self.exploreRoutes(parameters)

		leastCostPath := self.findLeastCostArrival(egressStops)
		if leastCostPath != nil {
			if allowedTransfersLeft == 0 {
				break
			}
			allowedTransfersLeft--
		}

		if state.improvedStops.IsEmpty() {
			break
		}

		self.handleTransfers(true, parameters)

		if state.improvedRouteStopIndices.IsEmpty() {
			break
		}
	}

	leastCostPath := self.findLeastCostArrival(egressStops)
	raptorRoute := self.createRaptorRoute(fromFacility, toFacility, leastCostPath, depTime)
	self.logger.Debug("calcLeastCostRoute finished",
		slog.String("query", queryID.String()),
		slog.Int("rounds", rounds),
		slog.Float64("arrivalCost", raptorRoute.ArrivalCost))
	return raptorRoute
}

// markDestinations marks every route-stop at an egress stop facility as a
// destination, carrying that facility's egress cost.
func (self *Engine) markDestinations(egressStops []InitialStop) {
	state := self.state
	for i := range egressStops {
		egressStop := &egressStops[i]
		for _, routeStopIndex := range self.routeStopsAt(egressStop.Stop) {
			state.destinationRouteStopIndices[routeStopIndex] = true
			state.egressCostsPerRouteStop[routeStopIndex] = egressStop.AccessCost
		}
	}
}

func (self *Engine) routeStopsAt(stop raptordata.StopID) []int32 {
	stopIndex, ok := self.data.StopFacilityIndices[stop]
	if !ok {
		return nil
	}
	return self.data.RouteStopsPerStopFacility[stopIndex]
}

// initializeAccessStops seeds one initial pathElement per route-stop
// reachable from each access stop.
func (self *Engine) initializeAccessStops(depTime float64, accessStops []InitialStop) {
	state := self.state
	for i := range accessStops {
		stop := &accessStops[i]
		indices := self.routeStopsAt(stop.Stop)
		for _, routeStopIndex := range indices {
			toRouteStop := self.data.RouteStops[routeStopIndex]
			pe := &pathElement{
				comingFrom:        nil,
				toRouteStop:       routeStopIndex,
				hasToRouteStop:    true,
				arrivalTime:       depTime + stop.AccessTime,
				arrivalTravelCost: stop.AccessCost,
				distance:          stop.Distance,
				transferCount:     0,
				isTransfer:        true,
				initialStop:       stop,
			}
			state.arrivalPathPerRouteStop[routeStopIndex] = pe
			state.arrivalPathPerStop[toRouteStop.StopFacilityIndex] = pe
			state.leastArrivalCostAtRouteStop[routeStopIndex] = stop.AccessCost
			state.leastArrivalCostAtStop[toRouteStop.StopFacilityIndex] = stop.AccessCost
			state.improvedRouteStopIndices.Mark(routeStopIndex)
		}
	}
}

// checkForBestArrival updates the query's best known destination arrival
// cost if routeStopIndex is a marked destination and arrivalCost plus its
// egress cost beats the current best.
func (self *Engine) checkForBestArrival(routeStopIndex int32, arrivalCost float64) {
	state := self.state
	if !state.destinationRouteStopIndices[routeStopIndex] {
		return
	}
	totalCost := arrivalCost + state.egressCostsPerRouteStop[routeStopIndex]
	if totalCost < state.bestArrivalCost {
		state.bestArrivalCost = totalCost
	}
}

// findNextDepartureIndex returns the smallest departure index d with
// departures[d] + departureOffset >= agentArrival, or -1 if none exists in
// this route's departure segment. Go's sort.Search already returns a
// lower-bound insertion point, so unlike Java's Arrays.binarySearch there
// is no negated-index encoding to undo.
func (self *Engine) findNextDepartureIndex(r raptordata.Route, departureOffset, agentArrival float64) int32 {
	key := agentArrival - departureOffset
	from := int(r.IndexFirstDeparture)
	to := from + int(r.CountDepartures)
	departures := self.data.Departures
	pos := sort.Search(to-from, func(i int) bool { return departures[from+i] >= key }) + from
	if pos >= to {
		return -1
	}
	return int32(pos)
}

// findLeastCostArrival scans every egress stop's current arrival and
// returns the cheapest one found, or nil if no egress stop has been
// reached yet.
func (self *Engine) findLeastCostArrival(egressStops []InitialStop) *pathElement {
	state := self.state
	leastCost := math.Inf(1)
	var leastCostPath *pathElement

	for i := range egressStops {
		egressStop := &egressStops[i]
		stopIndex, ok := self.data.StopFacilityIndices[egressStop.Stop]
		if !ok {
			continue
		}
		pe := state.arrivalPathPerStop[stopIndex]
		if pe == nil {
			continue
		}
		arrivalTime := pe.arrivalTime + egressStop.AccessTime
		arrivalTravelCost := pe.arrivalTravelCost + egressStop.AccessCost
		totalCost := arrivalTravelCost + pe.arrivalTransferCost
		if totalCost < leastCost || (totalCost == leastCost && leastCostPath != nil && pe.transferCount < leastCostPath.transferCount) {
			leastCost = totalCost
			leastCostPath = &pathElement{
				comingFrom:            pe,
				hasToRouteStop:        false,
				firstDepartureTime:    pe.firstDepartureTime,
				hasFirstDepartureTime: pe.hasFirstDepartureTime,
				arrivalTime:           arrivalTime,
				arrivalTravelCost:     arrivalTravelCost,
				arrivalTransferCost:   pe.arrivalTransferCost,
				distance:              egressStop.Distance,
				transferCount:         pe.transferCount,
				isTransfer:            true,
				initialStop:           egressStop,
			}
		}
	}
	return leastCostPath
}
