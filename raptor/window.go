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

// departureCandidate is one (access stop, boardable route-stop, feasible
// departure) triple the time-window driver will try as a starting point.
type departureCandidate struct {
	accessStop     *InitialStop
	routeStopIndex int32
	departureIndex int32
	departureTime  float64
	costOffset     float64
}

// CalcRoutes sweeps every feasible departure in [earliestDepTime,
// latestDepTime], running a full search from each one, and keeps the
// Pareto-undominated results.
func (self *Engine) CalcRoutes(earliestDepTime, desiredDepTime, latestDepTime float64, fromFacility, toFacility raptordata.StopID, accessStops, egressStops []InitialStop, parameters raptorparams.Parameters) []*route.RaptorRoute {
	queryID := uuid.New()
	state := self.state
	state.reset()

	self.markDestinations(egressStops)

	marginalUtilityOfWaitingPt := parameters.MarginalUtilityOfWaitingPt()

	candidates := self.buildDepartureCandidates(earliestDepTime, latestDepTime, accessStops, marginalUtilityOfWaitingPt)
	if len(candidates) == 0 {
		self.logger.Debug("calcRoutes found no feasible departures", slog.String("query", queryID.String()))
		return nil
	}

	// sorted ascending by (costOffset+accessCost, departureIndex), then
	// walked in reverse: candidates are processed from the highest
	// artificial cost (the latest departure) down to the lowest, so that a later (in walk order)
	// candidate can only improve on what an earlier one left behind, never
	// regress it.
	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		costI := ci.costOffset + ci.accessStop.AccessCost
		costJ := cj.costOffset + cj.accessStop.AccessCost
		if costI != costJ {
			return costI < costJ
		}
		return ci.departureIndex < cj.departureIndex
	})

	limit := maxTransfers
	var foundRoutes []*route.RaptorRoute
	var lastFoundBestPath *pathElement

	for i := len(candidates) - 1; i >= 0; i-- {
		candidate := candidates[i]

		state.improvedStops.Clear()
		state.improvedRouteStopIndices.Clear()
		state.bestArrivalCost = math.Inf(1)

		routeStop := self.data.RouteStops[candidate.routeStopIndex]
		pe := &pathElement{
			comingFrom:        nil,
			toRouteStop:       candidate.routeStopIndex,
			hasToRouteStop:    true,
			arrivalTime:       candidate.departureTime + routeStop.ArrivalOffset,
			arrivalTravelCost: candidate.costOffset + candidate.accessStop.AccessCost,
			distance:          candidate.accessStop.Distance,
			transferCount:     0,
			isTransfer:        true,
			initialStop:       candidate.accessStop,
		}
		state.arrivalPathPerRouteStop[candidate.routeStopIndex] = pe
		state.arrivalPathPerStop[routeStop.StopFacilityIndex] = pe
		state.leastArrivalCostAtRouteStop[candidate.routeStopIndex] = pe.arrivalTravelCost
		state.leastArrivalCostAtStop[routeStop.StopFacilityIndex] = pe.arrivalTravelCost
		state.improvedRouteStopIndices.Mark(candidate.routeStopIndex)

		for k := 0; k <= limit; k++ {
			self.exploreRoutes(parameters)

			leastCostPath := self.findLeastCostArrival(egressStops)
			if leastCostPath != nil && (lastFoundBestPath == nil || !sameChain(leastCostPath, lastFoundBestPath)) {
				lastFoundBestPath = leastCostPath

				depTime := self.calculateOptimalDepartureTime(leastCostPath)

				// the search itself keeps using the cost-offset trick, but the
				// route we hand back to the caller must not carry it.
				leastCostPath.arrivalTravelCost -= candidate.costOffset
				raptorRoute := self.createRaptorRoute(fromFacility, toFacility, leastCostPath, depTime)
				leastCostPath.arrivalTravelCost += candidate.costOffset

				foundRoutes = append(foundRoutes, raptorRoute)

				if optimizedLimit := leastCostPath.transferCount + maxTransfersAfterFirstArrival; optimizedLimit < limit {
					limit = optimizedLimit
				}
				if k == limit {
					break // no use to handle transfers
				}
			}

			if state.improvedStops.IsEmpty() {
				break
			}
			self.handleTransfers(false, parameters)
			if state.improvedRouteStopIndices.IsEmpty() {
				break
			}
		}
	}

	result := filterRoutes(foundRoutes)
	self.logger.Debug("calcRoutes finished",
		slog.String("query", queryID.String()),
		slog.Int("candidates", len(candidates)),
		slog.Int("routes", len(result)))
	return result
}

// sameChain reports whether two destination path elements descend from the
// same root access element (the one without a predecessor), comparing the
// roots by identity, so that a path whose root was already reported is not
// reported again.
func sameChain(a, b *pathElement) bool {
	for a.comingFrom != nil {
		a = a.comingFrom
	}
	for b.comingFrom != nil {
		b = b.comingFrom
	}
	return a == b
}

// buildDepartureCandidates enumerates every feasible (access stop,
// route-stop, departure) triple in the window, skipping route-stops that
// are the last stop of their route (nothing to board there for).
func (self *Engine) buildDepartureCandidates(earliestDepTime, latestDepTime float64, accessStops []InitialStop, marginalUtilityOfWaitingPt float64) []departureCandidate {
	var candidates []departureCandidate

	for i := range accessStops {
		accessStop := &accessStops[i]
		earliestTimeAtStop := earliestDepTime + accessStop.AccessTime
		latestTimeAtStop := latestDepTime + accessStop.AccessTime

		for _, routeStopIndex := range self.routeStopsAt(accessStop.Stop) {
			routeStop := self.data.RouteStops[routeStopIndex]
			r := self.data.Routes[routeStop.TransitRouteIndex]
			if routeStopIndex == r.IndexFirstRouteStop+r.CountRouteStops-1 {
				continue // last stop of the route: nothing to board here
			}

			from := int(r.IndexFirstDeparture)
			to := from + int(r.CountDepartures)
			departures := self.data.Departures

			startPos := sort.Search(to-from, func(k int) bool {
				return departures[from+k]+routeStop.DepartureOffset >= earliestTimeAtStop
			}) + from

			for d := startPos; d < to; d++ {
				depTimeAtStop := departures[d] + routeStop.DepartureOffset
				if depTimeAtStop > latestTimeAtStop {
					break
				}
				costOffset := (depTimeAtStop - earliestTimeAtStop) * marginalUtilityOfWaitingPt * -1
				candidates = append(candidates, departureCandidate{
					accessStop:     accessStop,
					routeStopIndex: routeStopIndex,
					departureIndex: int32(d),
					departureTime:  departures[d],
					costOffset:     costOffset,
				})
			}
		}
	}

	return candidates
}

// calculateOptimalDepartureTime walks the destination path element's
// predecessor chain back to its root access leg and backs out the latest
// departure time consistent with it.
func (self *Engine) calculateOptimalDepartureTime(leastCostPath *pathElement) float64 {
	pe := leastCostPath
	for pe.comingFrom != nil {
		pe = pe.comingFrom
	}
	accessStop := pe.initialStop
	depTime := pe.arrivalTime - self.data.Config.MinimalTransferTime - accessStop.AccessTime
	return math.Floor(depTime)
}

// filterRoutes dedups exact (transfers, departureTime, travelTime)
// triples, then drops every route dominated by another on all three
// dimensions.
func filterRoutes(routes []*route.RaptorRoute) []*route.RaptorRoute {
	if len(routes) == 0 {
		return nil
	}

	sort.SliceStable(routes, func(i, j int) bool {
		a, b := routes[i], routes[j]
		if a.GetNumberOfTransfers() != b.GetNumberOfTransfers() {
			return a.GetNumberOfTransfers() < b.GetNumberOfTransfers()
		}
		if a.GetDepartureTime() != b.GetDepartureTime() {
			return a.GetDepartureTime() < b.GetDepartureTime()
		}
		return a.GetTravelTime() < b.GetTravelTime()
	})

	var deduped []*route.RaptorRoute
	for i, r := range routes {
		if i > 0 {
			prev := routes[i-1]
			if r.GetNumberOfTransfers() == prev.GetNumberOfTransfers() &&
				r.GetDepartureTime() == prev.GetDepartureTime() &&
				r.GetTravelTime() == prev.GetTravelTime() {
				continue
			}
		}
		deduped = append(deduped, r)
	}

	var result []*route.RaptorRoute
	for i, candidate := range deduped {
		dominated := false
		for j, other := range deduped {
			if i == j {
				continue
			}
			if other.GetNumberOfTransfers() <= candidate.GetNumberOfTransfers() &&
				other.GetDepartureTime() >= candidate.GetDepartureTime() &&
				other.GetDepartureTime()+other.GetTravelTime() <= candidate.GetDepartureTime()+candidate.GetTravelTime() {
				dominated = true
				break
			}
		}
		if !dominated {
			result = append(result, candidate)
		}
	}
	return result
}
