package raptor

import (
	"math"

	"github.com/kranich/raptor-core/raptordata"
	"github.com/kranich/raptor-core/route"
	. "github.com/kranich/raptor-core/util"
)

// createRaptorRoute walks a destination path element's predecessor chain
// back to its root access leg, then replays it forward into an ordered
// RaptorRoute.
func (self *Engine) createRaptorRoute(fromFacility, toFacility raptordata.StopID, destination *pathElement, departureTime float64) *route.RaptorRoute {
	if destination == nil {
		return route.NewRaptorRoute(fromFacility, toFacility, math.Inf(1))
	}

	chain := make([]*pathElement, 0, destination.transferCount+2)
	for pe := destination; pe != nil; pe = pe.comingFrom {
		chain = append(chain, pe)
	}
	// chain is currently root-last; reverse it into forward order.
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}

	raptorRoute := route.NewRaptorRoute(fromFacility, toFacility, destination.totalCost())
	raptorRoute.SetNumberOfTransfers(destination.transferCount)

	time := departureTime
	var fromStop Optional[raptordata.StopID]

	for i, pe := range chain {
		var toStop Optional[raptordata.StopID]
		if pe.hasToRouteStop {
			toStop = Some(self.data.RouteStops[pe.toRouteStop].Stop)
		}

		travelTime := pe.arrivalTime - time

		switch {
		case pe.initialStop != nil && pe.initialStop.PlanElements != nil:
			raptorRoute.AddPlanElements(time, travelTime, pe.initialStop.PlanElements)

		case pe.isTransfer:
			differentFromTo := !fromStop.HasValue() || !toStop.HasValue() || fromStop.Value != toStop.Value
			if differentFromTo && i == len(chain)-2 {
				// merges into the egress leg that follows; emitting it
				// separately would double count its distance.
			} else if differentFromTo {
				mode := route.ModeTransitWalk
				if !fromStop.HasValue() && toStop.HasValue() {
					mode = route.ModeAccessWalk
				} else if fromStop.HasValue() && !toStop.HasValue() {
					mode = route.ModeEgressWalk
				}
				raptorRoute.AddNonPt(fromStop, toStop, time, travelTime, pe.distance, mode)
			}

		default:
			routeStop := self.data.RouteStops[pe.toRouteStop]
			raptorRoute.AddPt(fromStop, toStop, routeStop.Line, routeStop.RouteName, routeStop.Mode, time, travelTime, pe.distance)
		}

		time = pe.arrivalTime
		fromStop = toStop
	}

	return raptorRoute
}
