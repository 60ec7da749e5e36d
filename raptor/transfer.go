package raptor

import (
	"github.com/kranich/raptor-core/raptorparams"
)

// handleTransfers relaxes every marked stop's outgoing transfers into the
// next round's route-stop set. strict selects the improvement comparator:
// single-departure queries use strict less-than so a transfer never
// overwrites an equally good path found by riding a route directly, while
// the time-window driver relaxes this to less-than-or-equal so a later,
// equally costed candidate can still replace an earlier one.
func (self *Engine) handleTransfers(strict bool, parameters raptorparams.Parameters) {
	state := self.state
	state.improvedRouteStopIndices.Clear()
	state.tmpImprovedStops.Clear()

	transferPenaltyFactor := parameters.TransferPenaltyTravelTimeToCostFactor()

	stopIndex, ok := state.improvedStops.NextSetBit(0)
	for ok {
		fromPE := state.arrivalPathPerStop[stopIndex]
		if fromPE.totalCost() > state.bestArrivalCost {
			stopIndex, ok = state.improvedStops.NextSetBit(stopIndex + 1)
			continue
		}

		fromRouteStop := self.data.RouteStops[fromPE.toRouteStop]
		from := fromRouteStop.IndexFirstTransfer
		to := from + fromRouteStop.CountTransfers

		for i := from; i < to; i++ {
			t := self.data.Transfers[i]

			newArrivalTime := fromPE.arrivalTime + t.TransferTime
			newArrivalTravelCost := fromPE.arrivalTravelCost + t.TransferCost
			newTransferCount := fromPE.transferCount + 1
			firstDepartureTime := newArrivalTime
			if fromPE.hasFirstDepartureTime {
				firstDepartureTime = fromPE.firstDepartureTime
			}
			newArrivalTransferCost := (newArrivalTime - firstDepartureTime) * transferPenaltyFactor * float64(newTransferCount)
			newTotalArrivalCost := newArrivalTravelCost + newArrivalTransferCost

			previous := state.leastArrivalCostAtRouteStop[t.ToRouteStop]
			improved := newTotalArrivalCost < previous
			if !strict {
				improved = newTotalArrivalCost <= previous
			}
			if !improved {
				continue
			}

			pe := &pathElement{
				comingFrom:            fromPE,
				toRouteStop:           t.ToRouteStop,
				hasToRouteStop:        true,
				firstDepartureTime:    firstDepartureTime,
				hasFirstDepartureTime: true,
				arrivalTime:           newArrivalTime,
				arrivalTravelCost:     newArrivalTravelCost,
				arrivalTransferCost:   newArrivalTransferCost,
				distance:              t.TransferDistance,
				transferCount:         newTransferCount,
				isTransfer:            true,
			}
			state.arrivalPathPerRouteStop[t.ToRouteStop] = pe
			state.leastArrivalCostAtRouteStop[t.ToRouteStop] = newTotalArrivalCost
			state.improvedRouteStopIndices.Mark(t.ToRouteStop)

			toStopFacilityIndex := self.data.RouteStops[t.ToRouteStop].StopFacilityIndex
			toStopPrevious := state.leastArrivalCostAtStop[toStopFacilityIndex]
			toStopImproved := newTotalArrivalCost < toStopPrevious
			if !strict {
				toStopImproved = newTotalArrivalCost <= toStopPrevious
			}
			if toStopImproved {
				state.leastArrivalCostAtStop[toStopFacilityIndex] = newTotalArrivalCost
				state.tmpArrivalPathPerStop[toStopFacilityIndex] = pe
				state.tmpImprovedStops.Mark(toStopFacilityIndex)
			}
		}

		stopIndex, ok = state.improvedStops.NextSetBit(stopIndex + 1)
	}

	// parallel update: transfers within one round must not chain off each
	// other's arrivalPathPerStop writes.
	next, hasNext := state.tmpImprovedStops.NextSetBit(0)
	for hasNext {
		state.arrivalPathPerStop[next] = state.tmpArrivalPathPerStop[next]
		next, hasNext = state.tmpImprovedStops.NextSetBit(next + 1)
	}
}
