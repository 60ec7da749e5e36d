package raptor

import (
	"github.com/kranich/raptor-core/raptorparams"
)

// exploreRoutes rides forward every route touched by an improved
// route-stop since the last round, starting from the earliest such
// route-stop, and relaxes every downstream route-stop's cost.
//
// The outer loop advances firstRouteStopIndex past whatever the inner loop
// already consumed (a self-advancing loop variable), so NextSetBit is
// seeded from firstRouteStopIndex+1 rather than routeStopIndex+1 once a
// route has been ridden.
func (self *Engine) exploreRoutes(parameters raptorparams.Parameters) {
	state := self.state
	state.improvedStops.Clear()

	marginalUtilityOfWaitingPt := parameters.MarginalUtilityOfWaitingPt()
	transferPenaltyFactor := parameters.TransferPenaltyTravelTimeToCostFactor()

	routeStopIndex, ok := state.improvedRouteStopIndices.NextSetBit(0)
	handledRouteIndex := int32(-1)

	for ok {
		routeStop := self.data.RouteStops[routeStopIndex]
		if routeStop.TransitRouteIndex == handledRouteIndex {
			routeStopIndex, ok = state.improvedRouteStopIndices.NextSetBit(routeStopIndex + 1)
			continue
		}

		boardingPE := state.arrivalPathPerRouteStop[routeStopIndex]
		agentFirstArrivalTime := boardingPE.arrivalTime

		r := self.data.Routes[routeStop.TransitRouteIndex]
		departureIndex := self.findNextDepartureIndex(r, routeStop.DepartureOffset, agentFirstArrivalTime)
		if departureIndex < 0 {
			routeStopIndex, ok = state.improvedRouteStopIndices.NextSetBit(routeStopIndex + 1)
			continue
		}

		departureTime := self.data.Departures[departureIndex]
		vehicleArrivalTime := departureTime + routeStop.ArrivalOffset
		boardingTime := agentFirstArrivalTime
		if vehicleArrivalTime > boardingTime {
			boardingTime = vehicleArrivalTime
		}
		waitingCost := -marginalUtilityOfWaitingPt * (boardingTime - agentFirstArrivalTime)
		travelCostWhenBoarding := boardingPE.arrivalTravelCost + waitingCost
		transferCostWhenBoarding := boardingPE.arrivalTransferCost

		if travelCostWhenBoarding+transferCostWhenBoarding > state.bestArrivalCost {
			routeStopIndex, ok = state.improvedRouteStopIndices.NextSetBit(routeStopIndex + 1)
			continue
		}

		handledRouteIndex = routeStop.TransitRouteIndex

		firstDepartureTime := boardingTime
		if boardingPE.hasFirstDepartureTime {
			firstDepartureTime = boardingPE.firstDepartureTime
		}

		// looked up once per route scan, not per downstream route-stop.
		marginalUtilityOfTravelTime := parameters.MarginalUtilityOfTravelTime(routeStop.Mode)

		currentBoardingPE := boardingPE
		currentDepartureTime := departureTime
		currentBoardingTime := boardingTime
		currentTravelCost := travelCostWhenBoarding

		firstRouteStopIndex := routeStopIndex
		lastRouteStopIndex := r.IndexFirstRouteStop + r.CountRouteStops - 1

		for toRouteStopIndex := firstRouteStopIndex + 1; toRouteStopIndex <= lastRouteStopIndex; toRouteStopIndex++ {
			toRouteStop := self.data.RouteStops[toRouteStopIndex]

			arrivalTime := currentDepartureTime + toRouteStop.ArrivalOffset
			inVehicleCost := -marginalUtilityOfTravelTime * (arrivalTime - currentBoardingTime)
			arrivalTravelCost := currentTravelCost + inVehicleCost
			arrivalTransferCost := (arrivalTime - firstDepartureTime) * transferPenaltyFactor * float64(currentBoardingPE.transferCount)
			totalArrivalCost := arrivalTravelCost + arrivalTransferCost

			previousArrivalCost := state.leastArrivalCostAtRouteStop[toRouteStopIndex]

			if totalArrivalCost <= previousArrivalCost {
				pe := &pathElement{
					comingFrom:            currentBoardingPE,
					toRouteStop:           toRouteStopIndex,
					hasToRouteStop:        true,
					firstDepartureTime:    firstDepartureTime,
					hasFirstDepartureTime: true,
					arrivalTime:           arrivalTime,
					arrivalTravelCost:     arrivalTravelCost,
					arrivalTransferCost:   arrivalTransferCost,
					distance:              toRouteStop.DistanceAlongRoute - self.data.RouteStops[currentBoardingPE.toRouteStop].DistanceAlongRoute,
					transferCount:         currentBoardingPE.transferCount,
					isTransfer:            false,
				}
				state.arrivalPathPerRouteStop[toRouteStopIndex] = pe
				state.leastArrivalCostAtRouteStop[toRouteStopIndex] = totalArrivalCost

				if totalArrivalCost <= state.leastArrivalCostAtStop[toRouteStop.StopFacilityIndex] {
					state.arrivalPathPerStop[toRouteStop.StopFacilityIndex] = pe
					state.leastArrivalCostAtStop[toRouteStop.StopFacilityIndex] = totalArrivalCost
					state.improvedStops.Mark(toRouteStop.StopFacilityIndex)
					self.checkForBestArrival(toRouteStopIndex, totalArrivalCost)
				}
			} else if alternativeBoardingPE := state.arrivalPathPerRouteStop[toRouteStopIndex]; alternativeBoardingPE != nil {
				altDepartureIndex := self.findNextDepartureIndex(r, toRouteStop.DepartureOffset, alternativeBoardingPE.arrivalTime)
				if altDepartureIndex >= 0 {
					altDepartureTime := self.data.Departures[altDepartureIndex]
					altVehicleArrivalTime := altDepartureTime + toRouteStop.ArrivalOffset
					altBoardingTime := alternativeBoardingPE.arrivalTime
					if altVehicleArrivalTime > altBoardingTime {
						altBoardingTime = altVehicleArrivalTime
					}
					altWaitingCost := -marginalUtilityOfWaitingPt * (altBoardingTime - alternativeBoardingPE.arrivalTime)
					altTravelCost := alternativeBoardingPE.arrivalTravelCost + altWaitingCost

					if altTravelCost+alternativeBoardingPE.arrivalTransferCost < totalArrivalCost {
						currentDepartureTime = altDepartureTime
						currentBoardingTime = altBoardingTime
						currentTravelCost = altTravelCost
						currentBoardingPE = alternativeBoardingPE
						if alternativeBoardingPE.hasFirstDepartureTime {
							firstDepartureTime = alternativeBoardingPE.firstDepartureTime
						} else {
							firstDepartureTime = altBoardingTime
						}
					}
				}
			}

			firstRouteStopIndex = toRouteStopIndex
		}

		routeStopIndex, ok = state.improvedRouteStopIndices.NextSetBit(firstRouteStopIndex + 1)
	}
}
