package raptor

import (
	"math"

	"github.com/kranich/raptor-core/raptordata"
)

// searchState is the engine's mutable scratch, sized once from the graph
// view's counts and reset before every query. It is exclusively owned by
// one Engine; sharing an Engine across concurrent queries is unsafe
// because of exactly this state.
type searchState struct {
	arrivalPathPerRouteStop []*pathElement
	arrivalPathPerStop      []*pathElement
	tmpArrivalPathPerStop   []*pathElement

	leastArrivalCostAtRouteStop []float64
	leastArrivalCostAtStop      []float64
	egressCostsPerRouteStop     []float64

	destinationRouteStopIndices []bool

	improvedRouteStopIndices indexSet
	improvedStops            indexSet
	tmpImprovedStops         indexSet

	bestArrivalCost float64
}

func newSearchState(data *raptordata.Data) *searchState {
	countRouteStops := data.CountRouteStops()
	countStops := data.CountStops()
	return &searchState{
		arrivalPathPerRouteStop:     make([]*pathElement, countRouteStops),
		arrivalPathPerStop:          make([]*pathElement, countStops),
		tmpArrivalPathPerStop:       make([]*pathElement, countStops),
		leastArrivalCostAtRouteStop: make([]float64, countRouteStops),
		leastArrivalCostAtStop:      make([]float64, countStops),
		egressCostsPerRouteStop:     make([]float64, countRouteStops),
		destinationRouteStopIndices: make([]bool, countRouteStops),
		improvedRouteStopIndices:    newIndexSet(countRouteStops),
		improvedStops:               newIndexSet(countStops),
		tmpImprovedStops:            newIndexSet(countStops),
		bestArrivalCost:             math.Inf(1),
	}
}

// reset clears every scratch array and cost table back to its initial
// per-query state.
func (self *searchState) reset() {
	for i := range self.arrivalPathPerRouteStop {
		self.arrivalPathPerRouteStop[i] = nil
		self.leastArrivalCostAtRouteStop[i] = math.Inf(1)
		self.egressCostsPerRouteStop[i] = math.Inf(1)
		self.destinationRouteStopIndices[i] = false
	}
	for i := range self.arrivalPathPerStop {
		self.arrivalPathPerStop[i] = nil
		self.tmpArrivalPathPerStop[i] = nil
		self.leastArrivalCostAtStop[i] = math.Inf(1)
	}
	self.improvedRouteStopIndices.Clear()
	self.improvedStops.Clear()
	self.tmpImprovedStops.Clear()
	self.bestArrivalCost = math.Inf(1)
}
