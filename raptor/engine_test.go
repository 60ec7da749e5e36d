package raptor

import (
	"math"
	"testing"

	"github.com/kranich/raptor-core/raptordata"
	"github.com/kranich/raptor-core/raptorparams"
	. "github.com/kranich/raptor-core/util"
)

func testParameters() *raptorparams.Config {
	return &raptorparams.Config{
		MarginalUtilityOfWaitingPtUtlS: -0.1,
		TransferPenaltyFactor:          0,
		DefaultTravelTimeUtlS:          -0.1,
	}
}

// singleLineNetwork builds a two-stop, one-route network with a fixed
// headway starting at t=0.
func singleLineNetwork(headway float64, numDepartures int, rideTime float64) *raptordata.Data {
	departures := NewArray[float64](numDepartures)
	for i := 0; i < numDepartures; i++ {
		departures[i] = float64(i) * headway
	}

	routeStops := Array[raptordata.RouteStop]{
		{TransitRouteIndex: 0, StopFacilityIndex: 0, ArrivalOffset: 0, DepartureOffset: 0, DistanceAlongRoute: 0, Mode: "bus", Line: "L1", RouteName: "1", Stop: "A"},
		{TransitRouteIndex: 0, StopFacilityIndex: 1, ArrivalOffset: rideTime, DepartureOffset: rideTime, DistanceAlongRoute: 5000, Mode: "bus", Line: "L1", RouteName: "1", Stop: "B"},
	}
	routes := Array[raptordata.Route]{
		{IndexFirstRouteStop: 0, CountRouteStops: 2, IndexFirstDeparture: 0, CountDepartures: int32(numDepartures)},
	}
	routeStopsPerStopFacility := Array[Array[int32]]{
		{0},
		{1},
	}
	stopFacilityIndices := Dict[raptordata.StopID, int32]{"A": 0, "B": 1}

	return raptordata.NewData(routes, routeStops, departures, nil, routeStopsPerStopFacility, stopFacilityIndices, nil, raptordata.Config{})
}

func TestCalcLeastCostRouteSingleLine(t *testing.T) {
	data := singleLineNetwork(900, 4, 600)
	engine := NewEngine(data)
	params := testParameters()

	access := []InitialStop{{Stop: "A"}}
	egress := []InitialStop{{Stop: "B"}}

	r := engine.CalcLeastCostRoute(0, "A", "B", access, egress, params)

	if math.IsInf(r.ArrivalCost, 1) {
		t.Fatalf("ArrivalCost = +Inf; want a finite cost")
	}
	if got, want := r.ArrivalCost, 60.0; got != want {
		t.Errorf("ArrivalCost = %v; want %v", got, want)
	}
	if r.GetNumberOfTransfers() != 0 {
		t.Errorf("GetNumberOfTransfers() = %v; want 0", r.GetNumberOfTransfers())
	}
	if r.Legs.Length() != 3 {
		t.Fatalf("len(Legs) = %v; want 3 (access walk, pt ride, egress walk)", r.Legs.Length())
	}
	if !r.Legs[1].IsPt() || r.Legs[1].Line != "L1" {
		t.Errorf("Legs[1] = %+v; want the L1 pt leg", r.Legs[1])
	}
	if r.Legs[1].DepartureTime != 0 || r.Legs[1].TravelTime != 600 {
		t.Errorf("Legs[1] departure/travel = %v/%v; want 0/600", r.Legs[1].DepartureTime, r.Legs[1].TravelTime)
	}
}

func TestCalcLeastCostRouteNoConnection(t *testing.T) {
	data := singleLineNetwork(900, 4, 600)
	engine := NewEngine(data)
	params := testParameters()

	access := []InitialStop{{Stop: "A"}}
	egress := []InitialStop{{Stop: "unreachable"}}

	r := engine.CalcLeastCostRoute(0, "A", "unreachable", access, egress, params)

	if !math.IsInf(r.ArrivalCost, 1) {
		t.Errorf("ArrivalCost = %v; want +Inf", r.ArrivalCost)
	}
	if r.Legs.Length() != 0 {
		t.Errorf("len(Legs) = %v; want 0", r.Legs.Length())
	}
}

func TestCalcLeastCostRouteSameAccessEgressStop(t *testing.T) {
	data := singleLineNetwork(900, 4, 600)
	engine := NewEngine(data)
	params := testParameters()

	access := []InitialStop{{Stop: "A", AccessCost: 5}}
	egress := []InitialStop{{Stop: "A", AccessCost: 3}}

	r := engine.CalcLeastCostRoute(0, "A", "A", access, egress, params)

	if got, want := r.ArrivalCost, 8.0; got != want {
		t.Errorf("ArrivalCost = %v; want %v (access + egress cost, no ride needed)", got, want)
	}
}

func TestCalcRoutesTimeWindowFindsUndominatedDepartures(t *testing.T) {
	data := singleLineNetwork(900, 4, 600)
	engine := NewEngine(data)
	params := testParameters()

	access := []InitialStop{{Stop: "A"}}
	egress := []InitialStop{{Stop: "B"}}

	routes := engine.CalcRoutes(0, 0, 2700, "A", "B", access, egress, params)

	if len(routes) == 0 {
		t.Fatalf("CalcRoutes returned no routes")
	}
	seen := NewDict[float64, bool](len(routes))
	for _, r := range routes {
		if seen.ContainsKey(r.GetDepartureTime()) {
			t.Errorf("duplicate departure time %v in result", r.GetDepartureTime())
		}
		seen.Set(r.GetDepartureTime(), true)
		if r.GetTravelTime() != 600 {
			t.Errorf("GetTravelTime() = %v; want 600", r.GetTravelTime())
		}
	}
}

func TestCalcLeastCostRouteChoosesFasterService(t *testing.T) {
	// two parallel routes from A to B: a slow one boarding immediately and
	// a fast one departing slightly later but arriving sooner overall.
	departuresSlow := Array[float64]{0}
	departuresFast := Array[float64]{60}

	routeStops := Array[raptordata.RouteStop]{
		{TransitRouteIndex: 0, StopFacilityIndex: 0, ArrivalOffset: 0, DepartureOffset: 0, Mode: "bus", Line: "slow", Stop: "A"},
		{TransitRouteIndex: 0, StopFacilityIndex: 1, ArrivalOffset: 1200, DepartureOffset: 1200, Mode: "bus", Line: "slow", Stop: "B"},
		{TransitRouteIndex: 1, StopFacilityIndex: 0, ArrivalOffset: 0, DepartureOffset: 0, Mode: "bus", Line: "fast", Stop: "A"},
		{TransitRouteIndex: 1, StopFacilityIndex: 1, ArrivalOffset: 300, DepartureOffset: 300, Mode: "bus", Line: "fast", Stop: "B"},
	}
	routes := Array[raptordata.Route]{
		{IndexFirstRouteStop: 0, CountRouteStops: 2, IndexFirstDeparture: 0, CountDepartures: 1},
		{IndexFirstRouteStop: 2, CountRouteStops: 2, IndexFirstDeparture: 1, CountDepartures: 1},
	}
	allDepartures := Array[float64]{departuresSlow[0], departuresFast[0]}
	routeStopsPerStopFacility := Array[Array[int32]]{
		{0, 2},
		{1, 3},
	}
	stopFacilityIndices := Dict[raptordata.StopID, int32]{"A": 0, "B": 1}
	data := raptordata.NewData(routes, routeStops, allDepartures, nil, routeStopsPerStopFacility, stopFacilityIndices, nil, raptordata.Config{})

	engine := NewEngine(data)
	params := testParameters()

	access := []InitialStop{{Stop: "A"}}
	egress := []InitialStop{{Stop: "B"}}
	r := engine.CalcLeastCostRoute(0, "A", "B", access, egress, params)

	if r.Legs.Length() < 2 || r.Legs[1].Line != "fast" {
		t.Fatalf("expected the fast line to win despite boarding later, got legs %+v", r.Legs)
	}
}

func TestHandleTransfersConnectsTwoRoutes(t *testing.T) {
	// A -[route0]-> B, then a footpath B -> C, then C -[route1]-> D.
	routeStops := Array[raptordata.RouteStop]{
		{TransitRouteIndex: 0, StopFacilityIndex: 0, ArrivalOffset: 0, DepartureOffset: 0, Mode: "bus", Line: "L1", Stop: "A"},
		{TransitRouteIndex: 0, StopFacilityIndex: 1, ArrivalOffset: 300, DepartureOffset: 300, IndexFirstTransfer: 0, CountTransfers: 1, Mode: "bus", Line: "L1", Stop: "B"},
		{TransitRouteIndex: 1, StopFacilityIndex: 2, ArrivalOffset: 0, DepartureOffset: 0, Mode: "bus", Line: "L2", Stop: "C"},
		{TransitRouteIndex: 1, StopFacilityIndex: 3, ArrivalOffset: 300, DepartureOffset: 300, Mode: "bus", Line: "L2", Stop: "D"},
	}
	routes := Array[raptordata.Route]{
		{IndexFirstRouteStop: 0, CountRouteStops: 2, IndexFirstDeparture: 0, CountDepartures: 1},
		{IndexFirstRouteStop: 2, CountRouteStops: 2, IndexFirstDeparture: 1, CountDepartures: 3},
	}
	departures := Array[float64]{0, 400, 700, 1000}
	transfers := Array[raptordata.Transfer]{
		{ToRouteStop: 2, TransferTime: 60, TransferCost: 0, TransferDistance: 100},
	}
	routeStopsPerStopFacility := Array[Array[int32]]{
		{0}, {1}, {2}, {3},
	}
	stopFacilityIndices := Dict[raptordata.StopID, int32]{"A": 0, "B": 1, "C": 2, "D": 3}
	data := raptordata.NewData(routes, routeStops, departures, transfers, routeStopsPerStopFacility, stopFacilityIndices, nil, raptordata.Config{})

	engine := NewEngine(data)
	params := testParameters()

	access := []InitialStop{{Stop: "A"}}
	egress := []InitialStop{{Stop: "D"}}
	r := engine.CalcLeastCostRoute(0, "A", "D", access, egress, params)

	if math.IsInf(r.ArrivalCost, 1) {
		t.Fatalf("ArrivalCost = +Inf; want a route via the transfer to be found")
	}
	if r.GetNumberOfTransfers() != 1 {
		t.Errorf("GetNumberOfTransfers() = %v; want 1", r.GetNumberOfTransfers())
	}

	var lines []string
	for _, leg := range r.Legs {
		if leg.IsPt() {
			lines = append(lines, leg.Line)
		}
	}
	if len(lines) != 2 || lines[0] != "L1" || lines[1] != "L2" {
		t.Errorf("pt legs = %v; want [L1 L2]", lines)
	}
}
