// Package route builds the ordered leg sequence a query returns:
// RaptorRoute.AddPt/AddNonPt/AddPlanElements plus the
// GetNumberOfTransfers/GetDepartureTime/GetTravelTime accessors the window
// driver's dominance filter sorts and compares on.
package route

import (
	"github.com/kranich/raptor-core/raptordata"
	. "github.com/kranich/raptor-core/util"
)

const (
	ModeAccessWalk  = "access_walk"
	ModeTransitWalk = "transit_walk"
	ModeEgressWalk  = "egress_walk"
)

// PlanElement is an opaque leg payload supplied by an external
// access/egress leg provider (e.g. an outside walk or bike router). The
// core never inspects it, only passes it through.
type PlanElement any

type legKind int

const (
	legPT legKind = iota
	legNonPT
	legPlanElements
)

// Leg is one segment of a RaptorRoute: either a public-transit ride, a
// walking/transfer leg, or an opaque externally-built plan-elements leg.
type Leg struct {
	kind legKind

	FromStop    raptordata.StopID
	HasFromStop bool
	ToStop      raptordata.StopID
	HasToStop   bool

	Line      string
	RouteName string
	Mode      string

	DepartureTime float64
	TravelTime    float64
	Distance      float64

	PlanElements []PlanElement
}

func (self *Leg) IsPt() bool {
	return self.kind == legPT
}
func (self *Leg) IsNonPt() bool {
	return self.kind == legNonPT
}
func (self *Leg) IsPlanElements() bool {
	return self.kind == legPlanElements
}

// RaptorRoute is one complete itinerary: an ordered leg sequence plus the
// generalized arrival cost the engine computed for it.
type RaptorRoute struct {
	FromFacility raptordata.StopID
	ToFacility   raptordata.StopID
	ArrivalCost  float64

	Legs List[Leg]

	numberOfTransfers int
}

func NewRaptorRoute(fromFacility, toFacility raptordata.StopID, arrivalCost float64) *RaptorRoute {
	return &RaptorRoute{
		FromFacility: fromFacility,
		ToFacility:   toFacility,
		ArrivalCost:  arrivalCost,
		Legs:         NewList[Leg](4),
	}
}

func (self *RaptorRoute) AddPt(fromStop, toStop Optional[raptordata.StopID], line, routeName, mode string, depTime, travelTime, distance float64) {
	leg := Leg{
		kind: legPT, Line: line, RouteName: routeName, Mode: mode,
		DepartureTime: depTime, TravelTime: travelTime, Distance: distance,
	}
	if fromStop.HasValue() {
		leg.FromStop, leg.HasFromStop = fromStop.Value, true
	}
	if toStop.HasValue() {
		leg.ToStop, leg.HasToStop = toStop.Value, true
	}
	self.Legs.Add(leg)
}

func (self *RaptorRoute) AddNonPt(fromStop, toStop Optional[raptordata.StopID], depTime, travelTime, distance float64, mode string) {
	leg := Leg{
		kind: legNonPT, Mode: mode,
		DepartureTime: depTime, TravelTime: travelTime, Distance: distance,
	}
	if fromStop.HasValue() {
		leg.FromStop, leg.HasFromStop = fromStop.Value, true
	}
	if toStop.HasValue() {
		leg.ToStop, leg.HasToStop = toStop.Value, true
	}
	self.Legs.Add(leg)
}

func (self *RaptorRoute) AddPlanElements(depTime, travelTime float64, elements []PlanElement) {
	self.Legs.Add(Leg{
		kind: legPlanElements, DepartureTime: depTime, TravelTime: travelTime,
		PlanElements: elements,
	})
}

// SetNumberOfTransfers is called once by the engine's result reconstruction
// with the destination path element's transfer count; it isn't re-derived
// from the leg list because the "merge into egress walk" policy can make a
// transfer leg disappear from Legs without it ceasing to be a transfer.
func (self *RaptorRoute) SetNumberOfTransfers(n int) {
	self.numberOfTransfers = n
}
func (self *RaptorRoute) GetNumberOfTransfers() int {
	return self.numberOfTransfers
}

// GetDepartureTime returns the departure time of the first leg, or 0 if
// the route has no legs (the "no route found" case).
func (self *RaptorRoute) GetDepartureTime() float64 {
	if self.Legs.Length() == 0 {
		return 0
	}
	return self.Legs[0].DepartureTime
}

// GetTravelTime returns the elapsed time from the first leg's departure to
// the last leg's arrival.
func (self *RaptorRoute) GetTravelTime() float64 {
	n := self.Legs.Length()
	if n == 0 {
		return 0
	}
	first := self.Legs[0]
	last := self.Legs[n-1]
	return (last.DepartureTime + last.TravelTime) - first.DepartureTime
}
