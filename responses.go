package main

import (
	"github.com/kranich/raptor-core/raptordata"
	"github.com/kranich/raptor-core/route"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

// LegResponse mirrors route.Leg in a JSON-friendly shape; RaptorRoute's
// unexported transfer count needs its own accessor, so a response type is
// simplest rather than marshaling route.RaptorRoute directly.
type LegResponse struct {
	FromStop      raptordata.StopID `json:"from_stop,omitempty"`
	ToStop        raptordata.StopID `json:"to_stop,omitempty"`
	Line          string            `json:"line,omitempty"`
	RouteName     string            `json:"route_name,omitempty"`
	Mode          string            `json:"mode"`
	DepartureTime float64           `json:"departure_time"`
	TravelTime    float64           `json:"travel_time"`
	Distance      float64           `json:"distance"`
}

type RouteResponse struct {
	FromFacility      raptordata.StopID `json:"from_facility"`
	ToFacility        raptordata.StopID `json:"to_facility"`
	ArrivalCost       float64           `json:"arrival_cost"`
	NumberOfTransfers int               `json:"number_of_transfers"`
	Legs              []LegResponse     `json:"legs"`
}

func NewRouteResponse(r *route.RaptorRoute) RouteResponse {
	legs := make([]LegResponse, 0, r.Legs.Length())
	for _, leg := range r.Legs {
		lr := LegResponse{
			Mode:          leg.Mode,
			DepartureTime: leg.DepartureTime,
			TravelTime:    leg.TravelTime,
			Distance:      leg.Distance,
		}
		if leg.HasFromStop {
			lr.FromStop = leg.FromStop
		}
		if leg.HasToStop {
			lr.ToStop = leg.ToStop
		}
		if leg.IsPt() {
			lr.Line = leg.Line
			lr.RouteName = leg.RouteName
		}
		legs = append(legs, lr)
	}
	return RouteResponse{
		FromFacility:      r.FromFacility,
		ToFacility:        r.ToFacility,
		ArrivalCost:       r.ArrivalCost,
		NumberOfTransfers: r.GetNumberOfTransfers(),
		Legs:              legs,
	}
}
