package main

// RouteRequest is the GET query for a single-departure itinerary:
// /v0/route?from_lon=...&from_lat=...&to_lon=...&to_lat=...&departure_time=...
type RouteRequest struct {
	FromLon       float64 `json:"from_lon"`
	FromLat       float64 `json:"from_lat"`
	ToLon         float64 `json:"to_lon"`
	ToLat         float64 `json:"to_lat"`
	DepartureTime float64 `json:"departure_time"`
}

// RoutesRequest is the GET query for a time-window sweep:
// /v0/routes?...&earliest_departure_time=...&latest_departure_time=...
type RoutesRequest struct {
	FromLon               float64 `json:"from_lon"`
	FromLat               float64 `json:"from_lat"`
	ToLon                 float64 `json:"to_lon"`
	ToLat                 float64 `json:"to_lat"`
	EarliestDepartureTime float64 `json:"earliest_departure_time"`
	DesiredDepartureTime  float64 `json:"desired_departure_time"`
	LatestDepartureTime   float64 `json:"latest_departure_time"`
}
