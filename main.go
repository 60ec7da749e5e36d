package main

import (
	"fmt"
	"net/http"
	"os"

	"golang.org/x/exp/slog"

	"github.com/kranich/raptor-core/raptordata"
)

var MANAGER *RoutingManager

func main() {
	fmt.Println("raptor-core routing service")

	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, nil)))

	config := ReadConfig("./config.yaml")
	MANAGER = NewRoutingManager(config)

	app := http.DefaultServeMux
	MapGet(app, "/v0/route", HandleRouteRequest)
	MapGet(app, "/v0/routes", HandleRoutesRequest)

	http.ListenAndServe(fmt.Sprintf(":%d", config.Server.Port), nil)
}

func facilityID(lon, lat float64) raptordata.StopID {
	return raptordata.StopID(fmt.Sprintf("coord:%g,%g", lon, lat))
}

func HandleRouteRequest(req RouteRequest) Result {
	accessStops := resolveAccessEgress(MANAGER, req.FromLon, req.FromLat)
	egressStops := resolveAccessEgress(MANAGER, req.ToLon, req.ToLat)
	if len(accessStops) == 0 || len(egressStops) == 0 {
		return BadRequest("no stop facilities within range of origin or destination")
	}

	engine := MANAGER.borrowEngine()
	defer MANAGER.returnEngine(engine)

	from := facilityID(req.FromLon, req.FromLat)
	to := facilityID(req.ToLon, req.ToLat)
	raptorRoute := engine.CalcLeastCostRoute(req.DepartureTime, from, to, accessStops, egressStops, MANAGER.parameters)

	return OK(NewRouteResponse(raptorRoute))
}

func HandleRoutesRequest(req RoutesRequest) Result {
	accessStops := resolveAccessEgress(MANAGER, req.FromLon, req.FromLat)
	egressStops := resolveAccessEgress(MANAGER, req.ToLon, req.ToLat)
	if len(accessStops) == 0 || len(egressStops) == 0 {
		return BadRequest("no stop facilities within range of origin or destination")
	}

	engine := MANAGER.borrowEngine()
	defer MANAGER.returnEngine(engine)

	from := facilityID(req.FromLon, req.FromLat)
	to := facilityID(req.ToLon, req.ToLat)
	desired := req.DesiredDepartureTime
	if desired == 0 {
		desired = req.EarliestDepartureTime
	}
	routes := engine.CalcRoutes(req.EarliestDepartureTime, desired, req.LatestDepartureTime, from, to, accessStops, egressStops, MANAGER.parameters)

	responses := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		responses = append(responses, NewRouteResponse(r))
	}
	return OK(responses)
}
