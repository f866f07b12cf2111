package planner

import (
	"sort"
	"time"
)

// StopEvent is a scheduled visit of a trip at a stop.
type StopEvent struct {
	StopName  string
	Sequence  int
	Arrival   float64
	Departure float64
}

// Trip is one scheduled run of a vehicle along a route.
type Trip struct {
	ID        string
	ServiceID string
	RouteID   string
	Events    []StopEvent
}

// Schedule holds the normalized records the planner operates over.
type Schedule struct {
	Trips      []*Trip
	Services   []*Service
	Exceptions []*CalendarException
}

// Connection is one directed, time-stamped hop between two consecutive
// stops of a trip on a given service date.
type Connection struct {
	From      string
	To        string
	Departure float64
	Arrival   float64
	RouteID   string
}

// Window restricts a graph to connections departing and arriving within
// [Start, End] minutes since midnight.
type Window struct {
	Start float64
	End   float64
}

// Graph is the time-expanded connection graph for a single service date.
// It is immutable once built and safe for concurrent reads.
type Graph struct {
	adjacency map[string][]Connection
	stops     map[string]struct{}
}

// BuildGraph assembles the connection graph for the given date. Trips whose
// service does not run that day contribute nothing. If window is non-nil,
// connections departing before its start or arriving after its end are
// discarded after the availability check, so a trip's remaining connections
// survive the filter.
func BuildGraph(schedule *Schedule, calendar *ServiceCalendar, date time.Time, window *Window) *Graph {
	g := &Graph{
		adjacency: map[string][]Connection{},
		stops:     map[string]struct{}{},
	}

	for _, trip := range schedule.Trips {
		if !calendar.Available(trip.ServiceID, date) {
			continue
		}

		events := make([]StopEvent, len(trip.Events))
		copy(events, trip.Events)
		sort.Slice(events, func(i, j int) bool {
			return events[i].Sequence < events[j].Sequence
		})

		for i := 0; i < len(events)-1; i++ {
			conn := Connection{
				From:      events[i].StopName,
				To:        events[i+1].StopName,
				Departure: events[i].Departure,
				Arrival:   events[i+1].Arrival,
				RouteID:   trip.RouteID,
			}

			if conn.Arrival-conn.Departure <= 0 {
				continue
			}
			if window != nil && (conn.Departure < window.Start || conn.Arrival > window.End) {
				continue
			}

			g.adjacency[conn.From] = append(g.adjacency[conn.From], conn)
			g.stops[conn.From] = struct{}{}
			g.stops[conn.To] = struct{}{}
		}
	}

	return g
}

// HasStop reports whether the named stop appears in the graph as either the
// origin or the destination of any connection.
func (g *Graph) HasStop(name string) bool {
	_, ok := g.stops[name]
	return ok
}

// Connections returns the outgoing connections of the named stop.
func (g *Graph) Connections(name string) []Connection {
	return g.adjacency[name]
}

// NumConnections returns the total number of connections in the graph.
func (g *Graph) NumConnections() int {
	n := 0
	for _, conns := range g.adjacency {
		n += len(conns)
	}
	return n
}
