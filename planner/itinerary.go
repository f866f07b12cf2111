package planner

// Leg is one ridden segment of an itinerary.
type Leg struct {
	From      string
	Departure float64
	To        string
	Arrival   float64
	RouteID   string
}

// Itinerary is a sequence of legs from an origin to a destination, annotated
// with the probability that every transfer along the way succeeds.
type Itinerary struct {
	Legs        []Leg
	Arrival     float64
	Reliability float64
}

// Reachable reports whether the itinerary actually reaches its destination.
func (it Itinerary) Reachable() bool {
	return it.Arrival != Unreachable && len(it.Legs) > 0
}

// Destination returns the final stop of the itinerary, or "" if it is empty.
func (it Itinerary) Destination() string {
	if len(it.Legs) == 0 {
		return ""
	}
	return it.Legs[len(it.Legs)-1].To
}

// Routes returns the set of route ids the itinerary rides.
func (it Itinerary) Routes() map[string]struct{} {
	routes := map[string]struct{}{}
	for _, leg := range it.Legs {
		routes[leg.RouteID] = struct{}{}
	}
	return routes
}

// TransferPoint is an internal stop of an itinerary where the route changes.
type TransferPoint struct {
	Stop string
	// Arrival is when the itinerary reaches the stop, i.e. the earliest time
	// a traveler standing there could start over.
	Arrival float64
}

// TransferPoints returns the itinerary's line changes in travel order.
func (it Itinerary) TransferPoints() []TransferPoint {
	var points []TransferPoint
	for i := 1; i < len(it.Legs); i++ {
		if it.Legs[i].RouteID == it.Legs[i-1].RouteID {
			continue
		}
		points = append(points, TransferPoint{
			Stop:    it.Legs[i].From,
			Arrival: it.Legs[i-1].Arrival,
		})
	}
	return points
}

func sameLegs(a, b []Leg) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// BackupItinerary is an alternate itinerary anchored at a transfer point of
// the primary, using at least one route the primary (and earlier backups)
// did not.
type BackupItinerary struct {
	TransferStop string
	Itinerary
}
