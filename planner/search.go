package planner

import (
	"container/heap"
)

// SearchOptions tune a single search invocation.
type SearchOptions struct {
	// Budget bounds the total travel time in minutes; zero means unbounded.
	Budget float64
	// ExcludedRoutes are route ids the search may not ride.
	ExcludedRoutes map[string]struct{}
	// MinTransferTime is the minimum line-change gap in minutes; zero means
	// the MinTransferMinutes default.
	MinTransferTime float64
}

// label is one candidate partial itinerary. Labels form an arena; parent
// indices chain back to the start label for path reconstruction.
type label struct {
	stop        string
	time        float64
	reliability float64
	lastRoute   string
	parent      int
	conn        Connection
}

type visitKey struct {
	stop string
	time float64
}

// labelQueue orders arena indices by time, breaking ties on higher
// reliability and then on insertion order.
type labelQueue struct {
	arena *[]label
	items []int
}

func (q *labelQueue) Len() int { return len(q.items) }

func (q *labelQueue) Less(i, j int) bool {
	a, b := (*q.arena)[q.items[i]], (*q.arena)[q.items[j]]
	if a.time != b.time {
		return a.time < b.time
	}
	if a.reliability != b.reliability {
		return a.reliability > b.reliability
	}
	return q.items[i] < q.items[j]
}

func (q *labelQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *labelQueue) Push(x interface{}) { q.items = append(q.items, x.(int)) }

func (q *labelQueue) Pop() interface{} {
	item := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return item
}

// Search runs the reliability-annotated earliest-arrival search from origin
// to destination, departing no earlier than startTime. The returned
// itinerary's reliability is the product of the per-transfer success
// probabilities along the way. If the destination cannot be reached the
// itinerary has an Unreachable arrival, no legs and zero reliability.
func Search(g *Graph, model ReliabilityModel, origin, destination string, startTime float64, opts SearchOptions) Itinerary {
	// A journey to the stop the traveler is already standing at has no
	// legs to ride; report it as no path rather than a zero-leg success.
	if origin == destination {
		return Itinerary{Arrival: Unreachable, Reliability: 0}
	}

	minTransfer := opts.MinTransferTime
	if minTransfer == 0 {
		minTransfer = MinTransferMinutes
	}

	arena := []label{{
		stop:        origin,
		time:        startTime,
		reliability: 1.0,
		parent:      -1,
	}}
	queue := &labelQueue{arena: &arena, items: []int{0}}
	visited := map[visitKey]struct{}{}

	for queue.Len() > 0 {
		idx := heap.Pop(queue).(int)
		cur := arena[idx]

		key := visitKey{stop: cur.stop, time: cur.time}
		if _, ok := visited[key]; ok {
			continue
		}
		visited[key] = struct{}{}

		if opts.Budget > 0 && cur.time-startTime > opts.Budget {
			continue
		}

		if cur.stop == destination {
			return Itinerary{
				Legs:        reconstruct(arena, idx),
				Arrival:     cur.time,
				Reliability: cur.reliability,
			}
		}

		for _, conn := range g.Connections(cur.stop) {
			if conn.Departure < cur.time {
				continue
			}
			if _, excluded := opts.ExcludedRoutes[conn.RouteID]; excluded {
				continue
			}

			isTransfer := cur.lastRoute != "" && cur.lastRoute != conn.RouteID
			segment := 1.0
			if isTransfer {
				gap := conn.Departure - cur.time
				if gap < minTransfer {
					continue
				}
				segment = model.Probability(gap)
			}

			arena = append(arena, label{
				stop:        conn.To,
				time:        conn.Arrival,
				reliability: cur.reliability * segment,
				lastRoute:   conn.RouteID,
				parent:      idx,
				conn:        conn,
			})
			heap.Push(queue, len(arena)-1)
		}
	}

	return Itinerary{Arrival: Unreachable, Reliability: 0}
}

// reconstruct walks the parent chain back to the start label and returns the
// ridden connections as legs in travel order.
func reconstruct(arena []label, idx int) []Leg {
	var legs []Leg
	for cur := arena[idx]; cur.parent >= 0; cur = arena[cur.parent] {
		legs = append(legs, Leg{
			From:      cur.conn.From,
			Departure: cur.conn.Departure,
			To:        cur.conn.To,
			Arrival:   cur.conn.Arrival,
			RouteID:   cur.conn.RouteID,
		})
	}

	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}
	return legs
}
