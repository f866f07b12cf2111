package planner

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnknownStop is returned when a requested stop is absent from the graph
// built for the travel date.
var ErrUnknownStop = errors.New("unknown stop")

// PlanRequest describes a single journey query.
type PlanRequest struct {
	Origin      string
	Destination string
	// Date selects the service day the schedule is resolved against.
	Date time.Time
	// StartTime is the earliest departure, in minutes since midnight.
	StartTime float64
	// Budget bounds the total travel time in minutes; zero means unbounded.
	Budget float64
}

// PlanResult is the primary itinerary plus its fallbacks.
type PlanResult struct {
	Primary Itinerary
	Backups []BackupItinerary
}

// Planner answers journey queries against a loaded schedule. Graphs are
// built once per travel date and cached; once built they are read-only.
type Planner struct {
	logger   *zap.Logger
	schedule *Schedule
	calendar *ServiceCalendar
	model    ReliabilityModel

	mu     sync.Mutex
	graphs map[string]*Graph
}

// NewPlanner creates a planner over the supplied schedule, scoring
// transfers with the default gamma model.
func NewPlanner(logger *zap.Logger, schedule *Schedule) *Planner {
	return &Planner{
		logger:   logger,
		schedule: schedule,
		calendar: NewServiceCalendar(schedule.Services, schedule.Exceptions),
		model:    DefaultTransferModel(),
		graphs:   map[string]*Graph{},
	}
}

// SetModel replaces the reliability model used to score transfers.
func (s *Planner) SetModel(model ReliabilityModel) {
	s.model = model
}

// Plan computes the earliest-arrival itinerary for the request along with
// backup itineraries from each of its transfer points. An unreachable
// destination is a valid result, not an error; unknown stop names are.
func (s *Planner) Plan(req PlanRequest) (*PlanResult, error) {
	requestID := uuid.New().String()
	logger := s.logger.With(zap.String("request_id", requestID))

	graph := s.graphForDate(req.Date)

	if !graph.HasStop(req.Origin) {
		return nil, fmt.Errorf("origin %q: %w", req.Origin, ErrUnknownStop)
	}
	if !graph.HasStop(req.Destination) {
		return nil, fmt.Errorf("destination %q: %w", req.Destination, ErrUnknownStop)
	}

	opts := SearchOptions{Budget: req.Budget}
	primary := Search(graph, s.model, req.Origin, req.Destination, req.StartTime, opts)
	if !primary.Reachable() {
		logger.Info("no itinerary found",
			zap.String("origin", req.Origin),
			zap.String("destination", req.Destination),
			zap.String("start_time", FormatClock(req.StartTime)),
		)
		return &PlanResult{Primary: primary}, nil
	}

	backups := FindBackups(graph, s.model, primary, opts)

	logger.Info("itinerary found",
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.String("arrival", FormatClock(primary.Arrival)),
		zap.Float64("reliability", primary.Reliability),
		zap.Int("num_backups", len(backups)),
	)

	return &PlanResult{
		Primary: primary,
		Backups: backups,
	}, nil
}

func (s *Planner) graphForDate(date time.Time) *Graph {
	key := date.Format("20060102")

	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.graphs[key]; ok {
		return g
	}

	g := BuildGraph(s.schedule, s.calendar, date, nil)
	s.logger.Info("built graph",
		zap.String("date", key),
		zap.Int("num_connections", g.NumConnections()),
	)
	s.graphs[key] = g
	return g
}
