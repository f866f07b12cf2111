package planner

import (
	"github.com/rmrobinson/journey/gtfs"
	"go.uber.org/zap"
)

// NewScheduleFromDataset normalizes a parsed GTFS dataset into the records
// the planner operates over. Records with dangling cross-references are
// logged and skipped rather than failing the load, since real exports are
// rarely perfectly consistent.
func NewScheduleFromDataset(logger *zap.Logger, ds *gtfs.Dataset) *Schedule {
	stopNames := map[string]string{}
	seenNames := map[string]string{}
	for _, stop := range ds.Stops {
		stopNames[stop.ID] = stop.Name

		// The graph is keyed by display name; two ids sharing a name will
		// be merged into one node.
		if otherID, ok := seenNames[stop.Name]; ok && otherID != stop.ID {
			logger.Warn("stop name collision",
				zap.String("stop_name", stop.Name),
				zap.String("stop_id", stop.ID),
				zap.String("other_stop_id", otherID),
			)
		}
		seenNames[stop.Name] = stop.ID
	}

	trips := map[string]*Trip{}
	schedule := &Schedule{}
	for _, trip := range ds.Trips {
		t := &Trip{
			ID:        trip.ID,
			ServiceID: trip.ServiceID,
			RouteID:   trip.RouteID,
		}
		trips[trip.ID] = t
		schedule.Trips = append(schedule.Trips, t)
	}

	for _, st := range ds.StopTimes {
		trip, ok := trips[st.TripID]
		if !ok {
			logger.Info("stop time specified missing trip ID",
				zap.String("trip_id", st.TripID),
				zap.String("stop_id", st.StopID),
			)
			continue
		}

		name, ok := stopNames[st.StopID]
		if !ok {
			logger.Info("stop time specified missing stop ID",
				zap.String("trip_id", st.TripID),
				zap.String("stop_id", st.StopID),
			)
			continue
		}

		trip.Events = append(trip.Events, StopEvent{
			StopName:  name,
			Sequence:  int(st.Sequence),
			Arrival:   st.ArrivalTime.Minutes(),
			Departure: st.DepartureTime.Minutes(),
		})
	}

	for _, cal := range ds.Calendar {
		schedule.Services = append(schedule.Services, &Service{
			ID: cal.ServiceID,
			Weekdays: [7]bool{
				bool(cal.Sunday),
				bool(cal.Monday),
				bool(cal.Tuesday),
				bool(cal.Wednesday),
				bool(cal.Thursday),
				bool(cal.Friday),
				bool(cal.Saturday),
			},
			StartDate: cal.StartDate.Time,
			EndDate:   cal.EndDate.Time,
		})
	}

	for _, cd := range ds.CalendarDates {
		var excType ExceptionType
		switch int(cd.ExceptionType) {
		case gtfs.ExceptionServiceAdded:
			excType = ExceptionAdded
		case gtfs.ExceptionServiceRemoved:
			excType = ExceptionRemoved
		default:
			logger.Info("calendar date specified unknown exception type",
				zap.String("service_id", cd.ServiceID),
				zap.Int("exception_type", int(cd.ExceptionType)),
			)
			continue
		}

		schedule.Exceptions = append(schedule.Exceptions, &CalendarException{
			ServiceID: cd.ServiceID,
			Date:      cd.Date.Time,
			Type:      excType,
		})
	}

	return schedule
}
