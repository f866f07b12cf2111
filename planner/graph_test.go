package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule() *Schedule {
	daily := &Service{
		ID:        "daily",
		Weekdays:  [7]bool{true, true, true, true, true, true, true},
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.December, 31),
	}
	sundays := &Service{
		ID:        "sundays",
		Weekdays:  [7]bool{time.Sunday: true},
		StartDate: date(2024, time.January, 1),
		EndDate:   date(2024, time.December, 31),
	}

	return &Schedule{
		Services: []*Service{daily, sundays},
		Trips: []*Trip{
			{
				ID:        "t1",
				ServiceID: "daily",
				RouteID:   "r1",
				// Events deliberately out of sequence order.
				Events: []StopEvent{
					{StopName: "C", Sequence: 3, Arrival: 40, Departure: 41},
					{StopName: "A", Sequence: 1, Arrival: 8, Departure: 10},
					{StopName: "B", Sequence: 2, Arrival: 20, Departure: 25},
				},
			},
			{
				ID:        "t2",
				ServiceID: "sundays",
				RouteID:   "r2",
				Events: []StopEvent{
					{StopName: "A", Sequence: 1, Arrival: 5, Departure: 6},
					{StopName: "B", Sequence: 2, Arrival: 15, Departure: 16},
				},
			},
			{
				ID:        "t3",
				ServiceID: "daily",
				RouteID:   "r3",
				// Zero travel time; must not produce a connection.
				Events: []StopEvent{
					{StopName: "B", Sequence: 1, Arrival: 30, Departure: 30},
					{StopName: "C", Sequence: 2, Arrival: 30, Departure: 31},
				},
			},
		},
	}
}

func TestBuildGraph(t *testing.T) {
	schedule := testSchedule()
	cal := NewServiceCalendar(schedule.Services, schedule.Exceptions)

	// A Monday: the sundays trip contributes nothing.
	g := BuildGraph(schedule, cal, date(2024, time.December, 2), nil)

	require.Len(t, g.Connections("A"), 1)
	assert.Equal(t, Connection{From: "A", To: "B", Departure: 10, Arrival: 20, RouteID: "r1"}, g.Connections("A")[0])

	require.Len(t, g.Connections("B"), 1)
	assert.Equal(t, Connection{From: "B", To: "C", Departure: 25, Arrival: 40, RouteID: "r1"}, g.Connections("B")[0])

	assert.Equal(t, 2, g.NumConnections())

	// C only appears as a destination but still resolves as a known stop.
	assert.True(t, g.HasStop("C"))
	assert.False(t, g.HasStop("D"))
}

func TestBuildGraphPositiveTravelTime(t *testing.T) {
	schedule := testSchedule()
	cal := NewServiceCalendar(schedule.Services, schedule.Exceptions)

	g := BuildGraph(schedule, cal, date(2024, time.December, 2), nil)
	for _, stop := range []string{"A", "B", "C"} {
		for _, conn := range g.Connections(stop) {
			assert.Greater(t, conn.Arrival, conn.Departure)
		}
	}
}

func TestBuildGraphOnSunday(t *testing.T) {
	schedule := testSchedule()
	cal := NewServiceCalendar(schedule.Services, schedule.Exceptions)

	g := BuildGraph(schedule, cal, date(2024, time.December, 1), nil)

	// Both the daily and the sundays trips now contribute.
	require.Len(t, g.Connections("A"), 2)
	assert.Equal(t, 3, g.NumConnections())
}

func TestBuildGraphWindow(t *testing.T) {
	schedule := testSchedule()
	cal := NewServiceCalendar(schedule.Services, schedule.Exceptions)

	g := BuildGraph(schedule, cal, date(2024, time.December, 2), &Window{Start: 0, End: 25})

	// The B->C connection arrives at 40, outside the window; A->B survives.
	require.Len(t, g.Connections("A"), 1)
	assert.Empty(t, g.Connections("B"))
}
