package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestPlannerPlan(t *testing.T) {
	svc := NewPlanner(zaptest.NewLogger(t), testSchedule())

	result, err := svc.Plan(PlanRequest{
		Origin:      "A",
		Destination: "C",
		Date:        date(2024, time.December, 2),
		StartTime:   0,
	})

	require.NoError(t, err)
	require.True(t, result.Primary.Reachable())
	assert.Equal(t, 40.0, result.Primary.Arrival)
	// A single-line ride carries no transfer risk.
	assert.Equal(t, 1.0, result.Primary.Reliability)
	assert.Empty(t, result.Backups)
}

func TestPlannerPlanUnknownStop(t *testing.T) {
	svc := NewPlanner(zaptest.NewLogger(t), testSchedule())

	_, err := svc.Plan(PlanRequest{
		Origin:      "Nowhere",
		Destination: "C",
		Date:        date(2024, time.December, 2),
	})
	assert.ErrorIs(t, err, ErrUnknownStop)

	_, err = svc.Plan(PlanRequest{
		Origin:      "A",
		Destination: "Nowhere",
		Date:        date(2024, time.December, 2),
	})
	assert.ErrorIs(t, err, ErrUnknownStop)
}

func TestPlannerPlanUnreachable(t *testing.T) {
	svc := NewPlanner(zaptest.NewLogger(t), testSchedule())

	// Starting after the last departure is a valid negative result.
	result, err := svc.Plan(PlanRequest{
		Origin:      "A",
		Destination: "C",
		Date:        date(2024, time.December, 2),
		StartTime:   600,
	})

	require.NoError(t, err)
	assert.False(t, result.Primary.Reachable())
	assert.Equal(t, Unreachable, result.Primary.Arrival)
	assert.Equal(t, 0.0, result.Primary.Reliability)
	assert.Empty(t, result.Backups)
}

func TestPlannerGraphCache(t *testing.T) {
	svc := NewPlanner(zaptest.NewLogger(t), testSchedule())

	monday := date(2024, time.December, 2)
	g1 := svc.graphForDate(monday)
	g2 := svc.graphForDate(monday)
	assert.Same(t, g1, g2)

	sunday := date(2024, time.December, 1)
	assert.NotSame(t, g1, svc.graphForDate(sunday))
}
