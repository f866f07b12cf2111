package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/rmrobinson/journey/gtfs"
	"github.com/rmrobinson/journey/planner"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	envVarGTFSPath = "GTFS_PATH"
)

func main() {
	viper.SetEnvPrefix("JOURNEY")
	viper.BindEnv(envVarGTFSPath)

	origin := flag.String("from", "", "origin stop name")
	destination := flag.String("to", "", "destination stop name")
	date := flag.String("date", time.Now().Format("2006-01-02"), "travel date (YYYY-MM-DD)")
	departure := flag.String("departure", "08:00", "earliest departure (HH:MM)")
	budget := flag.String("budget", "", "optional travel time budget (HH:MM)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	if *origin == "" || *destination == "" {
		logger.Fatal("both -from and -to must be supplied")
	}

	travelDate, err := time.Parse("2006-01-02", *date)
	if err != nil {
		logger.Fatal("invalid travel date",
			zap.String("date", *date),
			zap.Error(err),
		)
	}

	startTime, err := planner.ParseClock(*departure)
	if err != nil {
		logger.Fatal("invalid departure time",
			zap.String("departure", *departure),
			zap.Error(err),
		)
	}

	var budgetMinutes float64
	if *budget != "" {
		budgetMinutes, err = planner.ParseClock(*budget)
		if err != nil {
			logger.Fatal("invalid budget",
				zap.String("budget", *budget),
				zap.Error(err),
			)
		}
	}

	dataset := gtfs.NewDataset(logger)
	err = dataset.LoadFromPath(viper.GetString(envVarGTFSPath))
	if err != nil {
		logger.Fatal("error loading dataset",
			zap.String("path", viper.GetString(envVarGTFSPath)),
			zap.Error(err),
		)
	}

	schedule := planner.NewScheduleFromDataset(logger, dataset)
	svc := planner.NewPlanner(logger, schedule)

	result, err := svc.Plan(planner.PlanRequest{
		Origin:      *origin,
		Destination: *destination,
		Date:        travelDate,
		StartTime:   startTime,
		Budget:      budgetMinutes,
	})
	if err != nil {
		logger.Fatal("error planning journey",
			zap.Error(err),
		)
	}

	if !result.Primary.Reachable() {
		fmt.Printf("No itinerary from %s to %s on %s after %s.\n",
			*origin, *destination, *date, planner.FormatClock(startTime))
		return
	}

	fmt.Printf("Itinerary from %s to %s on %s:\n", *origin, *destination, *date)
	printItinerary(result.Primary)

	if len(result.Backups) == 0 {
		fmt.Println("\nNo backup itineraries available.")
		return
	}

	fmt.Println("\nBackup itineraries:")
	for _, backup := range result.Backups {
		fmt.Printf(" From %s:\n", backup.TransferStop)
		printItinerary(backup.Itinerary)
	}
}

func printItinerary(it planner.Itinerary) {
	for _, segment := range groupLegs(it.Legs) {
		fmt.Printf("  Route %s: %s (dep %s)", segment.routeID, segment.from, planner.FormatClock(segment.departure))
		for _, stop := range segment.stops {
			fmt.Printf(" -> %s (arr %s)", stop.name, planner.FormatClock(stop.arrival))
		}
		fmt.Println()
	}
	fmt.Printf("  Arrival %s, reliability %.2f\n", planner.FormatClock(it.Arrival), it.Reliability)
}

type legGroup struct {
	routeID   string
	from      string
	departure float64
	stops     []groupStop
}

type groupStop struct {
	name    string
	arrival float64
}

// groupLegs merges consecutive legs on the same route into one printed
// segment, so riding through intermediate stops reads as a single boarding.
func groupLegs(legs []planner.Leg) []legGroup {
	var groups []legGroup
	for _, leg := range legs {
		if len(groups) > 0 && groups[len(groups)-1].routeID == leg.RouteID {
			last := &groups[len(groups)-1]
			last.stops = append(last.stops, groupStop{name: leg.To, arrival: leg.Arrival})
			continue
		}
		groups = append(groups, legGroup{
			routeID:   leg.RouteID,
			from:      leg.From,
			departure: leg.Departure,
			stops:     []groupStop{{name: leg.To, arrival: leg.Arrival}},
		})
	}
	return groups
}
