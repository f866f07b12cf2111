package planner

// FindBackups searches for alternate itineraries from each transfer point of
// the primary, so a traveler has a fallback if a specific connection fails.
// Routes already committed to, whether by the primary or by an accepted
// backup, are excluded from subsequent searches, so successive backups
// diversify.
func FindBackups(g *Graph, model ReliabilityModel, primary Itinerary, opts SearchOptions) []BackupItinerary {
	if !primary.Reachable() {
		return nil
	}

	destination := primary.Destination()
	excluded := primary.Routes()
	for routeID := range opts.ExcludedRoutes {
		excluded[routeID] = struct{}{}
	}

	var backups []BackupItinerary
	for _, tp := range primary.TransferPoints() {
		if !g.HasStop(tp.Stop) {
			continue
		}

		candidateOpts := opts
		candidateOpts.ExcludedRoutes = excluded
		candidate := Search(g, model, tp.Stop, destination, tp.Arrival, candidateOpts)

		if !candidate.Reachable() || sameLegs(candidate.Legs, primary.Legs) {
			continue
		}
		if !usesNewRoute(candidate, excluded) {
			continue
		}

		backups = append(backups, BackupItinerary{
			TransferStop: tp.Stop,
			Itinerary:    candidate,
		})

		// Commit the backup's routes before the next transfer point is tried.
		excluded = cloneRouteSet(excluded)
		for routeID := range candidate.Routes() {
			excluded[routeID] = struct{}{}
		}
	}
	return backups
}

func usesNewRoute(it Itinerary, excluded map[string]struct{}) bool {
	for routeID := range it.Routes() {
		if _, ok := excluded[routeID]; !ok {
			return true
		}
	}
	return false
}

func cloneRouteSet(routes map[string]struct{}) map[string]struct{} {
	clone := make(map[string]struct{}, len(routes))
	for routeID := range routes {
		clone[routeID] = struct{}{}
	}
	return clone
}
