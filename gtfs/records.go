package gtfs

// Agency represents the transit agency supplying service.
type Agency struct {
	ID       string `csv:"agency_id"`
	Name     string `csv:"agency_name"`
	URL      string `csv:"agency_url"`
	TZ       string `csv:"agency_timezone"`
	Language string `csv:"agency_lang"`
}

// Stop is a location where a vehicle picks up or drops off riders.
type Stop struct {
	ID        string `csv:"stop_id"`
	Name      string `csv:"stop_name"`
	Latitude  string `csv:"stop_lat"`
	Longitude string `csv:"stop_lon"`
}

// Route is a logical line identity; its physical instantiations are trips.
type Route struct {
	ID        string `csv:"route_id"`
	AgencyID  string `csv:"agency_id"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
	Type      CSVInt `csv:"route_type"`
}

// Trip is one scheduled run of a vehicle along a route.
type Trip struct {
	ID        string `csv:"trip_id"`
	RouteID   string `csv:"route_id"`
	ServiceID string `csv:"service_id"`
	Headsign  string `csv:"trip_headsign"`
}

// StopTime records a specific trip visiting a specific stop.
type StopTime struct {
	TripID        string  `csv:"trip_id"`
	ArrivalTime   CSVTime `csv:"arrival_time"`
	DepartureTime CSVTime `csv:"departure_time"`
	StopID        string  `csv:"stop_id"`
	Sequence      CSVInt  `csv:"stop_sequence"`
}

// Calendar is the set of weekdays a service operates, bounded by a date range.
type Calendar struct {
	ServiceID string  `csv:"service_id"`
	Monday    CSVBool `csv:"monday"`
	Tuesday   CSVBool `csv:"tuesday"`
	Wednesday CSVBool `csv:"wednesday"`
	Thursday  CSVBool `csv:"thursday"`
	Friday    CSVBool `csv:"friday"`
	Saturday  CSVBool `csv:"saturday"`
	Sunday    CSVBool `csv:"sunday"`
	StartDate CSVDate `csv:"start_date"`
	EndDate   CSVDate `csv:"end_date"`
}

// Exception type values as defined by the GTFS calendar_dates table.
const (
	ExceptionServiceAdded   = 1
	ExceptionServiceRemoved = 2
)

// CalendarDate overrides the base calendar pattern for a single date.
type CalendarDate struct {
	ServiceID     string  `csv:"service_id"`
	Date          CSVDate `csv:"date"`
	ExceptionType CSVInt  `csv:"exception_type"`
}
