package planner

import (
	"time"
)

// ExceptionType describes how a calendar exception modifies a service on one date.
type ExceptionType int

const (
	// ExceptionAdded means the service runs on the date despite its base pattern.
	ExceptionAdded ExceptionType = iota
	// ExceptionRemoved means the service does not run on the date despite its base pattern.
	ExceptionRemoved
)

// Service is the weekly operating pattern of a set of trips, valid within a date range.
type Service struct {
	ID string
	// Weekdays is indexed by time.Weekday (Sunday == 0).
	Weekdays  [7]bool
	StartDate time.Time
	EndDate   time.Time
}

// CalendarException overrides a service's base pattern for a single date.
type CalendarException struct {
	ServiceID string
	Date      time.Time
	Type      ExceptionType
}

// ServiceCalendar resolves whether a service operates on a given date.
type ServiceCalendar struct {
	services   map[string]*Service
	exceptions map[string][]*CalendarException
}

// NewServiceCalendar indexes the supplied services and exceptions for date lookups.
func NewServiceCalendar(services []*Service, exceptions []*CalendarException) *ServiceCalendar {
	sc := &ServiceCalendar{
		services:   map[string]*Service{},
		exceptions: map[string][]*CalendarException{},
	}

	for _, svc := range services {
		sc.services[svc.ID] = svc
	}
	for _, exc := range exceptions {
		sc.exceptions[exc.ServiceID] = append(sc.exceptions[exc.ServiceID], exc)
	}
	return sc
}

// Available reports whether the service operates on the supplied date.
// Exceptions take precedence over the base pattern; a service id present in
// neither table resolves to unavailable.
func (sc *ServiceCalendar) Available(serviceID string, date time.Time) bool {
	y, m, d := date.Date()

	for _, exc := range sc.exceptions[serviceID] {
		ey, em, ed := exc.Date.Date()
		if ey != y || em != m || ed != d {
			continue
		}
		return exc.Type == ExceptionAdded
	}

	svc, ok := sc.services[serviceID]
	if !ok {
		return false
	}

	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	start := time.Date(svc.StartDate.Year(), svc.StartDate.Month(), svc.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(svc.EndDate.Year(), svc.EndDate.Month(), svc.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(start) || day.After(end) {
		return false
	}

	return svc.Weekdays[date.Weekday()]
}
