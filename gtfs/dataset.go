package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

// ErrUnknownFileName is returned if a file that isn't part of the dataset is encountered.
var ErrUnknownFileName = errors.New("unknown file name encountered")

// Dataset holds the parsed tables of one GTFS schedule export.
type Dataset struct {
	Agencies      []*Agency
	Stops         []*Stop
	Routes        []*Route
	Trips         []*Trip
	StopTimes     []*StopTime
	Calendar      []*Calendar
	CalendarDates []*CalendarDate

	logger *zap.Logger
}

// NewDataset creates an empty dataset ready to be loaded.
func NewDataset(logger *zap.Logger) *Dataset {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		// GTFS fields are optional; tolerate short rows.
		r.FieldsPerRecord = -1
		return r
	})

	return &Dataset{
		logger: logger,
	}
}

// LoadFromPath loads the dataset from path, which may be either a directory
// of GTFS .txt files or a .zip archive of them.
func (ds *Dataset) LoadFromPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return ds.loadFromArchive(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		f, err := os.Open(filepath.Join(path, entry.Name()))
		if err != nil {
			return err
		}

		err = ds.parseFile(entry.Name(), f)
		f.Close()
		if err != nil && err != ErrUnknownFileName {
			return err
		}
	}
	return nil
}

func (ds *Dataset) loadFromArchive(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer zr.Close()

	for _, zf := range zr.File {
		f, err := zf.Open()
		if err != nil {
			return err
		}

		err = ds.parseFile(filepath.Base(zf.Name), f)
		f.Close()
		if err != nil && err != ErrUnknownFileName {
			return err
		}
	}
	return nil
}

func (ds *Dataset) parseFile(name string, contents io.Reader) error {
	var err error
	switch strings.ToLower(name) {
	case "agency.txt":
		err = gocsv.Unmarshal(contents, &ds.Agencies)
	case "stops.txt":
		err = gocsv.Unmarshal(contents, &ds.Stops)
	case "routes.txt":
		err = gocsv.Unmarshal(contents, &ds.Routes)
	case "trips.txt":
		err = gocsv.Unmarshal(contents, &ds.Trips)
	case "stop_times.txt":
		err = gocsv.Unmarshal(contents, &ds.StopTimes)
	case "calendar.txt":
		err = gocsv.Unmarshal(contents, &ds.Calendar)
	case "calendar_dates.txt":
		err = gocsv.Unmarshal(contents, &ds.CalendarDates)
	default:
		ds.logger.Debug("skipping unknown file",
			zap.String("file_name", name),
		)
		return ErrUnknownFileName
	}

	if err != nil {
		ds.logger.Warn("error parsing file",
			zap.String("file_name", name),
			zap.Error(err),
		)
	}
	return err
}
