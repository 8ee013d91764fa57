// internal/catalog/csv.go
package catalog

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"college-comparator/internal/common/errors"
	"college-comparator/internal/common/logger"
	"college-comparator/internal/models"
)

// Column headers of the catalog export. The sheet also carries stray
// "Unnamed: N" columns; anything not listed here is ignored.
const (
	colName        = "College Name"
	colCity        = "City"
	colState       = "State"
	colType        = "College Type"
	colUniversity  = "University"
	colEstablished = "Established Year"
	colCampusSize  = "Campus Size"
	colGenders     = "Genders Accepted"
	colFaculty     = "Total Faculty"
	colStudents    = "Total Student Enrollments"
	colCourses     = "Courses"
	colFees        = "Average Fees"
	colFacilities  = "Facilities"
	colRating      = "Rating"
	colLocation    = "location"
)

// CSVLoader reads the college catalog from a CSV export.
type CSVLoader struct {
	path   string
	logger logger.Logger
}

func NewCSVLoader(path string, log logger.Logger) *CSVLoader {
	return &CSVLoader{
		path:   path,
		logger: log.WithFields(map[string]interface{}{"component": "catalog-csv"}),
	}
}

// Load parses the file and returns prepared records in file order.
func (l *CSVLoader) Load(_ context.Context) ([]models.College, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError("csv", err)
	}
	defer f.Close()

	records, err := l.parse(f)
	if err != nil {
		return nil, errors.NewCatalogLoadFailedError("csv", err)
	}

	prepared := Prepare(records, l.logger)
	l.logger.Info("catalog loaded", map[string]interface{}{
		"path":  l.path,
		"rows":  len(records),
		"valid": len(prepared),
	})
	return prepared, nil
}

func (l *CSVLoader) parse(r io.Reader) ([]models.College, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	var out []models.College
	rowID := int64(0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rowID++

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		out = append(out, models.College{
			ID:              rowID,
			Name:            field(colName),
			City:            field(colCity),
			State:           field(colState),
			OwnershipType:   field(colType),
			University:      field(colUniversity),
			EstablishedYear: parseOptionalInt(field(colEstablished)),
			CampusSize:      field(colCampusSize),
			GendersAccepted: field(colGenders),
			TotalFaculty:    parseOptionalInt(field(colFaculty)),
			TotalStudents:   parseOptionalInt(field(colStudents)),
			Courses:         field(colCourses),
			AverageFees:     parseOptionalFloat(field(colFees)),
			Facilities:      field(colFacilities),
			Rating:          parseOptionalFloat(field(colRating)),
			LocationURL:     field(colLocation),
		})
	}
	return out, nil
}

// parseOptionalInt returns nil for blanks and non-numeric markers so
// downstream scoring can tell "unknown" from zero.
func parseOptionalInt(raw string) *int {
	f := parseOptionalFloat(raw)
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

func parseOptionalFloat(raw string) *float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" || strings.EqualFold(cleaned, "nan") || strings.EqualFold(cleaned, "n/a") {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &v
}
