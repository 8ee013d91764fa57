// internal/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"college-comparator/internal/common/errors"
	"college-comparator/internal/common/logger"
	"college-comparator/internal/models"
)

// PostgresLoader reads the college catalog from a relational table.
// Ordering by id keeps catalog order stable across reloads, which matters
// because matching is first-match-wins in catalog order.
type PostgresLoader struct {
	db     *sql.DB
	table  string
	logger logger.Logger
}

func NewPostgresLoader(db *sql.DB, table string, log logger.Logger) *PostgresLoader {
	if table == "" {
		table = "colleges"
	}
	return &PostgresLoader{
		db:     db,
		table:  table,
		logger: log.WithFields(map[string]interface{}{"component": "catalog-postgres"}),
	}
}

func (l *PostgresLoader) Load(ctx context.Context) ([]models.College, error) {
	query := fmt.Sprintf(`
		SELECT id, name, city, state, college_type, university,
		       established_year, campus_size, genders_accepted,
		       total_faculty, total_students, courses, average_fees,
		       facilities, rating, location_url
		FROM %s ORDER BY id`, l.table)

	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewQueryExecutionFailedError("catalog-load", err)
	}
	defer rows.Close()

	var out []models.College
	for rows.Next() {
		var (
			c           models.College
			state       sql.NullString
			collegeType sql.NullString
			university  sql.NullString
			established sql.NullInt64
			campusSize  sql.NullString
			genders     sql.NullString
			faculty     sql.NullInt64
			students    sql.NullInt64
			courses     sql.NullString
			fees        sql.NullFloat64
			facilities  sql.NullString
			rating      sql.NullFloat64
			locationURL sql.NullString
		)

		err := rows.Scan(
			&c.ID, &c.Name, &c.City, &state, &collegeType, &university,
			&established, &campusSize, &genders,
			&faculty, &students, &courses, &fees,
			&facilities, &rating, &locationURL,
		)
		if err != nil {
			return nil, errors.NewQueryExecutionFailedError("catalog-load", err)
		}

		c.State = state.String
		c.OwnershipType = collegeType.String
		c.University = university.String
		c.CampusSize = campusSize.String
		c.GendersAccepted = genders.String
		c.Courses = courses.String
		c.Facilities = facilities.String
		c.LocationURL = locationURL.String
		if established.Valid {
			v := int(established.Int64)
			c.EstablishedYear = &v
		}
		if faculty.Valid {
			v := int(faculty.Int64)
			c.TotalFaculty = &v
		}
		if students.Valid {
			v := int(students.Int64)
			c.TotalStudents = &v
		}
		if fees.Valid {
			v := fees.Float64
			c.AverageFees = &v
		}
		if rating.Valid {
			v := rating.Float64
			c.Rating = &v
		}

		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewQueryExecutionFailedError("catalog-load", err)
	}

	prepared := Prepare(out, l.logger)
	l.logger.Info("catalog loaded", map[string]interface{}{
		"table": l.table,
		"rows":  len(out),
		"valid": len(prepared),
	})
	return prepared, nil
}
