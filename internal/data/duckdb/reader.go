package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/skycastdev/skycast/internal/weather"
)

// Reader loads daily weather observations from a DuckDB database.
type Reader struct {
	dataSourceName string
	db             *sql.DB
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	_ = r.db.Close()
}

// LoadObservations streams observation rows between from and to, in date
// order, into handler.
func (r *Reader) LoadObservations(ctx context.Context, table string, from, to time.Time, handler func(obs weather.Observation) error) error {
	query := fmt.Sprintf(`SELECT date, temperature, humidity, wind_speed FROM %s WHERE date BETWEEN ? AND ? ORDER BY date`, table)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("error preparing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		var obs weather.Observation
		if err := rows.Scan(&obs.Date, &obs.Temperature, &obs.Humidity, &obs.WindSpeed); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}
		if err := handler(obs); err != nil {
			return fmt.Errorf("error processing observation: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error scanning rows: %w", err)
	}

	return nil
}
