package weather

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// ReadCSV loads observations from a CSV file with a header row and columns
// date, temperature, humidity, wind_speed.
func ReadCSV(path string) ([]Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open observations file: %w", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	reader := csv.NewReader(f)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("unable to read header: %w", err)
	}

	var obs []Observation
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read record: %w", err)
		}
		if len(record) < 4 {
			return nil, fmt.Errorf("record has %d columns, want 4", len(record))
		}

		date, err := time.Parse(dateLayout, record[0])
		if err != nil {
			return nil, fmt.Errorf("unable to parse date %q: %w", record[0], err)
		}
		temp, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse temperature %q: %w", record[1], err)
		}
		hum, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse humidity %q: %w", record[2], err)
		}
		wind, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse wind speed %q: %w", record[3], err)
		}

		obs = append(obs, Observation{
			Date:        date,
			Temperature: temp,
			Humidity:    hum,
			WindSpeed:   wind,
		})
	}
	return obs, nil
}
