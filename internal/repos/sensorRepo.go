package repos

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/dingz/internal/models"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS sensor_reading (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    taken_at TIMESTAMP,
    room_temperature REAL,
    uncompensated_temperature REAL,
    brightness INTEGER,
    light_state TEXT,
    motion INTEGER,
    input_state INTEGER,
    total_power REAL
  );
`

type SensorRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewSensorRepo(logger *log.Logger, db *sql.DB) (*SensorRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("error initialising sensor schema: %w", err)
	}

	return &SensorRepo{logger: logger, db: db}, nil
}

func (r *SensorRepo) Add(reading models.SensorReading) error {
	_, err := r.db.Exec(
		`INSERT INTO sensor_reading
      (taken_at, room_temperature, uncompensated_temperature, brightness, light_state, motion, input_state, total_power)
     VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		reading.TakenAt,
		reading.RoomTemperature,
		reading.UncompensatedTemperature,
		reading.Brightness,
		reading.LightState,
		reading.MotionDetected,
		reading.InputState,
		reading.TotalPower,
	)
	if err != nil {
		return fmt.Errorf("error adding sensor reading: %w", err)
	}

	return nil
}

// Latest returns up to n readings, newest first.
func (r *SensorRepo) Latest(n int) ([]models.SensorReading, error) {
	rows, err := r.db.Query(
		`SELECT taken_at, room_temperature, uncompensated_temperature, brightness, light_state, motion, input_state, total_power
       FROM sensor_reading
      ORDER BY taken_at DESC
      LIMIT $1;`, n)
	if err != nil {
		return nil, fmt.Errorf("error reading sensor readings: %w", err)
	}
	defer rows.Close()

	var readings []models.SensorReading
	for rows.Next() {
		var (
			reading       models.SensorReading
			roomTemp      sql.NullFloat64
			uncompensated sql.NullFloat64
			brightness    sql.NullInt64
			lightState    sql.NullString
			motion        sql.NullBool
			inputState    sql.NullBool
		)
		err := rows.Scan(
			&reading.TakenAt,
			&roomTemp,
			&uncompensated,
			&brightness,
			&lightState,
			&motion,
			&inputState,
			&reading.TotalPower,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sensor reading: %w", err)
		}

		if roomTemp.Valid {
			reading.RoomTemperature = &roomTemp.Float64
		}
		if uncompensated.Valid {
			reading.UncompensatedTemperature = &uncompensated.Float64
		}
		if brightness.Valid {
			value := int(brightness.Int64)
			reading.Brightness = &value
		}
		if lightState.Valid {
			reading.LightState = &lightState.String
		}
		if motion.Valid {
			reading.MotionDetected = &motion.Bool
		}
		if inputState.Valid {
			reading.InputState = &inputState.Bool
		}

		readings = append(readings, reading)
	}

	return readings, rows.Err()
}

// PurgeBefore deletes readings taken before the given time.
func (r *SensorRepo) PurgeBefore(t time.Time) error {
	_, err := r.db.Exec(`DELETE FROM sensor_reading WHERE taken_at < $1;`, t)
	if err != nil {
		return fmt.Errorf("error purging sensor readings: %w", err)
	}
	return nil
}
