package repository

import (
	"context"
	"database/sql"
	"fmt"

	"inhaler-monitor/internal/domain"

	"go.uber.org/zap"
)

// SensorReadingsRepository 传感器读数仓库
type SensorReadingsRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSensorReadingsRepository 创建传感器读数仓库
func NewSensorReadingsRepository(db *sql.DB, logger *zap.Logger) *SensorReadingsRepository {
	return &SensorReadingsRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReading 追加一条传感器读数
func (r *SensorReadingsRepository) CreateReading(ctx context.Context, reading *domain.SensorReading) error {
	query := `
		INSERT INTO sensor_readings (
			user_id,
			timestamp,
			air_quality,
			pm25,
			so2_level,
			no2_level,
			co2_level,
			humidity,
			temperature
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING reading_id
	`

	err := r.db.QueryRowContext(ctx, query,
		reading.UserID,
		reading.Timestamp,
		reading.AirQuality,
		reading.PM25,
		reading.SO2Level,
		reading.NO2Level,
		reading.CO2Level,
		reading.Humidity,
		reading.Temperature,
	).Scan(&reading.ReadingID)
	if err != nil {
		return fmt.Errorf("failed to insert sensor reading: %w", err)
	}

	return nil
}

// ListReadings 获取用户全部读数（按写入顺序）
func (r *SensorReadingsRepository) ListReadings(ctx context.Context, userID int64) ([]domain.SensorReading, error) {
	query := `
		SELECT
			reading_id,
			user_id,
			timestamp,
			air_quality,
			pm25,
			so2_level,
			no2_level,
			co2_level,
			humidity,
			temperature
		FROM sensor_readings
		WHERE user_id = $1
		ORDER BY reading_id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sensor readings: %w", err)
	}
	defer rows.Close()

	var readings []domain.SensorReading
	for rows.Next() {
		var reading domain.SensorReading
		err := rows.Scan(
			&reading.ReadingID,
			&reading.UserID,
			&reading.Timestamp,
			&reading.AirQuality,
			&reading.PM25,
			&reading.SO2Level,
			&reading.NO2Level,
			&reading.CO2Level,
			&reading.Humidity,
			&reading.Temperature,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sensor reading: %w", err)
		}
		readings = append(readings, reading)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sensor readings: %w", err)
	}

	return readings, nil
}

// LatestReading 获取用户时间戳最大的一条读数
// 同一时间戳取后写入的一条（reading_id 更大）
func (r *SensorReadingsRepository) LatestReading(ctx context.Context, userID int64) (*domain.SensorReading, error) {
	query := `
		SELECT
			reading_id,
			user_id,
			timestamp,
			air_quality,
			pm25,
			so2_level,
			no2_level,
			co2_level,
			humidity,
			temperature
		FROM sensor_readings
		WHERE user_id = $1
		ORDER BY timestamp DESC, reading_id DESC
		LIMIT 1
	`

	var reading domain.SensorReading
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&reading.ReadingID,
		&reading.UserID,
		&reading.Timestamp,
		&reading.AirQuality,
		&reading.PM25,
		&reading.SO2Level,
		&reading.NO2Level,
		&reading.CO2Level,
		&reading.Humidity,
		&reading.Temperature,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: no sensor data for user %d", ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to query latest sensor reading: %w", err)
	}

	return &reading, nil
}
