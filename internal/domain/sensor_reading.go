package domain

import "time"

// SensorReading 环境传感器读数（对应 sensor_readings 表）
// 只追加，timestamp 由服务端在入库时写入
type SensorReading struct {
	ReadingID   int64     `db:"reading_id"`
	UserID      int64     `db:"user_id"` // FK users
	Timestamp   time.Time `db:"timestamp"`
	AirQuality  float64   `db:"air_quality"` // AQI
	PM25        float64   `db:"pm25"`
	SO2Level    float64   `db:"so2_level"`
	NO2Level    float64   `db:"no2_level"`
	CO2Level    float64   `db:"co2_level"`
	Humidity    float64   `db:"humidity"`
	Temperature float64   `db:"temperature"`
}
