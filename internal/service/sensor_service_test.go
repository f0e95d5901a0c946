package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func floatPtr(v float64) *float64 { return &v }

func validReadingRequest() RecordReadingRequest {
	return RecordReadingRequest{
		UserID:      1,
		AirQuality:  floatPtr(150),
		PM25:        floatPtr(80),
		SO2Level:    floatPtr(5),
		NO2Level:    floatPtr(10),
		CO2Level:    floatPtr(400),
		Humidity:    floatPtr(60),
		Temperature: floatPtr(30),
	}
}

func TestRecordReading_RoundTrip(t *testing.T) {
	store := &fakeSensorStore{}
	svc := NewSensorService(store, zap.NewNop())

	before := time.Now()
	reading, err := svc.RecordReading(context.Background(), validReadingRequest())
	require.NoError(t, err)

	// 服务端时间戳不早于提交时间
	assert.False(t, reading.Timestamp.Before(before))

	latest, err := store.LatestReading(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 150.0, latest.AirQuality)
	assert.Equal(t, 80.0, latest.PM25)
	assert.Equal(t, 5.0, latest.SO2Level)
	assert.Equal(t, 10.0, latest.NO2Level)
	assert.Equal(t, 400.0, latest.CO2Level)
	assert.Equal(t, 60.0, latest.Humidity)
	assert.Equal(t, 30.0, latest.Temperature)
}

func TestRecordReading_MissingFieldsListed(t *testing.T) {
	store := &fakeSensorStore{}
	svc := NewSensorService(store, zap.NewNop())

	req := validReadingRequest()
	req.PM25 = nil
	req.Humidity = nil

	_, err := svc.RecordReading(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "pm25")
	assert.Contains(t, err.Error(), "humidity")
	// 校验失败不产生任何写入
	readings, _ := store.ListReadings(context.Background(), 1)
	assert.Len(t, readings, 0)
}

func TestRecordReading_ZeroValuesAccepted(t *testing.T) {
	store := &fakeSensorStore{}
	svc := NewSensorService(store, zap.NewNop())

	req := validReadingRequest()
	req.Temperature = floatPtr(0)

	// 0 是合法读数，不等于缺失；范围不做校验
	_, err := svc.RecordReading(context.Background(), req)

	require.NoError(t, err)
	latest, _ := store.LatestReading(context.Background(), 1)
	assert.Equal(t, 0.0, latest.Temperature)
}
