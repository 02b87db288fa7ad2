package models

import (
	"fmt"
	"time"
)

// FootPressure давление по зонам стопы в кПа
type FootPressure struct {
	Heel     float64 `json:"heel"`
	Midfoot  float64 `json:"midfoot"`
	Forefoot float64 `json:"forefoot"`
	Toe      float64 `json:"toe"`
}

// zones возвращает пары (зона, значение) в фиксированном порядке
func (p FootPressure) zones() []struct {
	name  string
	value float64
} {
	return []struct {
		name  string
		value float64
	}{
		{"heel", p.Heel},
		{"midfoot", p.Midfoot},
		{"forefoot", p.Forefoot},
		{"toe", p.Toe},
	}
}

// Max возвращает максимальное давление по всем зонам
func (p FootPressure) Max() float64 {
	var m float64
	for _, z := range p.zones() {
		if z.value > m {
			m = z.value
		}
	}
	return m
}

// SensorReading одно показание стелек-сенсоров
type SensorReading struct {
	RecordedAt  time.Time    `json:"recordedAt"`
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	Left        FootPressure `json:"left"`
	Right       FootPressure `json:"right"`
	Temperature float64      `json:"temperature"` // °C внутри обуви
	Humidity    float64      `json:"humidity"`    // относительная влажность, %
}

// HighPressureZones returns zones whose pressure exceeds threshold,
// formatted as "left.heel", "right.toe" and so on.
func (r *SensorReading) HighPressureZones(threshold float64) []string {
	if r == nil {
		return nil
	}

	var result []string
	for _, foot := range []struct {
		name     string
		pressure FootPressure
	}{{"left", r.Left}, {"right", r.Right}} {
		for _, z := range foot.pressure.zones() {
			if z.value > threshold {
				result = append(result, fmt.Sprintf("%s.%s", foot.name, z.name))
			}
		}
	}
	return result
}
