package models

import "time"

// SensorReading is a flattened snapshot of the sensors block from
// /api/v1/state, as stored in the readings table and published on the
// event stream. Pointer fields are nil when the device has no such
// sensor (or it failed).
type SensorReading struct {
	TakenAt time.Time `json:"takenAt"`

	RoomTemperature          *float64 `json:"roomTemperature,omitempty"`
	UncompensatedTemperature *float64 `json:"uncompensatedTemperature,omitempty"`
	Brightness               *int     `json:"brightness,omitempty"`
	LightState               *string  `json:"lightState,omitempty"`
	MotionDetected           *bool    `json:"motionDetected,omitempty"`
	InputState               *bool    `json:"inputState,omitempty"`

	// summed over all power outputs
	TotalPower float64 `json:"totalPower"`
}
