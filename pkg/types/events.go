package types

import (
	"encoding/json"
	"time"
)

type ReadingReceived struct {
	Reading   SensorReading `json:"reading"`
	Timestamp time.Time     `json:"timestamp"`
}

func (r *ReadingReceived) ContentType() string {
	return "application/json"
}
func (r *ReadingReceived) TopicName() string {
	return "sensor.readingReceived"
}
func (r *ReadingReceived) Body() []byte {
	b, _ := json.Marshal(r)
	return b
}

type ControlStateChanged struct {
	State     ControlState `json:"state"`
	Timestamp time.Time    `json:"timestamp"`
}

func (c *ControlStateChanged) ContentType() string {
	return "application/json"
}
func (c *ControlStateChanged) TopicName() string {
	return "control.stateChanged"
}
func (c *ControlStateChanged) Body() []byte {
	b, _ := json.Marshal(c)
	return b
}
