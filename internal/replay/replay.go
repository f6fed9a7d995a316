// Package replay defines the deterministic input timeline of a run. The
// simulation is fully determined by its seed plus the tick-indexed sequence
// of impulse and spawn events, so recording those is enough to reproduce a
// run exactly.
package replay

import (
	"encoding/json"
	"fmt"
)

// Kind identifies an externally-triggered simulation event.
type Kind string

const (
	KindImpulse Kind = "impulse"
	KindSpawn   Kind = "spawn"
)

// Event is one external trigger, indexed by the tick it precedes. Events at
// tick N are applied before the world's Nth step.
type Event struct {
	Tick uint64 `json:"tick"`
	Kind Kind   `json:"kind"`
}

// Log is a complete recording of one run.
type Log struct {
	Seed     int64   `json:"seed"`
	TickRate int     `json:"tick_rate"`
	Ticks    uint64  `json:"ticks"`
	Events   []Event `json:"events"`
}

// Record appends an event. Events must be appended in non-decreasing tick
// order, which live recording does naturally.
func (l *Log) Record(tick uint64, k Kind) {
	l.Events = append(l.Events, Event{Tick: tick, Kind: k})
}

// Marshal encodes the log as JSON for storage.
func (l Log) Marshal() ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode log: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a stored log.
func Unmarshal(data []byte) (Log, error) {
	var l Log
	if err := json.Unmarshal(data, &l); err != nil {
		return Log{}, fmt.Errorf("replay: cannot decode log: %w", err)
	}
	return l, nil
}

// Cursor walks a log's events in tick order during playback.
type Cursor struct {
	log  Log
	next int
}

// NewCursor creates a cursor at the start of the log.
func NewCursor(l Log) *Cursor {
	return &Cursor{log: l}
}

// Next returns the events scheduled for the given tick and advances past
// them. Ticks must be queried in increasing order.
func (c *Cursor) Next(tick uint64) []Event {
	start := c.next
	for c.next < len(c.log.Events) && c.log.Events[c.next].Tick <= tick {
		c.next++
	}
	return c.log.Events[start:c.next]
}

// Done reports whether playback has consumed the whole run.
func (c *Cursor) Done(tick uint64) bool {
	return c.next >= len(c.log.Events) && tick >= c.log.Ticks
}
