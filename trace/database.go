package trace

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// ErrNoZones is returned by Load when the trace parses but contains no
// zones; there is nothing to translate.
var ErrNoZones = errors.New("trace: no zones")

// Frame marks one presented display frame inside a zone's timeline.
type Frame struct {
	Number    int     `json:"number"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
}

// Zone is one recorded execution timeline: an ordered event stream plus
// the frames observed while it ran.
type Zone struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	events []Event
	frames []Frame
}

// EventList returns the zone's events ordered by capture time.
func (z *Zone) EventList() []Event { return z.events }

// FrameList returns the zone's frames ordered by start time.
func (z *Zone) FrameList() []Frame { return z.frames }

// Database is a loaded trace: a name and its zones. Read-only after Load.
type Database struct {
	name  string
	zones []*Zone
}

// Name returns the trace's recorded name.
func (db *Database) Name() string { return db.name }

// Zones returns the trace's zones in recorded order.
func (db *Database) Zones() []*Zone { return db.zones }

type rawEvent struct {
	Name string           `json:"name"`
	Time float64          `json:"time"`
	Args map[string]Value `json:"args"`
}

type rawZone struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	Events []rawEvent `json:"events"`
	Frames []Frame    `json:"frames"`
}

type rawTrace struct {
	Name  string    `json:"name"`
	Zones []rawZone `json:"zones"`
}

// Load reads and parses a trace file. It fails on unreadable or corrupt
// input and on traces with no zones; coverage gaps inside events (unknown
// call names, unknown array tags) are not load errors.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trace: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a trace from its JSON encoding. See Load.
func Parse(data []byte) (*Database, error) {
	var raw rawTrace
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("trace: corrupt trace: %w", err)
	}
	if len(raw.Zones) == 0 {
		return nil, ErrNoZones
	}

	db := &Database{name: raw.Name}
	for _, rz := range raw.Zones {
		zone := &Zone{
			ID:     rz.ID,
			Name:   rz.Name,
			Type:   rz.Type,
			events: make([]Event, len(rz.Events)),
			frames: append([]Frame(nil), rz.Frames...),
		}
		for i, re := range rz.Events {
			zone.events[i] = Event{Name: re.Name, Time: re.Time, Args: re.Args}
		}
		// Capture tools write streams in time order already; keep the
		// database's ordering guarantee regardless of the producer.
		sort.SliceStable(zone.events, func(i, j int) bool {
			return zone.events[i].Time < zone.events[j].Time
		})
		sort.SliceStable(zone.frames, func(i, j int) bool {
			return zone.frames[i].StartTime < zone.frames[j].StartTime
		})
		db.zones = append(db.zones, zone)
	}
	return db, nil
}
