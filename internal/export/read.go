package export

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/avail/internal/timeutil"
)

// recurrenceHorizon bounds the expansion of open-ended recurring events.
const recurrenceHorizon = 366 * 24 * time.Hour

// ReadFile loads the slots of a previously exported selection. The format
// is chosen from the file extension: .ics, .yml/.yaml or JSON otherwise.
func ReadFile(path string) ([]time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errReadInput.Wrap(err)
	}

	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ics", ".ical":
		return ReadICS(f)
	case ".yml", ".yaml":
		return ReadYAML(f)
	default:
		return ReadJSON(f)
	}
}

// ReadJSON decodes a JSON document written by Write.
func ReadJSON(r io.Reader) ([]time.Time, error) {
	var doc Document

	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errReadInput.Wrap(err)
	}

	return doc.Slots, nil
}

// ReadYAML decodes a YAML document written by Write.
func ReadYAML(r io.Reader) ([]time.Time, error) {
	var doc Document

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errReadInput.Wrap(err)
	}

	return doc.Slots, nil
}

// ReadICS expands the events of a calendar into hourly slots. Recurring
// events are expanded up to a year past their first occurrence.
func ReadICS(r io.Reader) ([]time.Time, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, errReadInput.Wrap(err)
	}

	var slots []time.Time

	for _, ev := range cal.Events() {
		start, err := ev.GetStartAt()
		if err != nil {
			return nil, errReadInput.Wrap(err)
		}

		end, err := ev.GetEndAt()
		if err != nil {
			return nil, errReadInput.Wrap(err)
		}

		starts := []time.Time{start}

		if p := ev.GetProperty(ical.ComponentPropertyRrule); p != nil {
			starts, err = occurrences(p.Value, start)
			if err != nil {
				return nil, errReadInput.Wrap(err)
			}
		}

		for _, s := range starts {
			slots = append(slots, hourlySlots(s, s.Add(end.Sub(start)))...)
		}
	}

	return slots, nil
}

func occurrences(rule string, start time.Time) ([]time.Time, error) {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, err
	}

	r.DTStart(start)

	return r.Between(start, start.Add(recurrenceHorizon), true), nil
}

// hourlySlots returns the whole-hour slots that start within [start, end).
func hourlySlots(start, end time.Time) []time.Time {
	var slots []time.Time

	t := timeutil.TruncateHour(start)
	if t.Before(start) {
		t = t.Add(SlotLength)
	}

	for ; t.Before(end); t = t.Add(SlotLength) {
		slots = append(slots, t)
	}

	return slots
}
