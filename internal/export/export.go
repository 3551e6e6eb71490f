// Package export writes a committed selection in the formats avail
// supports and reads previously exported selections back
package export

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ayoisaiah/avail/internal/timeutil"
	"github.com/ayoisaiah/avail/internal/ui"
)

// SlotLength is the duration covered by one grid slot.
const SlotLength = time.Hour

// Format is an output format for a selection.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatICS  Format = "ics"
)

// Formats lists every supported output format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatICS}

// ParseFormat converts a configuration value into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}

	if !slices.Contains(Formats, f) {
		return "", errUnknownFormat.Fmt(s)
	}

	return f, nil
}

// Range is a run of consecutive slots, from Start up to but excluding End.
type Range struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end"   yaml:"end"`
}

// Hours returns the number of slots in the range.
func (r Range) Hours() int {
	return int(r.End.Sub(r.Start) / SlotLength)
}

// Document is the serialised form of a selection.
type Document struct {
	Scheme string      `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Slots  []time.Time `json:"slots"            yaml:"slots"`
	Ranges []Range     `json:"ranges"           yaml:"ranges"`
}

// Options control how a selection is written.
type Options struct {
	// Stamp is the creation time recorded in calendar output.
	Stamp          time.Time
	Format         Format
	Scheme         string
	Summary        string
	RepeatWeeks    int
	TwentyFourHour bool
}

// Ranges collapses slots into runs of consecutive hours. The input does not
// need to be sorted and duplicates at minute resolution are ignored.
func Ranges(slots []time.Time) []Range {
	sorted := slices.Clone(slots)

	slices.SortFunc(sorted, func(a, b time.Time) int {
		return cmp.Compare(a.UnixNano(), b.UnixNano())
	})

	sorted = slices.CompactFunc(sorted, timeutil.SameMinute)

	ranges := make([]Range, 0, len(sorted))

	for _, t := range sorted {
		n := len(ranges)
		if n > 0 && timeutil.SameMinute(ranges[n-1].End, t) {
			ranges[n-1].End = t.Add(SlotLength)
			continue
		}

		ranges = append(ranges, Range{Start: t, End: t.Add(SlotLength)})
	}

	return ranges
}

// NewDocument builds the document for slots.
func NewDocument(slots []time.Time, scheme string) Document {
	sorted := slices.Clone(slots)
	if sorted == nil {
		sorted = []time.Time{}
	}

	slices.SortFunc(sorted, func(a, b time.Time) int {
		return cmp.Compare(a.UnixNano(), b.UnixNano())
	})

	// CompactFunc reuses the backing array of sorted and zeroes its tail
	unique := slices.CompactFunc(sorted, timeutil.SameMinute)

	return Document{
		Scheme: scheme,
		Slots:  unique,
		Ranges: Ranges(unique),
	}
}

// Write renders slots to w in the requested format.
func Write(w io.Writer, slots []time.Time, opts Options) error {
	doc := NewDocument(slots, opts.Scheme)

	switch opts.Format {
	case FormatText, "":
		return writeTable(w, doc, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return err
		}

		return enc.Close()
	case FormatICS:
		cal, err := toCalendar(doc, opts)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, cal)

		return err
	default:
		return errUnknownFormat.Fmt(opts.Format)
	}
}

func writeTable(w io.Writer, doc Document, opts Options) error {
	if len(doc.Ranges) == 0 {
		_, err := fmt.Fprintln(w, noSlotsMsg)
		return err
	}

	clock := "3:04pm"
	if opts.TwentyFourHour {
		clock = "15:04"
	}

	body := make([][]string, len(doc.Ranges))

	for i, r := range doc.Ranges {
		body[i] = []string{
			fmt.Sprintf("%d", i+1),
			r.Start.Format("Mon Jan 02"),
			r.Start.Format(clock),
			r.End.Format(clock),
			fmt.Sprintf("%d", r.Hours()),
		}
	}

	body = append([][]string{
		{"#", "DAY", "FROM", "TO", "HOURS"},
	}, body...)

	ui.PrintTable(body, w)

	return nil
}
