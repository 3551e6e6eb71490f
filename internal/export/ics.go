package export

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
)

const (
	productID      = "-//avail//availability picker//EN"
	defaultSummary = "Available"
	maxRepeatWeeks = 52
)

// weeklyRule returns the RRULE value repeating an event for the given
// number of weeks, or "" when the event does not repeat.
func weeklyRule(weeks int) (string, error) {
	if weeks <= 1 {
		return "", nil
	}

	if weeks > maxRepeatWeeks {
		return "", errInvalidRepeat.Fmt(weeks, maxRepeatWeeks)
	}

	opt := rrule.ROption{
		Freq:  rrule.WEEKLY,
		Count: weeks,
	}

	if _, err := rrule.NewRRule(opt); err != nil {
		return "", err
	}

	return opt.RRuleString(), nil
}

func toCalendar(doc Document, opts Options) (string, error) {
	rule, err := weeklyRule(opts.RepeatWeeks)
	if err != nil {
		return "", err
	}

	summary := opts.Summary
	if summary == "" {
		summary = defaultSummary
	}

	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, r := range doc.Ranges {
		ev := cal.AddEvent(fmt.Sprintf("%d-%d@avail", r.Start.Unix(), r.Hours()))
		ev.SetDtStampTime(stamp.UTC())
		ev.SetStartAt(r.Start.UTC())
		ev.SetEndAt(r.End.UTC())
		ev.SetSummary(summary)

		if rule != "" {
			ev.AddRrule(rule)
		}
	}

	return cal.Serialize(), nil
}
