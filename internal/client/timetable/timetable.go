// Package timetable arranges weekly lecture sessions into a day by time-slot
// grid.
package timetable

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
)

// Days is the canonical column order of the grid.
var Days = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

var dayLabels = map[string]string{
	"MONDAY":    i18n.DayMonday,
	"TUESDAY":   i18n.DayTuesday,
	"WEDNESDAY": i18n.DayWednesday,
	"THURSDAY":  i18n.DayThursday,
	"FRIDAY":    i18n.DayFriday,
	"SATURDAY":  i18n.DaySaturday,
	"SUNDAY":    i18n.DaySunday,
}

const missingTime = "--:--"

// Slot is one distinct (start, end) pair observed in the sessions.
type Slot struct {
	Key   string
	Start string
	End   string
	order int
}

// Grid holds sessions by day and then by slot key. Every day in Days has an
// entry for every slot, possibly empty.
type Grid struct {
	Days  []string
	Slots []Slot
	Cells map[string]map[string][]models.Schedule
}

// Cell returns the sessions held at day and slot key.
func (g Grid) Cell(day, key string) []models.Schedule {
	return g.Cells[day][key]
}

// Empty reports whether the grid holds no slot rows.
func (g Grid) Empty() bool {
	return len(g.Slots) == 0
}

func slotKey(s models.Schedule) string {
	return s.StartTime + "|" + s.EndTime
}

// Build groups sessions by day of week and distinct time pair. Slots are
// ordered by start time and only those present in sessions appear. Sessions
// with an unknown day are left out.
func Build(sessions []models.Schedule) Grid {
	g := Grid{
		Days:  slices.Clone(Days),
		Cells: make(map[string]map[string][]models.Schedule, len(Days)),
	}

	seen := map[string]bool{}
	for _, s := range sessions {
		key := slotKey(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		g.Slots = append(g.Slots, Slot{Key: key, Start: s.StartTime, End: s.EndTime, order: minutes(s.StartTime)})
	}
	sort.SliceStable(g.Slots, func(i, j int) bool {
		return g.Slots[i].order < g.Slots[j].order
	})

	for _, day := range g.Days {
		row := make(map[string][]models.Schedule, len(g.Slots))
		for _, slot := range g.Slots {
			row[slot.Key] = []models.Schedule{}
		}
		g.Cells[day] = row
	}

	for _, s := range sessions {
		row, ok := g.Cells[s.DayOfWeek]
		if !ok {
			continue
		}
		key := slotKey(s)
		row[key] = append(row[key], s)
	}
	return g
}

// Sort returns sessions ordered by weekday and then start time. Unknown days
// go last.
func Sort(sessions []models.Schedule) []models.Schedule {
	out := slices.Clone(sessions)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := dayIndex(out[i].DayOfWeek), dayIndex(out[j].DayOfWeek)
		if di != dj {
			return di < dj
		}
		return normalizeTime(out[i].StartTime) < normalizeTime(out[j].StartTime)
	})
	return out
}

// DayLabel returns the localized name of an API day value. Unknown values are
// returned as is; an empty one renders as "-".
func DayLabel(loc *i18n.Localizer, day string) string {
	if label, ok := dayLabels[day]; ok {
		return loc.T(label)
	}
	if day == "" {
		return "-"
	}
	return day
}

// SlotLabel renders a slot as "HH:MM - HH:MM".
func SlotLabel(loc *i18n.Localizer, slot Slot) string {
	if slot.Start == "" && slot.End == "" {
		return loc.T(i18n.MsgSlotNotSpecified)
	}
	return fmt.Sprintf("%s - %s", normalizeTime(slot.Start), normalizeTime(slot.End))
}

func dayIndex(day string) int {
	if i := slices.Index(Days, day); i >= 0 {
		return i
	}
	return len(Days)
}

func normalizeTime(v string) string {
	if v == "" {
		return missingTime
	}
	if len(v) > 5 {
		return v[:5]
	}
	return v
}

// minutes converts "HH:MM" or "HH:MM:SS" into minutes after midnight.
// Missing or malformed values count as midnight.
func minutes(v string) int {
	v = strings.TrimSpace(v)
	if len(v) > 5 {
		v = v[:5]
	}
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}
