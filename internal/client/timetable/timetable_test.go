package timetable

import (
	"testing"

	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(id int64, day, start, end string) models.Schedule {
	return models.Schedule{ID: id, DayOfWeek: day, StartTime: start, EndTime: end}
}

func TestBuild_SharedSlotAcrossDays(t *testing.T) {
	mon := session(1, "MONDAY", "09:00", "10:00")
	wed := session(2, "WEDNESDAY", "09:00", "10:00")

	g := Build([]models.Schedule{mon, wed})

	require.Len(t, g.Slots, 1)
	key := g.Slots[0].Key
	assert.Equal(t, "09:00|10:00", key)
	assert.Equal(t, []models.Schedule{mon}, g.Cell("MONDAY", key))
	assert.Equal(t, []models.Schedule{wed}, g.Cell("WEDNESDAY", key))
	assert.Empty(t, g.Cell("TUESDAY", key))
	assert.NotNil(t, g.Cell("TUESDAY", key))
}

func TestBuild_SlotOrder(t *testing.T) {
	g := Build([]models.Schedule{
		session(1, "MONDAY", "13:00:00", "14:00:00"),
		session(2, "TUESDAY", "08:30", "09:30"),
		session(3, "FRIDAY", "08:30", "10:00"),
		session(4, "MONDAY", "", ""),
		session(5, "MONDAY", "08:30", "09:30"),
	})

	var keys []string
	for _, s := range g.Slots {
		keys = append(keys, s.Key)
	}
	want := []string{"|", "08:30|09:30", "08:30|10:00", "13:00:00|14:00:00"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("slots mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, g.Cell("MONDAY", "08:30|09:30"), 1)
	assert.Len(t, g.Cell("TUESDAY", "08:30|09:30"), 1)
}

func TestBuild_UnknownDayExcluded(t *testing.T) {
	g := Build([]models.Schedule{
		session(1, "", "09:00", "10:00"),
		session(2, "FUNDAY", "09:00", "10:00"),
	})

	require.Len(t, g.Slots, 1)
	assert.Equal(t, Days, g.Days)
	for _, day := range g.Days {
		assert.Empty(t, g.Cell(day, "09:00|10:00"))
	}
}

func TestBuild_Empty(t *testing.T) {
	g := Build(nil)
	assert.True(t, g.Empty())
	assert.Len(t, g.Cells, len(Days))
}

func TestSort(t *testing.T) {
	sorted := Sort([]models.Schedule{
		session(1, "FRIDAY", "09:00", ""),
		session(2, "", "08:00", ""),
		session(3, "MONDAY", "14:00:00", ""),
		session(4, "MONDAY", "09:15", ""),
		session(5, "MONDAY", "", ""),
	})

	var ids []int64
	for _, s := range sorted {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{5, 4, 3, 1, 2}, ids)
}

func TestLabels(t *testing.T) {
	en := i18n.New("en")
	tr := i18n.New("tr")

	assert.Equal(t, "Monday", DayLabel(en, "MONDAY"))
	assert.Equal(t, "Çarşamba", DayLabel(tr, "WEDNESDAY"))
	assert.Equal(t, "HOLIDAY", DayLabel(en, "HOLIDAY"))
	assert.Equal(t, "-", DayLabel(en, ""))

	assert.Equal(t, "09:00 - 10:30", SlotLabel(en, Slot{Start: "09:00:00", End: "10:30:00"}))
	assert.Equal(t, "09:00 - --:--", SlotLabel(en, Slot{Start: "09:00"}))
	assert.Equal(t, "Not specified", SlotLabel(en, Slot{}))
	assert.Equal(t, "Belirtilmedi", SlotLabel(tr, Slot{}))
}
