package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_MatchesSupportedLanguages(t *testing.T) {
	assert.Equal(t, "tr", New("tr").Language())
	assert.Equal(t, "tr", New("tr-TR").Language())
	assert.Equal(t, "en", New("en-GB").Language())
	assert.Equal(t, "en", New("").Language())
	assert.Equal(t, "en", New("not a locale").Language())
}

func TestT_TranslatesAndFormats(t *testing.T) {
	tr := New("tr")
	en := New("en")

	assert.Equal(t, "Kontenjan dolu", tr.T(MsgCapacityFull))
	assert.Equal(t, "Capacity full", en.T(MsgCapacityFull))
	assert.Equal(t, "3 öğrenci beklemede", tr.T(MsgStudentsWaiting, 3))
	assert.Equal(t, "3 students waiting", en.T(MsgStudentsWaiting, 3))
	assert.Equal(t, "lectures yüklenemedi: boom", tr.T(MsgCollectionFailed, "lectures", "boom"))
}

func TestT_NilLocalizerFallsBackToEnglish(t *testing.T) {
	var l *Localizer
	assert.Equal(t, "Session expired", l.T(MsgSessionExpired))
	assert.Equal(t, "en", l.Language())
}

func TestTurkishCatalog_CoversDayLabels(t *testing.T) {
	for _, day := range []string{DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday, DaySaturday, DaySunday} {
		_, ok := turkish[day]
		assert.True(t, ok, day)
	}
}

func TestTurkishCatalog_EveryEntryRegistered(t *testing.T) {
	tr := New("tr")
	for key, msg := range turkish {
		if strings.Contains(key, "%") {
			continue
		}
		assert.Equal(t, msg, tr.T(key), key)
	}
}
