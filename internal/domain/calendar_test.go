package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2026, time.March, 15), date)

	_, err = ParseDate("15.03.2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateOfPreservesUTCComponents(t *testing.T) {
	// Дата из БД приходит как полночь UTC; компоненты не должны
	// уезжать в предыдущий день.
	utcMidnight := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, NewDate(2026, time.January, 10), DateOf(utcMidnight))

	// Для локального значения берётся локальный день.
	loc := time.FixedZone("UTC-5", -5*3600)
	local := time.Date(2026, time.January, 10, 23, 30, 0, 0, loc)
	assert.Equal(t, NewDate(2026, time.January, 10), DateOf(local))
}

func TestDateComparison(t *testing.T) {
	a := NewDate(2026, time.May, 1)
	b := NewDate(2026, time.May, 2)
	c := NewDate(2026, time.May, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(c))
	assert.False(t, a.Equal(b))
	assert.True(t, b.IsFuture(a))
	assert.False(t, a.IsFuture(a))

	assert.True(t, NewDate(2025, time.December, 31).Before(NewDate(2026, time.January, 1)))
	assert.True(t, NewDate(2026, time.January, 31).Before(NewDate(2026, time.February, 1)))
}

func TestDateWeekday(t *testing.T) {
	// 2026-03-15 — воскресенье.
	assert.Equal(t, time.Sunday, NewDate(2026, time.March, 15).Weekday())
	assert.Equal(t, time.Monday, NewDate(2026, time.March, 16).Weekday())
}

func TestDateAt(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	date := NewDate(2026, time.March, 15)

	at := date.At(15*60, loc)
	assert.Equal(t, 15, at.Hour())
	assert.Equal(t, 0, at.Minute())
	assert.Equal(t, loc, at.Location())
}

func TestDateJSON(t *testing.T) {
	date := NewDate(2026, time.March, 5)

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-05"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, date.Equal(parsed))
}

func TestScope(t *testing.T) {
	general := GeneralScope()
	assert.True(t, general.IsGeneral())
	_, ok := general.Barber()
	assert.False(t, ok)
	assert.Equal(t, "general", general.String())

	scoped := BarberScope(7)
	assert.False(t, scoped.IsGeneral())
	id, ok := scoped.Barber()
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, "barber:7", scoped.String())
}

func TestScopeFor(t *testing.T) {
	assert.True(t, ScopeFor(nil).IsGeneral())

	barberID := int64(3)
	scope := ScopeFor(&barberID)
	id, ok := scope.Barber()
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)
}
