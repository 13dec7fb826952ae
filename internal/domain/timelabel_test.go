package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeLabel(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "15:00", want: 15 * 60},
		{input: "07:00", want: 7 * 60},
		{input: "7:00", want: 7 * 60},
		{input: "00:00", want: 0},
		{input: "23:00", want: 23 * 60},
		{input: "3:00 PM", want: 15 * 60},
		{input: "7:00 AM", want: 7 * 60},
		{input: "12:00 PM", want: 12 * 60},
		{input: "12:00 AM", want: 0},
		{input: "11:00 PM", want: 23 * 60},
		{input: "3:00 pm", want: 15 * 60},
		{input: " 15:00 ", want: 15 * 60},
		{input: "", wantErr: true},
		{input: "24:00", wantErr: true},
		{input: "13:00 PM", wantErr: true},
		{input: "0:00 AM", wantErr: true},
		{input: "abc", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			label, err := ParseTimeLabel(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, label.MinuteOfDay())
		})
	}
}

func TestTimeLabelRoundTrip(t *testing.T) {
	// Для каждого целого часа оба строковых вида разбираются обратно
	// в ту же метку.
	for hour := 0; hour < 24; hour++ {
		label := LabelFromHour(hour)

		from24, err := ParseTimeLabel(label.Format24())
		require.NoError(t, err)
		assert.True(t, label.Equal(from24), "24h round trip for %d", hour)

		from12, err := ParseTimeLabel(label.String())
		require.NoError(t, err)
		assert.True(t, label.Equal(from12), "12h round trip for %d", hour)
	}
}

func TestTimeLabelString(t *testing.T) {
	assert.Equal(t, "7:00 AM", LabelFromHour(7).String())
	assert.Equal(t, "12:00 PM", LabelFromHour(12).String())
	assert.Equal(t, "12:00 AM", LabelFromHour(0).String())
	assert.Equal(t, "3:00 PM", LabelFromHour(15).String())
	assert.Equal(t, "11:00 PM", LabelFromHour(23).String())

	assert.Equal(t, "07:00", LabelFromHour(7).Format24())
	assert.Equal(t, "15:00", LabelFromHour(15).Format24())
	assert.Equal(t, "00:00", LabelFromHour(0).Format24())
}

func TestLabelFromMinutes(t *testing.T) {
	label, err := LabelFromMinutes(930)
	require.NoError(t, err)
	assert.Equal(t, 15, label.Hour())

	_, err = LabelFromMinutes(-1)
	assert.Error(t, err)
	_, err = LabelFromMinutes(1440)
	assert.Error(t, err)
}

func TestTimeLabelOrdering(t *testing.T) {
	morning := LabelFromHour(9)
	evening := LabelFromHour(19)

	assert.True(t, morning.Before(evening))
	assert.False(t, evening.Before(morning))
	assert.True(t, morning.Equal(LabelFromHour(9)))
}

func TestContainsLabel(t *testing.T) {
	labels := []TimeLabel{LabelFromHour(9), LabelFromHour(10)}

	assert.True(t, ContainsLabel(labels, LabelFromHour(9)))
	assert.False(t, ContainsLabel(labels, LabelFromHour(11)))
	assert.False(t, ContainsLabel(nil, LabelFromHour(9)))
}

func TestParseTimeLabels(t *testing.T) {
	labels, err := ParseTimeLabels([]string{"09:00", "", "3:00 PM", " "})
	require.NoError(t, err)
	require.Len(t, labels, 2)
	assert.Equal(t, 9*60, labels[0].MinuteOfDay())
	assert.Equal(t, 15*60, labels[1].MinuteOfDay())

	_, err = ParseTimeLabels([]string{"09:00", "bad"})
	assert.Error(t, err)
}
