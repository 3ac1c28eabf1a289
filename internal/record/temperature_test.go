package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemperature(t *testing.T) {
	tests := []struct {
		in   string
		want Temperature
	}{
		{"36.5", 365},
		{" 38 ", 380},
		{"37.25", 373},
		{"38.2°C", 382},
		{"39.0℃", 390},
		{"37.2", 372},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTemperature(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTemperature_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "NaN", "Inf", "37,5", "1e30", "-1e30", "1000.1"} {
		_, err := ParseTemperature(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseTemperature_LargeValueNeverWraps(t *testing.T) {
	got, err := ParseTemperature("1000")
	require.NoError(t, err)
	assert.Equal(t, Temperature(10000), got)
	assert.False(t, got.InDomain())
	assert.Equal(t, Danger, Classify(got, DefaultDangerLimit))

	_, err = ParseTemperature("1e30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestParseTemperature_RoundsHalfAwayFromZero(t *testing.T) {
	for in, want := range map[string]Temperature{"37.55": 376, "36.45": 365} {
		got, err := ParseTemperature(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestTemperature_String(t *testing.T) {
	assert.Equal(t, "36.5", Temperature(365).String())
	assert.Equal(t, "38.0", Temperature(380).String())
	assert.Equal(t, "-0.3", Temperature(-3).String())
	assert.Equal(t, "0.0", Temperature(0).String())
	assert.Equal(t, "+0.7", Temperature(7).Signed())
	assert.Equal(t, "-1.2", Temperature(-12).Signed())
	assert.Equal(t, "0.0", Temperature(0).Signed())
}

func TestTemperature_InDomain(t *testing.T) {
	assert.True(t, Temperature(300).InDomain())
	assert.True(t, Temperature(420).InDomain())
	assert.False(t, Temperature(299).InDomain())
	assert.False(t, Temperature(421).InDomain())
}

func TestTemperature_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		T Temperature `json:"t"`
	}{T: 380})
	require.NoError(t, err)
	assert.JSONEq(t, `{"t": 38.0}`, string(data))

	var out struct {
		T Temperature `json:"t"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"t": 37.9}`), &out))
	assert.Equal(t, Temperature(379), out.T)
}
