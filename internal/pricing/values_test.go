package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usd(price string) map[string]string {
	return map[string]string{"USD": price}
}

func TestParseInstanceValue(t *testing.T) {
	tests := []struct {
		name      string
		v         ValueColumn
		class     string
		wantSkip  bool
		wantTerm  string
		wantRates Rates
		wantErr   error
	}{
		{
			name:      "on demand linux",
			v:         ValueColumn{Name: "linux", Prices: usd("0.130")},
			class:     "On Demand",
			wantTerm:  "od",
			wantRates: Rates{"hourly": "0.130"},
		},
		{
			name:     "on demand mswin skipped",
			v:        ValueColumn{Name: "mswin", Prices: usd("0.230")},
			class:    "On Demand",
			wantSkip: true,
		},
		{
			name:     "on demand unknown os skipped",
			v:        ValueColumn{Name: "rhel", Prices: usd("0.190")},
			class:    "On Demand",
			wantSkip: true,
		},
		{
			name:      "reserved hourly",
			v:         ValueColumn{Name: "yrTerm1Hourly", Rate: "perhr", Prices: usd("0.016")},
			class:     "Heavy Utilization",
			wantTerm:  "1y",
			wantRates: Rates{"hourly": "0.016"},
		},
		{
			name:      "reserved upfront",
			v:         ValueColumn{Name: "yrTerm3", Prices: usd("1200")},
			class:     "Light Utilization",
			wantTerm:  "3y",
			wantRates: Rates{"upfront": "1200"},
		},
		{
			name:      "ebs optimized surcharge",
			v:         ValueColumn{Name: "ebsOptimized", Prices: usd("0.025")},
			class:     "EBS Optimized",
			wantTerm:  "eo",
			wantRates: Rates{"hourly": "0.025"},
		},
		{
			name:    "reserved unknown name",
			v:       ValueColumn{Name: "yrTerm5", Prices: usd("1")},
			class:   "Medium Utilization",
			wantErr: ErrKeyLookup,
		},
		{
			name:    "reserved missing name",
			v:       ValueColumn{Prices: usd("1")},
			class:   "Medium Utilization",
			wantErr: ErrSchemaShape,
		},
		{
			name:    "on demand linux without price",
			v:       ValueColumn{Name: "linux", Prices: map[string]string{"EUR": "0.1"}},
			class:   "On Demand",
			wantErr: ErrSchemaShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseInstanceValue(tt.v, tt.class, "USD")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, res.Skipped())
			if !tt.wantSkip {
				assert.Equal(t, tt.wantTerm, res.Term)
				assert.Equal(t, tt.wantRates, res.Rates)
			}
		})
	}
}

func TestParseEBSValue(t *testing.T) {
	res, err := ParseEBSValue(ValueColumn{Rate: "perGBmoDataStored", Prices: usd("0.095")}, "USD")
	require.NoError(t, err)
	assert.False(t, res.Skipped())
	assert.Equal(t, "gb", res.Term)
	assert.Equal(t, Rates{"monthly": "0.095"}, res.Rates)

	res, err = ParseEBSValue(ValueColumn{Rate: "perMMIOreq", Prices: usd("0.10")}, "USD")
	require.NoError(t, err)
	assert.Equal(t, "MIOR", res.Term)

	_, err = ParseEBSValue(ValueColumn{Rate: "perGBmoSnap", Prices: usd("0.1")}, "USD")
	assert.ErrorIs(t, err, ErrKeyLookup)

	_, err = ParseEBSValue(ValueColumn{Prices: usd("0.1")}, "USD")
	assert.ErrorIs(t, err, ErrSchemaShape)
}

func TestParseS3Value(t *testing.T) {
	res, err := ParseS3Value(ValueColumn{Type: "reducedRedundancyStorage", Prices: usd("0.076")}, "USD")
	require.NoError(t, err)
	assert.Equal(t, "RRS", res.Term)
	assert.Equal(t, Rates{"monthly": "0.076"}, res.Rates)

	_, err = ParseS3Value(ValueColumn{Type: "standardIA", Prices: usd("0.0125")}, "USD")
	assert.ErrorIs(t, err, ErrKeyLookup)
}

func TestMergeValue(t *testing.T) {
	t.Run("different categories are combined", func(t *testing.T) {
		entry := CostEntry{}
		mergeValue(entry, Parsed("1y", Rates{"upfront": "300"}))
		mergeValue(entry, Parsed("1y", Rates{"hourly": "0.016"}))
		assert.Equal(t, CostEntry{"1y": Rates{"upfront": "300", "hourly": "0.016"}}, entry)
	})

	t.Run("same category is overwritten by the later value", func(t *testing.T) {
		entry := CostEntry{}
		mergeValue(entry, Parsed("gb", Rates{"monthly": "0.10"}))
		mergeValue(entry, Parsed("gb", Rates{"monthly": "0.095"}))
		assert.Equal(t, CostEntry{"gb": Rates{"monthly": "0.095"}}, entry)
	})

	t.Run("skip leaves entry untouched", func(t *testing.T) {
		entry := CostEntry{"od": Rates{"hourly": "0.13"}}
		mergeValue(entry, Skip())
		assert.Equal(t, CostEntry{"od": Rates{"hourly": "0.13"}}, entry)
	})

	t.Run("merged rates do not alias the parsed result", func(t *testing.T) {
		entry := CostEntry{}
		parsed := Rates{"hourly": "0.5"}
		mergeValue(entry, Parsed("3y", parsed))
		parsed["hourly"] = "9"
		assert.Equal(t, "0.5", entry["3y"]["hourly"])
	})
}

func TestIsOnDemand(t *testing.T) {
	assert.True(t, IsOnDemand("On Demand"))
	assert.False(t, IsOnDemand("on demand"))
	assert.False(t, IsOnDemand("Heavy Utilization"))
	assert.False(t, IsOnDemand("EBS Optimized"))
}
