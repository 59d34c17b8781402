package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestEstimateRemaining(t *testing.T) {
	tts := []struct {
		name          string
		printDuration *float64
		progress      *float64
		expected      *float64
	}{
		{"half way", ptr(600.0), ptr(0.5), ptr(600.0)},
		{"quarter", ptr(100.0), ptr(0.25), ptr(300.0)},
		{"done", ptr(3600.0), ptr(1.0), ptr(0.0)},
		{"no progress", ptr(600.0), ptr(0.0), nil},
		{"negative progress", ptr(600.0), ptr(-0.1), nil},
		{"progress above one", ptr(600.0), ptr(2.0), nil},
		{"missing duration", nil, ptr(0.5), nil},
		{"missing progress", ptr(600.0), nil, nil},
		{"nan duration", ptr(math.NaN()), ptr(0.5), nil},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateRemaining(tt.printDuration, tt.progress)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.InDelta(t, *tt.expected, *got, 0.0001)
			}
		})
	}
}

func TestLayerLabel(t *testing.T) {
	assert.Equal(t, "12 / 240", LayerLabel(ptr(12), ptr(240)))
	assert.Equal(t, "12", LayerLabel(ptr(12), nil))
	assert.Equal(t, "N/A", LayerLabel(nil, ptr(240)))
	assert.Equal(t, "N/A", LayerLabel(nil, nil))

	status := MoonrakerStatus{CurrentLayer: ptr(3), TotalLayer: ptr(10)}
	assert.Equal(t, "3 / 10", status.LayerLabel())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "N/A", FormatDuration(nil))
	assert.Equal(t, "N/A", FormatDuration(ptr(0.0)))
	assert.Equal(t, "N/A", FormatDuration(ptr(-5.0)))
	assert.Equal(t, "N/A", FormatDuration(ptr(math.Inf(1))))
	assert.Equal(t, "0 min", FormatDuration(ptr(30.0)))
	assert.Equal(t, "5 min", FormatDuration(ptr(300.0)))
	assert.Equal(t, "1 h 0 min", FormatDuration(ptr(3600.0)))
	assert.Equal(t, "2 h 5 min", FormatDuration(ptr(7530.0)))
}

func TestNormalizeMoonrakerUrl(t *testing.T) {
	assert.Nil(t, NormalizeMoonrakerUrl(nil))
	assert.Nil(t, NormalizeMoonrakerUrl(ptr("   ")))
	assert.Equal(t, "http://printer.local", *NormalizeMoonrakerUrl(ptr(" http://printer.local/ ")))
	assert.Equal(t, "http://10.0.0.2:7125", *NormalizeMoonrakerUrl(ptr("http://10.0.0.2:7125//")))
}

func TestPrinterTimelineStatus(t *testing.T) {
	assert.Equal(t, "offline", Printer{}.TimelineStatus())
	assert.Equal(t, "printing", Printer{Status: "Printing"}.TimelineStatus())
	assert.False(t, Printer{Status: "Offline"}.IsActive())
	assert.True(t, Printer{Status: "standby"}.IsActive())
}
