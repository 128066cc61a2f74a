package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pavanmanishd/slicegrow"
	"github.com/pavanmanishd/slicegrow/internal/telemetry"
)

func simulate(t *testing.T, count int) Report {
	t.Helper()
	events, err := slicegrow.Simulate(count, 0)
	require.NoError(t, err)
	return Report{
		Count:     count,
		Threshold: slicegrow.GrowthThreshold,
		Events:    events,
		Summary:   Summarize(count, 0, events),
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		initial int
		want    Summary
	}{
		{
			name:  "empty",
			count: 0,
			want:  Summary{},
		},
		{
			name:  "single growth from empty",
			count: 1,
			want:  Summary{Reallocations: 1, FinalCapacity: 1},
		},
		{
			name:  "doubling only",
			count: 1000,
			want: Summary{
				Reallocations:  11,
				FinalCapacity:  1024,
				ElementsCopied: 1023,
				MinRatio:       2,
				MaxRatio:       2,
				Overhead:       24.0 / 1024,
			},
		},
		{
			name:  "past the threshold",
			count: 1500,
			want: Summary{
				Reallocations:  13,
				FinalCapacity:  1600,
				ElementsCopied: 3327,
				MinRatio:       1.25,
				MaxRatio:       2,
				Overhead:       100.0 / 1600,
			},
		},
		{
			name:    "pre-sized",
			count:   10,
			initial: 16,
			want:    Summary{FinalCapacity: 16, Overhead: 6.0 / 16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := slicegrow.Simulate(tt.count, tt.initial)
			require.NoError(t, err)

			got := Summarize(tt.count, tt.initial, events)
			assert.Equal(t, tt.want.Reallocations, got.Reallocations)
			assert.Equal(t, tt.want.FinalCapacity, got.FinalCapacity)
			assert.Equal(t, tt.want.ElementsCopied, got.ElementsCopied)
			assert.InDelta(t, tt.want.MinRatio, got.MinRatio, 1e-9)
			assert.InDelta(t, tt.want.MaxRatio, got.MaxRatio, 1e-9)
			assert.InDelta(t, tt.want.Overhead, got.Overhead, 1e-9)
		})
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, simulate(t, 2000), Options{}))

	out := buf.String()
	assert.Contains(t, out, "Growth: 2,000 appends, initial capacity 0, threshold 1,024")
	for _, header := range []string{"LEN", "OLD CAP", "NEW CAP", "RATIO"} {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "1,025")
	assert.Contains(t, out, "1.25")
	assert.Contains(t, out, "Reallocations:    14")
	assert.Contains(t, out, "Elements copied:  4,927")
	assert.Contains(t, out, "Ratio range:      1.25 - 2.00")
	assert.NotContains(t, out, "Metrics:")
	assert.NotContains(t, out, "\x1b[", "colors are off by default")

	// The first growth has no ratio. tabby underlines the header.
	lines := strings.Split(out, "\n")
	var first string
	for i, l := range lines {
		if strings.HasPrefix(l, "LEN") {
			first = lines[i+2]
			break
		}
	}
	assert.Equal(t, []string{"1", "0", "1", "-"}, strings.Fields(first))
}

func TestRenderTextColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, simulate(t, 10), Options{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestRenderTextMetrics(t *testing.T) {
	r := simulate(t, 10)
	r.Metrics = []telemetry.Sample{
		{Name: "slicegrow_array_reallocations_total", Labels: "array=sim", Value: 5},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, r, Options{}))
	assert.Contains(t, buf.String(), "Metrics:")
	assert.Contains(t, buf.String(), "slicegrow_array_reallocations_total")
	assert.Contains(t, buf.String(), "array=sim")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, simulate(t, 2000), Options{}))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2000, got.Count)
	require.Len(t, got.Events, 14)
	assert.Equal(t, slicegrow.ReallocationEvent{PriorCapacity: 1024, NewCapacity: 1280, ResultingLength: 1025}, got.Events[11])
	assert.Equal(t, 2000, got.Summary.FinalCapacity)
	assert.Empty(t, got.Metrics)
	assert.NotContains(t, buf.String(), `"metrics"`)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, simulate(t, 100), Options{}))
	assert.Contains(t, buf.String(), "priorCapacity: 64")

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 100, got.Count)
	assert.Len(t, got.Events, 8)
	assert.Equal(t, 128, got.Summary.FinalCapacity)
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Format("xml"), simulate(t, 1), Options{})
	assert.EqualError(t, err, `unknown output format "xml"`)
	assert.Zero(t, buf.Len())

	err = RenderComparison(&buf, Format("csv"), Comparison{}, Options{})
	assert.EqualError(t, err, `unknown output format "csv"`)
}

func TestRenderComparison(t *testing.T) {
	model, err := slicegrow.Simulate(100, 0)
	require.NoError(t, err)
	c := Comparison{
		Count: 100,
		Model: model,
		Builtin: []slicegrow.ReallocationEvent{
			{PriorCapacity: 0, NewCapacity: 1, ResultingLength: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderComparison(&buf, FormatText, c, Options{}))
	out := buf.String()
	assert.Contains(t, out, "Model vs runtime: 100 appends")
	assert.Contains(t, out, "RUNTIME CAP")

	// One row per model event; the shorter side is padded.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "8", strings.Fields(lines[len(lines)-1])[0])

	buf.Reset()
	require.NoError(t, RenderComparison(&buf, FormatJSON, c, Options{}))
	var got Comparison
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, c, got)
}
