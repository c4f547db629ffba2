package search_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenlsi/solidgo/search"
)

// TestEvery covers the interval gate, including the disabled case.
func TestEvery(t *testing.T) {
	assert.True(t, search.Every(100, 100))
	assert.True(t, search.Every(200, 100))
	assert.False(t, search.Every(150, 100))
	assert.False(t, search.Every(100, 0), "non-positive interval disables reporting")
	assert.False(t, search.Every(100, -1))
}

// TestWriterReporter_SnapshotBlock verifies the upstream multi-line block,
// with the temperature line only for engines that own one.
func TestWriterReporter_SnapshotBlock(t *testing.T) {
	var buf bytes.Buffer
	r := search.NewWriterReporter(&buf)

	r.Report(search.Snapshot{
		Algorithm:   "SIMULATED ANNEALING",
		Step:        300,
		Temperature: 34.5,
		BestLabel:   "ENERGY",
		Best:        1.25,
		BestState:   "x=1.1",
	})

	out := buf.String()
	assert.Contains(t, out, "SIMULATED ANNEALING: \n")
	assert.Contains(t, out, "CURRENT STEPS: 300 \n")
	assert.Contains(t, out, "CURRENT TEMPERATURE: 34.5 \n")
	assert.Contains(t, out, "BEST ENERGY: 1.25 \n")
	assert.Contains(t, out, "BEST STATE: x=1.1 \n")
	assert.NotContains(t, out, "TERMINATING", "non-final snapshots carry no notice")
}

// TestWriterReporter_FinalNotice verifies the termination notice and the
// suppressed temperature line for NaN.
func TestWriterReporter_FinalNotice(t *testing.T) {
	var buf bytes.Buffer
	r := search.NewWriterReporter(&buf)

	r.Report(search.Snapshot{
		Algorithm:   "TABU SEARCH",
		Step:        42,
		Temperature: math.NaN(),
		BestLabel:   "SCORE",
		Best:        5,
		BestState:   "clout",
		Final:       true,
		Reason:      search.ReachedMaxScore,
	})

	out := buf.String()
	assert.NotContains(t, out, "CURRENT TEMPERATURE")
	assert.True(t, strings.HasSuffix(out, "TERMINATING - REACHED MAXIMUM SCORE\n"))
}

// TestLogReporter_Fields verifies the structured event carries the snapshot
// fields and the final reason.
func TestLogReporter_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r := search.NewLogReporter(logger)

	r.Report(search.Snapshot{
		Algorithm:   "TABU SEARCH",
		Step:        7,
		Temperature: math.NaN(),
		BestLabel:   "SCORE",
		Best:        3,
		BestState:   "claut",
		Final:       true,
		Reason:      search.NoSuitableNeighbors,
	})

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"step":7`)
	assert.Contains(t, out, `"best":3`)
	assert.Contains(t, out, `"best_state":"claut"`)
	assert.Contains(t, out, `"reason":"NO SUITABLE NEIGHBORS"`)
	assert.NotContains(t, out, "temperature")
}
