// Package tabu - the fixed-width per-run progress file.
//
// Column contract (one line per round):
//
//	step index        width  5
//	best score        width 13, 2 decimals for float scores
//	elapsed wall time formatted HHHH:MM:SS
//	last improvement  width 16 (round index of the last best update)
//
// The file is truncated when a Run starts and closed on every exit path,
// including early termination; the sink is injected per run, never global.
package tabu

import (
	"fmt"
	"os"
	"time"
)

// runLog is the scoped file sink behind Options.LogPath.
type runLog struct {
	f     *os.File
	start time.Time
}

// openRunLog truncates (or creates) the file at path and stamps the run's
// start time for the elapsed column.
func openRunLog(path string) (*runLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("tabu: open run log %s: %w", path, err)
	}
	return &runLog{f: f, start: time.Now()}, nil
}

// line appends one progress row. Write errors are ignored: logging never
// fails a run.
func (l *runLog) line(step int, bestScore any, lastImproved int) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.f, "%5d %s %s %16d\n",
		step, formatScore(bestScore), clock(time.Since(l.start)), lastImproved)
}

// close flushes and releases the file. Safe on nil.
func (l *runLog) close() {
	if l == nil {
		return
	}
	_ = l.f.Sync()
	_ = l.f.Close()
}

// clock renders a duration as HHHH:MM:SS.
func clock(d time.Duration) string {
	s := int64(d.Seconds())
	return fmt.Sprintf("%04d:%02d:%02d", s/3600, (s/60)%60, s%60)
}

// formatScore renders a score into the 13-wide column: two decimals for
// floats, plain width-13 rendering for other ordered types.
func formatScore(v any) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%13.2f", x)
	case float32:
		return fmt.Sprintf("%13.2f", x)
	case int:
		return fmt.Sprintf("%13d", x)
	case int64:
		return fmt.Sprintf("%13d", x)
	default:
		return fmt.Sprintf("%13v", x)
	}
}
