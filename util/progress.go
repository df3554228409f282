package util

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/docker/go-units"
	"github.com/schollz/progressbar/v3"
)

const progressBarWidth = 32

// TableProgress renders generation progress across table partitions:
// one bar tick per finished partition, with the running byte total and
// throughput in the description. Counters are safe for concurrent use;
// the bar itself only advances from PartDone.
type TableProgress struct {
	action string
	start  time.Time
	parts  atomic.Int32
	bytes  atomic.Int64
	bar    *progressbar.ProgressBar
}

// NewTableProgress creates a progress tracker over totalParts
// table partitions, rendering to stdout.
func NewTableProgress(totalParts int, action string) *TableProgress {
	p := &TableProgress{action: action, start: time.Now()}
	p.bar = progressbar.NewOptions(
		totalParts,
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription(p.describe()),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(progressBarWidth),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stdout)
		}),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[light_magenta]━",
			SaucerHead:    "[light_magenta]╸",
			SaucerPadding: "[dark_gray]━",
			BarStart:      "",
			BarEnd:        "[reset]",
		}),
	)
	return p
}

// AddBytes records bytes written to storage.
func (p *TableProgress) AddBytes(delta int64) {
	if delta != 0 {
		p.bytes.Add(delta)
	}
}

// PartDone advances the bar by one finished partition.
func (p *TableProgress) PartDone() {
	p.parts.Add(1)
	p.bar.Describe(p.describe())
	_ = p.bar.Add(1)
}

// Snapshot returns the finished-partition and byte counts so far.
func (p *TableProgress) Snapshot() (parts int64, bytes int64) {
	return int64(p.parts.Load()), p.bytes.Load()
}

func (p *TableProgress) describe() string {
	written := p.bytes.Load()
	elapsed := time.Since(p.start).Seconds()
	rate := float64(0)
	if elapsed > 0 {
		rate = float64(written) / elapsed
	}
	return fmt.Sprintf("%s %s (%s/s) ",
		p.action, units.BytesSize(float64(written)), units.BytesSize(rate))
}
