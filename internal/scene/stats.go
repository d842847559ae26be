package scene

import (
	"context"
	"fmt"
	"time"

	"github.com/flavioheleno/ssd1322fb"
	"github.com/flavioheleno/ssd1322fb/glyph"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats are the figures of the stats scene.
type Stats struct {
	Hostname string
	Uptime   time.Duration
	CPU      float64 // percent
	Memory   float64 // percent used
}

// SystemStats samples the local machine.
func SystemStats(ctx context.Context) (Stats, error) {
	var s Stats
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return s, fmt.Errorf("scene: host info: %w", err)
	}
	s.Hostname = info.Hostname
	s.Uptime = time.Duration(info.Uptime) * time.Second

	if v, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(v) > 0 {
		s.CPU = v[0]
	}
	if m, err := mem.VirtualMemoryWithContext(ctx); err == nil && m != nil {
		s.Memory = m.UsedPercent
	}
	return s, nil
}

// StatsScene refreshes host name, uptime, CPU and memory load o.Frames
// times, o.Delay apart.
func StatsScene(ctx context.Context, d *ssd1322.Dev, o Options) error {
	o.defaults()
	font := glyph.Basic()
	for i := 0; i < o.Frames; i++ {
		s, err := o.Sample(ctx)
		if err != nil {
			return err
		}
		drawStats(d, font, s)
		if err := d.Flush(); err != nil {
			return err
		}
		if i == o.Frames-1 {
			break
		}
		if err := wait(ctx, o.Delay); err != nil {
			return err
		}
	}
	return nil
}

func drawStats(d *ssd1322.Dev, font *glyph.Table, s Stats) {
	b := d.Bounds()
	lh := font.Height()
	d.Fill(0)
	d.DrawString(0, 0, s.Hostname, font)
	d.DrawString(0, lh, "up "+s.Uptime.Truncate(time.Second).String(), font)

	labelW := font.Width("mem ")
	barW := b.Dx() - labelW - 1
	for i, row := range []struct {
		label string
		pct   float64
	}{
		{"cpu ", s.CPU},
		{"mem ", s.Memory},
	} {
		y := (2 + i) * lh
		d.DrawString(0, y, row.label, font)
		d.DrawRect(labelW, y+2, barW, lh-4, 6)
		d.FillRect(labelW+1, y+3, int(float64(barW-2)*clampPct(row.pct)/100), lh-6, 15)
	}
}

func clampPct(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}
