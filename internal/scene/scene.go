// Package scene holds the demo screens shown by the example programs.
//
// Every scene draws through the public ssd1322 API, so it runs the same on
// real hardware and on the ssd1322sim controller.
package scene

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/flavioheleno/ssd1322fb"
)

// Options configures the scenes.
type Options struct {
	// Delay between animation frames (default: 100ms).
	Delay time.Duration
	// Hold is how long "all" keeps each scene on screen (default: 3s).
	Hold time.Duration
	// FontSize of the TrueType line of the text scene, in pixels (default: 16).
	FontSize float64
	// ImagePath is the PNG or BMP shown by the image scene.
	ImagePath string
	// Frames is the number of refreshes of the stats scene (default: 5).
	Frames int
	// Sample collects the stats scene figures (default: SystemStats).
	Sample func(ctx context.Context) (Stats, error)
	// Logger traces scene progress. Nil discards.
	Logger *slog.Logger
}

func (o *Options) defaults() {
	if o.Delay <= 0 {
		o.Delay = 100 * time.Millisecond
	}
	if o.Hold <= 0 {
		o.Hold = 3 * time.Second
	}
	if o.FontSize <= 0 {
		o.FontSize = 16
	}
	if o.Frames <= 0 {
		o.Frames = 5
	}
	if o.Sample == nil {
		o.Sample = SystemStats
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
}

// Func draws one scene.
type Func func(ctx context.Context, d *ssd1322.Dev, o Options) error

// order is the sequence used by "all".
var order = []string{"gradient", "patterns", "text", "contrast", "scroll", "stats", "image"}

var scenes = map[string]Func{
	"gradient": Gradient,
	"patterns": Patterns,
	"text":     Text,
	"contrast": Contrast,
	"scroll":   Scroll,
	"stats":    StatsScene,
	"image":    Image,
}

// Names returns the scene names accepted by Run, "all" included.
func Names() []string {
	names := make([]string, 0, len(scenes)+1)
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, "all")
}

// Run draws the named scene. "all" draws every scene in turn, skipping the
// image scene when no image is configured, and clears the display at the
// end.
func Run(ctx context.Context, name string, d *ssd1322.Dev, o Options) error {
	o.defaults()
	if name != "all" {
		f, ok := scenes[name]
		if !ok {
			return fmt.Errorf("scene: unknown scene %q", name)
		}
		o.Logger.Info("scene", "name", name)
		return f(ctx, d, o)
	}
	for i, name := range order {
		if name == "image" && o.ImagePath == "" {
			continue
		}
		o.Logger.Info("scene", "name", name, "step", i+1, "of", len(order))
		if err := scenes[name](ctx, d, o); err != nil {
			return fmt.Errorf("scene %s: %w", name, err)
		}
		if err := wait(ctx, o.Hold); err != nil {
			return err
		}
	}
	d.Fill(0)
	return d.Flush()
}

// wait sleeps for t or until ctx is done.
func wait(ctx context.Context, t time.Duration) error {
	timer := time.NewTimer(t)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
