// Command clockshot renders a single clock frame to PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	xdraw "golang.org/x/image/draw"

	"matrixclock/face"
	"matrixclock/fonts"
	"matrixclock/hal"
	"matrixclock/internal/config"
	"matrixclock/render"
)

type memDisplay struct{ fb hal.Framebuffer }

func (d memDisplay) Framebuffer() hal.Framebuffer { return d.fb }

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file.")
		at         = flag.String("time", "", "Time of day as 15:04:05 (default now).")
		outPath    = flag.String("out", "clock.png", "Output PNG.")
		scale      = flag.Int("scale", 8, "Pixel scale.")
		rotations  = flag.Int("rotations", 0, "Rotate the palette N extra times first.")
		debug      = flag.Bool("debug", false, "Use the small font.")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("%v", err)
	}
	if *debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}

	tod, err := parseTime(*at, time.Now())
	if err != nil {
		fatalf("%v", err)
	}
	img, err := shoot(cfg, tod, *rotations, *scale)
	if err != nil {
		fatalf("%v", err)
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fatalf("%v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		fatalf("encode: %v", err)
	}
	if err := f.Close(); err != nil {
		fatalf("%v", err)
	}
}

func parseTime(s string, now time.Time) (face.TimeOfDay, error) {
	if s == "" {
		h, m, sec := now.Clock()
		return face.TimeOfDay{Hour: h, Minute: m, Second: sec}, nil
	}
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
	}
	if err != nil {
		return face.TimeOfDay{}, fmt.Errorf("bad -time %q: want 15:04:05", s)
	}
	h, m, sec := t.Clock()
	return face.TimeOfDay{Hour: h, Minute: m, Second: sec}, nil
}

// shoot renders tod the way the running clock would on a normal tick.
func shoot(cfg config.Config, tod face.TimeOfDay, rotations, scale int) (*image.RGBA, error) {
	font, err := fonts.ByName(cfg.FontName())
	if err != nil {
		return nil, err
	}
	fb := hal.NewMemFramebuffer(cfg.Width, cfg.Height)
	surface, err := render.NewSurface(memDisplay{fb}, font)
	if err != nil {
		return nil, err
	}
	painter, err := cfg.Painter()
	if err != nil {
		return nil, err
	}
	for i := 0; i < rotations; i++ {
		painter.Palette().Rotate()
	}

	r := face.Format(tod, false, cfg.Blink)
	glyphs := face.Layout(r, painter.Paint(r), font, cfg.Layout())
	if err := surface.Show(face.Frame{Background: painter.Palette().Background(), Glyphs: glyphs}); err != nil {
		return nil, err
	}

	c := render.NewCanvas(fb)
	src := image.NewRGBA(c.Bounds())
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			src.Set(x, y, c.At(x, y))
		}
	}
	if scale <= 1 {
		return src, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, fb.Width()*scale, fb.Height()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "clockshot: "+format+"\n", args...)
	os.Exit(1)
}
