package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/Contomo/Infinity-Polyhedra/internal/config"
	"github.com/Contomo/Infinity-Polyhedra/internal/diag"
	"github.com/Contomo/Infinity-Polyhedra/internal/mapping"
	"github.com/Contomo/Infinity-Polyhedra/internal/render"
	"github.com/Contomo/Infinity-Polyhedra/internal/strip"
)

var (
	simOnly bool
	preview bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build the sculpture and drive its strips until interrupted",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().BoolVar(&simOnly, "sim-only", false, "force simulation (no hardware output)")
	runCmd.Flags().BoolVar(&preview, "preview", false, "draw each frame to a local preview")
	rootCmd.AddCommand(runCmd)
}

// openChannels builds one output channel per strip, falling back to
// simulation per channel when its port cannot be opened.
func openChannels(cfg *config.Config, strips int) []strip.Channel {
	chans := make([]strip.Channel, strips)
	for s := 0; s < strips; s++ {
		if cfg.Driver != "spi" || simOnly {
			chans[s] = &strip.SimChannel{}
			continue
		}
		if s > 0 {
			// config names a single SPI device
			log.Warn().Int("strip", s).Msg("no SPI device for extra strip; using SIM")
			chans[s] = &strip.SimChannel{}
			continue
		}
		dev := cfg.SPI.Dev
		ch, err := strip.OpenSPI(dev, physic.Frequency(cfg.SPI.SpeedHz)*physic.Hertz)
		if err != nil {
			log.Warn().Err(err).Int("strip", s).Str("dev", dev).
				Msg("SPI init failed; falling back to SIM")
			chans[s] = &strip.SimChannel{}
			continue
		}
		ch.Reset = time.Duration(cfg.SPI.ResetUs) * time.Microsecond
		chans[s] = ch
	}
	return chans
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if cfg.Driver == "spi" && !simOnly {
		if _, err := host.Init(); err != nil {
			log.Warn().Err(err).Msg("host init failed; forcing SIM")
			simOnly = true
		}
	}

	p, err := buildSolid(cfg)
	if err != nil {
		return err
	}
	diag.LogSummary(log.Logger, p, cfg.Solid.Kind)

	m, err := mapping.New(p, mapping.Options{
		LedsLongestEdge: cfg.Mapping.LedsLongestEdge,
		EdgeMap:         cfg.Mapping.EdgeMap,
		FlipMap:         cfg.Mapping.FlipMap,
		Log:             log.Logger,
	})
	if err != nil {
		return err
	}

	chans := openChannels(cfg, cfg.Render.Strips)
	rend, err := render.New(m.TotalPixels(), cfg.Render.Strips, chans, render.Options{
		ColorOrder: cfg.Render.ColorOrder,
		Gamma:      cfg.Render.Gamma,
		MaxAlloc:   cfg.Render.MaxAlloc,
		Log:        log.Logger,
	})
	if err != nil {
		return err
	}

	var view *strip.Preview
	if preview {
		view = strip.NewPreview(m.TotalPixels())
	}

	log.Info().
		Str("solid", cfg.Solid.Kind).
		Int("pixels", m.TotalPixels()).
		Int("strips", cfg.Render.Strips).
		Int("fps", cfg.Render.FPS).
		Msg("render loop starting")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Render.FPS))
	defer ticker.Stop()

	var frame uint32
	var snap []byte
	for {
		select {
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			rend.Shutdown()
			for _, ch := range chans {
				_ = ch.Close()
			}
			return nil
		case <-ticker.C:
			drawEdgeRainbow(rend, m, uint8(frame))
			if err := rend.UpdateLeds(); err != nil {
				log.Error().Err(err).Msg("frame transfer failed")
			}
			if view != nil {
				snap = rend.Snapshot(snap[:0])
				if err := view.Draw(snap); err != nil {
					log.Warn().Err(err).Msg("preview draw failed; disabling")
					view = nil
				}
			}
			frame++
		}
	}
}

// drawEdgeRainbow sweeps the hue circle along each edge, offset per edge so
// neighboring edges stay distinguishable on the sculpture.
func drawEdgeRainbow(rend *render.Renderer, m *mapping.Mapping, base uint8) {
	for e, info := range m.EdgeInfo() {
		idx := info.Start
		for i := 0; i < info.Count; i++ {
			hue := base + uint8(e*8) + uint8(i*4)
			r, g, b := render.HSVToRGBRainbow(hue, 255, 255)
			rend.SetPixel(idx, r, g, b)
			idx += info.Step
		}
	}
}
