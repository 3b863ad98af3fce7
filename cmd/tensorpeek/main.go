package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/tensorpeek/internal/config"
	"github.com/san-kum/tensorpeek/internal/load"
	"github.com/san-kum/tensorpeek/internal/watch"
	"github.com/san-kum/tensorpeek/pkg/peek"
	"github.com/san-kum/tensorpeek/pkg/render"
	"github.com/san-kum/tensorpeek/pkg/termcap"
	"github.com/san-kum/tensorpeek/pkg/view"
)

var (
	configFile string
	shape      string
	elem       string
	channel    int
	name       string
	maxRows    int
	maxCols    int
	ramp       string
	colorMode  string
	// demo parameters
	demoWidth    int
	demoHeight   int
	demoChannels int
	// stats parameters
	bins int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tensorpeek",
		Short: "terminal visualizer for numeric buffers",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&maxRows, "rows", 0, "max terminal lines (0 = config default)")
	rootCmd.PersistentFlags().IntVar(&maxCols, "cols", 0, "max columns (0 = config default)")
	rootCmd.PersistentFlags().StringVar(&ramp, "ramp", "", "glyph ramp preset or literal glyphs")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "color mode: auto, always, never")

	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "render a buffer file",
		Args:  cobra.ExactArgs(1),
		RunE:  renderFile,
	}
	renderCmd.Flags().StringVar(&shape, "shape", "", "raw file shape, comma separated (e.g. 64,64,3)")
	renderCmd.Flags().StringVar(&elem, "elem", "uint8", "raw element type: uint8, float32")
	renderCmd.Flags().IntVar(&channel, "channel", -1, "render a single channel")
	renderCmd.Flags().StringVar(&name, "name", "", "display name (default: file name)")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "render a generated gradient",
		RunE:  renderDemo,
	}
	demoCmd.Flags().IntVar(&demoWidth, "width", 64, "gradient width")
	demoCmd.Flags().IntVar(&demoHeight, "height", 64, "gradient height")
	demoCmd.Flags().IntVar(&demoChannels, "channels", 3, "gradient channels")
	demoCmd.Flags().IntVar(&channel, "channel", -1, "render a single channel")

	statsCmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "value histogram and summary for a buffer file",
		Args:  cobra.ExactArgs(1),
		RunE:  statsFile,
	}
	statsCmd.Flags().StringVar(&shape, "shape", "", "raw file shape, comma separated")
	statsCmd.Flags().StringVar(&elem, "elem", "uint8", "raw element type: uint8, float32")
	statsCmd.Flags().IntVar(&bins, "bins", 32, "histogram bins")

	watchCmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "live view re-rendering on file changes",
		Args:  cobra.ExactArgs(1),
		RunE:  watchFile,
	}
	watchCmd.Flags().StringVar(&shape, "shape", "", "raw file shape, comma separated")
	watchCmd.Flags().StringVar(&elem, "elem", "uint8", "raw element type: uint8, float32")

	rootCmd.AddCommand(renderCmd, demoCmd, statsCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves config file, flag overrides, and the log sink. Flags win
// over the config file, the config file over built-in defaults.
func setup(cmd *cobra.Command) (render.Options, termcap.Capability, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return render.Options{}, termcap.Capability{}, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("rows") || maxRows > 0 {
		cfg.MaxRows = maxRows
	}
	if cmd.Flags().Changed("cols") || maxCols > 0 {
		cfg.MaxCols = maxCols
	}
	if ramp != "" {
		cfg.Ramp = ramp
	}
	if colorMode != "" {
		cfg.Color = colorMode
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.Level()).With().Timestamp().Logger()

	opts, err := cfg.Options()
	if err != nil {
		return render.Options{}, termcap.Capability{}, err
	}
	colorCap, err := cfg.Capability()
	if err != nil {
		return render.Options{}, termcap.Capability{}, err
	}
	// Piped output gets no color even when COLORTERM claims support;
	// "always" still forces it through.
	if cfg.Color == "auto" && termcap.StdoutProfile() == termenv.Ascii {
		colorCap = termcap.Capability{}
	}
	return opts, colorCap, nil
}

func parseShape(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	dims := make([]int, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad shape %q: %w", s, err)
		}
		dims[i] = d
	}
	return dims, nil
}

func loadSource(path string) (view.Source, error) {
	dims, err := parseShape(shape)
	if err != nil {
		return nil, err
	}
	return load.File(path, load.Spec{Shape: dims, Elem: elem})
}

func renderFile(cmd *cobra.Command, args []string) error {
	opts, colorCap, err := setup(cmd)
	if err != nil {
		return err
	}
	opts.Color = colorCap

	src, err := loadSource(args[0])
	if err != nil {
		return err
	}
	v, err := src.View()
	if err != nil {
		return err
	}

	var out string
	if channel >= 0 {
		out, err = render.Channel(v, channel, name, opts)
	} else {
		out, err = render.Buffer(v, name, opts)
	}
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// makeGradient builds the demo tensor: red rises left to right, green top
// to bottom, blue diagonally, extras anti-diagonally.
func makeGradient(w, h, channels int) *view.Tensor {
	data := make([]float32, h*w*channels)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)+0.5, float64(y)+0.5
			base := (y*w + x) * channels
			if channels >= 1 {
				data[base] = float32(dx / float64(w))
			}
			if channels >= 2 {
				data[base+1] = float32(dy / float64(h))
			}
			if channels >= 3 {
				data[base+2] = float32((dx + dy) / float64(w+h))
			}
			for c := 3; c < channels; c++ {
				data[base+c] = float32((dx + float64(h) - dy) / float64(w+h))
			}
		}
	}
	return view.TensorFloat32([]int{1, h, w, channels}, data)
}

func renderDemo(cmd *cobra.Command, args []string) error {
	opts, colorCap, err := setup(cmd)
	if err != nil {
		return err
	}

	p := peek.New(log.Logger, opts).WithCapability(colorCap)
	src := makeGradient(demoWidth, demoHeight, demoChannels)
	if channel >= 0 {
		p.LogChannel(src, channel, "gradient")
	} else {
		p.Log(src, "gradient")
	}
	return nil
}

func statsFile(cmd *cobra.Command, args []string) error {
	if _, _, err := setup(cmd); err != nil {
		return err
	}

	src, err := loadSource(args[0])
	if err != nil {
		return err
	}
	v, err := src.View()
	if err != nil {
		return err
	}
	if view.Empty(v) {
		return fmt.Errorf("no data in %s", args[0])
	}

	h, w, c := v.Bounds()
	min, max, sum := math.Inf(1), math.Inf(-1), 0.0
	hist := make([]float64, bins)
	n := 0
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			for ch := 0; ch < c; ch++ {
				val := v.Sample(row, col, ch)
				if val < min {
					min = val
				}
				if val > max {
					max = val
				}
				sum += val
				idx := int(val * float64(bins-1))
				if idx < 0 {
					idx = 0
				}
				if idx >= bins {
					idx = bins - 1
				}
				hist[idx]++
				n++
			}
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "shape\t%s\n", view.ShapeString(v.Shape()))
	fmt.Fprintf(tw, "elements\t%d\n", n)
	fmt.Fprintf(tw, "min\t%.4f\n", min)
	fmt.Fprintf(tw, "max\t%.4f\n", max)
	fmt.Fprintf(tw, "mean\t%.4f\n", sum/float64(n))
	if err := tw.Flush(); err != nil {
		return err
	}

	graph := asciigraph.Plot(hist,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("value histogram (0..1)"),
	)
	fmt.Println()
	fmt.Println(graph)
	return nil
}

func watchFile(cmd *cobra.Command, args []string) error {
	opts, colorCap, err := setup(cmd)
	if err != nil {
		return err
	}
	opts.Color = colorCap

	dims, err := parseShape(shape)
	if err != nil {
		return err
	}

	m, err := watch.NewModel(args[0], load.Spec{Shape: dims, Elem: elem}, opts)
	if err != nil {
		return err
	}
	defer m.Close()

	prog := tea.NewProgram(m)
	if _, err := prog.Run(); err != nil {
		return err
	}
	return nil
}
