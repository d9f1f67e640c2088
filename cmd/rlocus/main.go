package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/rlocus/internal/analysis"
	"github.com/san-kum/rlocus/internal/config"
	"github.com/san-kum/rlocus/internal/export"
	"github.com/san-kum/rlocus/internal/locus"
	"github.com/san-kum/rlocus/internal/logger"
	"github.com/san-kum/rlocus/internal/storage"
	"github.com/san-kum/rlocus/internal/tui"
	"github.com/san-kum/rlocus/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	theme      string
	// System
	poles []string
	zeros []string
	// Scan window
	xMin       float64
	xMax       float64
	yMin       float64
	yMax       float64
	resolution int
	tolerance  float64
	// Breakaway search
	searchMin float64
	searchMax float64
	samples   int
	step      float64
	// Output
	scanFormat   string
	renderFormat string
	outPath      string
	width        int
	height       int
	save         bool
	// Gain profile
	profileSamples int
	clip           float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "rlocus",
		Short:         "root-locus analysis lab",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rlocus", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "study file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset system")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "cyberpunk", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "compute every landmark of a study",
		Args:  cobra.NoArgs,
		RunE:  analyzeStudy,
	}
	studyFlags(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&save, "save", true, "store the run in the data directory")

	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "sample the locus on a grid",
		Args:  cobra.NoArgs,
		RunE:  scanStudy,
	}
	studyFlags(scanCmd)
	scanCmd.Flags().StringVar(&scanFormat, "format", "csv", "output format ("+strings.Join(scanFormats, ", ")+")")
	scanCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot the gain K(σ) along the real axis",
		Args:  cobra.NoArgs,
		RunE:  profileStudy,
	}
	studyFlags(profileCmd)
	profileCmd.Flags().IntVar(&profileSamples, "points", 120, "profile samples")
	profileCmd.Flags().Float64Var(&clip, "clip", 50, "clip |K| above this value")

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "draw a study or a stored run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderStudy,
	}
	studyFlags(renderCmd)
	renderCmd.Flags().StringVar(&renderFormat, "format", "terminal", "output format ("+strings.Join(renderFormats, ", ")+")")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().IntVar(&width, "width", 0, "width (cells for terminal, pixels otherwise)")
	renderCmd.Flags().IntVar(&height, "height", 0, "height (cells for terminal, pixels otherwise)")

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "interactive viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  viewStudy,
	}
	studyFlags(viewCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset systems",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a study file",
		Args:  cobra.ExactArgs(1),
		RunE:  initStudy,
	}

	rootCmd.AddCommand(analyzeCmd, scanCmd, profileCmd, renderCmd, viewCmd, listCmd, showCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func studyFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceVar(&poles, "poles", nil, "open-loop poles, e.g. 0,-2,-1+1i")
	f.StringSliceVar(&zeros, "zeros", nil, "open-loop zeros")
	f.Float64Var(&xMin, "xmin", config.DefaultXMin, "scan window real minimum")
	f.Float64Var(&xMax, "xmax", config.DefaultXMax, "scan window real maximum")
	f.Float64Var(&yMin, "ymin", config.DefaultYMin, "scan window imaginary minimum")
	f.Float64Var(&yMax, "ymax", config.DefaultYMax, "scan window imaginary maximum")
	f.IntVar(&resolution, "resolution", config.DefaultResolution, "scan grid points per axis")
	f.Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "angle-condition tolerance (degrees)")
	f.Float64Var(&searchMin, "search-min", config.DefaultSearchMin, "breakaway search minimum")
	f.Float64Var(&searchMax, "search-max", config.DefaultSearchMax, "breakaway search maximum")
	f.IntVar(&samples, "samples", config.DefaultSamples, "breakaway search samples")
	f.Float64Var(&step, "step", locus.DefaultDerivativeStep, "central-difference step for dK/ds")
}

// loadStudy resolves the study: defaults, then preset, then study file,
// then explicit flags.
func loadStudy(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("poles") {
		cfg.Name = "custom"
		cfg.System.Poles = poles
		cfg.System.Zeros = nil
	}
	if flags.Changed("zeros") {
		cfg.System.Zeros = zeros
	}
	if flags.Changed("xmin") {
		cfg.Scan.XMin = xMin
	}
	if flags.Changed("xmax") {
		cfg.Scan.XMax = xMax
	}
	if flags.Changed("ymin") {
		cfg.Scan.YMin = yMin
	}
	if flags.Changed("ymax") {
		cfg.Scan.YMax = yMax
	}
	if flags.Changed("resolution") {
		cfg.Scan.Resolution = resolution
	}
	if flags.Changed("tolerance") {
		cfg.Scan.Tolerance = tolerance
	}
	if flags.Changed("search-min") {
		cfg.Breakaway.Min = searchMin
	}
	if flags.Changed("search-max") {
		cfg.Breakaway.Max = searchMax
	}
	if flags.Changed("samples") {
		cfg.Breakaway.Samples = samples
	}
	if flags.Changed("step") {
		cfg.Breakaway.Step = step
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid study: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *logger.Logger {
	return logger.New(&cfg.Logging).WithCommand(cmd.Name()).WithStudy(cfg.Name)
}

// runStudy loads the study and computes its report.
func runStudy(cmd *cobra.Command) (*analysis.Report, *logger.Logger, error) {
	cfg, err := loadStudy(cmd)
	if err != nil {
		return nil, nil, err
	}
	log := newLogger(cmd, cfg)

	set, err := cfg.PoleZeroSet()
	if err != nil {
		return nil, log, err
	}

	log.Debugw("running analysis",
		"poles", cfg.System.Poles,
		"zeros", cfg.System.Zeros,
		"resolution", cfg.Scan.Resolution,
		"tolerance_deg", cfg.Scan.Tolerance,
	)
	start := time.Now()
	report, err := analysis.Run(cfg.Name, set, analysis.OptionsFrom(cfg))
	if err != nil {
		return nil, log, err
	}
	log.Debugw("analysis done",
		"elapsed", time.Since(start),
		"samples", len(report.Locus),
		"breakaway", report.Breakaway,
	)
	for outcome, n := range report.Probes {
		if outcome != locus.ProbeNoSignChange {
			log.Debugw("breakaway probes", "outcome", outcome, "count", n)
		}
	}
	return report, log, nil
}

// reportFor loads a stored run when one is named and computes the study
// otherwise.
func reportFor(cmd *cobra.Command, args []string) (*analysis.Report, *logger.Logger, error) {
	if len(args) == 0 {
		return runStudy(cmd)
	}
	log := logger.New(&config.LoggingConfig{Level: logLevel}).WithCommand(cmd.Name())
	st := storage.New(dataDir)
	report, err := st.LoadReport(args[0])
	if err != nil {
		return nil, log, err
	}
	log.Debugw("loaded run", "id", args[0], "samples", len(report.Locus))
	return report, log, nil
}

func analyzeStudy(cmd *cobra.Command, args []string) error {
	report, log, err := runStudy(cmd)
	if log != nil {
		defer log.Sync()
	}
	if err != nil {
		return err
	}

	fmt.Print(viz.Summary(report, viz.GetTheme(theme)))

	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(report)
	if err != nil {
		return err
	}
	log.Infow("run saved", "id", runID, "dir", filepath.Join(dataDir, runID))
	fmt.Printf("\nsaved: %s\n", runID)
	return nil
}

var (
	scanFormats   = []string{"csv", "json"}
	renderFormats = []string{"terminal", "svg", "png", "pdf", "json"}
)

func checkFormat(format string, known []string) error {
	for _, f := range known {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown format: %s (available: %s)", format, strings.Join(known, ", "))
}

func scanStudy(cmd *cobra.Command, args []string) error {
	if err := checkFormat(scanFormat, scanFormats); err != nil {
		return err
	}
	cfg, err := loadStudy(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	defer log.Sync()

	set, err := cfg.PoleZeroSet()
	if err != nil {
		return err
	}
	pts, err := set.ScanTolerance(cfg.ScanX(), cfg.ScanY(), cfg.Scan.Resolution, locus.Degrees(cfg.Scan.Tolerance))
	if err != nil {
		return err
	}
	log.Debugw("scan done", "grid", cfg.Scan.Resolution*cfg.Scan.Resolution, "accepted", len(pts))

	out, closeOut, err := openOutput(outPath)
	if err != nil {
		return err
	}
	if err := writeScan(out, pts, scanFormat); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func writeScan(out io.Writer, pts []complex128, format string) error {
	switch format {
	case "csv":
		w := csv.NewWriter(out)
		if err := w.Write([]string{"re", "im"}); err != nil {
			return err
		}
		for _, p := range pts {
			row := []string{
				strconv.FormatFloat(real(p), 'f', 6, 64),
				strconv.FormatFloat(imag(p), 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	case "json":
		data := make([]analysis.Point, len(pts))
		for i, p := range pts {
			data[i] = analysis.PointOf(p)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	default:
		return checkFormat(format, scanFormats)
	}
}

func profileStudy(cmd *cobra.Command, args []string) error {
	cfg, err := loadStudy(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)
	defer log.Sync()

	set, err := cfg.PoleZeroSet()
	if err != nil {
		return err
	}
	span := locus.Interval{Min: cfg.Breakaway.Min, Max: cfg.Breakaway.Max}
	profile, err := analysis.GainProfile(set, span, profileSamples)
	if err != nil {
		return err
	}

	data := make([]float64, len(profile))
	gaps := 0
	for i, pt := range profile {
		switch {
		case pt.Err != nil:
			data[i] = math.NaN()
			gaps++
		case math.Abs(pt.Gain) > clip:
			data[i] = math.Copysign(clip, pt.Gain)
		default:
			data[i] = pt.Gain
		}
	}
	log.Debugw("profile done", "samples", len(profile), "gaps", gaps)

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("K(σ) for σ in [%g, %g], |K| clipped at %g", span.Min, span.Max, clip)),
	)
	fmt.Println(graph)
	fmt.Println()

	fmt.Printf("%-12s %12s  %s\n", "σ", "K", "kind")
	for i := 1; i+1 < len(profile); i++ {
		a, b, c := profile[i-1], profile[i], profile[i+1]
		if a.Err != nil || b.Err != nil || c.Err != nil || !b.OnLocus {
			continue
		}
		switch {
		case b.Gain >= a.Gain && b.Gain > c.Gain:
			fmt.Printf("%-12.4f %12.5g  %s\n", b.Sigma, b.Gain, "local max (breakaway)")
		case b.Gain <= a.Gain && b.Gain < c.Gain:
			fmt.Printf("%-12.4f %12.5g  %s\n", b.Sigma, b.Gain, "local min (break-in)")
		}
	}
	return nil
}

func renderStudy(cmd *cobra.Command, args []string) error {
	if err := checkFormat(renderFormat, renderFormats); err != nil {
		return err
	}
	report, log, err := reportFor(cmd, args)
	if log != nil {
		defer log.Sync()
	}
	if err != nil {
		return err
	}

	// plot files go through gonum plot, which picks the encoder from the
	// extension
	if renderFormat == "pdf" || (renderFormat == "png" && outPath != "") {
		return savePlot(report, outPath, renderFormat)
	}

	out, closeOut, err := openOutput(outPath)
	if err != nil {
		return err
	}
	if err := writeRender(out, report, renderFormat); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func savePlot(report *analysis.Report, path, format string) error {
	if path == "" {
		return fmt.Errorf("format %s needs --out", format)
	}
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); !strings.EqualFold(ext, format) {
		return fmt.Errorf("output %s does not match format %s", path, format)
	}
	w, h := orDefault(width, 600), orDefault(height, 600)
	return export.SavePlot(path, report, pixels(w), pixels(h))
}

func writeRender(out io.Writer, report *analysis.Report, format string) error {
	switch format {
	case "terminal":
		w, h := orDefault(width, 100), orDefault(height, 30)
		th := viz.GetTheme(theme)
		fmt.Fprint(out, viz.RenderReport(report, w, h, viz.AllLayers, th))
		fmt.Fprintln(out)
		_, err := fmt.Fprint(out, viz.Summary(report, th))
		return err
	case "svg":
		w, h := orDefault(width, 800), orDefault(height, 800)
		_, err := io.WriteString(out, export.LocusToSVG(report, w, h))
		return err
	case "png":
		w, h := orDefault(width, 600), orDefault(height, 600)
		return export.WritePNG(out, report, pixels(w), pixels(h))
	case "json":
		return export.WriteJSON(out, report)
	default:
		return checkFormat(format, renderFormats)
	}
}

// pixels converts a pixel count to vg points at the 96 dpi PNGs render at.
func pixels(n int) vg.Length {
	return vg.Length(n) * vg.Inch / 96
}

func viewStudy(cmd *cobra.Command, args []string) error {
	report, log, err := reportFor(cmd, args)
	if log != nil {
		defer log.Sync()
	}
	if err != nil {
		return err
	}
	return tui.Run(report, theme)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tPOLES\tZEROS\tBREAKAWAY\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Report.Poles),
			len(run.Report.Zeros),
			len(run.Report.Breakaway),
			run.Samples,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	report, err := st.LoadReport(args[0])
	if err != nil {
		return err
	}

	th := viz.GetTheme(theme)
	fmt.Printf("run: %s (%s)\n\n", meta.ID, meta.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Print(viz.RenderReport(report, 100, 30, viz.AllLayers, th))
	fmt.Println()
	fmt.Print(viz.Summary(report, th))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPOLES\tZEROS")
	for _, name := range names {
		sys := config.Presets[name]
		z := strings.Join(sys.Zeros, ", ")
		if z == "" {
			z = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(sys.Poles, ", "), z)
	}
	return w.Flush()
}

func initStudy(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s", preset)
		}
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
