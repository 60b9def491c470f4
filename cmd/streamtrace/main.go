package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/streamtrace/internal/config"
	"github.com/san-kum/streamtrace/internal/logging"
	"github.com/san-kum/streamtrace/internal/storage"
	"github.com/san-kum/streamtrace/internal/tracer"
	"github.com/spf13/cobra"
)

var (
	dataDir  string
	logLevel string
	// Trace overrides
	preset    string
	stepSize  float64
	maxSteps  int
	direction int
	workers   int
	noSave    bool
	// Export target
	outPath string

	logger = logging.NewNop()
)

// main registers the streamtrace commands and exits with status 1 when a
// command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "streamtrace",
		Short:         "streamline tracer for gridded vector fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger = logging.New(lvl)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".streamtrace", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	traceCmd := &cobra.Command{
		Use:   "trace [config.yaml]",
		Short: "trace streamlines from a config file or preset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  traceRun,
	}
	traceCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	traceCmd.Flags().Float64Var(&stepSize, "step-size", 0, "integration step size")
	traceCmd.Flags().IntVar(&maxSteps, "max-steps", 0, "step budget per direction")
	traceCmd.Flags().IntVar(&direction, "direction", 1, "1 forward, -1 backward, 0 both")
	traceCmd.Flags().IntVar(&workers, "workers", 0, "worker count (0 = all cpus)")
	traceCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run with its lines as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [preset]",
		Short: "time a preset trace serially and on the worker pool",
		Args:  cobra.ExactArgs(1),
		RunE:  benchPreset,
	}

	rootCmd.AddCommand(traceCmd, listCmd, showCmd, exportCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func traceRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args, preset)
	if err != nil {
		return err
	}
	applyOverrides(cmd, cfg)

	logger.Info("tracing", "config", cfg.String())

	start := time.Now()
	res, err := runTrace(cfg, logger)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	meta := buildMetadata(cfg, res)

	lines := []string{
		titleStyle.Render(cfg.Name),
		row("field", cfg.Field.Kind),
		row("seeds", len(res.Seeds)),
		row("elapsed", elapsed.Round(time.Microsecond)),
	}

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return fmt.Errorf("init store: %w", err)
		}
		runID, err := st.Save(meta, res.Lines)
		if err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		lines = append(lines, row("run id", runID))
	}

	lines = append(lines, "", titleStyle.Render("terminations"))
	lines = append(lines, statusLines(meta.Terminations)...)

	lines = append(lines, "", titleStyle.Render("metrics"))
	for _, name := range sortedKeys(meta.Metrics) {
		lines = append(lines, row(name, fmt.Sprintf("%.6f", meta.Metrics[name])))
	}

	fmt.Println(panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	return nil
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
	fmt.Fprintln(w, "ID\tFIELD\tTIME\tSEEDS\tDIR\tSTEP\tMAX")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%g\t%d\n",
			run.ID,
			run.Field,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			len(run.Seeds),
			run.Direction,
			run.StepSize,
			run.MaxSteps,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return fmt.Errorf("load run %s: %w", runID, err)
	}

	lines := []string{
		titleStyle.Render(meta.ID),
		row("field", meta.Field),
		row("time", meta.Timestamp.Format("2006-01-02 15:04:05")),
		row("direction", meta.Direction),
		row("step size", meta.StepSize),
		row("max steps", meta.MaxSteps),
		row("seeds", len(meta.Seeds)),
		"",
		titleStyle.Render("terminations"),
	}
	lines = append(lines, statusLines(meta.Terminations)...)
	fmt.Println(panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))

	if len(meta.NPoints) == 0 {
		return nil
	}

	data := make([]float64, len(meta.NPoints))
	for i, n := range meta.NPoints {
		data[i] = float64(n)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("points per seed"),
	)
	fmt.Println()
	fmt.Println(graph)

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return fmt.Errorf("load run %s: %w", runID, err)
	}
	lines, err := st.LoadLines(runID)
	if err != nil {
		return fmt.Errorf("load lines %s: %w", runID, err)
	}

	if outPath == "" {
		return storage.ExportJSON(os.Stdout, *meta, lines)
	}
	if err := storage.ExportJSONFile(outPath, *meta, lines); err != nil {
		return err
	}
	logger.Info("exported", "run", runID, "path", outPath)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		fmt.Fprintf(w, "%s\t%s\n", name, config.GetPreset(name).String())
	}
	return w.Flush()
}

func benchPreset(cmd *cobra.Command, args []string) error {
	cfg := config.GetPreset(args[0])
	if cfg == nil {
		return fmt.Errorf("unknown preset %q", args[0])
	}

	cfg.Trace.Workers = 1
	start := time.Now()
	serial, err := runTrace(cfg, logger)
	if err != nil {
		return err
	}
	serialTime := time.Since(start)

	cfg.Trace.Workers = 0
	start = time.Now()
	if _, err := runTrace(cfg, logger); err != nil {
		return err
	}
	poolTime := time.Since(start)

	points := 0
	for _, l := range serial.Lines {
		points += len(l)
	}

	fmt.Printf("preset: %s\n", cfg.Name)
	fmt.Printf("seeds: %d, points: %d\n", len(serial.Seeds), points)
	fmt.Printf("serial: %v\n", serialTime)
	fmt.Printf("pool:   %v\n", poolTime)
	if poolTime > 0 {
		fmt.Printf("speedup: %.2fx\n", float64(serialTime)/float64(poolTime))
	}
	return nil
}

func statusLines(terms [][]int) []string {
	counts := make(map[tracer.Status]int)
	for _, codes := range terms {
		for _, c := range codes {
			s, err := tracer.StatusFromCode(c)
			if err != nil {
				logger.Warn("unknown termination code", "code", c)
				continue
			}
			counts[s]++
		}
	}

	var out []string
	for _, s := range []tracer.Status{tracer.OutOfBounds, tracer.RanOutOfSteps, tracer.NonFinite} {
		out = append(out, statusRow(s, counts[s]))
	}
	return out
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
