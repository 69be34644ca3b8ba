package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rtvm-report/internal/compare"
	"rtvm-report/internal/config"
	"rtvm-report/internal/dataset"
	"rtvm-report/internal/exporter"
	"rtvm-report/internal/exporter/word"
	"rtvm-report/internal/logger"
	"rtvm-report/internal/model"
	"rtvm-report/internal/report"
	"rtvm-report/internal/status"
	"rtvm-report/internal/subset"
	"rtvm-report/internal/ui"
)

const (
	appName    = "RTVM Report"
	appVersion = "1.0.0"
	appDesc    = "Verification status reporting for RTVM workbooks"
)

var (
	configPath   string
	verbose      bool
	showVersion  bool
	mode         string
	inputFile    string
	outputDir    string
	pmrNumber    int
	templateFile string
	formats      string
	compareWith  string
	sheetName    string

	objectFilter     string
	contractorFilter string
	governmentFilter string
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&mode, "mode", "report", "Operation: report, subsets, recombine, merge, compare, disagreements")
	flag.StringVar(&inputFile, "input", "", "Override RTVM workbook path from config")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.IntVar(&pmrNumber, "pmr", 0, "PMR number for the report folder structure")
	flag.StringVar(&templateFile, "template", "", "Override subset template workbook from config")
	flag.StringVar(&formats, "formats", "png,excel", "Comma-separated export formats (png,excel)")
	flag.StringVar(&compareWith, "with", "", "Second workbook for compare mode, or the subset workbook for merge mode")
	flag.StringVar(&sheetName, "sheet", "", "Sheet name for compare mode (default: first sheet)")
	flag.StringVar(&objectFilter, "object", "", "Only count rows with this Object Status")
	flag.StringVar(&contractorFilter, "contractor", "", "Only count rows with this Contractor Assessed Status")
	flag.StringVar(&governmentFilter, "government", "", "Only count rows with this Government Assessed Status")
}

func main() {
	// CRITICAL: Ensure "Press Enter to Exit" runs even on panic or error
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
		}
		waitForEnter()
	}()

	exitCode := run()
	os.Exit(exitCode)
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if inputFile != "" {
		cfg.Paths.InputFile = inputFile
	}
	if outputDir != "" {
		cfg.Paths.OutputDir = outputDir
	}
	if templateFile != "" {
		cfg.Paths.TemplateFile = templateFile
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		fmt.Printf("❌ Failed to create output directory: %v\n", err)
		return 1
	}

	logPath := filepath.Join(cfg.Paths.OutputDir, "rtvm_report.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if verbose {
		cfg.Print()
	}

	var runErr error
	switch mode {
	case "report":
		runErr = runReport(cfg)
	case "subsets":
		runErr = runSubsets(cfg)
	case "recombine":
		runErr = runRecombine(cfg)
	case "merge":
		runErr = runMerge(cfg)
	case "compare":
		runErr = runCompare(cfg)
	case "disagreements":
		runErr = runDisagreements(cfg)
	default:
		runErr = fmt.Errorf("unknown mode %q", mode)
	}
	if runErr != nil {
		logger.Error("%s failed: %v", mode, runErr)
		return 1
	}

	logger.Info("✅ Done. Check [%s] directory.", cfg.Paths.OutputDir)
	return 0
}

// waitForEnter pauses execution and waits for user to press Enter
// This prevents the console window from closing immediately when double-clicked
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func loadTable(cfg *config.Config) (*dataset.Table, error) {
	if cfg.Paths.InputFile == "" {
		return nil, fmt.Errorf("no input workbook specified (use -input or the config file)")
	}
	logger.Info("Loading %s...", cfg.Paths.InputFile)
	return dataset.Load(cfg.Paths.InputFile)
}

func runReport(cfg *config.Config) error {
	if pmrNumber <= 0 {
		return fmt.Errorf("a positive -pmr number is required for report mode")
	}

	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseLoading,
		ui.PhaseParsing,
		ui.PhaseExporting,
	})

	loadBar := pipeline.NextPhase(1)
	table, err := loadTable(cfg)
	if err != nil {
		return err
	}
	loadBar.Finish()

	cells := table.VerificationCells()
	logger.Info("Loaded %d rows from %s", len(cells), filepath.Base(table.Path))

	// Parse and aggregate on a background worker.
	parseBar := pipeline.NextPhase(len(cells))
	job := &report.Job{
		PMRNumber: pmrNumber,
		Groups:    cfg.SWBSGroups,
		Progress:  parseBar.Observer(),
		Log:       logger.Info,
	}
	res := <-job.Start(cells)
	parseBar.Finish()
	if res.Err != nil {
		return res.Err
	}
	logger.Info("Built %d chart datasets", len(res.Datasets))

	exportBar := pipeline.NextPhase(len(res.Datasets))
	exportJob := &exporter.Job{
		PMRNumber: pmrNumber,
		BaseDir:   cfg.Paths.OutputDir,
		Formats:   strings.Split(formats, ","),
		Progress:  exportBar.Observer(),
		Log:       logger.Info,
	}
	exportErr := <-exportJob.Start(res.Datasets)
	exportBar.Finish()
	pipeline.Finish()

	printSummary(table)
	return exportErr
}

// printSummary writes the per-dimension status counts and the combined
// overall status to the console.
func printSummary(table *dataset.Table) {
	all := table.StatusRecords()
	filtered := status.FilterRecords(all, objectFilter, contractorFilter, governmentFilter)

	fields := []model.StatusField{
		model.FieldObjectStatus,
		model.FieldContractorStatus,
		model.FieldGovernmentStatus,
	}
	for _, field := range fields {
		fmt.Printf("\n%s:\n", field)
		for _, c := range status.CountsTable(all, filtered, field) {
			fmt.Printf("  %-20s %d of %d\n", c.Status, c.Filtered, c.Total)
		}
	}

	overall := status.OverallStatusPerRow(filtered)
	counts := make(map[string]int)
	var order []string
	for _, s := range overall {
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}
	fmt.Printf("\nOverall Status (%d rows):\n", len(overall))
	for _, s := range order {
		fmt.Printf("  %-20s %d\n", s, counts[s])
	}
}

func runSubsets(cfg *config.Config) error {
	if pmrNumber <= 0 {
		return fmt.Errorf("a positive -pmr number is required for subsets mode")
	}
	table, err := loadTable(cfg)
	if err != nil {
		return err
	}

	mgr := subset.NewManager(cfg.SWBSGroups, logger.Info)
	paths, err := mgr.CreateSubsets(table, cfg.Paths.TemplateFile, cfg.Paths.OutputDir, pmrNumber)
	if err != nil {
		return err
	}
	logger.Info("Created %d subset workbooks", len(paths))
	return nil
}

func runRecombine(cfg *config.Config) error {
	if pmrNumber <= 0 {
		return fmt.Errorf("a positive -pmr number is required for recombine mode")
	}
	outPath := filepath.Join(cfg.Paths.OutputDir, fmt.Sprintf("PMR %d - Recombined RTVM.xlsx", pmrNumber))

	mgr := subset.NewManager(cfg.SWBSGroups, logger.Info)
	combined, err := mgr.Recombine(cfg.Paths.OutputDir, pmrNumber, outPath)
	if err != nil {
		return err
	}
	logger.Info("Recombined %d rows into %s", len(combined.Rows), outPath)
	return nil
}

func runMerge(cfg *config.Config) error {
	if compareWith == "" {
		return fmt.Errorf("merge mode needs a subset workbook (-with)")
	}
	table, err := loadTable(cfg)
	if err != nil {
		return err
	}

	mgr := subset.NewManager(cfg.SWBSGroups, logger.Info)
	merged, err := mgr.MergeSubset(table, compareWith)
	if err != nil {
		return err
	}

	base := filepath.Base(cfg.Paths.InputFile)
	outPath := filepath.Join(cfg.Paths.OutputDir,
		strings.TrimSuffix(base, filepath.Ext(base))+" - Merged.xlsx")
	if err := mgr.Save(table, outPath); err != nil {
		return err
	}
	logger.Info("Merged %d rows, wrote %s", merged, outPath)
	return nil
}

func runCompare(cfg *config.Config) error {
	if cfg.Paths.InputFile == "" || compareWith == "" {
		return fmt.Errorf("compare mode needs an input workbook and -with")
	}
	logger.Info("Comparing %s against %s...", cfg.Paths.InputFile, compareWith)

	diffs, err := compare.Workbooks(cfg.Paths.InputFile, compareWith, sheetName)
	if err != nil {
		return err
	}
	if len(diffs) == 0 {
		logger.Info("No differences found.")
		return nil
	}

	outPath := filepath.Join(cfg.Paths.OutputDir, "Comparison Results.xlsx")
	if err := compare.SaveResults(diffs, cfg.Paths.InputFile, compareWith, outPath); err != nil {
		return err
	}
	logger.Info("Found %d differences, saved to %s", len(diffs), outPath)
	return nil
}

func runDisagreements(cfg *config.Config) error {
	table, err := loadTable(cfg)
	if err != nil {
		return err
	}

	outDir := cfg.Paths.DisagreementReports
	if outDir == "" {
		outDir = filepath.Join(cfg.Paths.OutputDir, "Disagreement Reports")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	builder := word.NewBuilder(word.Meta{
		CompanyName:           cfg.Report.CompanyName,
		ContractNumber:        cfg.Report.ContractNumber,
		DistributionStatement: cfg.Report.DistributionStatement,
		DestructionNotice:     cfg.Report.DestructionNotice,
	})

	bar := ui.NewProgressBar(ui.PhaseExporting, 1)
	logger.Attach(func(line string) {
		bar.Describe(line)
	})
	job := &word.Job{
		Builder:  builder,
		Groups:   cfg.SWBSGroups,
		OutDir:   outDir,
		Progress: bar.Observer(),
		Log:      logger.Info,
	}
	written, err := job.Run(table)
	bar.Finish()
	if err != nil {
		return err
	}
	logger.Info("Wrote %d disagreement reports to %s", len(written), outDir)
	return nil
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                    RTVM REPORT v1.0.0                     ║
║       Verification Status Reporting for RTVM Data         ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
