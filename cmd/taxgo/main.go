package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taxgo/itr-calculator/internal/calculation"
	"github.com/taxgo/itr-calculator/internal/config"
	"github.com/taxgo/itr-calculator/internal/domain"
	"github.com/taxgo/itr-calculator/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taxgo",
	Short: "Indian income-tax worksheet calculator",
	Long:  "Computes individual income-tax liability, advance-tax installments and 234B/234C interest for a fiscal year",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadAssessment parses the input file and applies CLI overrides.
func loadAssessment(cmd *cobra.Command, inputFile string) (*domain.Assessment, error) {
	parser := config.NewInputParser()
	assessment, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return nil, err
	}
	if regime, _ := cmd.Flags().GetString("regime"); regime != "" {
		assessment.Regime = domain.TaxRegime(regime)
	}
	return assessment, nil
}

func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.Debug = true
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Compute the full tax worksheet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		assessment, err := loadAssessment(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}

		ws, err := newEngine(cmd).GenerateWorksheet(assessment)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			log.Fatalf("unsupported format %q (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
		}

		// Binary formats go to a file, text to stdout.
		switch output.NormalizeFormatName(format) {
		case "pdf", "xlsx":
			name, err := output.WriteFormatted(f, ws, output.NormalizeFormatName(format))
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Wrote %s\n", name)
		default:
			data, err := f.Format(ws)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(string(data))
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an assessment file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Assessment file %s is valid\n", args[0])
	},
}

var regimesCmd = &cobra.Command{
	Use:   "regimes [input-file]",
	Short: "Compare tax liability under the old and new regimes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		assessment, err := loadAssessment(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}
		ws, err := newEngine(cmd).GenerateWorksheet(assessment)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("REGIME COMPARISON")
		fmt.Println(strings.Repeat("=", 50))
		for _, rc := range []domain.RegimeComputation{ws.OldRegime, ws.NewRegime} {
			fmt.Printf("%s regime:\n", strings.ToUpper(string(rc.Regime)))
			fmt.Printf("  Taxable ordinary income: %s\n", output.FormatINR(rc.TaxableOrdinary))
			fmt.Printf("  Slab tax:                %s\n", output.FormatINR(rc.SlabTax))
			fmt.Printf("  Special-rate tax:        %s\n", output.FormatINR(rc.SpecialRateTax))
			fmt.Printf("  Total (with cess):       %s\n", output.FormatINR(rc.TotalTax))
			fmt.Println()
		}
		fmt.Printf("Recommended: %s regime\n", strings.ToUpper(string(ws.Recommended)))
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule [input-file]",
	Short: "Show the advance-tax installment schedule",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		assessment, err := loadAssessment(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}
		ws, err := newEngine(cmd).GenerateWorksheet(assessment)
		if err != nil {
			log.Fatal(err)
		}

		if ws.AdvanceTaxExempt {
			fmt.Println("Taxpayer is exempt from advance tax.")
		}
		fmt.Printf("Advance tax due (assessed minus TDS): %s\n\n", output.FormatINR(ws.AdvanceTaxDue))
		fmt.Printf("%-12s %8s %16s %16s %14s %12s\n", "Due Date", "Target", "Required", "Paid", "Shortfall", "234C")
		for _, row := range ws.Schedule {
			fmt.Printf("%-12s %8s %16s %16s %14s %12s\n",
				row.DueDate.Format("02 Jan 2006"),
				output.FormatPercent(row.CumulativePercent),
				output.GroupINR(row.Required),
				output.GroupINR(row.Paid),
				output.GroupINR(row.Shortfall),
				output.GroupINR(row.Interest))
		}
		fmt.Printf("\nTotal 234C interest: %s\n", output.FormatINR(ws.Interest234C))
		fmt.Printf("Total 234B interest: %s\n", output.FormatINR(ws.Interest234B))
	},
}

func main() {
	calculateCmd.Flags().String("format", "console", "output format (console, json, csv, pdf, xlsx)")
	for _, cmd := range []*cobra.Command{calculateCmd, regimesCmd, scheduleCmd} {
		cmd.Flags().String("regime", "", "override regime selection (old, new, auto)")
		cmd.Flags().Bool("debug", false, "enable debug logging")
	}

	rootCmd.AddCommand(calculateCmd, validateCmd, regimesCmd, scheduleCmd, versionCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
