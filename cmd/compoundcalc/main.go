package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/isday/compound-calculator/internal/api"
	"github.com/isday/compound-calculator/internal/calculation"
	"github.com/isday/compound-calculator/internal/config"
	"github.com/isday/compound-calculator/internal/domain"
	"github.com/isday/compound-calculator/internal/i18n"
	"github.com/isday/compound-calculator/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand
type app struct {
	out     io.Writer
	errOut  io.Writer
	verbose bool
	logger  calculation.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, logger: calculation.NopLogger{}}

	root := &cobra.Command{
		Use:   "compoundcalc",
		Short: "Compound interest projection calculator",
		Long: `compoundcalc projects how an investment grows under annual compounding,
compares named scenarios from a YAML file, evaluates calculator expressions
and serves the same engine over HTTP.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level})
			a.logger = calculation.NewSlogLogger(slog.New(handler))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		a.projectCmd(),
		a.runCmd(),
		a.evalCmd(),
		a.serveCmd(),
		a.exampleConfigCmd(),
	)
	return root
}

func (a *app) engine(maxPeriods int) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if maxPeriods > 0 {
		engine.MaxPeriods = maxPeriods
	}
	engine.Debug = a.verbose
	engine.SetLogger(a.logger)
	return engine
}

func (a *app) projectCmd() *cobra.Command {
	var (
		principal, rate, periods float64
		lang, format, name       string
		maxPeriods               int
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single investment",
		Example: `  compoundcalc project --principal 1000000 --rate 5 --periods 10
  compoundcalc project --principal 1000000 --rate 5 --periods 10 --lang en --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !i18n.IsSupportedCode(lang) {
				return fmt.Errorf("language %q is not supported (use ko, en or ja)", lang)
			}
			engine := a.engine(maxPeriods)

			if format == "" || format == "table" {
				result, err := engine.ProjectValues(principal, rate, periods)
				if err != nil {
					return err
				}
				return writeProjection(a.out, calculation.Summarize(name, result), lang)
			}

			cfg := &domain.Configuration{
				Display: domain.DisplaySettings{Language: lang},
				Scenarios: []domain.Scenario{{
					Name:              name,
					Principal:         principal,
					AnnualRatePercent: rate,
					Periods:           periods,
				}},
			}
			results, err := engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			data, err := output.Render(results, format)
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		},
	}
	cmd.Flags().Float64Var(&principal, "principal", 0, "Investment principal")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Annual interest rate in percent (5 means 5%)")
	cmd.Flags().Float64Var(&periods, "periods", 0, "Number of yearly periods (fractions are truncated)")
	cmd.Flags().StringVar(&lang, "lang", i18n.Code(i18n.DefaultTag()), "Display language (ko, en, ja)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or any report format")
	cmd.Flags().StringVar(&name, "name", "Projection", "Scenario name used in reports")
	cmd.Flags().IntVar(&maxPeriods, "max-periods", domain.DefaultMaxPeriods, "Reject projections longer than this")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("periods")
	return cmd
}

// writeProjection prints the headline figures followed by the row table.
func writeProjection(w io.Writer, sc *domain.ScenarioSummary, lang string) error {
	l := i18n.Default().LocalizerFor(lang)
	fmt.Fprintf(w, "%s: %s\n", l.T("summary.final_amount"), l.Money(sc.Result.FinalAmount))
	fmt.Fprintf(w, "%s: %s (%s)\n", l.T("summary.total_income"), l.Money(sc.TotalIncome), l.Percent(sc.IncomeRatePercent))
	fmt.Fprintf(w, "%s: %s\n\n", l.T("summary.doubling"), output.DoublingText(sc.DoublingPeriod, l))
	return output.WriteRowTable(w, sc.Result, lang)
}

func (a *app) runCmd() *cobra.Command {
	var format, outputDir string
	cmd := &cobra.Command{
		Use:   "run <config.yaml>",
		Short: "Run every scenario of a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			results, err := a.engine(cfg.Limits.MaxPeriods).RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("run scenarios: %w", err)
			}

			if outputDir == "" && format != "all" {
				data, err := output.Render(results, format)
				if err != nil {
					return err
				}
				_, err = a.out.Write(data)
				return err
			}

			paths, err := output.GenerateReport(results, format, outputDir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(a.out, "Report written to %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console",
		"Report format ("+strings.Join(output.AvailableFormatterNames(), ", ")+", all)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Write a timestamped report file into this directory")
	return cmd
}

func (a *app) evalCmd() *cobra.Command {
	var percent bool
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a calculator expression",
		Example: `  compoundcalc eval "1,000 × 1.05"
  compoundcalc eval --percent "50"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			eval := calculation.Evaluate
			if percent {
				eval = calculation.EvaluatePercent
			}
			v, err := eval(expr)
			if err != nil {
				a.logger.Debugf("evaluate %q: %v", expr, err)
				fmt.Fprintln(a.out, i18n.Default().LocalizerFor("en").T("error.invalid_expression"))
				return nil
			}
			fmt.Fprintln(a.out, v.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&percent, "percent", false, "Divide the result by 100")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API (configured from COMPOUND_* environment variables)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			if cfg.IsProduction() {
				gin.SetMode(gin.ReleaseMode)
			}

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           api.NewRouter(cfg, a.logger),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Infof("starting API server on %s", cfg.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-cmd.Context().Done():
				a.logger.Infof("shutting down API server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
}

func (a *app) exampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [path]",
		Short: "Write an example scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "example_config.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, path); err != nil {
				return fmt.Errorf("write example configuration: %w", err)
			}
			fmt.Fprintf(a.out, "Example configuration written to %s\n", path)
			return nil
		},
	}
}
