package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gobayes/adapters/excel"
	"gobayes/app"
	"gobayes/domain/bayes"
	"gobayes/internal/figure"
	"gobayes/internal/report"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobayes-cli",
		Short: "Bayes factor computation following Dienes 2014",
	}

	rootCmd.AddCommand(
		newComputeCmd(),
		newBatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// specFlags holds the alternative hypothesis flags shared by subcommands
type specFlags struct {
	family     string
	h1Value    float64
	uniformMin float64
	uniformMax float64
	normalMode float64
	normalSD   float64
	half       string
}

func (f *specFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.family, "family", "", "H1 distribution family: uniform, normal or half-normal")
	cmd.Flags().Float64Var(&f.h1Value, "h1-value", 0, "estimated data mean under H1 (single-value shortcut)")
	cmd.Flags().Float64Var(&f.uniformMin, "uniform-min", 0, "minimum of the uniform H1 distribution")
	cmd.Flags().Float64Var(&f.uniformMax, "uniform-max", 0, "maximum of the uniform H1 distribution")
	cmd.Flags().Float64Var(&f.normalMode, "normal-mode", 0, "mode of the normal or half-normal H1 distribution")
	cmd.Flags().Float64Var(&f.normalSD, "normal-sd", 0, "SD of the normal or half-normal H1 distribution")
	cmd.Flags().StringVar(&f.half, "half", "", "half of the normal distribution to use: upper or lower")
	_ = cmd.MarkFlagRequired("family")
}

// spec builds the H1Spec, only passing parameters the user actually set
func (f *specFlags) spec(cmd *cobra.Command) bayes.H1Spec {
	spec := bayes.H1Spec{Family: bayes.Family(f.family), Half: bayes.Half(f.half)}
	if cmd.Flags().Changed("h1-value") {
		spec.FromValue = &f.h1Value
	}
	if cmd.Flags().Changed("uniform-min") {
		spec.UniformMin = &f.uniformMin
	}
	if cmd.Flags().Changed("uniform-max") {
		spec.UniformMax = &f.uniformMax
	}
	if cmd.Flags().Changed("normal-mode") {
		spec.NormalMode = &f.normalMode
	}
	if cmd.Flags().Changed("normal-sd") {
		spec.NormalSD = &f.normalSD
	}
	return spec
}

func newComputeCmd() *cobra.Command {
	var (
		flags   specFlags
		mean    float64
		se      float64
		samples []float64
		h0      float64
		plot    bool
		summary bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a Bayes factor for one dataset",
		Long: `Compute a Bayes factor comparing an alternative hypothesis H1 against
the point null hypothesis H0 that the mean equals --h0 (default 0).

The data is given either as --mean and --se, or as raw observations via
--samples (mean and SE are then computed from the samples).

Example: gobayes-cli compute --mean 0.5 --se 0.25 --family normal --h1-value 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.AnalysisRequest{Spec: flags.spec(cmd), H0: h0}
			if len(samples) > 0 {
				req.Samples = samples
			} else {
				if !cmd.Flags().Changed("se") {
					return fmt.Errorf("either --samples or both --mean and --se are required")
				}
				req.Data = &bayes.DataSummary{Mean: mean, SE: se}
			}

			service := app.NewAnalysisService(nil, 1)
			analysis, err := service.Evaluate(context.Background(), req)
			if err != nil {
				return err
			}

			if summary {
				fmt.Println(analysis.Result.Summary())
			}
			if plot {
				fig := figure.Build(analysis.Data, analysis.Result.H1, analysis.H0)
				if err := printJSON(fig); err != nil {
					return err
				}
			}
			if jsonOut {
				return printJSON(analysis)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&mean, "mean", 0, "mean of the observed data")
	cmd.Flags().Float64Var(&se, "se", 0, "standard error of the data mean")
	cmd.Flags().Float64SliceVar(&samples, "samples", nil, "raw observations (comma-separated)")
	cmd.Flags().Float64Var(&h0, "h0", 0, "value of the mean under the null hypothesis")
	cmd.Flags().BoolVar(&plot, "plot", false, "emit the figure description as JSON")
	cmd.Flags().BoolVar(&summary, "summary", true, "print the one-line evidence summary")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the full analysis as JSON")

	return cmd
}

func newBatchCmd() *cobra.Command {
	var (
		flags       specFlags
		sheet       string
		columns     []string
		h0          float64
		concurrency int
		markdown    bool
	)

	cmd := &cobra.Command{
		Use:   "batch [workbook.xlsx]",
		Short: "Compute Bayes factors for every sample column in a workbook",
		Long: `Evaluate each numeric column of an Excel workbook as an independent
dataset against the same alternative hypothesis.

Example: gobayes-cli batch results.xlsx --family half-normal --h1-value 0.3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols, err := excel.NewReader(args[0]).WithSheet(sheet).ReadColumns(columns...)
			if err != nil {
				return err
			}

			spec := flags.spec(cmd)
			reqs := make([]app.AnalysisRequest, len(cols))
			for i, col := range cols {
				reqs[i] = app.AnalysisRequest{
					Label:   col.Name,
					Samples: col.Values,
					Spec:    spec,
					H0:      h0,
				}
			}

			service := app.NewAnalysisService(nil, concurrency)
			analyses, err := service.EvaluateBatch(context.Background(), reqs)
			if err != nil {
				return err
			}

			if markdown {
				fmt.Print(report.Markdown(analyses))
				return nil
			}
			for _, a := range analyses {
				fmt.Printf("%s: %s\n", a.Label, a.Result.Summary())
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&sheet, "sheet", "Sheet1", "worksheet to read")
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "columns to evaluate (default: all)")
	cmd.Flags().Float64Var(&h0, "h0", 0, "value of the mean under the null hypothesis")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent evaluations")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "emit a markdown report")

	return cmd
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
