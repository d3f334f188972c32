package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/timeseries-at-ytg/saxvsm"
	"github.com/timeseries-at-ytg/saxvsm/format"
)

// params mirrors the classifier options in a YAML-friendly shape. Zero/empty
// fields keep the library defaults.
type params struct {
	NBins    int    `yaml:"n_bins"`
	Strategy string `yaml:"strategy"`
	Alphabet string `yaml:"alphabet"`

	// Window size and step accept either an integer symbol count or a
	// fraction of the series length in (0, 1].
	WindowSize float64 `yaml:"window_size"`
	WindowStep float64 `yaml:"window_step"`

	NumerosityReduction *bool `yaml:"numerosity_reduction"`
	UseIDF              *bool `yaml:"use_idf"`
	SmoothIDF           *bool `yaml:"smooth_idf"`
	SublinearTF         *bool `yaml:"sublinear_tf"`
}

// paramFlags registers the classifier parameter flags on cmd.
func paramFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagNBins, "n-bins", 4, "alphabet size (2-26)")
	cmd.Flags().StringVar(&flagStrategy, "strategy", "quantile", "bin strategy: uniform, quantile, or normal")
	cmd.Flags().Float64Var(&flagWindowSize, "window-size", 4, "word length: symbol count, or fraction of series length in (0,1]")
	cmd.Flags().Float64Var(&flagWindowStep, "window-step", 1, "window step: symbol count, or fraction of series length in (0,1]")
	cmd.Flags().StringVar(&flagParamsFile, "params", "", "YAML file with classifier parameters")
}

var (
	flagNBins      int
	flagStrategy   string
	flagWindowSize float64
	flagWindowStep float64
	flagParamsFile string
)

// loadParams merges the params file (when given) with flag overrides.
func loadParams(cmd *cobra.Command) (params, error) {
	p := params{}
	if flagParamsFile != "" {
		raw, err := os.ReadFile(flagParamsFile)
		if err != nil {
			return p, fmt.Errorf("failed to read params file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &p); err != nil {
			return p, fmt.Errorf("failed to parse params file: %w", err)
		}
	}

	if cmd.Flags().Changed("n-bins") || p.NBins == 0 {
		p.NBins = flagNBins
	}
	if cmd.Flags().Changed("strategy") || p.Strategy == "" {
		p.Strategy = flagStrategy
	}
	if cmd.Flags().Changed("window-size") || p.WindowSize == 0 {
		p.WindowSize = flagWindowSize
	}
	if cmd.Flags().Changed("window-step") || p.WindowStep == 0 {
		p.WindowStep = flagWindowStep
	}

	return p, nil
}

// options converts parameters into classifier options. Range validation is
// left to Fit.
func (p params) options() ([]saxvsm.Option, error) {
	strategy := format.StrategyFromString(p.Strategy)
	if !strategy.Valid() {
		return nil, fmt.Errorf("unknown strategy %q (want uniform, quantile, or normal)", p.Strategy)
	}

	opts := []saxvsm.Option{
		saxvsm.WithNBins(p.NBins),
		saxvsm.WithStrategy(strategy),
		windowOption(p.WindowSize, saxvsm.WithWindowSize, saxvsm.WithWindowFraction),
		windowOption(p.WindowStep, saxvsm.WithWindowStep, saxvsm.WithWindowStepFraction),
	}
	if p.Alphabet != "" {
		opts = append(opts, saxvsm.WithAlphabet(p.Alphabet))
	}
	if p.NumerosityReduction != nil {
		opts = append(opts, saxvsm.WithNumerosityReduction(*p.NumerosityReduction))
	}
	if p.UseIDF != nil {
		opts = append(opts, saxvsm.WithIDF(*p.UseIDF))
	}
	if p.SmoothIDF != nil {
		opts = append(opts, saxvsm.WithSmoothIDF(*p.SmoothIDF))
	}
	if p.SublinearTF != nil {
		opts = append(opts, saxvsm.WithSublinearTF(*p.SublinearTF))
	}

	return opts, nil
}

// windowOption picks the absolute or fractional form of a window parameter:
// values in (0,1) are fractions, everything else is a symbol count.
func windowOption(v float64, abs func(int) saxvsm.Option, frac func(float64) saxvsm.Option) saxvsm.Option {
	if v > 0 && v < 1 {
		return frac(v)
	}

	return abs(int(v))
}
