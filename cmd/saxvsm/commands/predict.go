package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/timeseries-at-ytg/saxvsm"
	"github.com/timeseries-at-ytg/saxvsm/dataset"
)

var flagScores bool

var predictCmd = &cobra.Command{
	Use:   "predict <model> <dataset>",
	Short: "Classify a dataset with a trained model",
	Long: `Classify every sample of a dataset with a trained model.

Predictions are printed one per line. When the dataset's label column matches
a known class for every row, the overall accuracy is reported as well.`,
	Args: cobra.ExactArgs(2),
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().BoolVar(&flagScores, "scores", false, "print per-class similarity scores")
}

func runPredict(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open model file: %w", err)
	}
	defer f.Close()

	clf, err := saxvsm.Load(f)
	if err != nil {
		return err
	}

	ds, err := dataset.Load(args[1])
	if err != nil {
		return err
	}

	pred, err := clf.Predict(ds.X)
	if err != nil {
		return err
	}

	var sims [][]float64
	if flagScores {
		m, err := clf.DecisionFunction(ds.X)
		if err != nil {
			return err
		}
		for i := 0; i < ds.NumSamples(); i++ {
			row := make([]float64, len(clf.Classes()))
			copy(row, m.RawRowView(i))
			sims = append(sims, row)
		}
	}

	for i, p := range pred {
		if flagScores {
			fmt.Printf("%d\t%s\t%v\n", i, p, sims[i])
		} else {
			fmt.Printf("%d\t%s\n", i, p)
		}
	}

	if labelsKnown(clf.Classes(), ds.Y) {
		fmt.Printf("accuracy: %.4f (%d samples)\n", accuracy(pred, ds.Y), len(pred))
	}

	return nil
}

// labelsKnown reports whether every dataset label is one of the model's
// classes; otherwise the label column is treated as unlabeled data.
func labelsKnown(classes, y []string) bool {
	known := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		known[c] = struct{}{}
	}
	for _, l := range y {
		if _, ok := known[l]; !ok {
			return false
		}
	}

	return true
}
