package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/timeseries-at-ytg/saxvsm"
	"github.com/timeseries-at-ytg/saxvsm/dataset"
	"github.com/timeseries-at-ytg/saxvsm/format"
)

var (
	flagModelOut    string
	flagCompression string
)

var trainCmd = &cobra.Command{
	Use:   "train <dataset>",
	Short: "Train a classifier on a labeled dataset and write a model file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrain,
}

func init() {
	paramFlags(trainCmd)
	trainCmd.Flags().StringVarP(&flagModelOut, "output", "o", "model.svsm", "model file to write")
	trainCmd.Flags().StringVar(&flagCompression, "compression", "zstd", "model payload compression: none, zstd, s2, or lz4")
}

func runTrain(cmd *cobra.Command, args []string) error {
	compression := format.CompressionFromString(flagCompression)
	if compression == format.CompressionType(0) {
		return fmt.Errorf("unknown compression %q (want none, zstd, s2, or lz4)", flagCompression)
	}

	p, err := loadParams(cmd)
	if err != nil {
		return err
	}
	opts, err := p.options()
	if err != nil {
		return err
	}

	ds, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	clf := saxvsm.New(opts...)
	if err := clf.Fit(ds.X, ds.Y); err != nil {
		return err
	}

	pred, err := clf.Predict(ds.X)
	if err != nil {
		return err
	}

	f, err := os.Create(flagModelOut)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	defer f.Close()
	if err := clf.Save(f, saxvsm.WithCompression(compression)); err != nil {
		return err
	}

	fmt.Printf("trained on %d samples x %d timestamps\n", ds.NumSamples(), ds.NumTimestamps())
	fmt.Printf("classes: %v\n", clf.Classes())
	fmt.Printf("vocabulary: %d terms\n", len(clf.Vocabulary()))
	fmt.Printf("training accuracy: %.4f\n", accuracy(pred, ds.Y))
	fmt.Printf("model written to %s (%s)\n", flagModelOut, compression)

	return nil
}

// accuracy returns the fraction of predictions matching truth.
func accuracy(pred, truth []string) float64 {
	if len(pred) == 0 {
		return 0
	}

	correct := 0
	for i := range pred {
		if pred[i] == truth[i] {
			correct++
		}
	}

	return float64(correct) / float64(len(pred))
}
