package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/timeseries-at-ytg/saxvsm"
)

var flagTopTerms int

var inspectCmd = &cobra.Command{
	Use:   "inspect <model>",
	Short: "Summarize a trained model",
	Long: `Summarize a trained model: classes, vocabulary size, and the
highest-weighted vocabulary terms of each class vector. The top terms are the
interpretable part of SAX-VSM: they name the symbolic patterns that identify
a class.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&flagTopTerms, "top", 10, "number of top-weighted terms to show per class")
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open model file: %w", err)
	}
	defer f.Close()

	clf, err := saxvsm.Load(f)
	if err != nil {
		return err
	}

	classes := clf.Classes()
	terms := clf.Vocabulary()
	tfidf := clf.TFIDF()

	fmt.Printf("classes: %d %v\n", len(classes), classes)
	fmt.Printf("vocabulary: %d terms\n", len(terms))
	if idf := clf.IDF(); idf != nil {
		fmt.Println("idf weighting: enabled")
	} else {
		fmt.Println("idf weighting: disabled")
	}

	for classIdx, class := range classes {
		row := tfidf.RawRowView(classIdx)
		fmt.Printf("\nclass %q top terms:\n", class)
		for _, t := range topTerms(terms, row, flagTopTerms) {
			fmt.Printf("  %-12s %.4f\n", t.term, t.weight)
		}
	}

	return nil
}

type weightedTerm struct {
	term   string
	weight float64
}

// topTerms returns the n highest-weighted terms, heaviest first. Equal
// weights keep vocabulary order.
func topTerms(terms []string, weights []float64, n int) []weightedTerm {
	ranked := make([]weightedTerm, len(terms))
	for i, term := range terms {
		ranked[i] = weightedTerm{term: term, weight: weights[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].weight > ranked[j].weight
	})

	if n > len(ranked) {
		n = len(ranked)
	}

	return ranked[:n]
}
