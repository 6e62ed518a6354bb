package cmd

import (
	"fmt"
	"os"

	"github.com/KaramelBytes/rowsense-cli/internal/dataset"
	"github.com/KaramelBytes/rowsense-cli/internal/eval"
	"github.com/KaramelBytes/rowsense-cli/internal/features"
	"github.com/KaramelBytes/rowsense-cli/internal/model"
	"github.com/KaramelBytes/rowsense-cli/internal/vocab"
	"github.com/spf13/cobra"
)

var (
	trainSample     int
	trainSampleSeed int64
	trainSplit      float64
	trainSeed       int64
	trainTrees      int
	trainDepth      int
	trainLeaves     int
	trainLR         float64
	trainFormat     string
)

var trainCmd = &cobra.Command{
	Use:   "train [dataset.jsonl]",
	Short: "Train the header classifier and report evaluation metrics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		} else if cfg != nil {
			path = cfg.DatasetPath
		}
		if path == "" {
			return fmt.Errorf("no dataset: pass a path or set dataset_path in config")
		}

		sample, sampleSeed, splitRatio, splitSeed, params, format := trainSettings(cmd)

		rows, err := dataset.Load(path)
		if err != nil {
			return err
		}
		debugf("loaded %d rows from %s", len(rows), path)

		sampled := dataset.Sample(rows, sample, sampleSeed)
		headers, others := dataset.Partition(sampled)
		debugf("sampled %d rows (%d headers, %d others)", len(sampled), len(headers), len(others))

		headerPop, err := vocab.Popularity(headers)
		if err != nil {
			return fmt.Errorf("header partition: %w", err)
		}
		otherPop, err := vocab.Popularity(others)
		if err != nil {
			return fmt.Errorf("non-header partition: %w", err)
		}
		weights := vocab.Weights(headerPop, otherPop, vocab.AllWords(sampled))
		debugf("scored %d words", len(weights))

		x, y := features.Matrix(sampled, weights)
		split, err := model.TrainTestSplit(x, y, splitRatio, splitSeed)
		if err != nil {
			return err
		}
		debugf("split: %d train / %d test", len(split.YTrain), len(split.YTest))

		clf, err := model.Train(split.XTrain, split.YTrain, params)
		if err != nil {
			return err
		}
		pred, err := clf.Predict(split.XTest)
		if err != nil {
			return err
		}

		m := eval.Evaluate(split.YTest, pred)
		report := eval.NewReport(path, len(rows), len(sampled), len(split.YTrain), params, m)
		report.Render(os.Stdout, format)
		return nil
	},
}

// trainSettings resolves effective settings: flags override config when set.
func trainSettings(cmd *cobra.Command) (sample int, sampleSeed int64, splitRatio float64, splitSeed int64, params model.Params, format string) {
	params = model.DefaultParams()
	sample = trainSample
	sampleSeed = trainSampleSeed
	splitRatio = trainSplit
	splitSeed = trainSeed
	format = trainFormat
	if cfg != nil {
		f := cmd.Flags()
		if !f.Changed("sample") {
			sample = cfg.SampleSize
		}
		if !f.Changed("sample-seed") {
			sampleSeed = cfg.SampleSeed
		}
		if !f.Changed("split") {
			splitRatio = cfg.SplitRatio
		}
		if !f.Changed("seed") {
			splitSeed = cfg.SplitSeed
		}
		if !f.Changed("format") {
			format = cfg.ReportFormat
		}
		params.Trees = cfg.Trees
		params.MaxDepth = cfg.MaxDepth
		params.Leaves = cfg.NumLeaves
		params.LearningRate = cfg.LearningRate
	}
	f := cmd.Flags()
	if f.Changed("trees") {
		params.Trees = trainTrees
	}
	if f.Changed("depth") {
		params.MaxDepth = trainDepth
	}
	if f.Changed("leaves") {
		params.Leaves = trainLeaves
	}
	if f.Changed("learning-rate") {
		params.LearningRate = trainLR
	}
	return sample, sampleSeed, splitRatio, splitSeed, params, format
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().IntVar(&trainSample, "sample", 10000, "rows to sample before training (0 = all)")
	trainCmd.Flags().Int64Var(&trainSampleSeed, "sample-seed", 42, "sampling seed (-1 = unseeded)")
	trainCmd.Flags().Float64Var(&trainSplit, "split", 0.2, "test set fraction")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 42, "train/test split seed")
	trainCmd.Flags().IntVar(&trainTrees, "trees", 500, "number of boosting iterations")
	trainCmd.Flags().IntVar(&trainDepth, "depth", 10, "maximum tree depth")
	trainCmd.Flags().IntVar(&trainLeaves, "leaves", 20, "maximum leaves per tree")
	trainCmd.Flags().Float64Var(&trainLR, "learning-rate", 0.1, "boosting learning rate")
	trainCmd.Flags().StringVar(&trainFormat, "format", "table", "report format: 'table' | 'plain'")
}
