package cmd

import (
	"fmt"

	"github.com/KaramelBytes/rowsense-cli/internal/dataset"
	"github.com/spf13/cobra"
)

var inspectTopWords int

var inspectCmd = &cobra.Command{
	Use:   "inspect <dataset.jsonl>",
	Short: "Summarize a labeled dataset without training",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Print(dataset.Summarize(rows, inspectTopWords).Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&inspectTopWords, "top-words", 15, "header-partition words to list")
}
