package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/rowsense-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set rowsense configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		if cfg.DatasetPath != "" {
			fmt.Printf("dataset_path: %s\n", cfg.DatasetPath)
		}
		fmt.Printf("sample_size: %d\n", cfg.SampleSize)
		fmt.Printf("sample_seed: %d\n", cfg.SampleSeed)
		fmt.Printf("split_ratio: %.3f\n", cfg.SplitRatio)
		fmt.Printf("split_seed: %d\n", cfg.SplitSeed)
		fmt.Printf("trees: %d\n", cfg.Trees)
		fmt.Printf("max_depth: %d\n", cfg.MaxDepth)
		fmt.Printf("num_leaves: %d\n", cfg.NumLeaves)
		fmt.Printf("learning_rate: %.3f\n", cfg.LearningRate)
		fmt.Printf("report_format: %s\n", cfg.ReportFormat)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Println("✓ Wrote config with defaults")
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "dataset_path":
			cfg.DatasetPath = val
		case "sample_size":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for sample_size: %v", val)
			}
			cfg.SampleSize = i
		case "sample_seed":
			i, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid int for sample_seed: %w", err)
			}
			cfg.SampleSeed = i
		case "split_ratio":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 || f >= 1 {
				return fmt.Errorf("invalid split_ratio: %v (must be in (0,1))", val)
			}
			cfg.SplitRatio = f
		case "split_seed":
			i, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid int for split_seed: %w", err)
			}
			cfg.SplitSeed = i
		case "trees":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for trees: %v", val)
			}
			cfg.Trees = i
		case "max_depth":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for max_depth: %v", val)
			}
			cfg.MaxDepth = i
		case "num_leaves":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 1 {
				return fmt.Errorf("invalid int for num_leaves: %v", val)
			}
			cfg.NumLeaves = i
		case "learning_rate":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid float for learning_rate: %v", val)
			}
			cfg.LearningRate = f
		case "report_format":
			switch val {
			case "table", "plain":
				cfg.ReportFormat = val
			default:
				return fmt.Errorf("invalid report_format: %s (use table or plain)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}
