package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings is the global training configuration.
type Settings struct {
	DatasetPath string `mapstructure:"dataset_path" yaml:"dataset_path"`

	// Sampling
	SampleSize int   `mapstructure:"sample_size" yaml:"sample_size"`
	SampleSeed int64 `mapstructure:"sample_seed" yaml:"sample_seed"`

	// Train/test split
	SplitRatio float64 `mapstructure:"split_ratio" yaml:"split_ratio"`
	SplitSeed  int64   `mapstructure:"split_seed" yaml:"split_seed"`

	// Classifier hyperparameters
	Trees        int     `mapstructure:"trees" yaml:"trees"`
	MaxDepth     int     `mapstructure:"max_depth" yaml:"max_depth"`
	NumLeaves    int     `mapstructure:"num_leaves" yaml:"num_leaves"`
	LearningRate float64 `mapstructure:"learning_rate" yaml:"learning_rate"`

	// Report output
	ReportFormat string `mapstructure:"report_format" yaml:"report_format"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.rowsense/config.yaml, creating the directory if
// necessary.
func Save(c *Settings, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".rowsense")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("ROWSENSE")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("sample_size", 10000)
	// A sample_seed of -1 leaves subsampling unseeded; the default keeps
	// runs reproducible.
	v.SetDefault("sample_seed", 42)
	v.SetDefault("split_ratio", 0.2)
	v.SetDefault("split_seed", 42)
	v.SetDefault("trees", 500)
	v.SetDefault("max_depth", 10)
	v.SetDefault("num_leaves", 20)
	v.SetDefault("learning_rate", 0.1)
	v.SetDefault("report_format", "table")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".rowsense")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Settings
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
