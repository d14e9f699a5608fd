package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Data       DataConfig       `yaml:"data"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Sweep      SweepConfig      `yaml:"sweep"`
	Report     ReportConfig     `yaml:"report"`
	Log        LogConfig        `yaml:"log"`
}

type DataConfig struct {
	Train    string   `yaml:"train"`    // training file (e.g. data/datatraining.txt)
	Test     string   `yaml:"test"`     // testing file (e.g. data/datatest.txt)
	Features []string `yaml:"features"` // empty: every numeric column
	Comma    string   `yaml:"comma"`
}

type ClassifierConfig struct {
	Index   string `yaml:"index"` // bruteforce | vptree
	Workers int    `yaml:"workers"`
}

type SweepConfig struct {
	KFrom int `yaml:"k_from"`
	KTo   int `yaml:"k_to"`
	// ConfusionK selects the K reported in the confusion matrix; 0 uses the
	// best K of the testing sweep.
	ConfusionK int `yaml:"confusion_k"`
}

type ReportConfig struct {
	PlotsDir   string `yaml:"plots_dir"`   // empty: no plots
	PlotFormat string `yaml:"plot_format"` // png | svg | pdf
	StorePath  string `yaml:"store_path"`  // empty: no SQLite persistence
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			Train: "data/datatraining.txt",
			Test:  "data/datatest.txt",
			Comma: ",",
		},
		Classifier: ClassifierConfig{
			Index:   "bruteforce",
			Workers: 1,
		},
		Sweep: SweepConfig{
			KFrom: 1,
			KTo:   33,
		},
		Report: ReportConfig{
			PlotFormat: "png",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}

	if configPath == "" {
		for _, p := range []string{"configs/occupancy.yaml", "occupancy.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Data.Comma == "" {
		cfg.Data.Comma = ","
	}
	switch cfg.Classifier.Index {
	case "bruteforce", "vptree":
	default:
		cfg.Classifier.Index = "bruteforce"
	}
	if cfg.Sweep.KFrom <= 0 {
		cfg.Sweep.KFrom = 1
	}
	if cfg.Sweep.KTo < cfg.Sweep.KFrom {
		cfg.Sweep.KTo = 33
	}
	if cfg.Sweep.ConfusionK < 0 {
		cfg.Sweep.ConfusionK = 0
	}
	if cfg.Report.PlotFormat == "" {
		cfg.Report.PlotFormat = "png"
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		cfg.Log.Format = "text"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// CommaRune returns the first rune of the configured delimiter.
func (d DataConfig) CommaRune() rune {
	for _, r := range d.Comma {
		return r
	}
	return ','
}
