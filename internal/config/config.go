package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level chatlens configuration.
type Config struct {
	DataDir    string     `mapstructure:"data_dir"`
	Weights    Weights    `mapstructure:"weights"`
	Thresholds Thresholds `mapstructure:"thresholds"`
	Lexicon    Lexicon    `mapstructure:"lexicon"`
	Output     Output     `mapstructure:"output"`
}

// Weights defines the aggregation weights for the overall score.
// Resolution is weighted as 100 when resolved and 0 otherwise.
type Weights struct {
	Clarity      float64 `mapstructure:"clarity"`
	Relevance    float64 `mapstructure:"relevance"`
	Accuracy     float64 `mapstructure:"accuracy"`
	Completeness float64 `mapstructure:"completeness"`
	Empathy      float64 `mapstructure:"empathy"`
	Resolution   float64 `mapstructure:"resolution"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Clarity + w.Relevance + w.Accuracy + w.Completeness + w.Empathy + w.Resolution
}

// Thresholds defines tunable cutoffs used by the scorers.
type Thresholds struct {
	// EscalationNegativeTurns is the number of negative user turns that
	// flags escalation even without an explicit escalation phrase.
	EscalationNegativeTurns int `mapstructure:"escalation_negative_turns"`

	// LongSentenceWords is the average sentence length (in words) above
	// which clarity is penalized.
	LongSentenceWords int `mapstructure:"long_sentence_words"`
}

// Lexicon holds the phrase lists driving keyword detection. Injected as
// configuration so behavior is deterministic and testable with alternate
// lexicons.
type Lexicon struct {
	Positive    []string `mapstructure:"positive"`
	Negative    []string `mapstructure:"negative"`
	Fallback    []string `mapstructure:"fallback"`
	Empathy     []string `mapstructure:"empathy"`
	Closing     []string `mapstructure:"closing"`
	Escalation  []string `mapstructure:"escalation"`
	Uncertainty []string `mapstructure:"uncertainty"`
	Certainty   []string `mapstructure:"certainty"`
	Filler      []string `mapstructure:"filler"`
	Vague       []string `mapstructure:"vague"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultConfigDir)
	v.SetDefault("weights.clarity", DefaultWeights.Clarity)
	v.SetDefault("weights.relevance", DefaultWeights.Relevance)
	v.SetDefault("weights.accuracy", DefaultWeights.Accuracy)
	v.SetDefault("weights.completeness", DefaultWeights.Completeness)
	v.SetDefault("weights.empathy", DefaultWeights.Empathy)
	v.SetDefault("weights.resolution", DefaultWeights.Resolution)
	v.SetDefault("thresholds.escalation_negative_turns", DefaultThresholds.EscalationNegativeTurns)
	v.SetDefault("thresholds.long_sentence_words", DefaultThresholds.LongSentenceWords)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Lexicon lists are replaced wholesale when configured; a partial
	// override keeps the defaults for every list it leaves unset.
	cfg.Lexicon = mergeLexicon(cfg.Lexicon, DefaultLexicon)

	cfg.DataDir = expandPath(cfg.DataDir)

	return &cfg, nil
}

// mergeLexicon fills unset lists in cfg from the fallback lexicon.
func mergeLexicon(cfg, fallback Lexicon) Lexicon {
	pick := func(a, b []string) []string {
		if len(a) > 0 {
			return a
		}
		return b
	}
	return Lexicon{
		Positive:    pick(cfg.Positive, fallback.Positive),
		Negative:    pick(cfg.Negative, fallback.Negative),
		Fallback:    pick(cfg.Fallback, fallback.Fallback),
		Empathy:     pick(cfg.Empathy, fallback.Empathy),
		Closing:     pick(cfg.Closing, fallback.Closing),
		Escalation:  pick(cfg.Escalation, fallback.Escalation),
		Uncertainty: pick(cfg.Uncertainty, fallback.Uncertainty),
		Certainty:   pick(cfg.Certainty, fallback.Certainty),
		Filler:      pick(cfg.Filler, fallback.Filler),
		Vague:       pick(cfg.Vague, fallback.Vague),
	}
}

// DBPath returns the full path to the SQLite database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
