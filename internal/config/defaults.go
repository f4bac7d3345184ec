// Package config provides configuration loading and defaults for chatlens.
package config

// DefaultConfigDir is the default location for chatlens configuration.
const DefaultConfigDir = "~/.config/chatlens"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "chatlens.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultWeights holds the default aggregation weights. They must sum to 1.0;
// the analyzer rejects any weight table that does not.
var DefaultWeights = Weights{
	Clarity:      0.15,
	Relevance:    0.15,
	Accuracy:     0.20,
	Completeness: 0.20,
	Empathy:      0.15,
	Resolution:   0.15,
}

// DefaultThresholds holds the default scoring thresholds.
var DefaultThresholds = Thresholds{
	EscalationNegativeTurns: 2,
	LongSentenceWords:       25,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultLexicon holds the stock phrase lists. All matching is done on
// lowercased text, so entries must be lowercase.
var DefaultLexicon = Lexicon{
	Positive: []string{
		"thanks", "thank you", "great", "excellent", "perfect", "awesome",
		"helpful", "appreciate", "good", "nice", "solved", "resolved",
	},
	Negative: []string{
		"bad", "terrible", "awful", "horrible", "frustrated", "angry",
		"disappointed", "unsatisfied", "wrong", "error", "broken", "issue",
	},
	Fallback: []string{
		"i don't know", "i'm not sure", "i can't help", "i don't understand",
		"i'm unable to", "i cannot", "i don't have", "i'm sorry, i don't",
	},
	Empathy: []string{
		"sorry", "i understand", "apologize", "i see how", "concern",
		"happy to help", "glad to help", "we'll sort this out",
	},
	Closing: []string{
		"resolved", "solved", "fixed", "completed", "done", "finished",
		"taken care of", "handled", "sorted", "addressed", "has been",
		"all set", "you're welcome", "glad i could help", "anything else",
	},
	Escalation: []string{
		"manager", "supervisor", "speak to a human", "talk to a human",
		"human agent", "live agent", "real person", "representative",
		"escalate", "transfer me", "speak to someone", "talk to a person",
	},
	Uncertainty: []string{
		"maybe", "probably", "might", "possibly", "i think", "i believe",
		"not sure", "may need",
	},
	Certainty: []string{
		"definitely", "certainly", "absolutely",
	},
	Filler: []string{
		"um", "uh", "er", "ah", "you know", "kind of", "sort of",
	},
	Vague: []string{
		"thing", "stuff", "whatever", "somehow", "something like that",
	},
}
