package model

import "time"

// RunReport is the persisted summary of a run.
type RunReport struct {
	Interpreter string         `yaml:"interpreter"`
	StartedAt   time.Time      `yaml:"started_at"`
	Duration    time.Duration  `yaml:"duration"`
	Total       int            `yaml:"total"`
	Passed      int            `yaml:"passed"`
	Failed      int            `yaml:"failed"`
	Scripts     []ScriptReport `yaml:"scripts"`
}

// ScriptReport is the persisted form of a single verdict.
type ScriptReport struct {
	Path        string   `yaml:"path"`
	Passed      bool     `yaml:"passed"`
	ExitCode    int      `yaml:"exit_code"`
	Diagnostics []string `yaml:"diagnostics,omitempty"`
}
