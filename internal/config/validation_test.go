package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"Empty Allow List", func(c *Config) { c.Tools.AllowedPrograms = nil }, "tools.allowed_programs"},
		{"Zero Timeout", func(c *Config) { c.Tools.DefaultTimeoutSeconds = 0 }, "tools.default_timeout_seconds"},
		{"Zero Output Cap", func(c *Config) { c.Tools.MaxCommandOutputSize = 0 }, "tools.max_command_output_size"},
		{"No Python", func(c *Config) { c.Tools.PythonBinary = "" }, "tools.python_binary"},
		{"Zero Iterations", func(c *Config) { c.Workflow.MaxIterations = 0 }, "workflow.max_iterations"},
		{"Zero Window", func(c *Config) { c.Workflow.HistoryWindow = 0 }, "workflow.history_window"},
		{"Negative Threshold", func(c *Config) { c.Workflow.PlaceholderThreshold = -1 }, "workflow.placeholder_threshold"},
		{"Unknown Provider", func(c *Config) { c.Model.Provider = "llamafile" }, "model.provider"},
		{"Temperature Too High", func(c *Config) { c.Model.Temperature = 3 }, "model.temperature"},
		{"Negative Rate", func(c *Config) { c.Model.RequestsPerMinute = -5 }, "model.requests_per_minute"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Workflow.MaxIterations = 0
	cfg.Model.MaxTokens = 0

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "workflow.max_iterations")
	assert.Contains(t, err.Error(), "model.max_tokens")
}
