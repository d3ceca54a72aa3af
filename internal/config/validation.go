package config

import (
	"fmt"
	"slices"
)

var knownProviders = []string{"openai", "gemini"}

// Validate checks config values for correctness.
// All violations are collected into a single error.
func (c *Config) Validate() error {
	var errs []string

	if len(c.Tools.AllowedPrograms) == 0 {
		errs = append(errs, "tools.allowed_programs must not be empty")
	}
	if c.Tools.DefaultTimeoutSeconds < 1 {
		errs = append(errs, "tools.default_timeout_seconds must be >= 1")
	}
	if c.Tools.MaxFileSize < 1 {
		errs = append(errs, "tools.max_file_size must be >= 1")
	}
	if c.Tools.MaxCommandOutputSize < 1 {
		errs = append(errs, "tools.max_command_output_size must be >= 1")
	}
	if c.Tools.GracefulShutdownMs < 1 {
		errs = append(errs, "tools.graceful_shutdown_ms must be >= 1")
	}
	if c.Tools.PythonBinary == "" {
		errs = append(errs, "tools.python_binary must be set")
	}

	if c.Workflow.MaxIterations < 1 {
		errs = append(errs, "workflow.max_iterations must be >= 1")
	}
	if c.Workflow.HistoryWindow < 1 {
		errs = append(errs, "workflow.history_window must be >= 1")
	}
	if c.Workflow.PlaceholderThreshold < 0 {
		errs = append(errs, "workflow.placeholder_threshold must be >= 0")
	}
	if c.Workflow.ReadFeedbackLimit < 1 {
		errs = append(errs, "workflow.read_feedback_limit must be >= 1")
	}

	if !slices.Contains(knownProviders, c.Model.Provider) {
		errs = append(errs, fmt.Sprintf("model.provider must be one of %v", knownProviders))
	}
	if c.Model.Name == "" {
		errs = append(errs, "model.name must be set")
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		errs = append(errs, "model.temperature must be within [0, 2]")
	}
	if c.Model.TopP < 0 || c.Model.TopP > 1 {
		errs = append(errs, "model.top_p must be within [0, 1]")
	}
	if c.Model.MaxTokens < 1 {
		errs = append(errs, "model.max_tokens must be >= 1")
	}
	if c.Model.RequestsPerMinute < 0 {
		errs = append(errs, "model.requests_per_minute must be >= 0")
	}
	if c.Model.TimeoutSeconds < 1 {
		errs = append(errs, "model.timeout_seconds must be >= 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
