package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via the YAML dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Sandbox  SandboxConfig  `yaml:"sandbox"`
	Tools    ToolsConfig    `yaml:"tools"`
	Workflow WorkflowConfig `yaml:"workflow"`
	Model    ModelConfig    `yaml:"model"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type SandboxConfig struct {
	// Root is the directory every file tool is confined to. Empty means the
	// process working directory at startup.
	Root string `yaml:"root"`
}

type ToolsConfig struct {
	AllowedPrograms       []string `yaml:"allowed_programs"`
	AllowedGitSubcommands []string `yaml:"allowed_git_subcommands"`

	DefaultTimeoutSeconds int `yaml:"default_timeout_seconds"` // Default: 30

	MaxFileSize          int64 `yaml:"max_file_size"`           // Default: 20MB
	MaxCommandOutputSize int64 `yaml:"max_command_output_size"` // Default: 10MB
	GracefulShutdownMs   int   `yaml:"graceful_shutdown_ms"`    // Default: 2000

	PythonBinary string `yaml:"python_binary"`
}

type WorkflowConfig struct {
	MaxIterations        int  `yaml:"max_iterations"`         // Default: 5
	HistoryWindow        int  `yaml:"history_window"`         // Default: 10
	PlaceholderThreshold int  `yaml:"placeholder_threshold"`  // Default: 100
	ReadFeedbackLimit    int  `yaml:"read_feedback_limit"`    // Default: 4000
	AutoConfirm          bool `yaml:"auto_confirm"`
}

type ModelConfig struct {
	Provider          string   `yaml:"provider"` // openai | gemini
	Name              string   `yaml:"name"`
	BaseURL           string   `yaml:"base_url"`
	APIKeyEnv         string   `yaml:"api_key_env"`
	Temperature       float64  `yaml:"temperature"`
	TopP              float64  `yaml:"top_p"`
	TopK              int      `yaml:"top_k"`
	RepeatPenalty     float64  `yaml:"repeat_penalty"`
	MaxTokens         int      `yaml:"max_tokens"`
	Stop              []string `yaml:"stop"`
	RequestsPerMinute int      `yaml:"requests_per_minute"` // 0 disables throttling
	TimeoutSeconds    int      `yaml:"timeout_seconds"`
}

type LoggingConfig struct {
	Level       string   `yaml:"level"`
	OutputPaths []string `yaml:"output_paths"`
}

type MetricsConfig struct {
	// Textfile, when set, receives a Prometheus text exposition dump on exit.
	Textfile string `yaml:"textfile"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tools: ToolsConfig{
			AllowedPrograms: []string{
				"ls", "cat", "echo", "pwd", "head", "tail", "wc", "grep",
				"find", "sort", "diff", "git", "python3", "python", "pytest",
				"go", "make",
			},
			AllowedGitSubcommands: []string{
				"status", "log", "diff", "show", "add", "commit", "init",
				"branch", "rev-parse",
			},
			DefaultTimeoutSeconds: 30,
			MaxFileSize:           20 * 1024 * 1024,
			MaxCommandOutputSize:  10 * 1024 * 1024,
			GracefulShutdownMs:    2000,
			PythonBinary:          "python3",
		},
		Workflow: WorkflowConfig{
			MaxIterations:        5,
			HistoryWindow:        10,
			PlaceholderThreshold: 100,
			ReadFeedbackLimit:    4000,
		},
		Model: ModelConfig{
			Provider:       "openai",
			Name:           "qwen2.5-coder-7b-instruct",
			BaseURL:        "http://127.0.0.1:8080",
			APIKeyEnv:      "OFFCODE_API_KEY",
			Temperature:    0.3,
			TopP:           0.9,
			TopK:           40,
			RepeatPenalty:  1.1,
			MaxTokens:      2048,
			Stop:           []string{"<|im_end|>"},
			TimeoutSeconds: 300,
		},
		Logging: LoggingConfig{
			Level:       "info",
			OutputPaths: []string{"stderr"},
		},
	}
}
