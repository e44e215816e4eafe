package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Shell identity shown in the prompt and by whoami
	KeyShellUser     = "SHELL_USER"
	KeyShellHostname = "SHELL_HOSTNAME"

	// Shell behavior
	KeyHistoryLimit = "HISTORY_LIMIT" // 0 keeps every command
	KeyShellExplain = "SHELL_EXPLAIN" // Print a one-line explanation after each command

	// Logging
	KeyLogLevel  = "LOG_LEVEL"
	KeyLogFormat = "LOG_FORMAT" // text or json
	KeyLogFile   = "LOG_FILE"   // Empty disables logging
)

// Defaults holds the value used for every key that is not set in the file
var Defaults = map[string]string{
	KeyShellUser:     "user",
	KeyShellHostname: "ubuntu_Server",
	KeyHistoryLimit:  "500",
	KeyShellExplain:  "false",
	KeyLogLevel:      "info",
	KeyLogFormat:     "text",
	KeyLogFile:       "",
}

// Descriptions documents each key for `config list`
var Descriptions = map[string]string{
	KeyShellUser:     "User name shown in the prompt and printed by whoami",
	KeyShellHostname: "Host name shown in the prompt",
	KeyHistoryLimit:  "Number of commands kept by history (0 = unlimited)",
	KeyShellExplain:  "Explain what each command did after running it",
	KeyLogLevel:      "Log level (trace, debug, info, warn, error)",
	KeyLogFormat:     "Log format (text or json)",
	KeyLogFile:       "Log file path; logging is disabled when empty",
}
