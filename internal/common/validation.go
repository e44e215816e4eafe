// Package common holds validators for user-supplied configuration values.
package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/zoro11031/linux-sim/internal/config"
)

// maxHistoryLimit caps HISTORY_LIMIT so a typo cannot make history unbounded by accident
const maxHistoryLimit = 100000

// ValidateUsername validates a Unix username
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	// Basic username validation (alphanumeric, underscore, hyphen, must start with letter or underscore)
	if len(username) > 32 {
		return fmt.Errorf("username too long (max 32 characters): %s", username)
	}

	firstChar := username[0]
	if !((firstChar >= 'a' && firstChar <= 'z') || (firstChar >= 'A' && firstChar <= 'Z') || firstChar == '_') {
		return fmt.Errorf("username must start with a letter or underscore: %s", username)
	}

	for _, c := range username {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-') {
			return fmt.Errorf("username contains invalid character: %s", username)
		}
	}

	return nil
}

// ValidateHostname validates a host name for the prompt. Underscores are
// accepted because the stock prompt host is "ubuntu_Server".
func ValidateHostname(hostname string) error {
	if hostname == "" {
		return fmt.Errorf("hostname cannot be empty")
	}

	if len(hostname) > 253 {
		return fmt.Errorf("hostname too long: %s", hostname)
	}

	parts := strings.Split(hostname, ".")
	for _, part := range parts {
		if part == "" {
			return fmt.Errorf("invalid hostname (empty label): %s", hostname)
		}
		if len(part) > 63 {
			return fmt.Errorf("hostname label too long: %s", part)
		}

		for i, c := range part {
			if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_') {
				return fmt.Errorf("invalid character in hostname: %s", hostname)
			}
			// Hyphen cannot be at start or end
			if c == '-' && (i == 0 || i == len(part)-1) {
				return fmt.Errorf("hostname label cannot start or end with hyphen: %s", part)
			}
		}
	}

	return nil
}

// ValidateHistoryLimit validates a history size (0 = unlimited)
func ValidateHistoryLimit(limit string) error {
	n, err := strconv.Atoi(limit)
	if err != nil {
		return fmt.Errorf("invalid history limit: %s", limit)
	}

	if n < 0 || n > maxHistoryLimit {
		return fmt.Errorf("history limit must be between 0 and %d, got: %d", maxHistoryLimit, n)
	}

	return nil
}

// ValidateBool validates a boolean flag value
func ValidateBool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("invalid boolean value: %s", value)
	}
	return nil
}

// ValidateLogLevel validates a logrus level name
func ValidateLogLevel(level string) error {
	if _, err := logrus.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}
	return nil
}

// ValidateLogFormat validates the log output format
func ValidateLogFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("log format must be text or json, got: %s", format)
	}
}

// ValidateKey validates value for the given configuration key. Keys without
// a dedicated rule accept any value.
func ValidateKey(key, value string) error {
	switch key {
	case config.KeyShellUser:
		return ValidateUsername(value)
	case config.KeyShellHostname:
		return ValidateHostname(value)
	case config.KeyHistoryLimit:
		return ValidateHistoryLimit(value)
	case config.KeyShellExplain:
		return ValidateBool(value)
	case config.KeyLogLevel:
		return ValidateLogLevel(value)
	case config.KeyLogFormat:
		return ValidateLogFormat(value)
	default:
		return nil
	}
}
