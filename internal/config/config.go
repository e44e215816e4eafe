// Package config provides thread-safe configuration management for the
// simulator. Settings are stored as key=value pairs in a plain config file,
// read and written through an afero filesystem so tests can run in memory.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Config manages simulator configuration with thread-safe operations
type Config struct {
	fs       afero.Fs
	filePath string
	data     map[string]string
	loaded   bool // Track if configuration has been loaded from disk
	mu       sync.RWMutex
}

// ErrKeyNotFound is returned by Get for keys that are not set in the file
var ErrKeyNotFound = errors.New("config key not found")

// ensureLoaded loads configuration data from disk once before read operations.
// It takes the write lock for the load, so it must be called without holding c.mu.
func (c *Config) ensureLoaded() error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return nil
	}
	return c.load()
}

// DefaultPath returns ~/.linux-sim.conf
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".linux-sim.conf")
}

// NewWithFs creates a Config that reads and writes through fs. An empty path
// selects DefaultPath.
func NewWithFs(fs afero.Fs, filePath string) *Config {
	if filePath == "" {
		filePath = DefaultPath()
	}
	return &Config{
		fs:       fs,
		filePath: filePath,
		data:     make(map[string]string),
	}
}

// Load reads configuration from file (thread-safe)
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// load must be called while holding c.mu.Lock
func (c *Config) load() error {
	// If file doesn't exist, that's okay - we'll create it on Save
	exists, err := afero.Exists(c.fs, c.filePath)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		c.loaded = true
		return nil
	}

	file, err := c.fs.Open(c.filePath)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if ok {
			c.data[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	c.loaded = true
	return nil
}

// Save writes configuration to file using atomic write pattern (thread-safe)
func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save()
}

// save must be called while holding c.mu.Lock
func (c *Config) save() error {
	dir := filepath.Dir(c.filePath)
	if err := c.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create temporary file in the same directory for atomic rename
	tmpFile, err := afero.TempFile(c.fs, dir, ".linux-sim.conf.tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer c.fs.Remove(tmpPath) // Cleanup on error

	fmt.Fprintln(tmpFile, "# Linux Command Simulator Configuration")
	fmt.Fprintf(tmpFile, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintln(tmpFile, "")

	keys := lo.Keys(c.data)
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Fprintf(tmpFile, "%s=%s\n", key, c.data[key])
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	// Explicitly check close error to prevent data loss
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := c.fs.Chmod(tmpPath, 0600); err != nil {
		return fmt.Errorf("failed to set permissions on temp file: %w", err)
	}

	if err := c.fs.Rename(tmpPath, c.filePath); err != nil {
		return fmt.Errorf("failed to rename temp file to config: %w", err)
	}

	return nil
}

// Get retrieves a configuration value (thread-safe)
func (c *Config) Get(key string) (string, error) {
	if err := c.ensureLoaded(); err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	value, exists := c.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// GetOrDefault retrieves a value or returns default if not found (thread-safe)
// First checks the config, then the Defaults table, then the provided fallback
func (c *Config) GetOrDefault(key, defaultValue string) string {
	if err := c.ensureLoaded(); err != nil {
		return defaultValue
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if value, exists := c.data[key]; exists {
		return value
	}
	if tableDefault, exists := Defaults[key]; exists {
		return tableDefault
	}
	return defaultValue
}

// GetBool returns the value of key parsed as a boolean, falling back to defaultValue
func (c *Config) GetBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(c.GetOrDefault(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return b
}

// GetInt returns the value of key parsed as an integer, falling back to defaultValue
func (c *Config) GetInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(c.GetOrDefault(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return n
}

// Set sets a configuration value (thread-safe)
// Automatically loads existing configuration if not already loaded to prevent data loss
func (c *Config) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		if err := c.load(); err != nil {
			return fmt.Errorf("failed to load existing config before set: %w", err)
		}
	}

	c.data[key] = value
	return c.save()
}

// Exists checks if a key exists (thread-safe)
func (c *Config) Exists(key string) bool {
	if err := c.ensureLoaded(); err != nil {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.data[key]
	return exists
}

// GetAll returns all configuration data (thread-safe)
func (c *Config) GetAll() map[string]string {
	if err := c.ensureLoaded(); err != nil {
		return map[string]string{}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	// Return a copy to prevent external modification
	result := make(map[string]string, len(c.data))
	for k, v := range c.data {
		result[k] = v
	}
	return result
}

// Delete removes a configuration key (thread-safe)
// Automatically loads existing configuration if not already loaded to prevent data loss
func (c *Config) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		if err := c.load(); err != nil {
			return fmt.Errorf("failed to load existing config before delete: %w", err)
		}
	}

	delete(c.data, key)
	return c.save()
}

// Reset removes every key so all settings fall back to Defaults
func (c *Config) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]string)
	c.loaded = true
	return c.save()
}

// FilePath returns the configuration file path
func (c *Config) FilePath() string {
	return c.filePath
}
