// File: logtap/src/internal/config/config.go

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"logtap/src/pkg/iniparse"

	"github.com/BurntSushi/xdg"
	"github.com/pkg/errors"
)

// configFileName is the name looked up under the XDG config directories
// when no explicit path is given on the command line.
const configFileName = "logtap.conf"

var configPaths = xdg.Paths{}

// DefaultConfigPath resolves the configuration file logtap loads when no
// --config (-c) flag is given, following the same $XDG_CONFIG_HOME search
// order used elsewhere in the config-loading ecosystem.
func DefaultConfigPath() (string, error) {
	return configPaths.ConfigFile(configFileName)
}

// OperationMode defines how logtap will run
type OperationMode string

const (
	// ServiceMode runs as a background daemon streaming logs
	ServiceMode OperationMode = "service"
	// ViewerMode runs as an interactive terminal client
	ViewerMode OperationMode = "viewer"
)

// Validation constants
const (
	minPort           = 1024
	maxPort           = 65535
	minBufferSize     = 100
	defaultBufferSize = 1000
	minCheckPeriod    = 100 // milliseconds
	maxNestingLevel   = 3
	defaultPattern    = "*.log"
)

// Config holds the complete configuration for logtap
type Config struct {
	// Mode determines whether to run as service or viewer
	Mode OperationMode
	// Port defines the service listening port
	Port int

	// Logger configuration section
	Logger struct {
		Level      string
		Directory  string
		BufferSize int
	}

	// Security configuration section
	Security struct {
		TLSEnabled  bool
		TLSCertFile string
		TLSKeyFile  string

		AuthEnabled  bool
		AuthUsername string
		AuthPassword string
	}

	// Monitor configuration
	Monitor struct {
		// Paths is a collection of monitored paths, keyed by the name
		// given in each [monitor.paths.<name>] group
		Paths       map[string]MonitorPath
		CheckPeriod int
	}

	// Stream configuration
	Stream struct {
		BufferSize      int
		FlushIntervalMs int
		RateLimit       RateLimitConfig
	}
}

// RateLimitConfig holds rate limiting settings
type RateLimitConfig struct {
	RequestsPerSecond    int
	BurstSize            int
	ClientTimeoutMinutes int
}

// MonitorPath represents a path to be monitored
type MonitorPath struct {
	Path    string
	Pattern string
	IsFile  bool
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Reload re-reads configPath and replaces c's fields in place, so that
// callers holding a *Config see the new values without re-wiring
// anything that took a pointer to c.
func (c *Config) Reload(configPath string) error {
	fresh, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	*c = *fresh
	return nil
}

// LoadConfig reads and parses the configuration file
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	cfg := &Config{Monitor: struct {
		Paths       map[string]MonitorPath
		CheckPeriod int
	}{Paths: make(map[string]MonitorPath)}}

	if _, err := iniparse.ParseBytes(data, newConfigMapper(cfg), 64); err != nil {
		return nil, errors.Wrap(err, "parsing config file")
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.setDefaults()
	return cfg, nil
}

// scratchString trims a fixed-capacity destination buffer at its first
// null byte, the same convention the parser itself uses to terminate a
// bound string.
func scratchString(buf []byte) string {
	i := bytes.IndexByte(buf, 0)
	if i < 0 {
		i = len(buf)
	}
	return string(buf[:i])
}

// newConfigMapper builds the mapping provider that drives cfg's fields
// from the configuration text. It is a single reusable mapper: one
// string scratch buffer and one scratch integer of each width serve
// every key in turn, copied into cfg's real fields as soon as the
// parser closes each value.
func newConfigMapper(cfg *Config) iniparse.Mapper {
	var strScratch [256]byte
	var u32Scratch uint32
	var i32Scratch int32

	pathEntry := func(name string) MonitorPath {
		return cfg.Monitor.Paths[name]
	}

	return iniparse.MapFunc(func(ctx *iniparse.Context, parsed bool) bool {
		group := ctx.Group()
		key := ctx.Key()

		if strings.HasPrefix(group, "monitor.paths.") {
			name := strings.TrimPrefix(group, "monitor.paths.")
			switch key {
			case "path":
				if !parsed {
					ctx.MapString(strScratch[:])
					return true
				}
				p := pathEntry(name)
				p.Path = scratchString(strScratch[:])
				cfg.Monitor.Paths[name] = p
			case "pattern":
				if !parsed {
					ctx.MapString(strScratch[:])
					return true
				}
				p := pathEntry(name)
				p.Pattern = scratchString(strScratch[:])
				cfg.Monitor.Paths[name] = p
			case "is_file":
				if !parsed {
					ctx.MapString(strScratch[:])
					return true
				}
				p := pathEntry(name)
				p.IsFile = scratchString(strScratch[:]) == "true"
				cfg.Monitor.Paths[name] = p
			}
			return true
		}

		switch {
		case group == "" && key == "mode":
			if !parsed {
				ctx.MapString(strScratch[:])
				return true
			}
			cfg.Mode = OperationMode(scratchString(strScratch[:]))
		case group == "" && key == "port":
			if !parsed {
				ctx.MapUnsigned(&u32Scratch, 0, 65535)
				return true
			}
			cfg.Port = int(u32Scratch)
		case group == "logger" && key == "level":
			if !parsed {
				ctx.MapString(strScratch[:])
				return true
			}
			cfg.Logger.Level = scratchString(strScratch[:])
		case group == "logger" && key == "directory":
			if !parsed {
				ctx.MapString(strScratch[:])
				return true
			}
			cfg.Logger.Directory = scratchString(strScratch[:])
		case group == "logger" && key == "buffer_size":
			if !parsed {
				ctx.MapUnsigned(&u32Scratch, iniparse.MinUnsigned, iniparse.MaxUnsigned)
				return true
			}
			cfg.Logger.BufferSize = int(u32Scratch)
		case group == "security" && key == "tls_enabled":
			if !parsed {
				ctx.MapString(strScratch[:])
				return true
			}
			cfg.Security.TLSEnabled = scratchString(strScratch[:]) == "true"
		case group == "security" && key == "tls_cert_file":
			if !parsed {
				ctx.MapString(strScratch[:])
				return true
			}
			cfg.Security.TLSCertFile = scratchString(strScratch[:])
		case group == "security" && key == "tls_key_file":
			if !parsed {
				ctx.MapString(strScratch[:])
				return true
			}
			cfg.Security.TLSKeyFile = scratchString(strScratch[:])
		case group == "security" && key == "auth_enabled":
			if !parsed {
				ctx.MapString(strScratch[:])
				return true
			}
			cfg.Security.AuthEnabled = scratchString(strScratch[:]) == "true"
		case group == "security" && key == "auth_username":
			if !parsed {
				ctx.MapString(strScratch[:])
				return true
			}
			cfg.Security.AuthUsername = scratchString(strScratch[:])
		case group == "security" && key == "auth_password":
			if !parsed {
				ctx.MapString(strScratch[:])
				return true
			}
			cfg.Security.AuthPassword = scratchString(strScratch[:])
		case group == "monitor" && key == "check_period_ms":
			if !parsed {
				ctx.MapUnsigned(&u32Scratch, iniparse.MinUnsigned, iniparse.MaxUnsigned)
				return true
			}
			cfg.Monitor.CheckPeriod = int(u32Scratch)
		case group == "stream" && key == "buffer_size":
			if !parsed {
				ctx.MapUnsigned(&u32Scratch, iniparse.MinUnsigned, iniparse.MaxUnsigned)
				return true
			}
			cfg.Stream.BufferSize = int(u32Scratch)
		case group == "stream" && key == "flush_interval_ms":
			if !parsed {
				ctx.MapUnsigned(&u32Scratch, iniparse.MinUnsigned, iniparse.MaxUnsigned)
				return true
			}
			cfg.Stream.FlushIntervalMs = int(u32Scratch)
		case group == "stream.rate_limit" && key == "requests_per_second":
			if !parsed {
				ctx.MapSigned(&i32Scratch, 0, iniparse.MaxSigned)
				return true
			}
			cfg.Stream.RateLimit.RequestsPerSecond = int(i32Scratch)
		case group == "stream.rate_limit" && key == "burst_size":
			if !parsed {
				ctx.MapSigned(&i32Scratch, 0, iniparse.MaxSigned)
				return true
			}
			cfg.Stream.RateLimit.BurstSize = int(i32Scratch)
		case group == "stream.rate_limit" && key == "client_timeout_minutes":
			if !parsed {
				ctx.MapSigned(&i32Scratch, 0, iniparse.MaxSigned)
				return true
			}
			cfg.Stream.RateLimit.ClientTimeoutMinutes = int(i32Scratch)
		}
		return true
	})
}

// setDefaults sets default values for optional fields
func (c *Config) setDefaults() {
	if c.Logger.Level == "" {
		c.Logger.Level = "INFO"
	}
	if c.Logger.Directory == "" {
		c.Logger.Directory = filepath.Join(os.TempDir(), "logtap", "logs")
	}
	if c.Logger.BufferSize < minBufferSize {
		c.Logger.BufferSize = defaultBufferSize
	}
	if c.Monitor.CheckPeriod < minCheckPeriod {
		c.Monitor.CheckPeriod = minCheckPeriod
	}
	if c.Stream.BufferSize < minBufferSize {
		c.Stream.BufferSize = defaultBufferSize
	}
}

// validate checks if the configuration is valid
func (c *Config) validate() error {
	// Validate operation mode
	if err := c.validateMode(); err != nil {
		return err
	}

	// Validate port
	if err := c.validatePort(); err != nil {
		return err
	}

	// Validate logger settings
	if err := c.validateLogger(); err != nil {
		return err
	}

	// Validate security settings
	if err := c.validateSecurity(); err != nil {
		return err
	}

	// Validate monitor configuration in service mode
	if c.Mode == ServiceMode {
		if err := c.validateMonitor(); err != nil {
			return err
		}
	}

	// Validate stream configuration
	return c.validateStream()
}

func (c *Config) validateMode() error {
	if c.Mode != ServiceMode && c.Mode != ViewerMode {
		return &ValidationError{
			Field:   "mode",
			Message: fmt.Sprintf("invalid operation mode: %s", c.Mode),
		}
	}
	return nil
}

func (c *Config) validatePort() error {
	if c.Port < minPort || c.Port > maxPort {
		return &ValidationError{
			Field:   "port",
			Message: fmt.Sprintf("port must be between %d and %d", minPort, maxPort),
		}
	}
	return nil
}

func (c *Config) validateLogger() error {
	switch c.Logger.Level {
	case "", "DEBUG", "INFO", "WARN", "ERROR":
		// Valid levels
	default:
		return &ValidationError{
			Field:   "logger.level",
			Message: fmt.Sprintf("invalid log level: %s", c.Logger.Level),
		}
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.TLSEnabled {
		if c.Security.TLSCertFile == "" || c.Security.TLSKeyFile == "" {
			return &ValidationError{
				Field:   "security.tls",
				Message: "TLS enabled but certificate or key file not specified",
			}
		}

		// Check certificate files
		if _, err := os.Stat(c.Security.TLSCertFile); err != nil {
			return &ValidationError{
				Field:   "security.tls_cert_file",
				Message: fmt.Sprintf("certificate file not found: %s", c.Security.TLSCertFile),
			}
		}
		if _, err := os.Stat(c.Security.TLSKeyFile); err != nil {
			return &ValidationError{
				Field:   "security.tls_key_file",
				Message: fmt.Sprintf("key file not found: %s", c.Security.TLSKeyFile),
			}
		}
	}

	if c.Security.AuthEnabled {
		if c.Security.AuthUsername == "" || c.Security.AuthPassword == "" {
			return &ValidationError{
				Field:   "security.auth",
				Message: "auth enabled but username or password not specified",
			}
		}
	}

	return nil
}

func (c *Config) validateMonitor() error {
	if len(c.Monitor.Paths) == 0 {
		return &ValidationError{
			Field:   "monitor.paths",
			Message: "at least one monitored path must be specified in service mode",
		}
	}

	for key, target := range c.Monitor.Paths {
		if target.Path == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("monitor.paths.%s.path", key),
				Message: "path cannot be empty",
			}
		}

		if !target.IsFile {
			updatedTarget := target
			if target.Pattern == "" {
				updatedTarget.Pattern = defaultPattern
				c.Monitor.Paths[key] = updatedTarget // Update the whole struct
			}

			if _, err := os.Stat(target.Path); err != nil {
				return &ValidationError{
					Field:   fmt.Sprintf("monitor.paths.%s.path", key),
					Message: fmt.Sprintf("directory not found: %s", target.Path),
				}
			}
		}
	}

	return nil
}

func (c *Config) validateStream() error {
	if c.Stream.RateLimit.RequestsPerSecond < 0 {
		return &ValidationError{
			Field:   "stream.rate_limit.requests_per_second",
			Message: "requests per second cannot be negative",
		}
	}

	if c.Stream.RateLimit.BurstSize < 0 {
		return &ValidationError{
			Field:   "stream.rate_limit.burst_size",
			Message: "burst size cannot be negative",
		}
	}

	if c.Stream.RateLimit.ClientTimeoutMinutes < 0 {
		return &ValidationError{
			Field:   "stream.rate_limit.client_timeout_minutes",
			Message: "client timeout cannot be negative",
		}
	}

	return nil
}

// GetMonitorTargets returns the list of monitoring targets
func (c *Config) GetMonitorTargets() []MonitorTarget {
	var targets []MonitorTarget
	for _, path := range c.Monitor.Paths {
		targets = append(targets, MonitorTarget{
			Path:    path.Path,
			Pattern: path.Pattern,
			IsFile:  path.IsFile,
		})
	}
	return targets
}

// MonitorTarget represents a validated monitoring target
type MonitorTarget struct {
	Path    string
	Pattern string
	IsFile  bool
}
