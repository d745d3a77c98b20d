package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/avrsize/internal/model"
)

// Default configuration values.
// The budgets match the Arduino Uno (ATmega328P) as reported by the Arduino IDE.
const (
	// DefaultMaxProgramMemory is the flash available to a sketch on an
	// ATmega328P: 32 KiB minus the 512 byte Optiboot bootloader.
	DefaultMaxProgramMemory uint64 = 32256

	// DefaultMaxDynamicMemory is the SRAM of an ATmega328P.
	DefaultMaxDynamicMemory uint64 = 2048

	// AppName is the application name used for XDG directory paths.
	AppName = "avrsize"
)

// Config holds all configuration options for avrsize.
// This struct is populated from the configuration file and CLI flags and is
// passed through the application rather than kept in global state.
type Config struct {
	// ELFFile is the path of the binary to analyse.
	ELFFile string

	// ErrorOnOverflow turns an exceeded budget into a command failure.
	// When false, an exceeded budget is only visible in the report and the
	// command still succeeds. I/O and parse errors always fail.
	ErrorOnOverflow bool

	// MaxProgramMemory is the program memory (flash) budget in bytes.
	MaxProgramMemory uint64

	// MaxDynamicMemory is the dynamic memory (RAM) budget in bytes.
	MaxDynamicMemory uint64

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the default locations are searched (see FindConfigFile).
	ConfigFilePath string

	// JSONReport enables JSON report output instead of the two line text report.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the two line text report.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		MaxProgramMemory: DefaultMaxProgramMemory,
		MaxDynamicMemory: DefaultMaxDynamicMemory,
	}
}

// Budget returns the configured memory budgets.
func (c *Config) Budget() model.Budget {
	return model.Budget{
		MaxProgramBytes: c.MaxProgramMemory,
		MaxDynamicBytes: c.MaxDynamicMemory,
	}
}

// ApplyFile copies every value set in the configuration file into c.
// Values absent from the file leave c unchanged. A nil file is a no-op.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.MaxProgramMemory != nil {
		c.MaxProgramMemory = *f.MaxProgramMemory
	}
	if f.MaxDynamicMemory != nil {
		c.MaxDynamicMemory = *f.MaxDynamicMemory
	}
	if f.Error != nil {
		c.ErrorOnOverflow = *f.Error
	}
}

// XDGConfigDir returns the XDG config directory for avrsize.
// On Linux: ~/.config/avrsize
// On macOS: ~/Library/Application Support/avrsize
// On Windows: %APPDATA%\avrsize
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the sentinel errors in errors.go.
//
// A budget of zero is rejected here, before any file is read, because the
// utilization of a zero byte budget is undefined.
func (c *Config) Validate() error {
	if c.ELFFile == "" {
		return ErrNoELFFile
	}

	if c.MaxProgramMemory == 0 {
		return ErrZeroProgramBudget
	}

	if c.MaxDynamicMemory == 0 {
		return ErrZeroDynamicBudget
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
