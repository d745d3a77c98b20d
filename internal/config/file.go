package config

// File represents the structure of the avrsize configuration file.
// Pointer fields distinguish a value that is absent from the file from an
// explicit zero or false.
type File struct {
	// MaxProgramMemory overrides the default program memory budget in bytes.
	MaxProgramMemory *uint64 `yaml:"maxProgramMemory,omitempty"`

	// MaxDynamicMemory overrides the default dynamic memory budget in bytes.
	MaxDynamicMemory *uint64 `yaml:"maxDynamicMemory,omitempty"`

	// Error enables the error-on-overflow mode by default.
	Error *bool `yaml:"error,omitempty"`
}
