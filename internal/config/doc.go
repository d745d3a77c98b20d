// Package config provides configuration structures and utilities for avrsize.
// It defines the memory budgets, the error-on-overflow mode, report output
// preferences, and the optional YAML configuration file that can supply
// project-wide defaults for all of them.
package config
