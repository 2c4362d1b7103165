// SPDX-License-Identifier: MIT

// Package config holds the intmat command-line configuration: an optional JSON
// file, overlaid by flags, translated into matrix and codec options.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/intmat/codec"
	"github.com/katalvlaran/intmat/matrix"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	LogLevel LogLevel `json:"log_level"`
	// Output is the result path; empty writes to stdout.
	Output string `json:"output"`
	// Compression is "auto", "none", "gzip" or "zstd".
	Compression string `json:"compression"`
	Parse       Parse  `json:"parse"`
	Matrix      Matrix `json:"matrix"`
}

type Parse struct {
	StrictNumbers bool `json:"strict_numbers"`
	StrictShape   bool `json:"strict_shape"`
	MaxLineBytes  int  `json:"max_line_bytes"`
}

type Matrix struct {
	CheckedOverflow bool `json:"checked_overflow"`
	// MaxElements caps a single matrix; 0 means matrix.DefaultMaxElements.
	MaxElements int `json:"max_elements"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:    LogLevelWarn,
		Compression: codec.CompressionAuto.String(),
		Parse:       Parse{MaxLineBytes: codec.DefaultMaxLineBytes},
		Matrix:      Matrix{MaxElements: matrix.DefaultMaxElements},
	}
}

// ParseConfig parses raw JSON on top of Default. Fields absent from raw keep
// their default values.
func ParseConfig(raw []byte) (config Config, err error) {
	config = Default()
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}
	return config, nil
}

// LoadConfig reads and parses the JSON file at path.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(errors.New("could not read config file"), err)
	}
	return ParseConfig(raw)
}

// Validate rejects values the option constructors would refuse.
func (c Config) Validate() error {
	if _, err := codec.ParseCompression(c.Compression); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Parse.MaxLineBytes != 0 && c.Parse.MaxLineBytes < codec.MinLineBytes {
		return fmt.Errorf("%w: max_line_bytes %d below %d", ErrInvalidConfig, c.Parse.MaxLineBytes, codec.MinLineBytes)
	}
	if c.Matrix.MaxElements < 0 {
		return fmt.Errorf("%w: negative max_elements %d", ErrInvalidConfig, c.Matrix.MaxElements)
	}
	return nil
}

// MatrixOptions translates the matrix section. Call Validate first.
func (c Config) MatrixOptions() []matrix.Option {
	opts := []matrix.Option{matrix.WithMaxElements(c.Matrix.MaxElements)}
	if c.Matrix.CheckedOverflow {
		opts = append(opts, matrix.WithCheckedOverflow())
	}
	return opts
}

// CodecOptions translates the parse and compression settings, forwarding
// MatrixOptions to every decoded matrix. Call Validate first.
func (c Config) CodecOptions() []codec.Option {
	comp, _ := codec.ParseCompression(c.Compression)
	opts := []codec.Option{
		codec.WithCompression(comp),
		codec.WithMatrixOptions(c.MatrixOptions()...),
	}
	if c.Parse.StrictNumbers {
		opts = append(opts, codec.WithStrictNumbers())
	}
	if c.Parse.StrictShape {
		opts = append(opts, codec.WithStrictShape())
	}
	if c.Parse.MaxLineBytes != 0 {
		opts = append(opts, codec.WithMaxLineBytes(c.Parse.MaxLineBytes))
	}
	return opts
}
