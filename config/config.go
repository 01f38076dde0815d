package config

import (
	"unicode/utf8"

	"github.com/indigo-web/strsplit"
	"github.com/pkg/errors"
)

var (
	ErrEmptyDelimiter = errors.New("delimiter must not be empty")
	ErrNotAChar       = errors.New("char delimiter must be exactly one valid character")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrUnknownLevel   = errors.New("unknown log level")
	ErrBadInputLimit  = errors.New("input limit must be positive")
)

type Format string

const (
	// Lines prints every segment on its own line.
	Lines Format = "lines"
	// JSON prints all the segments as a single JSON array of strings.
	JSON Format = "json"
)

type (
	Delimiter struct {
		// Text is the delimiter itself.
		Text string
		// Char enforces the Text to be treated as a single character, so it's matched against
		// decoded characters instead of being searched as a substring.
		Char bool `test:"nullable"`
	}

	Output struct {
		// Format of printed segments.
		Format Format
		// First makes only the first segment to be printed.
		First bool `test:"nullable"`
		// Count makes only the number of segments to be printed.
		Count bool `test:"nullable"`
	}

	Input struct {
		// MaxSize limits how many bytes are read from stdin. The whole input is read before
		// it gets split, therefore it must fit into memory.
		MaxSize int64
	}

	Log struct {
		// Level is one of debug, info, warn or error.
		Level string
	}
)

// Config holds settings of the strsplit command.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually.
type Config struct {
	Delimiter Delimiter
	Output    Output
	Input     Input
	Log       Log
}

// Default returns default config, which splits by spaces and prints a segment per line.
func Default() *Config {
	return &Config{
		Delimiter: Delimiter{
			Text: " ",
		},
		Output: Output{
			Format: Lines,
		},
		Input: Input{
			MaxSize: 64 * 1024 * 1024, // 64 megabytes
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Validate reports the first found inconsistency.
func (c *Config) Validate() error {
	if _, err := c.Delimiter.Build(); err != nil {
		return err
	}

	switch c.Output.Format {
	case Lines, JSON:
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", c.Output.Format)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrUnknownLevel, "%q", c.Log.Level)
	}

	if c.Input.MaxSize <= 0 {
		return errors.Wrapf(ErrBadInputLimit, "got %d", c.Input.MaxSize)
	}

	return nil
}

// Build returns the configured delimiter.
func (d Delimiter) Build() (strsplit.Delimiter, error) {
	if len(d.Text) == 0 {
		return nil, ErrEmptyDelimiter
	}

	if !d.Char {
		return strsplit.Literal(d.Text), nil
	}

	char, width := utf8.DecodeRuneInString(d.Text)
	if width != len(d.Text) || (char == utf8.RuneError && width == 1) {
		return nil, errors.Wrapf(ErrNotAChar, "%q", d.Text)
	}

	return strsplit.Char(char), nil
}
