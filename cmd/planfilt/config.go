package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile is the optional per-directory defaults file.
const configFile = ".planfilt.yaml"

// fileConfig holds the defaults a .planfilt.yaml may provide. Explicit
// flags always take precedence.
type fileConfig struct {
	Delimiter string `yaml:"delimiter"`
	Format    string `yaml:"format"`
	Algorithm string `yaml:"algorithm"`
}

// loadFileConfig reads .planfilt.yaml from the working directory. A missing
// file is not an error; a present but unparseable one is.
func loadFileConfig() (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(configFile)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", configFile, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", configFile, err)
	}

	return cfg, nil
}

// orConfig resolves one setting: the flag value wins when the user set it
// on the command line, otherwise a non-empty config-file value overrides
// the command's registered default.
func orConfig(cmd *cobra.Command, name, flagVal, cfgVal string) string {
	if !cmd.Flags().Changed(name) && cfgVal != "" {
		return cfgVal
	}

	return flagVal
}

// parseDelimiter turns the flag/config string into a single rune.
func parseDelimiter(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}

	return r, nil
}
