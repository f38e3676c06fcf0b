package core

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

// Config holds runtime options for a search and its presentation
type Config struct {
	Starts      []string
	Expressions []string
	Unique      bool
	Verbose     bool
	Encoding    string
	NoColor     bool
	LogLevel    string
	Quiet       bool
}

// NewConfig returns a Config initialized with default values
func NewConfig() *Config {
	return &Config{
		Starts:      nil,
		Expressions: nil,
		Unique:      false,
		Verbose:     false,
		Encoding:    "utf-8",
		NoColor:     false,
		LogLevel:    "info",
		Quiet:       false,
	}
}

// FromFlags updates the Config fields from a parsed FlagSet
func (c *Config) FromFlags(fs *pflag.FlagSet) error {
	paths, err := fs.GetStringArray("path")
	if err != nil {
		return err
	}
	c.Starts = trimAll(paths)

	exprs, err := fs.GetStringArray("expression")
	if err != nil {
		return err
	}
	c.Expressions = trimAll(exprs)

	u, err := fs.GetBool("unique")
	if err != nil {
		return err
	}
	c.Unique = u

	v, err := fs.GetBool("verbose")
	if err != nil {
		return err
	}
	c.Verbose = v

	enc, err := fs.GetString("encoding")
	if err != nil {
		return err
	}
	if !KnownEncoding(enc) {
		return errors.Wrapf(ErrUnknownEncoding, "--encoding %q", enc)
	}
	c.Encoding = enc

	nc, err := fs.GetBool("no-color")
	if err != nil {
		return err
	}
	c.NoColor = nc

	lvl, err := fs.GetString("log-level")
	if err != nil {
		return err
	}
	lvl = strings.ToLower(strings.TrimSpace(lvl))
	switch lvl {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalidLogLevel, "--log-level %q", lvl)
	}
	c.LogLevel = lvl

	q, err := fs.GetBool("quiet")
	if err != nil {
		return err
	}
	c.Quiet = q
	if q && (lvl == "debug" || lvl == "info") {
		c.LogLevel = "warn"
	}

	return nil
}

// AddStarts appends positional starting points after those given with --path
func (c *Config) AddStarts(args []string) {
	c.Starts = append(c.Starts, trimAll(args)...)
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
