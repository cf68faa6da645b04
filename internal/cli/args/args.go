// Package args turns a raw argument list into positional tokens and named options.
package args

import (
	"github.com/spf13/pflag"
)

const (
	FlagVoice  = "voice"
	FlagFormat = "format"
)

// Args is the parsed form of one invocation. Flags only holds options that
// were actually given on the command line.
type Args struct {
	positional []string
	flags      map[string]string
}

// Register declares the options on fs. --format has the -f alias, --voice has none.
func Register(fs *pflag.FlagSet) {
	fs.String(FlagVoice, "", "voice to synthesize with")
	fs.StringP(FlagFormat, "f", "", "audio format of the output file")
}

// FromFlagSet collects the flags set on an already parsed fs.
func FromFlagSet(fs *pflag.FlagSet, positional []string) Args {
	a := Args{
		positional: append([]string(nil), positional...),
		flags:      map[string]string{},
	}
	fs.Visit(func(f *pflag.Flag) {
		a.flags[f.Name] = f.Value.String()
	})
	return a
}

// Parse parses raw (program name excluded) with a fresh flag set.
// Unknown flags are skipped rather than rejected.
func Parse(raw []string) (Args, error) {
	fs := pflag.NewFlagSet("args", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	Register(fs)
	if err := fs.Parse(raw); err != nil {
		return Args{}, err
	}
	return FromFlagSet(fs, fs.Args()), nil
}

// Positional returns the i-th non-flag token, or "" when there is none.
func (a Args) Positional(i int) string {
	if i < 0 || i >= len(a.positional) {
		return ""
	}
	return a.positional[i]
}

func (a Args) NArg() int {
	return len(a.positional)
}

// Flag reports the value of a named option and whether it was given.
func (a Args) Flag(name string) (string, bool) {
	v, ok := a.flags[name]
	return v, ok
}
