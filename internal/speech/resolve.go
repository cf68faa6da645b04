package speech

import (
	"strings"

	"github.com/sirupsen/logrus"

	"speakfile/internal/cli/args"
)

// Resolver derives the final voice and format from explicit flags, the
// output file name and the defaults, in that order. It never fails: bad
// input is logged as a warning and replaced.
type Resolver struct {
	log           logrus.FieldLogger
	defaultVoice  Voice
	defaultFormat Format
}

// NewResolver builds a Resolver with configured defaults. Defaults outside
// the closed sets are replaced by DefaultVoice and DefaultFormat.
func NewResolver(log logrus.FieldLogger, voice, format string) *Resolver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	r := &Resolver{log: log, defaultVoice: DefaultVoice, defaultFormat: DefaultFormat}
	if v, ok := ParseVoice(voice); ok {
		r.defaultVoice = v
	} else if voice != "" {
		log.WithField("voice", voice).Warn("configured default voice is not valid, using " + DefaultVoice.String())
	}
	if f, ok := ParseFormat(format); ok {
		r.defaultFormat = f
	} else if format != "" {
		log.WithField("format", format).Warn("configured default format is not valid, using " + DefaultFormat.String())
	}
	return r
}

// Options resolves both settings from parsed arguments. outputPath is the
// proposed output file name used for extension inference.
func (r *Resolver) Options(a args.Args, outputPath string) Options {
	voice, voiceSet := a.Flag(args.FlagVoice)
	format, formatSet := a.Flag(args.FlagFormat)
	return Options{
		Voice:  r.Voice(voice, voiceSet),
		Format: r.Format(format, formatSet, outputPath),
	}
}

func (r *Resolver) Voice(raw string, present bool) Voice {
	if !present {
		return r.defaultVoice
	}
	if v, ok := ParseVoice(raw); ok {
		return v
	}
	r.log.WithField("voice", raw).Warnf("invalid voice, using default %q", r.defaultVoice)
	return r.defaultVoice
}

func (r *Resolver) Format(raw string, present bool, outputPath string) Format {
	if present {
		if f, ok := ParseFormat(raw); ok {
			return f
		}
		r.log.WithField("format", raw).Warn("invalid format, inferring from output file name")
	}
	if f, ok := FormatFromPath(outputPath); ok {
		return f
	}
	return r.defaultFormat
}

// FormatFromPath infers the format from the last dot-separated chunk of p.
// A lone leading-dot name such as ".aac" has no stem and yields nothing.
func FormatFromPath(p string) (Format, bool) {
	chunks := strings.Split(p, ".")
	if len(chunks) < 2 {
		return "", false
	}
	if chunks[0] == "" && len(chunks) <= 2 {
		return "", false
	}
	return ParseFormat(strings.ToLower(chunks[len(chunks)-1]))
}
