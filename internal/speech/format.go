package speech

// Format is the audio container/codec of the output file.
type Format string

const (
	FormatMP3  Format = "mp3"
	FormatOpus Format = "opus"
	FormatAAC  Format = "aac"
	FormatFLAC Format = "flac"
	FormatWAV  Format = "wav"
	FormatPCM  Format = "pcm"

	DefaultFormat = FormatMP3
)

var formats = []Format{FormatMP3, FormatOpus, FormatAAC, FormatFLAC, FormatWAV, FormatPCM}

// Formats returns every valid format in display order.
func Formats() []Format {
	return append([]Format(nil), formats...)
}

// ParseFormat matches s exactly (case-sensitive) against the format set.
func ParseFormat(s string) (Format, bool) {
	for _, f := range formats {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

func (f Format) String() string {
	return string(f)
}

// Extension is the file extension for f, dot included.
func (f Format) Extension() string {
	return "." + string(f)
}
