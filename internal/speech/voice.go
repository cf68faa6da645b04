package speech

// Voice selects one of the synthetic speakers offered by the service.
type Voice string

const (
	VoiceAlloy   Voice = "alloy"
	VoiceAsh     Voice = "ash"
	VoiceCoral   Voice = "coral"
	VoiceEcho    Voice = "echo"
	VoiceFable   Voice = "fable"
	VoiceOnyx    Voice = "onyx"
	VoiceNova    Voice = "nova"
	VoiceSage    Voice = "sage"
	VoiceShimmer Voice = "shimmer"

	DefaultVoice = VoiceOnyx
)

var voices = []Voice{
	VoiceAlloy, VoiceAsh, VoiceCoral, VoiceEcho, VoiceFable,
	VoiceOnyx, VoiceNova, VoiceSage, VoiceShimmer,
}

// Voices returns every valid voice in display order.
func Voices() []Voice {
	return append([]Voice(nil), voices...)
}

// ParseVoice matches s exactly (case-sensitive) against the voice set.
func ParseVoice(s string) (Voice, bool) {
	for _, v := range voices {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

func (v Voice) String() string {
	return string(v)
}
