package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Keys shared between the CLI and the engines.
const (
	KeyEngine        = "engine"
	KeyVoice         = "voice"
	KeyFormat        = "format"
	KeyOutput        = "output"
	KeyOpenAIKey     = "openai.api_key"
	KeyOpenAIModel   = "openai.model"
	KeyOpenAIBaseURL = "openai.base_url"
	KeyGoogleVoice   = "google.voice"
	KeyGoogleVoices  = "google.voices"
	KeyGoogleLang    = "google.language_code"
	KeyGoogleCreds   = "google.credentials_file"
	KeyESpeakVoice   = "espeak.voice"
	KeyESpeakSpeed   = "espeak.speed"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyEngine, "openai")
	v.SetDefault(KeyVoice, "onyx")
	v.SetDefault(KeyFormat, "mp3")
	v.SetDefault(KeyOutput, "output")

	v.SetDefault(KeyOpenAIModel, "tts-1")
	v.SetDefault(KeyOpenAIBaseURL, "")

	v.SetDefault(KeyGoogleVoice, "en-US-Chirp3-HD-Charon")
	v.SetDefault(KeyGoogleLang, "en-US")
	v.SetDefault(KeyGoogleVoices, map[string]string{})

	v.SetDefault(KeyESpeakVoice, "en")
	v.SetDefault(KeyESpeakSpeed, 1.0)
}

// Load reads .env, the optional config file and the environment into the
// global viper instance. path overrides the config file search when set.
func Load(path string) error {
	// .env is optional
	_ = godotenv.Load()

	v := viper.GetViper()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("speakfile")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.speakfile")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("speakfile")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// the credential keeps the name every OpenAI client expects
	if err := v.BindEnv(KeyOpenAIKey, "OPENAI_API_KEY", "SPEAKFILE_OPENAI_API_KEY"); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return nil
		}
		return err
	}
	logrus.WithField("file", v.ConfigFileUsed()).Debug("loaded config")
	return nil
}
