package config

const (
	defaultDataDir                = "~/.local/share/guardian/data"
	defaultLogDir                 = "~/.local/share/guardian/logs"
	defaultAPIBind                = "127.0.0.1:7519"
	defaultMaxUploadMiB           = 64
	defaultShutdownTimeout        = 10
	defaultAnalyzerBaseURL        = "https://openrouter.ai/api/v1/chat/completions"
	defaultAnalyzerModel          = "openai/gpt-5"
	defaultAnalyzerReferer        = "https://github.com/guardian-media/guardian"
	defaultAnalyzerTitle          = "Guardian Deepfake Analyzer"
	defaultAnalyzerTimeoutSeconds = 60
	defaultAnchorTimeoutSeconds   = 15
	defaultNotifyRequestTimeout   = 10
	defaultLogLevel               = "info"
	defaultLogFormat              = "text"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Server: Server{
			MaxUploadMiB:    defaultMaxUploadMiB,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Analyzer: Analyzer{
			BaseURL:        defaultAnalyzerBaseURL,
			Model:          defaultAnalyzerModel,
			Referer:        defaultAnalyzerReferer,
			Title:          defaultAnalyzerTitle,
			TimeoutSeconds: defaultAnalyzerTimeoutSeconds,
		},
		Anchor: Anchor{
			TimeoutSeconds: defaultAnchorTimeoutSeconds,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyRequestTimeout,
			Ingest:         true,
			Errors:         true,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
