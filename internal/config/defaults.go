package config

const (
	defaultLines              = 10
	defaultBufferSize         = 16 * 1024
	defaultPollIntervalMillis = 1000
	defaultEncoding           = "utf-8"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tail: Tail{
			Lines:              defaultLines,
			BufferSize:         defaultBufferSize,
			PollIntervalMillis: defaultPollIntervalMillis,
			Encoding:           defaultEncoding,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
