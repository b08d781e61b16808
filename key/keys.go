// Package key defines the configuration identifiers shared by viper, flags and env bindings.
package key

// Schedule service client.
const (
	ClientBaseURL   = "client.base_url"
	ClientTimeout   = "client.timeout"
	ClientUserAgent = "client.user_agent"
)

// Terminal viewer.
const (
	TUIDefaultDay  = "tui.default_day"
	TUIExitOnError = "tui.exit_on_error"
	TUIShowEnded   = "tui.show_ended"
)

const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored = "cli.colored"
)
