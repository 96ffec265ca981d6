package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "wellbeing"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/wellbeing"
	DefaultConfigFile  = "~/.config/wellbeing/config.yaml"
	DefaultDBPath      = "~/.config/wellbeing/wellbeing.db"
	Version            = "v0.1.0"

	// EnvPrefix is prepended to configuration keys read from the environment
	EnvPrefix = "WELLBEING"

	// KeyringDatabase selects the connection string stored in the OS keyring
	KeyringDatabase = "keyring"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is accepted wherever an entry timestamp is set explicitly
	DateTimeFormat = "2006-01-02T15:04"

	// MonthFormat selects a shown month (YYYY-MM)
	MonthFormat = "2006-01"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	SecondsPerDay = 24 * 60 * 60

	// RecentWindowDays separates weekday labels from dated labels
	RecentWindowDays = 7

	// Backup constants
	MaxBackups       = 14
	BackupTimeFormat = "2006-01-02_15-04-05"

	DefaultExportPath = "exported.csv"
	DefaultGreeting   = "Dear Buddha, "
)

// Session States
const (
	StateBrowse SessionState = iota
	StateCompose
	StateEdit
	StateConfirmDelete
)
