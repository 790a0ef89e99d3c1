package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation ("narrative.formal_tone"); implementations handle
// persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt returns 0 if the key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool returns false if the key doesn't exist or isn't a boolean.
	// Use Get to tell a missing key from an explicit false.
	GetBool(key string) bool

	// GetStringSlice returns nil if the key doesn't exist or isn't a slice.
	GetStringSlice(key string) []string

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string

	// Keys returns every configured key in sorted order.
	Keys() []string
}

// Configuration keys read by the application.
const (
	ConfigFormalTone             = "narrative.formal_tone"
	ConfigIncludeOutcomes        = "narrative.include_outcomes"
	ConfigIncludeTimeBreakdown   = "narrative.include_time_breakdown"
	ConfigIncludeWorkTypeDetails = "narrative.include_work_type_details"
	ConfigGroupByWorkType        = "narrative.group_by_work_type"
	ConfigIncludeComplexity      = "narrative.include_complexity_justification"
	ConfigIncludeValueDelivered  = "narrative.include_value_delivered"
	ConfigNarrativeType          = "narrative.type"
	ConfigRewriters              = "narrative.rewriters"
	ConfigRewriterPrefix         = "narrative.rewriter."
	ConfigStorageBackend         = "storage.backend"
	ConfigHistoryLimit           = "history.limit"
	ConfigMCPRequestsPerSecond   = "mcp.requests_per_second"
	ConfigMCPBurst               = "mcp.burst"
)
