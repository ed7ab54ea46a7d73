package scopestore

// DefaultMaxPinnedSpans is the pin capacity used when Config.MaxPinnedSpans is zero.
const DefaultMaxPinnedSpans = 10_000

// Config defines the configuration of a Store.
type Config struct {
	// MaxPinnedSpans caps how many in-flight spans have their scopes held
	// strongly. When the cap is reached the least recently stored span is
	// unpinned; its entry stays readable until the scopes are collected.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "max_pinned_spans" key
	//   - Environment variable SCOPESTORE_MAX_PINNED_SPANS
	//
	// Default: DefaultMaxPinnedSpans
	MaxPinnedSpans int `yaml:"max_pinned_spans" envconfig:"SCOPESTORE_MAX_PINNED_SPANS"`
}
