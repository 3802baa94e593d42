package config

// Override is a sparse configuration: only set fields take effect
// when applied over a base Config. Loaders produce Overrides so that
// "unspecified" and "zero" stay distinguishable.
type Override struct {
	Width         *int              `toml:"width"`
	Height        *int              `toml:"height"`
	CompressAfter *int              `toml:"compress_after"`
	Anchor        *string           `toml:"anchor"`
	Toggle        *string           `toml:"toggle"`
	Symbols       map[string]string `toml:"symbols"`
	Style         StyleOverride     `toml:"style"`
	Log           LogOverride       `toml:"log"`
	Script        *string           `toml:"script"`
}

// StyleOverride is the sparse form of StyleConfig.
type StyleOverride struct {
	Foreground *string `toml:"foreground"`
	Background *string `toml:"background"`
}

// LogOverride is the sparse form of LogConfig.
type LogOverride struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// Apply merges the override over base and returns the result. Set
// fields replace the base value; symbol entries merge key by key with
// the override winning.
func (o Override) Apply(base Config) Config {
	cfg := base

	if o.Width != nil {
		cfg.Width = *o.Width
	}
	if o.Height != nil {
		cfg.Height = *o.Height
	}
	if o.CompressAfter != nil {
		cfg.CompressAfter = *o.CompressAfter
	}
	if o.Anchor != nil {
		cfg.Anchor = *o.Anchor
	}
	if o.Toggle != nil {
		cfg.Toggle = *o.Toggle
	}
	if o.Script != nil {
		cfg.Script = *o.Script
	}
	if o.Style.Foreground != nil {
		cfg.Style.Foreground = *o.Style.Foreground
	}
	if o.Style.Background != nil {
		cfg.Style.Background = *o.Style.Background
	}
	if o.Log.Level != nil {
		cfg.Log.Level = *o.Log.Level
	}
	if o.Log.File != nil {
		cfg.Log.File = *o.Log.File
	}

	if len(o.Symbols) > 0 {
		merged := make(map[string]string, len(base.Symbols)+len(o.Symbols))
		for k, v := range base.Symbols {
			merged[k] = v
		}
		for k, v := range o.Symbols {
			merged[k] = v
		}
		cfg.Symbols = merged
	}

	return cfg
}
