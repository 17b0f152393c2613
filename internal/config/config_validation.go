package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in defaults
// for optional fields left empty by every source.
//
// The token sign key has deliberately no default: a process started without
// an explicit secret refuses to boot instead of silently signing tokens with
// a placeholder value.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	return nil
}
