package sframe

// contextConfig holds configuration shared by Context and GroupContext.
type contextConfig struct {
	crypto Crypto
}

func defaultConfig() contextConfig {
	return contextConfig{crypto: stdCrypto{}}
}

// Option configures a Context or GroupContext.
type Option func(*contextConfig)

// WithCrypto replaces the default cryptographic provider.
func WithCrypto(c Crypto) Option {
	return func(cfg *contextConfig) {
		cfg.crypto = c
	}
}
