// Package config fills env-tagged structs from the process environment.
//
// Parsing is done by caarlos0/env, so the usual `env` and `envDefault` tags
// apply and nested structs are walked field by field. The packages in this
// module ship their own tagged pieces, meant to be embedded in one
// application struct:
//
//	type Config struct {
//		AppName string `env:"APP_NAME" envDefault:"spellbook"`
//
//		Log    logger.Config // LOG_LEVEL, LOG_FORMAT
//		Server server.Config // SERVER_ADDR, SERVER_READ_TIMEOUT, SERVER_MAX_BODY_BYTES, ...
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
//	log := logger.New(logger.WithConfig(cfg.Log))
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//
// Load returns the parse error (wrapped with the type name); MustLoad panics
// with it, which is the usual choice in main. A nil pointer yields
// ErrNilConfig.
//
// # .env files
//
// The first Load reads .env from the working directory, if present, exactly
// once per process. Values from the file never override variables that are
// already set, so the real environment always wins over the file.
//
// # Caching
//
// Results are cached per reflect.Type. The first successful Load of a type
// fixes its value for the rest of the process; later calls copy the cached
// value and do not look at the environment again. Failed loads are not
// cached, so a fixed environment can be retried. Distinct types, including
// the embedded ones above when loaded on their own, are cached separately.
package config
