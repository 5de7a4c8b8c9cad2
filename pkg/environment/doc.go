// Package environment names the deployment environment (development,
// staging, production) the service runs in.
//
// Parse normalises APP_ENV values, accepting the short aliases dev, stage
// and prod. pkg/logger uses it to pick level and format presets:
//
//	log := logger.New(logger.WithEnvironment(cfg.Env, cfg.Name))
package environment
