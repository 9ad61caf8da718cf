package cli

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/vvka-141/sampleorg/internal/categorize"
	"github.com/vvka-141/sampleorg/internal/config"
	"github.com/vvka-141/sampleorg/pkg/sampleorg"
)

// resolveConfigPath picks the category config: the --config flag, then
// SAMPLEORG_CONFIG (a .env file in the working directory may set it), then
// config.toml.
func resolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	_ = godotenv.Load()
	if p := os.Getenv(sampleorg.ConfigEnvVar); p != "" {
		return p
	}
	return sampleorg.DefaultConfigFile
}

// loadCategories loads the config at path and compiles its categories.
func loadCategories(path string, logger sampleorg.Logger) (*config.Config, *categorize.Categorizer, error) {
	if !hasConfigExtension(path) {
		logger.Verbose("Unrecognised config extension for %s, reading it as TOML", path)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Verbose("Loaded %d categories from %s", len(cfg.Patterns), path)
	return cfg, categorize.New(cfg, logger), nil
}
