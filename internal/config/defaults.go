package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default configuration values.
const (
	// DefaultLogLevel is the default logger level.
	DefaultLogLevel = "info"

	// DefaultDebounce is how long the watcher waits for a file to settle.
	DefaultDebounce = 200 * time.Millisecond
)

// DefaultMarkdownExtensions are the extensions handled by the fence normalizer.
func DefaultMarkdownExtensions() []string {
	return []string{".md", ".mdx"}
}

// DefaultSkip lists base-name patterns that are never touched.
func DefaultSkip() []string {
	return []string{
		"bun.lockb",
		"package-lock.json",
		"yarn.lock",
		"pnpm-lock.yaml",
		".env",
		".env.local",
		".env.production",
		".env.development",
	}
}

func setDefaults(viperInstance *viper.Viper) {
	viperInstance.SetDefault("log_level", DefaultLogLevel)
	viperInstance.SetDefault("markdown_extensions", DefaultMarkdownExtensions())
	viperInstance.SetDefault("skip", DefaultSkip())
	viperInstance.SetDefault("watch.debounce", DefaultDebounce)
}
