// Package config resolves the viewer's settings from flags and the
// environment. Flags win over environment variables; a .env file in the
// working directory is folded into the environment before parsing.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/RolfLobo/dembrandt/internal/app"
	"github.com/RolfLobo/dembrandt/internal/theme"
)

// Logging holds log destination settings.
type Logging struct {
	FilePath string
	Trace    bool
}

// Config is the fully resolved configuration.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

// Load reads a .env file if present, then parses os.Args against the
// process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadArgs(os.Args[1:], os.Environ())
}

// MustLoad is Load with exit-on-error, for main.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg
}

// LoadArgs parses the given argument list against the given environment.
// Split out from Load so tests can drive it directly.
func LoadArgs(args []string, environ []string) (*Config, error) {
	env := environMap(environ)

	fs := flag.NewFlagSet("dembrandt", flag.ContinueOnError)
	dir := fs.String("dir", envOrDefault(env, "DEMBRANDT_DIR", ""), "results directory to browse")
	remote := fs.String("remote", envOrDefault(env, "DEMBRANDT_REMOTE", ""), "base URL of a dembrandt server to browse instead of a local directory")
	serve := fs.Bool("serve", envOrBool(env, "DEMBRANDT_SERVE", false), "serve the results directory over HTTP instead of opening the viewer")
	listen := fs.String("listen", envOrDefault(env, "DEMBRANDT_LISTEN", ":8513"), "listen address for -serve")
	open := fs.String("open", "", "domain to open on startup")
	themeName := fs.String("theme", envOrDefault(env, "DEMBRANDT_THEME", ""), "colour theme (dark or light; default follows saved preferences)")
	width := fs.Int("width", envOrInt(env, "DEMBRANDT_WIDTH", 0), "fixed terminal width (0 = autodetect)")
	height := fs.Int("height", envOrInt(env, "DEMBRANDT_HEIGHT", 0), "fixed terminal height (0 = autodetect)")
	footer := fs.Bool("footer", envOrBool(env, "DEMBRANDT_FOOTER", true), "show the key hint footer")
	verbose := fs.Bool("verbose", envOrBool(env, "DEMBRANDT_VERBOSE", false), "log additional detail")
	traceFlag := fs.Bool("trace", envOrBool(env, "DEMBRANDT_TRACE", false), "write structured trace entries to the log file")
	logFile := fs.String("log-file", envOrDefault(env, "DEMBRANDT_LOG_FILE", ""), "log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		App: app.Config{
			Dir:        *dir,
			Remote:     strings.TrimSpace(*remote),
			Serve:      *serve,
			Listen:     *listen,
			Open:       strings.TrimSpace(*open),
			Theme:      *themeName,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *traceFlag,
		},
		Flags: flagValues(fs),
		Args:  fs.Args(),
	}
	return cfg, nil
}

// Validate rejects setting combinations the viewer can't honour.
func Validate(cfg *Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0, got %d", cfg.App.Height)
	}
	if _, ok := theme.ByName(cfg.App.Theme); !ok {
		return fmt.Errorf("unknown theme %q (themes: %s)", cfg.App.Theme, strings.Join(theme.Names(), ", "))
	}
	if cfg.App.Serve && cfg.App.Remote != "" {
		return fmt.Errorf("-serve reads a local directory and can not be combined with -remote")
	}
	if cfg.App.Serve && strings.TrimSpace(cfg.App.Listen) == "" {
		return fmt.Errorf("-serve requires a listen address")
	}
	return nil
}

func environMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return b
}

func flagValues(fs *flag.FlagSet) map[string]string {
	values := make(map[string]string)
	fs.VisitAll(func(f *flag.Flag) {
		values[f.Name] = f.Value.String()
	})
	return values
}
