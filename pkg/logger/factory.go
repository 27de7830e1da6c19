package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/dmitrymomot/bootkit/pkg/config"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs colored human-readable logs rendered by tint.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*loggerConfig)

func WithLevel(l slog.Level) Option {
	return func(c *loggerConfig) { c.level = l }
}

// WithFormat sets output format. It panics for unknown formats.
func WithFormat(f Format) Option {
	return func(c *loggerConfig) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *loggerConfig) {
		c.format = FormatText
	}
}

func WithJSONFormatter() Option {
	return func(c *loggerConfig) {
		c.format = FormatJSON
	}
}

// WithOutput sets the output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *loggerConfig) {
		if w != nil {
			c.output = w
		}
	}
}

// WithHandlerOptions overrides the slog handler options. Nil is ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *loggerConfig) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *loggerConfig) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithContextExtractors registers functions that inject dynamic attributes from context.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *loggerConfig) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue logs the context value stored under key as attribute name.
func WithContextValue(name string, key any) Option {
	return func(c *loggerConfig) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithNoColor disables ANSI colors of the text format.
func WithNoColor() Option {
	return func(c *loggerConfig) { c.noColor = true }
}

// WithDevelopment configures development defaults: tint text output at debug level.
func WithDevelopment(service string) Option {
	return withStage(service, config.Development, slog.LevelDebug, FormatText)
}

// WithProduction configures production defaults: JSON output at info level.
func WithProduction(service string) Option {
	return withStage(service, config.Production, slog.LevelInfo, FormatJSON)
}

// WithStaging configures staging defaults: JSON output at info level.
func WithStaging(service string) Option {
	return withStage(service, config.Staging, slog.LevelInfo, FormatJSON)
}

// WithEnvironment picks the stage defaults for env, see config.ParseEnvironment.
func WithEnvironment(env string, service string) Option {
	return func(c *loggerConfig) {
		switch config.ParseEnvironment(env) {
		case config.Production:
			WithProduction(service)(c)
		case config.Staging:
			WithStaging(service)(c)
		default:
			WithDevelopment(service)(c)
		}
	}
}

func withStage(service string, env config.Environment, level slog.Level, format Format) Option {
	return func(c *loggerConfig) {
		if service == "" {
			return
		}
		c.level = level
		c.format = format
		if c.output == nil {
			c.output = os.Stdout
		}
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", string(env)),
		)
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type loggerConfig struct {
	level          slog.Level
	format         Format
	output         io.Writer
	noColor        bool
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

// defaultConfig is JSON at info level on stdout.
func defaultConfig() *loggerConfig {
	return &loggerConfig{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New creates a configured slog.Logger whose handler is wrapped with a
// ContextHandler running the registered extractors.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := cfg.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: cfg.level}
	}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = tint.NewHandler(cfg.output, &tint.Options{
			AddSource:   handlerOpts.AddSource,
			Level:       handlerOpts.Level,
			ReplaceAttr: handlerOpts.ReplaceAttr,
			TimeFormat:  time.TimeOnly,
			NoColor:     cfg.noColor,
		})
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewContextHandler(handler, cfg.extractors...))
}
