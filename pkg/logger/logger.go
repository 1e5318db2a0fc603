// Package logger concentra la configuración de zerolog de la API.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvDevelopment activa la salida de consola con colores.
const EnvDevelopment = "development"

// Config opciones del logger.
type Config struct {
	Env     string
	Level   string // nivel zerolog; vacío o desconocido = info
	Service string // se agrega como campo "service" a cada evento
}

// Logger envuelve zerolog para inyectarlo en los casos de uso.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger del proceso sobre stdout y lo instala como logger global.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == EnvDevelopment {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime}
	}
	l := NewWithWriter(w, cfg)
	log.Logger = l.zl
	return l
}

// NewWithWriter escribe JSON (o lo que produzca w) sin tocar el logger global.
func NewWithWriter(w io.Writer, cfg Config) *Logger {
	ctx := zerolog.New(w).Level(Level(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	return &Logger{zl: ctx.Logger()}
}

// Nop descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Level traduce el nivel configurado. "warning" se acepta como alias de warn.
func Level(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Component sublogger con el campo "component" fijo (ledger, http, ...).
func (l *Logger) Component(name string) zerolog.Logger {
	return l.zl.With().Str("component", name).Logger()
}

func (l *Logger) Zerolog() zerolog.Logger { return l.zl }
