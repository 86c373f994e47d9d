package logging

import (
	"encoding/json"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fractalglobal/utils/logger"
)

// Config holds the logging configuration.
type Config struct {
	Level string `yaml:"level"` // minimum level written: debug, info, warn, error or fatal
}

// Helper helps with writing logs to io.Writers.
// Helper implements logger.Logger interface.
// Records below the configured level are dropped.
type Helper struct {
	callOnErr func(error)
	writers   []io.Writer
	level     logger.Level
}

// New creates new Helper. An unknown level in cfg is reported to callOnErr and info is used.
func New(cfg Config, callOnErr func(error), writers ...io.Writer) Helper {
	level := logger.LevelInfo
	if cfg.Level != "" {
		l, err := logger.ParseLevel(cfg.Level)
		if err != nil {
			callOnErr(err)
		} else {
			level = l
		}
	}
	return Helper{callOnErr: callOnErr, writers: writers, level: level}
}

// Debug writes debug log.
func (h Helper) Debug(msg string) {
	h.write(logger.LevelDebug, msg)
}

// Info writes info log.
func (h Helper) Info(msg string) {
	h.write(logger.LevelInfo, msg)
}

// Warn writes warning log.
func (h Helper) Warn(msg string) {
	h.write(logger.LevelWarn, msg)
}

// Error writes error log.
func (h Helper) Error(msg string) {
	h.write(logger.LevelError, msg)
}

// Fatal writes fatal log.
func (h Helper) Fatal(msg string) {
	h.write(logger.LevelFatal, msg)
}

func (h Helper) write(level logger.Level, msg string) {
	if level < h.level {
		return
	}
	l := logger.Log{
		ID:        primitive.NewObjectID(),
		CreatedAt: time.Now(),
		Level:     level.String(),
		Msg:       msg,
	}
	raw, err := json.Marshal(l)
	if err != nil {
		h.callOnErr(err)
		return
	}
	for _, w := range h.writers {
		if _, err := w.Write(raw); err != nil {
			h.callOnErr(err)
		}
	}
}
