package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

type MainLogHook struct{}

func (h *MainLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Main: " + entry.Message
	return nil
}

func (h *MainLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// NewLogger builds a json logger with a component hook. Unknown levels fall back to info.
func NewLogger(level string, hook logrus.Hook) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	if hook != nil {
		log.AddHook(hook)
	}

	return logrus.NewEntry(log)
}
