package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создаёт логгер с уровнем и форматом из конфигурации
func New(logLevel, format string) *logrus.Logger {
	return NewWithOutput(logLevel, format, os.Stdout)
}

// NewWithOutput - то же, что New, но с произвольным выводом
func NewWithOutput(logLevel, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetOutput(out)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}

// Discard возвращает логгер без вывода, используется в тестах
func Discard() *logrus.Logger {
	return NewWithOutput("debug", "text", io.Discard)
}
