//go:build unit
// +build unit

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLogger(t *testing.T) {
	log := NewConsoleLogger("info")
	assert.NotNil(t, log)

	assert.NotPanics(t, func() {
		log.Info("info message")
		log.Warn("warn message")
		log.Error("error message")
	})

	assert.Panics(t, func() {
		log.Panic("panic message")
	})
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, parseLevel("info"), parseLevel("bogus"))
}
