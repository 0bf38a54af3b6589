package logger

import (
	"testing"

	"github.com/Scalingo/github-gazer/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestStringToLogrusLogType(t *testing.T) {
	tests := []struct {
		input    string
		expected logrus.Level
	}{
		{input: "error", expected: logrus.ErrorLevel},
		{input: "WARN", expected: logrus.WarnLevel},
		{input: "warning", expected: logrus.WarnLevel},
		{input: " Info ", expected: logrus.InfoLevel},
		{input: "debug", expected: logrus.DebugLevel},
		{input: "verbose", expected: logrus.ErrorLevel},
		{input: "", expected: logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StringToLogrusLogType(tt.input))
		})
	}
}

func TestSetup(t *testing.T) {
	previousLevel := logrus.GetLevel()
	t.Cleanup(func() {
		logrus.SetLevel(previousLevel)
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	})

	cfg := config.GetDefault()
	cfg.Logs.Level = "warn"
	cfg.Logs.OutputLogsAsJSON = true
	Setup(*cfg)

	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	_, isJSON := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
	assert.True(t, isJSON)
}
