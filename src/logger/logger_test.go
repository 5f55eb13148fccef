// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/logger"
)

func TestCLILogger(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewCLILogger()
	l.SetOutput(&buf)

	l.Printf("scanned %d certificates", 3)
	l.Println("done")

	out := buf.String()
	assert.Contains(t, out, "scanned 3 certificates")
	assert.Contains(t, out, "done")
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, l *logger.JSONLogger, buf *bytes.Buffer)
	}{
		{
			name: "Printf emits one JSON object per line",
			testFunc: func(t *testing.T, l *logger.JSONLogger, buf *bytes.Buffer) {
				l.Printf("renewal for %s failed", "example.com")

				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, "info", entry["level"])
				assert.Equal(t, "renewal for example.com failed", entry["message"])
			},
		},
		{
			name: "Println emits one JSON object per line",
			testFunc: func(t *testing.T, l *logger.JSONLogger, buf *bytes.Buffer) {
				l.Println("No certificates found")

				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, "No certificates found", entry["message"])
			},
		},
		{
			name: "SetOutput nil discards",
			testFunc: func(t *testing.T, l *logger.JSONLogger, buf *bytes.Buffer) {
				l.SetOutput(nil)
				l.Println("dropped")
				assert.Empty(t, buf.String())
			},
		},
		{
			name: "multiple messages are newline separated",
			testFunc: func(t *testing.T, l *logger.JSONLogger, buf *bytes.Buffer) {
				l.Println("one")
				l.Println("two")

				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				assert.Len(t, lines, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := logger.NewJSONLogger(&buf)
			tt.testFunc(t, l, &buf)
		})
	}
}

func TestNewJSONLoggerNilWriter(t *testing.T) {
	l := logger.NewJSONLogger(nil)
	// Must not panic.
	l.Println("nowhere")
}
