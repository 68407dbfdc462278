/*
 * MIT License
 *
 * Copyright (c) 2024-2026 GoActive Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logEntry is the subset of the JSON output the tests care about.
type logEntry struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
}

func parseEntry(t *testing.T, buffer *bytes.Buffer) logEntry {
	t.Helper()
	var entry logEntry
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &entry))
	return entry
}

func TestZap_Info(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)

	logger.Info("hello")
	entry := parseEntry(t, buffer)
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, InfoLevel, logger.LogLevel())
}

func TestZap_Infof(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)

	logger.Infof("hello %s", "world")
	entry := parseEntry(t, buffer)
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "hello world", entry.Message)
}

func TestZap_Warn(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(WarningLevel, buffer)

	logger.Warnf("watch %s", "out")
	entry := parseEntry(t, buffer)
	assert.Equal(t, "WARN", entry.Level)
	assert.Equal(t, "watch out", entry.Message)
	assert.Equal(t, WarningLevel, logger.LogLevel())
}

func TestZap_Error(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(ErrorLevel, buffer)

	logger.Error("boom")
	entry := parseEntry(t, buffer)
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "boom", entry.Message)
	assert.Equal(t, ErrorLevel, logger.LogLevel())
}

func TestZap_DebugBelowInfoIsDropped(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)

	logger.Debug("invisible")
	assert.Zero(t, buffer.Len())
}

func TestZap_Panic(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(PanicLevel, buffer)

	assert.Panics(t, func() {
		logger.Panic("fatal condition")
	})
	entry := parseEntry(t, buffer)
	assert.Equal(t, "PANIC", entry.Level)
	assert.Equal(t, "fatal condition", entry.Message)
}

func TestZap_LogOutput(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)

	outputs := logger.LogOutput()
	require.Len(t, outputs, 1)
	assert.Same(t, buffer, outputs[0].(*bytes.Buffer))
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARNING", WarningLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "FATAL", FatalLevel.String())
	assert.Equal(t, "PANIC", PanicLevel.String())
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "UNKNOWN", InvalidLevel.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger
	logger.Info("dropped")
	logger.Warnf("dropped %d", 1)
	assert.Equal(t, InfoLevel, logger.LogLevel())
	require.Len(t, logger.LogOutput(), 1)
	assert.NoError(t, logger.Flush())
}
