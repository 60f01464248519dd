package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", Fallback},
		{"whitespace only", "   \n\t\n", Fallback},
		{"bash shebang", "#!/bin/bash\necho hi\n", "bash"},
		{"python shebang", "#!/usr/bin/env python3\nprint('hi')\n", "python"},
		{"go package clause", "package main\n\nfunc main() {}\n", "go"},
		{"go func main", "import \"fmt\"\n\nfunc main() {\n\tfmt.Println(1)\n}\n", "go"},
		{"python def", "def greet(name):\n    return name\n", "python"},
		{"html doctype", "<!DOCTYPE html>\n<html></html>\n", "html"},
		{"json object", `{"name": "ldoc", "jobs": 4}`, "json"},
		{"dockerfile", "FROM alpine:3.20\nRUN apk add curl\n", "dockerfile"},
		{"sql select", "SELECT id, name FROM users WHERE id = 1;", "sql"},
		{"shell prompt", "$ ldoc build docs/", "bash"},
		{"yaml mapping", "platform: linux\noutput: build\n", "yaml"},
		{"prose falls back", "just a plain sentence", Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect([]byte(tt.content)))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "bash", normalize("Shell"))
	assert.Equal(t, "go", normalize("Go"))
	assert.Equal(t, "javascript", normalize("JavaScript"))
}

func TestIsLikelyYAML(t *testing.T) {
	assert.True(t, isLikelyYAML([]byte("a: 1\nb: 2\n")))
	assert.True(t, isLikelyYAML([]byte("- one\n- two\n")))
	assert.False(t, isLikelyYAML([]byte("only: one line that counts")))
	assert.False(t, isLikelyYAML([]byte("f(x: 1)\ng(y: 2)\n")))
}
