package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguage_InfoStringWins(t *testing.T) {
	// Content says Go; the fence says python. The author wins.
	got := Language("python", []byte("package main\n"))
	assert.Equal(t, "python", got)
}

func TestLanguage_InfoStringFirstFieldOnly(t *testing.T) {
	got := Language(`rust title="example"`, nil)
	assert.Equal(t, "rust", got)
}

func TestLanguage_NormalizesShell(t *testing.T) {
	assert.Equal(t, "bash", Language("Shell", nil))
}

func TestDetect_EmptyContent(t *testing.T) {
	assert.Equal(t, "text", Detect(nil))
	assert.Equal(t, "text", Detect([]byte("  \n\t")))
}

func TestDetect_GoByPrefix(t *testing.T) {
	content := []byte("package main\n\nfunc main() {}\n")
	assert.Equal(t, "go", Detect(content))
}

func TestDetect_JSONByPrefix(t *testing.T) {
	assert.Equal(t, "json", Detect([]byte(`{"key": "value"}`)))
	assert.Equal(t, "json", Detect([]byte(`[{"a": 1}]`)))
}

func TestDetect_Shebang(t *testing.T) {
	assert.Equal(t, "bash", Detect([]byte("#!/bin/sh\necho hi\n")))
}

func BenchmarkDetect(b *testing.B) {
	content := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n")
	b.ReportAllocs()
	for b.Loop() {
		Detect(content)
	}
}
