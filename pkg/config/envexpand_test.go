package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "substitutes template variables",
			input: "api_key_env: {{.OPENAI_API_KEY}}",
			env:   map[string]string{"OPENAI_API_KEY": "sk-test-123"},
			want:  "api_key_env: sk-test-123",
		},
		{
			name:  "multiple variables on one line",
			input: "endpoint: {{.LLM_SCHEME}}://{{.LLM_HOST}}:{{.LLM_PORT}}/v1",
			env: map[string]string{
				"LLM_SCHEME": "https",
				"LLM_HOST":   "llm.internal",
				"LLM_PORT":   "8443",
			},
			want: "endpoint: https://llm.internal:8443/v1",
		},
		{
			name:  "shell-style dollar is left alone",
			input: "blocked_commands:\n  - \"echo $PATH > /etc/profile\"",
			env:   map[string]string{"PATH": "/usr/bin"},
			want:  "blocked_commands:\n  - \"echo $PATH > /etc/profile\"",
		},
		{
			name:  "regex anchors survive",
			input: `suspicious_patterns: ["^secret.*$", "\\$\\{.*\\}"]`,
			env:   map[string]string{},
			want:  `suspicious_patterns: ["^secret.*$", "\\$\\{.*\\}"]`,
		},
		{
			name:  "unset variable renders empty",
			input: "api_key_env: {{.NOT_SET_ANYWHERE}}",
			env:   map[string]string{},
			want:  "api_key_env: ",
		},
		{
			name:  "value containing equals sign",
			input: "dsn: {{.DATABASE_URL}}",
			env:   map[string]string{"DATABASE_URL": "postgres://redclaw:pw@db:5432/redclaw?sslmode=disable"},
			want:  "dsn: postgres://redclaw:pw@db:5432/redclaw?sslmode=disable",
		},
		{
			name: "nested yaml document",
			input: "database:\n" +
				"  host: {{.DB_HOST}}\n" +
				"  port: {{.DB_PORT}}\n",
			env:  map[string]string{"DB_HOST": "localhost", "DB_PORT": "5432"},
			want: "database:\n  host: localhost\n  port: 5432\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

// Malformed template syntax must pass through unchanged so the YAML parser
// reports the real problem, and no environment value may leak into the
// passthrough.
func TestExpandEnvMalformedTemplate(t *testing.T) {
	t.Setenv("LEAK_CHECK", "must-not-appear")

	inputs := []string{
		"api_key_env: {{.LEAK_CHECK",
		"api_key_env: {{",
		"api_key_env: {{.LEAK_CHECK}",
		"api_key_env: {{.LEAK CHECK}}",
		"api_key_env: {{.LEAK_CHECK | upper}}",
		"key1: {{.A\nkey2: {{.B}",
	}
	for _, in := range inputs {
		out := string(ExpandEnv([]byte(in)))
		assert.Equal(t, in, out)
		assert.NotContains(t, out, "must-not-appear")
	}
}

// A config file with no template syntax at all comes back byte-identical,
// comments included.
func TestExpandEnvNoTemplates(t *testing.T) {
	input := `
# llm providers
providers:
  openai:
    model: gpt-4o
    priority: 0
queue:
  worker_count: 2
`
	assert.Equal(t, input, string(ExpandEnv([]byte(input))))
	assert.Empty(t, string(ExpandEnv(nil)))
}

// Passthrough output must still be parseable where the YAML itself is valid:
// a malformed template inside a quoted scalar is just a string to the parser.
func TestExpandEnvYAMLRoundTrip(t *testing.T) {
	input := `
guardian:
  blocked_commands:
    - ":(){ :|:& };:"
  api_key: "{{.UNCLOSED"
`
	var doc map[string]any
	assert.NoError(t, yaml.Unmarshal(ExpandEnv([]byte(input)), &doc))
	assert.NotNil(t, doc["guardian"])
}

func TestExpandEnvConcurrent(t *testing.T) {
	t.Setenv("CONCURRENT_VAR", "value")
	input := []byte("key: {{.CONCURRENT_VAR}}")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "key: value", string(ExpandEnv(input)))
		}()
	}
	wg.Wait()
}
