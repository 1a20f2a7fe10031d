package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables in raw YAML using Go template
// syntax: {{.LLM_API_KEY}} becomes the value of LLM_API_KEY. Plain $ is left
// untouched, which matters here because guardian blocklists and suspicious
// patterns are full of regex anchors and shell fragments ("^secret.*$",
// "$PATH") that os.ExpandEnv-style substitution would mangle.
//
// Unset variables render as the empty string; required-field validation is
// expected to reject the resulting gaps. Content that fails to parse or
// execute as a template is returned unchanged so template-free YAML always
// passes through.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		// Values may themselves contain '='; split on the first only.
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, env); err != nil {
		return data
	}
	return out.Bytes()
}
