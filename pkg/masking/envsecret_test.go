package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvSecretMaskerName(t *testing.T) {
	m := &EnvSecretMasker{}
	assert.Equal(t, "env_secrets", m.Name())
}

func TestEnvSecretMaskerAppliesTo(t *testing.T) {
	m := &EnvSecretMasker{}

	tests := []struct {
		name    string
		data    string
		applies bool
	}{
		{"env dump", "PATH=/usr/bin\nHOME=/root", true},
		{"dotenv file", "# comment\nDB_PASSWORD=x\n", true},
		{"export form", "export API_TOKEN=abc", true},
		{"prose output", "Nmap scan report for 10.0.0.5", false},
		{"empty", "", false},
		{"equals in prose", "latency = high today", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.applies, m.AppliesTo(tt.data))
		})
	}
}

func TestEnvSecretMaskerMask(t *testing.T) {
	m := &EnvSecretMasker{}

	t.Run("masks secret-bearing keys only", func(t *testing.T) {
		input := "PATH=/usr/local/bin\n" +
			"API_TOKEN=tok-FAKE-VALUE\n" +
			"DB_PASSWORD=hunter2\n" +
			"SHELL=/bin/bash\n" +
			"AWS_ACCESS_KEY_ID=AKIAFAKE\n" +
			"TERM=xterm"

		result := m.Mask(input)

		assert.Contains(t, result, "PATH=/usr/local/bin")
		assert.Contains(t, result, "SHELL=/bin/bash")
		assert.Contains(t, result, "TERM=xterm")
		assert.Contains(t, result, "API_TOKEN="+MaskedEnvValue)
		assert.Contains(t, result, "DB_PASSWORD="+MaskedEnvValue)
		assert.Contains(t, result, "AWS_ACCESS_KEY_ID="+MaskedEnvValue)
		assert.NotContains(t, result, "tok-FAKE-VALUE")
		assert.NotContains(t, result, "hunter2")
		assert.NotContains(t, result, "AKIAFAKE")
	})

	t.Run("preserves export prefix", func(t *testing.T) {
		result := m.Mask("export CLIENT_SECRET=abc123def")
		assert.Equal(t, "export CLIENT_SECRET="+MaskedEnvValue, result)
	})

	t.Run("pwd suffix matches but cwd-style names do not", func(t *testing.T) {
		result := m.Mask("MYSQL_PWD=sekrit\nPWDIR=/tmp/work")

		assert.Contains(t, result, "MYSQL_PWD="+MaskedEnvValue)
		assert.Contains(t, result, "PWDIR=/tmp/work")
	})

	t.Run("no secrets returns input unchanged", func(t *testing.T) {
		input := "PATH=/usr/bin\nHOME=/root"
		assert.Equal(t, input, m.Mask(input))
	})

	t.Run("non-assignment lines untouched", func(t *testing.T) {
		input := "Environment:\nAPI_KEY=k-FAKE-123\ndone."
		result := m.Mask(input)

		assert.Contains(t, result, "Environment:")
		assert.Contains(t, result, "done.")
		assert.Contains(t, result, "API_KEY="+MaskedEnvValue)
	})
}
