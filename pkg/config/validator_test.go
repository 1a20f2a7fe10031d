package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
)

func TestValidateLLMProviders(t *testing.T) {
	tests := []struct {
		name      string
		providers map[string]*LLMProviderConfig
		env       map[string]string
		wantErr   bool
		errMsg    string
	}{
		{
			name: "valid provider",
			providers: map[string]*LLMProviderConfig{
				"test-provider": {
					Endpoint: "https://api.example.com/v1",
					Model:    "test-model",
				},
			},
			wantErr: false,
		},
		{
			name:      "no providers",
			providers: map[string]*LLMProviderConfig{},
			wantErr:   true,
			errMsg:    "at least one LLM provider required",
		},
		{
			name: "missing endpoint",
			providers: map[string]*LLMProviderConfig{
				"test-provider": {
					Model: "test-model",
				},
			},
			wantErr: true,
			errMsg:  "endpoint required",
		},
		{
			name: "endpoint without scheme",
			providers: map[string]*LLMProviderConfig{
				"test-provider": {
					Endpoint: "api.example.com/v1",
					Model:    "test-model",
				},
			},
			wantErr: true,
			errMsg:  "must start with http:// or https://",
		},
		{
			name: "missing model",
			providers: map[string]*LLMProviderConfig{
				"test-provider": {
					Endpoint: "https://api.example.com/v1",
				},
			},
			wantErr: true,
			errMsg:  "model required",
		},
		{
			name: "api key env not set",
			providers: map[string]*LLMProviderConfig{
				"test-provider": {
					Endpoint:  "https://api.example.com/v1",
					Model:     "test-model",
					APIKeyEnv: "DEFINITELY_UNSET_KEY_VAR",
				},
			},
			wantErr: true,
			errMsg:  "environment variable DEFINITELY_UNSET_KEY_VAR is not set",
		},
		{
			name: "api key env set",
			providers: map[string]*LLMProviderConfig{
				"test-provider": {
					Endpoint:  "https://api.example.com/v1",
					Model:     "test-model",
					APIKeyEnv: "SET_KEY_VAR",
				},
			},
			env:     map[string]string{"SET_KEY_VAR": "secret"},
			wantErr: false,
		},
		{
			name: "temperature out of range",
			providers: map[string]*LLMProviderConfig{
				"test-provider": {
					Endpoint:    "https://api.example.com/v1",
					Model:       "test-model",
					Temperature: 3.5,
				},
			},
			wantErr: true,
			errMsg:  "temperature",
		},
		{
			name: "context limit too small",
			providers: map[string]*LLMProviderConfig{
				"test-provider": {
					Endpoint:     "https://api.example.com/v1",
					Model:        "test-model",
					ContextLimit: 100,
				},
			},
			wantErr: true,
			errMsg:  "context_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := &Config{
				LLMProviderRegistry: NewLLMProviderRegistry(tt.providers),
			}

			validator := NewValidator(cfg)
			err := validator.validateLLMProviders()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateToolServers(t *testing.T) {
	tests := []struct {
		name    string
		servers map[string]*ToolServerConfig
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid stdio server",
			servers: map[string]*ToolServerConfig{
				"terminal": {
					Transport:   TransportConfig{Type: TransportTypeStdio, Command: "redclaw-terminal"},
					SessionKind: SessionKindLocal,
				},
			},
			wantErr: false,
		},
		{
			name: "valid http server",
			servers: map[string]*ToolServerConfig{
				"scanner": {
					Transport: TransportConfig{Type: TransportTypeHTTP, URL: "http://scanner.internal:8080"},
				},
			},
			wantErr: false,
		},
		{
			name: "invalid transport type",
			servers: map[string]*ToolServerConfig{
				"bad": {
					Transport: TransportConfig{Type: "carrier-pigeon"},
				},
			},
			wantErr: true,
			errMsg:  "invalid transport type",
		},
		{
			name: "stdio without command",
			servers: map[string]*ToolServerConfig{
				"bad": {
					Transport: TransportConfig{Type: TransportTypeStdio},
				},
			},
			wantErr: true,
			errMsg:  "command required for stdio transport",
		},
		{
			name: "http without url",
			servers: map[string]*ToolServerConfig{
				"bad": {
					Transport: TransportConfig{Type: TransportTypeHTTP},
				},
			},
			wantErr: true,
			errMsg:  "url required for http transport",
		},
		{
			name: "invalid session kind",
			servers: map[string]*ToolServerConfig{
				"bad": {
					Transport:   TransportConfig{Type: TransportTypeStdio, Command: "x"},
					SessionKind: "somewhere",
				},
			},
			wantErr: true,
			errMsg:  "invalid session kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				ToolServerRegistry: NewToolServerRegistry(tt.servers),
			}

			validator := NewValidator(cfg)
			err := validator.validateToolServers()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateGuardian(t *testing.T) {
	tests := []struct {
		name     string
		guardian *GuardianConfig
		wantErr  bool
		errMsg   string
	}{
		{
			name: "valid guardian",
			guardian: &GuardianConfig{
				RateLimit:          10,
				SuspiciousPatterns: []string{`rm\s+-rf\s+/`},
			},
			wantErr: false,
		},
		{
			name:     "missing guardian",
			guardian: nil,
			wantErr:  true,
			errMsg:   "guardian configuration missing",
		},
		{
			name: "rate limit zero",
			guardian: &GuardianConfig{
				RateLimit: 0,
			},
			wantErr: true,
			errMsg:  "rate_limit",
		},
		{
			name: "invalid regex",
			guardian: &GuardianConfig{
				RateLimit:          10,
				SuspiciousPatterns: []string{`[unclosed`},
			},
			wantErr: true,
			errMsg:  "invalid regex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Guardian: tt.guardian}
			validator := NewValidator(cfg)
			err := validator.validateGuardian()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateScope(t *testing.T) {
	tests := []struct {
		name    string
		scope   *models.Scope
		wantErr bool
		errMsg  string
	}{
		{
			name:    "nil scope",
			scope:   nil,
			wantErr: false,
		},
		{
			name: "valid scope",
			scope: &models.Scope{
				IncludeCIDRs: []string{"10.0.0.0/24", "192.168.1.5"},
				ExcludeCIDRs: []string{"10.0.0.1/32"},
			},
			wantErr: false,
		},
		{
			name: "invalid include entry",
			scope: &models.Scope{
				IncludeCIDRs: []string{"10.0.0.0/24", "not-a-cidr"},
			},
			wantErr: true,
			errMsg:  "invalid CIDR or IP address: not-a-cidr",
		},
		{
			name: "invalid exclude entry",
			scope: &models.Scope{
				ExcludeCIDRs: []string{"300.1.2.3"},
			},
			wantErr: true,
			errMsg:  "invalid CIDR or IP address",
		},
		{
			name: "negative rate limit",
			scope: &models.Scope{
				RateLimit: -1,
			},
			wantErr: true,
			errMsg:  "rate_limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Scope: tt.scope}
			validator := NewValidator(cfg)
			err := validator.validateScope()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateMasking(t *testing.T) {
	tests := []struct {
		name    string
		masking *MaskingConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:    "nil masking",
			masking: nil,
			wantErr: false,
		},
		{
			name: "disabled masking skips validation",
			masking: &MaskingConfig{
				Enabled:       BoolPtr(false),
				PatternGroups: []string{"no-such-group"},
			},
			wantErr: false,
		},
		{
			name: "valid groups and patterns",
			masking: &MaskingConfig{
				PatternGroups: []string{"secrets"},
				Patterns:      []string{"certificate"},
			},
			wantErr: false,
		},
		{
			name: "unknown pattern group",
			masking: &MaskingConfig{
				PatternGroups: []string{"no-such-group"},
			},
			wantErr: true,
			errMsg:  "pattern group 'no-such-group' not found",
		},
		{
			name: "unknown pattern",
			masking: &MaskingConfig{
				Patterns: []string{"no-such-pattern"},
			},
			wantErr: true,
			errMsg:  "pattern 'no-such-pattern' not found",
		},
		{
			name: "custom pattern missing replacement",
			masking: &MaskingConfig{
				CustomPatterns: []MaskingPattern{
					{Pattern: `x=\S+`},
				},
			},
			wantErr: true,
			errMsg:  "replacement required",
		},
		{
			name: "custom pattern invalid regex",
			masking: &MaskingConfig{
				CustomPatterns: []MaskingPattern{
					{Pattern: `[unclosed`, Replacement: "y"},
				},
			},
			wantErr: true,
			errMsg:  "invalid regex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Masking: tt.masking}
			validator := NewValidator(cfg)
			err := validator.validateMasking()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	providers := map[string]*LLMProviderConfig{
		"openai-main": {
			Endpoint: "https://api.openai.com/v1",
			Model:    "gpt-4o",
		},
	}
	servers := map[string]*ToolServerConfig{
		"terminal": {
			Transport: TransportConfig{Type: TransportTypeStdio, Command: "x"},
		},
	}

	tests := []struct {
		name     string
		defaults *Defaults
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "nil defaults",
			defaults: nil,
			wantErr:  false,
		},
		{
			name: "valid references",
			defaults: &Defaults{
				LLMProvider: "openai-main",
				ToolServers: []string{"terminal"},
			},
			wantErr: false,
		},
		{
			name: "unknown provider",
			defaults: &Defaults{
				LLMProvider: "missing-provider",
			},
			wantErr: true,
			errMsg:  "LLM provider 'missing-provider' not found",
		},
		{
			name: "unknown tool server",
			defaults: &Defaults{
				ToolServers: []string{"missing-server"},
			},
			wantErr: true,
			errMsg:  "tool server 'missing-server' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Defaults:            tt.defaults,
				LLMProviderRegistry: NewLLMProviderRegistry(providers),
				ToolServerRegistry:  NewToolServerRegistry(servers),
			}
			validator := NewValidator(cfg)
			err := validator.validateDefaults()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
