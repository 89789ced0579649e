package llmprovider

import (
	"testing"
	"time"

	"course-compass/config"
	"course-compass/pkg/gemini"
	"course-compass/pkg/openai"
)

func TestCallTimeout(t *testing.T) {
	providers := []config.ProviderConfig{
		{Name: "openai", Enabled: true, Priority: 2},
		{Name: "gemini", Enabled: true, Priority: 1, Timeout: "15s"},
		{Name: "qwen", Enabled: false, Priority: 3, Timeout: "1h"},
	}

	tests := []struct {
		name string
		cfg  config.LLMConfig
		want time.Duration
	}{
		{
			name: "total bound wins",
			cfg:  config.LLMConfig{Providers: providers, FallbackEnabled: true, MaxTotalTimeout: 5 * time.Second},
			want: 5 * time.Second,
		},
		{
			name: "unbounded chain sums enabled providers",
			cfg:  config.LLMConfig{Providers: providers, FallbackEnabled: true},
			want: 15*time.Second + openai.DefaultTimeout,
		},
		{
			name: "no fallback counts first provider only",
			cfg:  config.LLMConfig{Providers: providers},
			want: 15 * time.Second,
		},
		{
			name: "client default when timeout unset",
			cfg:  config.LLMConfig{Providers: []config.ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1}}},
			want: gemini.DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CallTimeout(&tt.cfg); got != tt.want {
				t.Errorf("CallTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}
