package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"media": map[string]any{
			"bucketUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"accessTokenTtl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "MEDIA_BUCKETURL", want: "media.bucketUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestValidateAuthSettings(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Access = "access-secret"
		cfg.SecretKey.Refresh = "refresh-secret"
		cfg.Auth = &AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 10 * 24 * time.Hour,
		}

		return cfg
	}

	if err := valid().validateAuthSettings(); err != nil {
		t.Fatalf("expected valid auth settings, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing access secret", mutate: func(c *Config) { c.SecretKey.Access = "" }},
		{name: "missing refresh secret", mutate: func(c *Config) { c.SecretKey.Refresh = "" }},
		{name: "identical secrets", mutate: func(c *Config) { c.SecretKey.Refresh = c.SecretKey.Access }},
		{name: "missing auth section", mutate: func(c *Config) { c.Auth = nil }},
		{name: "zero access ttl", mutate: func(c *Config) { c.Auth.AccessTokenTTL = 0 }},
		{name: "zero refresh ttl", mutate: func(c *Config) { c.Auth.RefreshTokenTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.validateAuthSettings(); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}
