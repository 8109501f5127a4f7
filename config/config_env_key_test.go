package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"notification": map[string]any{
			"defaultRadiusKm": 5.0,
			"sweepInterval":   "15m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NOTIFICATION_DEFAULTRADIUSKM", want: "notification.defaultRadiusKm"},
		{envKey: "NOTIFICATION_SWEEPINTERVAL", want: "notification.sweepInterval"},
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

func TestApplyNotificationDefaults(t *testing.T) {
	cfg := &Config{}
	applyNotificationDefaults(cfg)

	if cfg.Notification.DefaultRadiusKm != defaultNotificationRadiusKm {
		t.Fatalf("DefaultRadiusKm = %v, want %v", cfg.Notification.DefaultRadiusKm, defaultNotificationRadiusKm)
	}
	if cfg.Notification.LookaheadWindow != defaultLookaheadWindow {
		t.Fatalf("LookaheadWindow = %v, want %v", cfg.Notification.LookaheadWindow, defaultLookaheadWindow)
	}
	if cfg.Notification.SweepInterval != defaultSweepInterval {
		t.Fatalf("SweepInterval = %v, want %v", cfg.Notification.SweepInterval, defaultSweepInterval)
	}

	// Explicit values survive.
	cfg.Notification.DefaultRadiusKm = 2.5
	applyNotificationDefaults(cfg)
	if cfg.Notification.DefaultRadiusKm != 2.5 {
		t.Fatalf("DefaultRadiusKm overwritten: %v", cfg.Notification.DefaultRadiusKm)
	}
}
