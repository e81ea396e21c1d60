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
		"qrcode": map[string]any{
			"baseUrl": "",
		},
		"storage": map[string]any{
			"gcs": map[string]any{
				"publicBaseUrl": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "STORAGE_GCS_PUBLICBASEURL", want: "storage.gcs.publicBaseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyQRCodeDefaults(t *testing.T) {
	cfg := &Config{}
	applyQRCodeDefaults(cfg)

	if cfg.QRCode == nil {
		t.Fatal("expected QRCode config to be initialized")
	}
	if cfg.QRCode.Size != defaultQRCodeSize {
		t.Fatalf("Size = %d, want %d", cfg.QRCode.Size, defaultQRCodeSize)
	}
	if cfg.QRCode.Foreground != defaultQRCodeForeground {
		t.Fatalf("Foreground = %q, want %q", cfg.QRCode.Foreground, defaultQRCodeForeground)
	}
	if cfg.QRCode.Background != defaultQRCodeBackground {
		t.Fatalf("Background = %q, want %q", cfg.QRCode.Background, defaultQRCodeBackground)
	}

	custom := &Config{QRCode: &QRCodeConfig{Size: 256, Foreground: "#000000", Background: "#eeeeee"}}
	applyQRCodeDefaults(custom)
	if custom.QRCode.Size != 256 || custom.QRCode.Foreground != "#000000" {
		t.Fatal("explicit QRCode settings must not be overwritten")
	}
}
