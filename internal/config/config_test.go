package config

import "testing"

func TestLoadBackendSelection(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantVertex  bool
		shouldError bool
	}{
		{
			name:       "api key mode with key set",
			env:        map[string]string{"GOOGLE_API_KEY": "test-key"},
			wantVertex: false,
		},
		{
			name:        "api key mode without key fails",
			env:         map[string]string{},
			shouldError: true,
		},
		{
			name: "vertex mode with project and location",
			env: map[string]string{
				"GOOGLE_GENAI_USE_VERTEXAI": "true",
				"GOOGLE_CLOUD_PROJECT":      "my-project",
				"GOOGLE_CLOUD_LOCATION":     "us-central1",
			},
			wantVertex: true,
		},
		{
			name: "vertex flag is case insensitive",
			env: map[string]string{
				"GOOGLE_GENAI_USE_VERTEXAI": "TRUE",
				"GOOGLE_CLOUD_PROJECT":      "my-project",
				"GOOGLE_CLOUD_LOCATION":     "us-central1",
			},
			wantVertex: true,
		},
		{
			name: "vertex mode missing location fails",
			env: map[string]string{
				"GOOGLE_GENAI_USE_VERTEXAI": "true",
				"GOOGLE_CLOUD_PROJECT":      "my-project",
			},
			shouldError: true,
		},
		{
			name: "vertex flag false falls back to api key validation",
			env: map[string]string{
				"GOOGLE_GENAI_USE_VERTEXAI": "false",
				"GOOGLE_CLOUD_PROJECT":      "my-project",
				"GOOGLE_CLOUD_LOCATION":     "us-central1",
			},
			shouldError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{
				"GOOGLE_GENAI_USE_VERTEXAI", "GOOGLE_CLOUD_PROJECT",
				"GOOGLE_CLOUD_LOCATION", "GOOGLE_API_KEY",
			} {
				t.Setenv(key, "")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := Load()
			if tt.shouldError {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.UseVertexAI != tt.wantVertex {
				t.Errorf("UseVertexAI = %v, expected %v", cfg.UseVertexAI, tt.wantVertex)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ADDR", "MODEL_NAME", "GOOGLE_GENAI_USE_VERTEXAI"} {
		t.Setenv(key, "")
	}
	t.Setenv("GOOGLE_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, expected %q", cfg.Addr, ":8080")
	}
	if cfg.ModelName != "gemini-2.0-flash" {
		t.Errorf("ModelName = %q, expected %q", cfg.ModelName, "gemini-2.0-flash")
	}
}
