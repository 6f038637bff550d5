package server

import "testing"

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{"empty", map[string]string{}, Config{}, false},
		{"debug", map[string]string{EnvLogLevel: "debug"}, Config{Debug: true}, false},
		{"info level is not debug", map[string]string{EnvLogLevel: "info"}, Config{}, false},
		{"workers", map[string]string{EnvWorkers: "4"}, Config{Workers: 4}, false},
		{"zero workers", map[string]string{EnvWorkers: "0"}, Config{}, false},
		{"both", map[string]string{EnvLogLevel: "debug", EnvWorkers: "2"}, Config{Debug: true, Workers: 2}, false},
		{"negative workers", map[string]string{EnvWorkers: "-1"}, Config{}, true},
		{"non-numeric workers", map[string]string{EnvWorkers: "many"}, Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConfigFromEnv(func(key string) string { return tt.env[key] })
			if (err != nil) != tt.wantErr {
				t.Fatalf("ConfigFromEnv() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ConfigFromEnv() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
