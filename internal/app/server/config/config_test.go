package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "postgres defaults",
			env:  map[string]string{"DATABASE_URI": "postgres://localhost/alcatelz"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, EnvLocal, cfg.Env)
				assert.Equal(t, DriverPostgres, cfg.StoreDriver)
				assert.Equal(t, "localhost:8080", cfg.Server.RunAddress)
				assert.Equal(t, "migrations", cfg.DB.Migrations)
				assert.Equal(t, "swift", cfg.CodeLanguage)
			},
		},
		{
			name: "cloudkit",
			env: map[string]string{
				"STORE_DRIVER":       "CloudKit",
				"CLOUDKIT_API_TOKEN": "token",
				"APP_ENV":            EnvProd,
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DriverCloudKit, cfg.StoreDriver)
				assert.Equal(t, "iCloud.Alcatelz", cfg.CloudKit.Container)
				assert.Equal(t, "development", cfg.CloudKit.Environment)
				assert.Equal(t, "token", cfg.CloudKit.APIToken)
				assert.Equal(t, EnvProd, cfg.Env)
			},
		},
		{
			name:    "postgres without uri",
			env:     map[string]string{"STORE_DRIVER": "postgres"},
			wantErr: true,
		},
		{
			name:    "cloudkit without token",
			env:     map[string]string{"STORE_DRIVER": "cloudkit"},
			wantErr: true,
		},
		{
			name:    "unknown driver",
			env:     map[string]string{"STORE_DRIVER": "redis"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"DATABASE_URI", "STORE_DRIVER", "CLOUDKIT_API_TOKEN", "APP_ENV"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(viper.New())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
