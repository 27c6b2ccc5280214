package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExpiry(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "24h", want: 24 * time.Hour},
		{in: "90m", want: 90 * time.Minute},
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "3600", want: time.Hour},
		{in: " 1d ", want: 24 * time.Hour},
		{in: "", wantErr: true},
		{in: "xd", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-1h", wantErr: true},
		{in: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseExpiry(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("DEV_DB_NAME", "hris_test")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "hris_test", cfg.Database.DBName)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.True(t, cfg.SeedSampleData)
	assert.Equal(t, "*", cfg.GetAllowedOrigins())
}

func TestFromEnv_ProdRequiresSecret(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("PROD_JWT_SECRET", "")

	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("PROD_JWT_SECRET", "s3cr3t")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.SeedSampleData)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
}

func TestFromEnv_InvalidMode(t *testing.T) {
	t.Setenv("APP_MODE", "staging")

	_, err := FromEnv()
	assert.Error(t, err)
}
