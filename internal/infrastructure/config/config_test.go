package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("AMADEUS_CLIENT_ID", "id")
	t.Setenv("AMADEUS_CLIENT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "https://test.api.amadeus.com/v1/security/oauth2/token", cfg.AmadeusAuthURL)
	require.Equal(t, "https://test.api.amadeus.com/v2", cfg.AmadeusBaseURL)
	require.Equal(t, "id", cfg.AmadeusClientID)
	require.Equal(t, "secret", cfg.AmadeusClientSecret)
}

func TestLoadConfigRequiresCredentials(t *testing.T) {
	t.Setenv("AMADEUS_CLIENT_ID", "")
	t.Setenv("AMADEUS_CLIENT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
}
