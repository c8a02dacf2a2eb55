package credential

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrenard/pointage/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return newStore(keyring.Config{
		ServiceName:      serviceName,
		AllowedBackends:  []keyring.BackendType{keyring.FileBackend},
		FileDir:          t.TempDir(),
		FilePasswordFunc: keyring.FixedStringPrompt("test-key"),
	})
}

func TestStoreRoundTrip(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Set(KeyJiraToken, "secret"))

	v, err := s.Get(KeyJiraToken)
	require.NoError(t, err)
	assert.Equal(t, "secret", v)

	require.NoError(t, s.Delete(KeyJiraToken))
	_, err = s.Get(KeyJiraToken)
	assert.Error(t, err)
}

func TestFillConfigOnlyEmptyFields(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Set(KeyJiraToken, "ring-token"))
	require.NoError(t, s.Set(KeyTempoAPIKey, "ring-key"))

	cfg := &model.Config{DefaultJira: model.JiraConfig{
		Token: "yaml-token",
		Tempo: &model.TempoConfig{},
	}}
	FillConfig(s, cfg)

	// An explicit config value wins over the keyring.
	assert.Equal(t, "yaml-token", cfg.DefaultJira.Token)
	assert.Equal(t, "ring-key", cfg.DefaultJira.Tempo.APIKey)
}

func TestFillConfigMissingCredentialLeavesEmpty(t *testing.T) {
	s := testStore(t)

	cfg := &model.Config{}
	FillConfig(s, cfg)

	assert.Empty(t, cfg.DefaultJira.Token)
}
