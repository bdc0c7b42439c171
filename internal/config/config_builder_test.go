package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// minimalConfig returns a config carrying every required field.
func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "file::memory:"}},
		Server:  Server{HTTPAddress: ":4000"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without any source fails
// validation because required fields are missing.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "go-finance-keeper", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, bcrypt.DefaultCost, cfg.App.BcryptCost)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Storage.DB.QueryTimeout)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
}

// TestBuild_LaterSourceOverrides verifies that non-zero fields of later
// configs win over earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	first := minimalConfig()
	first.App.Version = "1.0.0"
	first.App.TokenIssuer = "env-issuer"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		first,
		&StructuredConfig{App: App{TokenIssuer: "flag-issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{name: "missing address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, want: ErrInvalidServerConfigs},
		{name: "missing dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" }, want: ErrInvalidStorageConfigs},
		{name: "missing sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, want: ErrInvalidAppConfigs},
		{name: "bcrypt cost too high", mutate: func(cfg *StructuredConfig) { cfg.App.BcryptCost = 99 }, want: ErrInvalidAppConfigs},
		{name: "unknown log level", mutate: func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" }, want: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			got, err := b.build()
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDriverFromDSN(t *testing.T) {
	assert.Equal(t, DriverPostgres, DriverFromDSN("postgres://u:p@localhost/db"))
	assert.Equal(t, DriverPostgres, DriverFromDSN("postgresql://localhost/db"))
	assert.Equal(t, DriverPostgres, DriverFromDSN("host=localhost user=u dbname=db"))
	assert.Equal(t, DriverSQLite, DriverFromDSN("file:finance.db?_fk=1"))
	assert.Equal(t, DriverSQLite, DriverFromDSN("./finance.db"))
	assert.Empty(t, DriverFromDSN(""))
}

// ── source helpers ────────────────────────────────────────────────────────────

func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": "127.0.0.1:9000"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "127.0.0.1:9000", b.configs[1].Server.HTTPAddress)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b.withJSON()
	assert.Error(t, b.err)
}

func TestWithDotEnv_MissingExplicitFileSetsError(t *testing.T) {
	t.Setenv("DOTENV", "/no/such/.env")

	b := newConfigBuilder().withDotEnv()
	assert.Error(t, b.err)
}

// TestGetStructuredConfig_FromEnvAndFlags exercises the whole chain: env
// values are overridden by flags and the driver is inferred from the DSN.
func TestGetStructuredConfig_FromEnvAndFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-secret",
		"STORAGE_DB_DATABASE_URI": "postgres://u:p@localhost/finance",
		"SERVER_ADDRESS":          ":4000",
	})
	resetFlags(t, "-a", "localhost:8081")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
}
