package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEnviron() map[string]string {
	return map[string]string{
		"LOCAL_DB_HOST":          "localhost",
		"LOCAL_DB_USER":          "intranet",
		"LOCAL_DB_PASSWORD":      "secret",
		"LOCAL_DB_NAME":          "osintranet",
		"LOCAL_DB_PORT":          "3306",
		"DEFAULT_ADMIN_PASSWORD": "admin123",
	}
}

func TestLoadConfigFromDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(baseEnviron())
	require.NoError(t, err)

	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "auto", cfg.DBMigrationMode)
	assert.Equal(t, "oswebdb", cfg.CalendarDBName)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 30, cfg.PostingMaxAgeDays)
	assert.False(t, cfg.RedisEnabled)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
	assert.Equal(t, "intranet:secret@tcp(localhost:3306)/osintranet?charset=utf8mb4&parseTime=True&loc=UTC&allowNativePasswords=true&multiStatements=true&clientFoundRows=true", cfg.GetDSN())
	assert.Contains(t, cfg.GetCalendarDSN(), "/oswebdb?")
	assert.Contains(t, cfg.GetCalendarDSN(), "clientFoundRows=true")
}

func TestLoadConfigFromPrefixOverridesPlainVariable(t *testing.T) {
	environ := baseEnviron()
	environ["ENV_TYPE"] = "server"
	environ["SERVER_DB_HOST"] = "db.internal"
	environ["SERVER_DB_USER"] = "svc"
	environ["SERVER_DB_PASSWORD"] = "pw"
	environ["SERVER_DB_NAME"] = "intranet"
	environ["SERVER_DB_PORT"] = "3307"
	environ["SERVER_PORT"] = "9090"
	environ["SERVER_SERVER_PORT"] = "9191"

	cfg, err := LoadConfigFrom(environ)
	require.NoError(t, err)

	assert.Equal(t, "SERVER", cfg.EnvType)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "9191", cfg.ServerPort)
}

func TestLoadConfigFromUnknownEnvTypeFallsBackToLocal(t *testing.T) {
	environ := baseEnviron()
	environ["ENV_TYPE"] = "staging"

	cfg, err := LoadConfigFrom(environ)
	require.NoError(t, err)
	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "localhost", cfg.DBHost)
}

func TestLoadConfigFromMissingRequired(t *testing.T) {
	environ := baseEnviron()
	delete(environ, "DEFAULT_ADMIN_PASSWORD")

	_, err := LoadConfigFrom(environ)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_ADMIN_PASSWORD")
}

func TestLoadConfigFromRejectsBogusMigrationMode(t *testing.T) {
	environ := baseEnviron()
	environ["DB_MIGRATION_MODE"] = "truncate"

	_, err := LoadConfigFrom(environ)
	require.Error(t, err)
}
