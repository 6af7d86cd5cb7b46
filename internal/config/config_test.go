package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "desks"
password = "secret"

[membership_service]
url = "http://members"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "desks", cfg.Database.DBName)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 5, cfg.MembershipService.Timeout)
	assert.Contains(t, cfg.Database.DSN(), "dbname=desks")
	assert.Contains(t, cfg.Database.DSN(), "password=secret")
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 60, cfg.Redis.MembershipTTL)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "desk-booking.reservations", cfg.Kafka.Topic)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "desks"
password = "from-file"

[membership_service]
url = "http://members"
`)
	t.Setenv("DESK_DATABASE_PASSWORD", "from-env")
	t.Setenv("DESK_SERVER_HTTP_PORT", "9090")
	t.Setenv("DESK_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("DESK_DATABASE_DB_NAME", "desks-env")
	t.Setenv("DESK_MEMBERSHIP_SERVICE_URL", "http://members-env")
	t.Setenv("DESK_REDIS_ENABLED", "true")
	t.Setenv("DESK_REDIS_MEMBERSHIP_TTL", "120")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "k1:9092,k2:9092", cfg.Kafka.Brokers)
	assert.Equal(t, "desks-env", cfg.Database.DBName)
	assert.Equal(t, "http://members-env", cfg.MembershipService.URL)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 120, cfg.Redis.MembershipTTL)

	// Значения без переменных окружения остаются из файла и значений по умолчанию
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "desk-booking.reservations", cfg.Kafka.Topic)
}

func TestLoad_EnvParseError(t *testing.T) {
	path := writeConfig(t, "[database]\ndbname = \"d\"\n[membership_service]\nurl = \"http://m\"\n")

	tests := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{name: "database port", key: "DESK_DATABASE_PORT", value: "abc", field: "Port"},
		{name: "http port", key: "DESK_SERVER_HTTP_PORT", value: "80x", field: "HTTPPort"},
		{name: "redis enabled", key: "DESK_REDIS_ENABLED", value: "maybe", field: "Enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load(path)
			require.Error(t, err)

			var parseErr *envconfig.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.key, parseErr.KeyName)
			assert.Equal(t, tt.field, parseErr.FieldName)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{
			name:    "missing dbname",
			content: "[membership_service]\nurl = \"http://members\"\n",
		},
		{
			name:    "bad log level",
			content: "[database]\ndbname = \"d\"\n[logs]\nlevel = \"loud\"\n[membership_service]\nurl = \"http://m\"\n",
		},
		{
			name:    "missing membership url",
			content: "[database]\ndbname = \"d\"\n",
		},
		{
			name:    "redis enabled without ttl",
			content: "[database]\ndbname = \"d\"\n[membership_service]\nurl = \"http://m\"\n[redis]\nenabled = true\nmembership_ttl = 0\n",
		},
		{
			name:    "kafka brokers without topic",
			content: "[database]\ndbname = \"d\"\n[membership_service]\nurl = \"http://m\"\n[kafka]\nbrokers = \"k:9092\"\ntopic = \"\"\n",
		},
		{
			name:    "non-numeric port env",
			content: "[database]\ndbname = \"d\"\n[membership_service]\nurl = \"http://m\"\n",
			env:     map[string]string{"DESK_DATABASE_PORT": "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
