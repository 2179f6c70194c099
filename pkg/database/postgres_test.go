package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-club-registry-api/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "clubs", SSLMode: "disable"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=clubs sslmode=disable", dsn)
}

func TestNewPostgresRejectsUnknownDriver(t *testing.T) {
	_, err := NewPostgres(context.Background(), config.DatabaseConfig{Driver: "mysql"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}
