package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDatabaseEnv_Defaults(t *testing.T) {
	clearDBEnv(t)

	c := &DatabaseConfig{}
	ResolveDatabaseEnv(c)
	assert.Equal(t, "localhost", c.Host)
	assert.Equal(t, "sqldb", c.DBName)
	assert.Equal(t, "root", c.User)
	assert.Equal(t, "", c.Password)
}

func TestResolveDatabaseEnv_FileValuesBeatDefaults(t *testing.T) {
	clearDBEnv(t)

	c := &DatabaseConfig{Host: "db.internal", DBName: "stock", User: "app", Password: "filepw"}
	ResolveDatabaseEnv(c)
	assert.Equal(t, "db.internal", c.Host)
	assert.Equal(t, "stock", c.DBName)
	assert.Equal(t, "app", c.User)
	assert.Equal(t, "filepw", c.Password)
}

func TestResolveDatabaseEnv_Priority(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("MYSQL_HOST", "mysql-host")
	t.Setenv("MYSQL_DATABASE", "mysql-db")
	t.Setenv("MYSQL_USER", "mysql-user")
	t.Setenv("MYSQL_ROOT_PASSWORD", "rootpw")

	c := &DatabaseConfig{Host: "file-host"}
	ResolveDatabaseEnv(c)
	assert.Equal(t, "mysql-host", c.Host)
	assert.Equal(t, "mysql-db", c.DBName)
	assert.Equal(t, "mysql-user", c.User)
	assert.Equal(t, "rootpw", c.Password)

	t.Setenv("DB_HOST", "db-host")
	t.Setenv("MYSQL_PASSWORD", "mysqlpw")
	ResolveDatabaseEnv(c)
	assert.Equal(t, "db-host", c.Host)
	assert.Equal(t, "mysqlpw", c.Password)
}

func TestResolveDatabaseEnv_EmptyHostIsSkipped(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("MYSQL_HOST", "fallback-host")

	c := &DatabaseConfig{}
	ResolveDatabaseEnv(c)
	assert.Equal(t, "fallback-host", c.Host)
}

func TestResolveDatabaseEnv_EmptyPasswordIsHonoured(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("MYSQL_PASSWORD", "ignored")

	c := &DatabaseConfig{Password: "filepw"}
	ResolveDatabaseEnv(c)
	assert.Equal(t, "", c.Password)
}
