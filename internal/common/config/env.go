package config

import "os"

// Fallbacks used when neither the environment nor the config file names a value.
const (
	DefaultDBHost = "localhost"
	DefaultDBName = "sqldb"
	DefaultDBUser = "root"
)

// ResolveDatabaseEnv applies the database environment chain on top of the
// file configuration. Host, name and user take the first non-empty variable;
// the password takes the first variable that is set at all, so an explicitly
// empty DB_PASSWORD still wins over MYSQL_PASSWORD.
func ResolveDatabaseEnv(c *DatabaseConfig) {
	c.Host = firstNonEmpty(c.Host, DefaultDBHost, "DB_HOST", "MYSQL_HOST")
	c.DBName = firstNonEmpty(c.DBName, DefaultDBName, "DB_NAME", "MYSQL_DATABASE")
	c.User = firstNonEmpty(c.User, DefaultDBUser, "DB_USER", "MYSQL_USER")

	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Password = v
		return
	}
	if v, ok := os.LookupEnv("MYSQL_PASSWORD"); ok {
		c.Password = v
		return
	}
	if v := os.Getenv("MYSQL_ROOT_PASSWORD"); v != "" {
		c.Password = v
	}
}

func firstNonEmpty(current, fallback string, keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	if current != "" {
		return current
	}
	return fallback
}
