package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/newsroom/internal/storage"
)

const EnvProduction = "production"

// demoSecrets are the credentials shipped in config.example.toml and docker-compose.
var demoSecrets = map[string]struct{}{
	"":           {},
	"changeme":   {},
	"password":   {},
	"postgres":   {},
	"minioadmin": {},
	"masterkey":  {},
}

type Config struct {
	Env      string
	Database Database
	App      struct {
		Host string
		Port int
	}
	Storage storage.Config
	Redis   struct {
		URL string
	}
	Search struct {
		URL    string
		APIKey string
	}
}

type Database struct {
	pg.Options

	URL        string
	LogQueries bool
}

// Resolve applies URL on top of the discrete connection options.
func (d *Database) Resolve() error {
	if d.URL == "" {
		return nil
	}

	opt, err := pg.ParseURL(d.URL)
	if err != nil {
		return fmt.Errorf("parse database url: %w", err)
	}

	if opt.PoolSize == 0 {
		opt.PoolSize = d.PoolSize
	}
	if opt.MaxRetries == 0 {
		opt.MaxRetries = d.MaxRetries
	}
	d.Options = *opt

	return nil
}

// ConnString returns a postgres URL for tools that need one, like migrations.
func (d Database) ConnString() string {
	if d.URL != "" {
		return d.URL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Addr,
		Path:     "/" + d.Database,
		RawQuery: "sslmode=disable",
	}

	return u.String()
}

type secret struct {
	name  string
	value string
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, EnvProduction)
}

// Validate resolves the database URL and checks the configuration. Unset or demo
// credentials are an error in production and a warning elsewhere.
func (c *Config) Validate() (warnings []string, err error) {
	if err := c.Database.Resolve(); err != nil {
		return nil, err
	}

	if c.App.Port <= 0 || c.App.Port > 65535 {
		return nil, fmt.Errorf("app port %d is out of range", c.App.Port)
	}
	if c.Database.Addr == "" && c.Database.URL == "" {
		return nil, errors.New("database address is required")
	}
	if c.Redis.URL == "" {
		return nil, errors.New("redis url is required")
	}

	secrets := []secret{
		{name: "database password", value: c.Database.Password},
		{name: "storage access key", value: c.Storage.AccessKey},
		{name: "storage secret key", value: c.Storage.SecretKey},
	}
	if c.Search.URL != "" {
		secrets = append(secrets, secret{name: "search api key", value: c.Search.APIKey})
	}

	var insecure []string
	for _, s := range secrets {
		if _, ok := demoSecrets[strings.ToLower(s.value)]; ok {
			insecure = append(insecure, s.name)
		}
	}
	if len(insecure) == 0 {
		return nil, nil
	}

	if c.IsProduction() {
		return nil, fmt.Errorf("unset or demo credentials in production: %s", strings.Join(insecure, ", "))
	}

	for _, name := range insecure {
		warnings = append(warnings, fmt.Sprintf("%s is unset or a demo value", name))
	}

	return warnings, nil
}
