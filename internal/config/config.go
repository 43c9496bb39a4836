package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env          string
	Port         string
	MongoURI     string
	DBName       string
	JWTSecret    string
	JWTTTL       time.Duration
	CORSOrigins  []string
	RollbarToken string
	ResendAPIKey string
	FromEmail    string
}

// Load reads configuration from the environment, falling back to a .env file
// in the working directory when one exists.
func Load() (*Config, error) {
	// Load .env if present; in production env vars are set directly
	_ = godotenv.Load()
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)
	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_NAME", "feedback")
	v.SetDefault("JWT_TTL", time.Hour)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("FROM_EMAIL", "noreply@localhost")
	for _, key := range []string{"MONGODB_URI", "JWT_SECRET", "ROLLBAR_TOKEN", "RESEND_API_KEY"} {
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	conf := &Config{
		Env:          v.GetString("ENV"),
		Port:         v.GetString("PORT"),
		MongoURI:     v.GetString("MONGODB_URI"),
		DBName:       v.GetString("DB_NAME"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		JWTTTL:       v.GetDuration("JWT_TTL"),
		CORSOrigins:  splitList(v.GetString("CORS_ORIGINS")),
		RollbarToken: v.GetString("ROLLBAR_TOKEN"),
		ResendAPIKey: v.GetString("RESEND_API_KEY"),
		FromEmail:    v.GetString("FROM_EMAIL"),
	}

	if conf.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if conf.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if conf.JWTTTL <= 0 {
		return nil, fmt.Errorf("JWT_TTL must be positive, got %s", conf.JWTTTL)
	}
	return conf, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "prod") || strings.EqualFold(c.Env, "production")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
