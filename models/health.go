package models

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type BasicAuth struct {
	Username     string `yaml:"username" json:"username"`
	UsernameHash string `yaml:"username_hash" json:"username_hash"`
	Password     string `yaml:"password" json:"password"`
	PasswordHash string `yaml:"password_hash" json:"password_hash"`
}

// Enabled reports whether any credential is configured.
func (b BasicAuth) Enabled() bool {
	return b.Username != "" || b.Password != "" || b.UsernameHash != "" || b.PasswordHash != ""
}

type HealthConfig struct {
	Port                  int       `yaml:"port" json:"port"`
	BasicAuth             BasicAuth `yaml:",inline" json:"basic_auth"`
	ReadinessCheckEnabled bool      `yaml:"readiness_enabled" json:"readiness_enabled"`
}

var ErrConfiguration = fmt.Errorf("configuration error")

func (c *HealthConfig) Validate() error {
	auth := c.BasicAuth
	if auth.Username != "" && auth.UsernameHash != "" {
		return fmt.Errorf("%w: both health username and health username_hash are set, please provide only one of them", ErrConfiguration)
	}

	if auth.Password != "" && auth.PasswordHash != "" {
		return fmt.Errorf("%w: both health password and health password_hash are set, please provide only one of them", ErrConfiguration)
	}

	if auth.UsernameHash != "" {
		if _, err := bcrypt.Cost([]byte(auth.UsernameHash)); err != nil {
			return fmt.Errorf("%w: health username_hash is not a valid bcrypt hash", ErrConfiguration)
		}
	}

	if auth.PasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(auth.PasswordHash)); err != nil {
			return fmt.Errorf("%w: health password_hash is not a valid bcrypt hash", ErrConfiguration)
		}
	}

	hasUser := auth.Username != "" || auth.UsernameHash != ""
	hasPassword := auth.Password != "" || auth.PasswordHash != ""
	if !hasUser && hasPassword {
		return fmt.Errorf("%w: health username is empty", ErrConfiguration)
	}
	if hasUser && !hasPassword {
		return fmt.Errorf("%w: health password is empty", ErrConfiguration)
	}

	return nil
}
