// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with caarlos0/env tags:
//
//	type ServerConfig struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The .env files listed in EnvFiles are read once on first use; real environment
// variables take precedence. Each type is parsed once and cached for the process
// lifetime, so packages can call Load for the same type independently.
package config
