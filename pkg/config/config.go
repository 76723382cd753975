// Package config agrupa la configuración de la aplicación (lectura vía
// Viper desde variables de entorno y opcionalmente archivo .env).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config configuración completa del servicio.
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	StockAPI StockAPIConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig servidor HTTP propio.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StockAPIConfig backend remoto dueño de productos, categorías y
// movimientos.
type StockAPIConfig struct {
	BaseURL string        // ej. http://localhost:8080/api
	Timeout time.Duration // timeout de red por petición
}

// Load lee la configuración desde variables de entorno, con un archivo .env
// opcional en el directorio de trabajo. Las env vars tienen prioridad.
// Nombres esperados: APP_ENV, HTTP_PORT, STOCK_API_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "controle-estoque-front")
	v.SetDefault("APP_LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 3000)
	v.SetDefault("STOCK_API_BASE_URL", "http://localhost:8080/api")
	v.SetDefault("STOCK_API_TIMEOUT_SECONDS", 10)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("APP_LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		StockAPI: StockAPIConfig{
			BaseURL: v.GetString("STOCK_API_BASE_URL"),
			Timeout: time.Duration(v.GetInt("STOCK_API_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	if cfg.StockAPI.BaseURL == "" {
		return nil, fmt.Errorf("config: STOCK_API_BASE_URL es obligatorio")
	}
	return cfg, nil
}
