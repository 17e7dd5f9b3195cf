package env

import (
	"bowling_backend/internal/config"
	"errors"
	"net"
	"os"
	"strings"
)

const (
	httpHostEnvName       = "HTTP_HOST"
	httpPortEnvName       = "HTTP_PORT"
	allowedOriginsEnvName = "CORS_ALLOWED_ORIGINS"
)

type httpConfig struct {
	host           string
	port           string
	allowedOrigins []string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	port := os.Getenv(httpPortEnvName)
	if len(port) == 0 {
		return nil, errors.New("http port not found")
	}

	// Список через запятую. Пусто - разрешаем все источники
	origins := []string{"*"}
	if raw := os.Getenv(allowedOriginsEnvName); len(raw) > 0 {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &httpConfig{
		host:           os.Getenv(httpHostEnvName),
		port:           port,
		allowedOrigins: origins,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return net.JoinHostPort(cfg.host, cfg.port)
}

func (cfg *httpConfig) AllowedOrigins() []string {
	return cfg.allowedOrigins
}
