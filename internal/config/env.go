package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/zetherabarter/Rec-Backend2/internal/mail"
)

const (
	postgresUrl          = "POSTGRES_URL"
	redisUrl             = "REDIS_URL"
	smtpHost             = "SMTP_HOST"
	smtpPort             = "SMTP_PORT"
	smtpUser             = "SMTP_USER"
	smtpPassword         = "SMTP_PASSWORD"
	smtpFrom             = "SMTP_FROM"
	smtpTimeoutInSeconds = "SMTP_TIMEOUT_IN_SECONDS"
	sendRatePerSecond    = "SEND_RATE_PER_SECOND"
	apiVersion           = "API_VERSION"
	requestsPerSecond    = "REQUESTS_PER_SECOND"
	cacheTTLInSeconds    = "CACHE_TTL_IN_SECONDS"
	metricsPort          = "METRICS_PORT"
)

const defaultSMTPTimeout = 10 * time.Second

type EnvConfig struct{}

func getIntEnv(key string) (int, error) {

	valueStr, ok := os.LookupEnv(key)

	if !ok {
		return 0, fmt.Errorf("env variable %s not set", key)
	}

	value, err := strconv.Atoi(valueStr)

	if err != nil {
		return 0, fmt.Errorf("failed to parse %s to int - %w", key, err)
	}

	return value, nil
}

func (cfg EnvConfig) GetPostgresUrl() (string, error) {

	url, ok := os.LookupEnv(postgresUrl)

	if !ok {
		return "", fmt.Errorf("postgres env variable %s not set", postgresUrl)
	}

	return url, nil
}

func (cfg EnvConfig) GetRedisUrl() (string, error) {

	url, ok := os.LookupEnv(redisUrl)

	if !ok {
		return "", fmt.Errorf("redis url %s not set", redisUrl)
	}

	return url, nil
}

func (cfg EnvConfig) GetSMTPConfig() (mail.SMTPConfig, error) {

	smtpCfg := mail.SMTPConfig{}

	host, ok := os.LookupEnv(smtpHost)

	if !ok {
		return smtpCfg, fmt.Errorf("smtp host env variable %s not set", smtpHost)
	}

	port, err := getIntEnv(smtpPort)

	if err != nil {
		return smtpCfg, err
	}

	from, ok := os.LookupEnv(smtpFrom)

	if !ok {
		return smtpCfg, fmt.Errorf("smtp from env variable %s not set", smtpFrom)
	}

	smtpCfg.Host = host
	smtpCfg.Port = port
	smtpCfg.From = from
	smtpCfg.Username = os.Getenv(smtpUser)
	smtpCfg.Password = os.Getenv(smtpPassword)

	return smtpCfg, nil
}

func (cfg EnvConfig) GetSendTimeout() time.Duration {

	timeout, err := getIntEnv(smtpTimeoutInSeconds)

	if err != nil {
		return defaultSMTPTimeout
	}

	return time.Duration(timeout) * time.Second
}

func (cfg EnvConfig) GetSendRatePerSecond() (*int, error) {

	if _, ok := os.LookupEnv(sendRatePerSecond); !ok {
		return nil, nil
	}

	rate, err := getIntEnv(sendRatePerSecond)

	if err != nil {
		return nil, err
	}

	return &rate, nil
}

func (cfg EnvConfig) GetVersion() (string, error) {

	version, ok := os.LookupEnv(apiVersion)

	if !ok {
		return "", fmt.Errorf("api version env variable %s not found", apiVersion)
	}

	return version, nil
}

func (cfg EnvConfig) GetRequestsPerSecond() (int, error) {
	return getIntEnv(requestsPerSecond)
}

func (cfg EnvConfig) GetTTL() (time.Duration, error) {

	ttl, err := getIntEnv(cacheTTLInSeconds)

	if err != nil {
		return 0, err
	}

	return time.Duration(ttl) * time.Second, nil
}

func (cfg EnvConfig) GetMetricsPort() string {

	port, ok := os.LookupEnv(metricsPort)

	if !ok {
		return "9090"
	}

	return port
}

func NewEnvConfig(envFile *string) (*EnvConfig, error) {

	if envFile == nil {
		cfg := EnvConfig{}
		return &cfg, nil
	}

	err := godotenv.Load(*envFile)

	if err != nil {
		return nil, fmt.Errorf("failed to load env file %s - %w", *envFile, err)
	}

	cfg := EnvConfig{}
	return &cfg, nil
}
