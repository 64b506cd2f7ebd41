package config

import (
	"github.com/kelseyhightower/envconfig"

	pkgtls "github.com/sweetshop/inventory-service/pkg/tls"
)

type Config struct {
	Port             string `envconfig:"PORT" default:"5000"`
	AWSRegion        string `envconfig:"AWS_REGION" default:"ap-northeast-2"`
	DynamoEndpoint   string `envconfig:"DYNAMO_ENDPOINT" default:""`
	ProductTableName string `envconfig:"PRODUCT_TABLE_NAME" default:"products"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	LocalMode        bool   `envconfig:"LOCAL_MODE" default:"true"` // DynamoDB Local, static credentials
	KafkaBrokers     string `envconfig:"KAFKA_BROKERS" default:""`  // empty disables event publishing
	EventTopic       string `envconfig:"EVENT_TOPIC" default:"inventory-events"`

	TLS pkgtls.TLSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
