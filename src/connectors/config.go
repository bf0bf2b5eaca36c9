package connectors

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	NewsAPIKey     string `envconfig:"NEWS_API_KEY" default:""`
	NewsAPIBaseURL string `envconfig:"NEWS_API_BASE_URL" default:"https://newsapi.org"`
	NewsQuery      string `envconfig:"NEWS_QUERY" default:"forex OR currency OR (finance AND exchange rate)"`
	NewsPageSize   int    `envconfig:"NEWS_PAGE_SIZE" default:"30"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
