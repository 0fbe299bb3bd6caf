package configuration

import "github.com/adampresley/configinator"

type Config struct {
	AwsEndpointUrl     string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion          string `flag:"awsregion" env:"AWS_REGION" default:"us-east-1" description:"AWS region"`
	AwsAccessKeyId     string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket          string `flag:"awsbucket" env:"AWS_BUCKET" default:"llp-events-photos" description:"S3 bucket holding show photos"`
	ContactToEmail     string `flag:"contactto" env:"CONTACT_TO_EMAIL" default:"info@llp-events.com" description:"Inbox that receives contact form submissions"`
	DSN                string `flag:"dsn" env:"DSN" default:"file:./data/llpevents.db" description:"Data source name"`
	EmailApiKey        string `flag:"emailapikey" env:"EMAIL_API_KEY" default:"" description:"API key for sending emails"`
	Environment        string `flag:"environment" env:"ENVIRONMENT" default:"development" description:"Deployment environment. 'production' enables the image optimization proxy"`
	FromEmail          string `flag:"fromemail" env:"FROM_EMAIL" default:"noreply@mail.llp-events.com" description:"From address for outgoing email"`
	FromName           string `flag:"fromname" env:"FROM_NAME" default:"LLP Events" description:"From name for outgoing email"`
	Host               string `flag:"host" env:"HOST" default:"localhost:8080" description:"The address and port to bind the HTTP server to"`
	ImageProxyTemplate string `flag:"imageproxy" env:"IMAGE_PROXY_TEMPLATE" default:"/_vercel/image?url=%s&w=%d&q=%d" description:"URL template for the production image optimization proxy"`
	LineupCSVPath      string `flag:"lineupcsv" env:"LINEUP_CSV_PATH" default:"./data/singer-lineup.csv" description:"Path to the singer lineup CSV export"`
	LogLevel           string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxListWorkers     int    `flag:"mlw" env:"MAX_LIST_WORKERS" default:"10" description:"Maximum number of concurrent storage listing requests during album aggregation"`
	MetadataPrefix     string `flag:"metadataprefix" env:"METADATA_PREFIX" default:"_metadata/" description:"Storage prefix holding per-album metadata JSON records"`
	PublicBaseURL      string `flag:"publicbase" env:"PUBLIC_BASE_URL" default:"http://localhost:4566/llp-events-photos" description:"Public base URL for photo objects"`
	TurnstileSecretKey string `flag:"turnstilesecret" env:"TURNSTILE_SECRET_KEY" default:"" description:"Cloudflare Turnstile secret key"`
	TurnstileSiteKey   string `flag:"turnstilesite" env:"TURNSTILE_SITE_KEY" default:"" description:"Cloudflare Turnstile site key"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
