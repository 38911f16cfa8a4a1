package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultAllowedOrigin      = "http://localhost:3000"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
		// AutoMigrate creates or updates the schema on startup.
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
		// Multipart proof uploads share this limit.
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// BehindProxy trusts X-Forwarded-For for the client IP, e.g. on Cloud Run.
		BehindProxy bool `json:"behindProxy" yaml:"behindProxy"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database tunes query logging and pool monitoring on top of Postgres.
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	CORS *CORSConfig `json:"cors" yaml:"cors"`

	Store *StoreConfig `json:"store" yaml:"store"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	// PubSub selects how mail events leave the API process
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Worker configures the mail worker process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type DatabaseConfig struct {
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	// LogNotFound also logs lookups that matched no row.
	LogNotFound  bool `json:"logNotFound" yaml:"logNotFound"`
	MaxLoggedSQL int  `json:"maxLoggedSql" yaml:"maxLoggedSql"`
	// PoolMonitorInterval is how often pool waits are sampled. Zero keeps the default.
	PoolMonitorInterval   time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
	PoolWaitWarnThreshold time.Duration `json:"poolWaitWarnThreshold" yaml:"poolWaitWarnThreshold"`
}

// DatabaseSettings returns Database with unset fields defaulted.
func (c *Config) DatabaseSettings() DatabaseConfig {
	var db DatabaseConfig
	if c.Database != nil {
		db = *c.Database
	}
	if db.SlowQueryThreshold <= 0 {
		db.SlowQueryThreshold = 200 * time.Millisecond
	}
	if db.MaxLoggedSQL <= 0 {
		db.MaxLoggedSQL = 2000
	}
	if db.PoolMonitorInterval <= 0 {
		db.PoolMonitorInterval = 5 * time.Second
	}
	if db.PoolWaitWarnThreshold <= 0 {
		db.PoolWaitWarnThreshold = 50 * time.Millisecond
	}

	return db
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CORSConfig lists the browser origins allowed to call the API
type CORSConfig struct {
	// Comma separated, e.g. "http://localhost:3000,https://store.example"
	AllowedOrigins string `json:"allowedOrigins" yaml:"allowedOrigins"`
}

// Origins splits AllowedOrigins into a trimmed list.
func (c *CORSConfig) Origins() []string {
	if c == nil || strings.TrimSpace(c.AllowedOrigins) == "" {
		return []string{defaultAllowedOrigin}
	}

	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins
}

// StoreConfig holds business rules of the shop
type StoreConfig struct {
	MaxAddressesPerUser  int           `json:"maxAddressesPerUser" yaml:"maxAddressesPerUser"`
	ManualShippingFee    float64       `json:"manualShippingFee" yaml:"manualShippingFee"`
	ConfirmationTokenTTL time.Duration `json:"confirmationTokenTTL" yaml:"confirmationTokenTTL"`
	RecoveryCodeTTL      time.Duration `json:"recoveryCodeTTL" yaml:"recoveryCodeTTL"`
	FrontendURL          string        `json:"frontendUrl" yaml:"frontendUrl"`
	BrandName            string        `json:"brandName" yaml:"brandName"`
}

// MailConfig defines the SMTP relay and the in-process dispatcher
type MailConfig struct {
	From string `json:"from" yaml:"from"`
	SMTP struct {
		Host     string `json:"host" yaml:"host"`
		Port     int    `json:"port" yaml:"port"`
		Username string `json:"username" yaml:"username"`
		Password string `json:"password" yaml:"password"`
		// RequireTLS refuses to send when the relay does not offer STARTTLS
		RequireTLS bool          `json:"requireTls" yaml:"requireTls"`
		Timeout    time.Duration `json:"timeout" yaml:"timeout"`
	} `json:"smtp" yaml:"smtp"`

	// Workers and QueueSize only apply to the in-process provider
	Workers   int `json:"workers" yaml:"workers"`
	QueueSize int `json:"queueSize" yaml:"queueSize"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "" or "inprocess", "local", "google", "kafka"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Push subscription audience checked by the worker outside develop
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	Kafka KafkaConfig `json:"kafka" yaml:"kafka"`
}

type KafkaConfig struct {
	// Comma separated broker list
	Brokers string `json:"brokers" yaml:"brokers"`
	Topic   string `json:"topic" yaml:"topic"`
	GroupID string `json:"groupId" yaml:"groupId"`
}

// BrokerList splits Brokers into a trimmed list.
func (k KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return brokers
}

// StorageConfig selects where uploaded images and payment proofs go
type StorageConfig struct {
	// Provider: "blob" (gocloud URL) or "s3"
	Provider string `json:"provider" yaml:"provider"`

	// BucketURL for the blob provider, e.g. file:///var/uploads, s3://bucket?region=us-east-1, gs://bucket
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is prefixed to object keys to build the returned URL (blob provider)
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	RootFolder string `json:"rootFolder" yaml:"rootFolder"`

	S3 struct {
		Region    string `json:"region" yaml:"region"`
		Bucket    string `json:"bucket" yaml:"bucket"`
		AccessKey string `json:"accessKey" yaml:"accessKey"`
		SecretKey string `json:"secretKey" yaml:"secretKey"`
		// Endpoint for S3 compatible services; enables path style addressing
		Endpoint  string `json:"endpoint" yaml:"endpoint"`
		CDNDomain string `json:"cdnDomain" yaml:"cdnDomain"`
	} `json:"s3" yaml:"s3"`
}

// PaymentConfig defines the card payment gateway client
type PaymentConfig struct {
	BaseURL     string        `json:"baseUrl" yaml:"baseUrl"`
	AccessToken string        `json:"accessToken" yaml:"accessToken"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	YapePhone            string `json:"yapePhone" yaml:"yapePhone"`
}

type SchedulerConfig struct {
	Enabled          bool   `json:"enabled" yaml:"enabled"`
	TokenCleanupSpec string `json:"tokenCleanupSpec" yaml:"tokenCleanupSpec"`
}

type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	// Local development keeps secrets in .env; a missing file is fine.
	loadDotEnv(searchPaths)

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// MAIL_SMTP_HOST -> mail.smtp.host, STORE_FRONTENDURL -> store.frontendUrl
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func loadDotEnv(searchPaths []string) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, ".env")
		if _, err := os.Stat(candidate); err == nil {
			_ = godotenv.Load(candidate)

			return
		}
	}
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	db := cfg.DatabaseSettings()
	cfg.Database = &db

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.MaxAddressesPerUser <= 0 {
		cfg.Store.MaxAddressesPerUser = 10
	}
	if cfg.Store.ManualShippingFee <= 0 {
		cfg.Store.ManualShippingFee = 20.00
	}
	if cfg.Store.ConfirmationTokenTTL <= 0 {
		cfg.Store.ConfirmationTokenTTL = 15 * time.Minute
	}
	if cfg.Store.RecoveryCodeTTL <= 0 {
		cfg.Store.RecoveryCodeTTL = 10 * time.Minute
	}
	if cfg.Store.BrandName == "" {
		cfg.Store.BrandName = "ARCHIVE."
	}

	if cfg.Mail == nil {
		cfg.Mail = &MailConfig{}
	}
	if cfg.Mail.Workers <= 0 {
		cfg.Mail.Workers = 2
	}
	if cfg.Mail.QueueSize <= 0 {
		cfg.Mail.QueueSize = 100
	}
	if cfg.Mail.SMTP.Timeout <= 0 {
		cfg.Mail.SMTP.Timeout = 15 * time.Second
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.RootFolder == "" {
		cfg.Storage.RootFolder = "geekstore"
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
