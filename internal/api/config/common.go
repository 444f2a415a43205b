package config

// Config is the top-level configuration body.
type Config struct {
	Server                Server                `mapstructure:"server"`
	DB                    DBConfig              `mapstructure:"database"`
	Redis                 RedisConfig           `mapstructure:"redis"`
	Mongo                 MongoConfig           `mapstructure:"mongo"`
	MinIO                 MinIOConfig           `mapstructure:"minio"`
	Elastic               ElasticConfig         `mapstructure:"elastic"`
	Logstash              LogstashConfig        `mapstructure:"logstash"`
	Kafka                 KafkaConfig           `mapstructure:"kafka"`
	KafkaPurchaseConsumer KafkaPurchaseConsumer `mapstructure:"kafka_purchase_consumer"`
	Users                 UsersServiceConfig    `mapstructure:"users_service"`
	Invest                InvestConfig          `mapstructure:"invest"`
}

// Server holds HTTP server settings.
type Server struct {
	Port int  `mapstructure:"port"`
	Dev  bool `mapstructure:"dev"`
}

// DBConfig holds MySQL pool settings.
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// MinIOConfig holds object storage settings for channel avatars.
type MinIOConfig struct {
	InternalEndpoint string `mapstructure:"internal_endpoint"`
	ExternalEndpoint string `mapstructure:"external_endpoint"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	AvatarBucket     string `mapstructure:"avatar_bucket"`
	InternalUseSSL   bool   `mapstructure:"internal_use_ssl"`
	UsePublicLink    bool   `mapstructure:"use_public_link"`
}

type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

type ElasticIndices struct {
	ChannelIndex string `mapstructure:"channel_index"`
}

type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaPurchaseConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// UsersServiceConfig points at the hosted identity provider. Session
// tokens are minted remotely; we only verify them with the shared secret.
type UsersServiceConfig struct {
	ApiURL        string `mapstructure:"api_url"`
	ApiKey        string `mapstructure:"api_key"`
	SessionSecret string `mapstructure:"session_secret"`
	CookieName    string `mapstructure:"cookie_name"`
	CookieMaxAge  int    `mapstructure:"cookie_max_age"`
}

// InvestConfig holds ledger tuning knobs.
type InvestConfig struct {
	// PayoutRatio is the share of a channel's monthly revenue paid out
	// to shareholders by the earnings distribution job.
	PayoutRatio float64 `mapstructure:"payout_ratio"`
}
