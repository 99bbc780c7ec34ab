package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
	File  string // 非空则额外写文件并按大小切割
}

type Mongo struct {
	URI      string
	Database string
}

type Redis struct {
	Addr     string `mapstructure:"addr"` // 为空则不启用列表缓存
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Stripe struct {
	SecretKey string
	ClientURL string // 支付成功/取消跳转的前端根地址
	Currency  string
}

type Config struct {
	App    App
	Log    Log
	Mongo  Mongo
	Redis  Redis `mapstructure:"redis"`
	Stripe Stripe
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "variety-store")
	v.SetDefault("app.http.port", 3000)
	v.SetDefault("app.http.readtimeoutsec", 15)
	v.SetDefault("app.http.writetimeoutsec", 30)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("log.level", "info")
	v.SetDefault("mongo.database", "Tesiting-eshikhon-final-project")
	v.SetDefault("stripe.currency", "inr")

	// 配置文件可选：没有文件时走 env + 默认值
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			log.Fatalf("read config: %v", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	applyEnvAliases(&c)
	return &c
}

// applyEnvAliases 兼容旧部署的环境变量名
func applyEnvAliases(c *Config) {
	if c.Mongo.URI == "" {
		c.Mongo.URI = os.Getenv("MONGO_URL")
	}
	if c.Stripe.SecretKey == "" {
		c.Stripe.SecretKey = os.Getenv("STRIPE_SECRET")
	}
	if c.Stripe.ClientURL == "" {
		c.Stripe.ClientURL = os.Getenv("CLIENT_URL")
	}
}
