package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadWithoutConfigFileUsesDefaults(t *testing.T) {
	// 指向一个不存在的文件：只走默认值 + 环境变量
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("MONGO_URL", "")
	t.Setenv("STRIPE_SECRET", "")
	t.Setenv("CLIENT_URL", "")

	c := Load("")
	assert.Equal(t, "variety-store", c.App.Name)
	assert.Equal(t, 3000, c.App.HTTP.Port)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "Tesiting-eshikhon-final-project", c.Mongo.Database)
	assert.Equal(t, "inr", c.Stripe.Currency)
}

func TestLoadEnvAliases(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("MONGO_URL", "mongodb://env-host:27017")
	t.Setenv("STRIPE_SECRET", "sk_test_env")
	t.Setenv("CLIENT_URL", "https://shop.example.com")

	c := Load("")
	assert.Equal(t, "mongodb://env-host:27017", c.Mongo.URI)
	assert.Equal(t, "sk_test_env", c.Stripe.SecretKey)
	assert.Equal(t, "https://shop.example.com", c.Stripe.ClientURL)
}
