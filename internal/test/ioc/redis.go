package testioc

import (
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var cache ecache.Cache

// InitCache 和 InitDB 共用 config/local.yaml，额度计数用的就是这个缓存
func InitCache() ecache.Cache {
	if cache != nil {
		return cache
	}
	if err := loadConfig(); err != nil {
		panic(err)
	}
	addr := econf.GetString("redis.addr")
	if addr == "" {
		addr = "localhost:6379"
	}
	cmd := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: econf.GetString("redis.password"),
		DB:       econf.GetInt("redis.db"),
	})
	cache = &ecache.NamespaceCache{
		C:         eredis.NewCache(cmd),
		Namespace: "mockinterview:",
	}
	return cache
}
