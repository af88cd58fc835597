package database

import (
	"Backend-Career-Advisor/src/config"

	"github.com/hibiken/asynq"
)

// AsynqRedisOpt shares the Redis settings with the task broker.
func AsynqRedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func NewAsynqClient(cfg config.RedisConfig) *asynq.Client {
	return asynq.NewClient(AsynqRedisOpt(cfg))
}
