package main

import (
	"flag"
	"net/http"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"urchat/internal/relay"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	redisAddr := flag.String("redis", "", "redis backend address (in-memory when empty)")
	redisPassword := flag.String("redis-password", "", "redis password")
	flag.Parse()

	logger := logrus.New()

	var backend relay.Backend
	if *redisAddr != "" {
		backend = relay.NewRedis(goredis.NewClient(&goredis.Options{
			Addr:     *redisAddr,
			Password: *redisPassword,
		}))
		logger.WithField("redis", *redisAddr).Info("serving over redis backend")
	} else {
		backend = relay.NewMemory()
		logger.Warn("serving over in-memory backend; state is lost on restart")
	}

	logger.WithField("addr", *addr).Info("relay listening")
	if err := http.ListenAndServe(*addr, relay.NewHandler(backend, logger)); err != nil {
		logger.WithError(err).Fatal("relay stopped")
	}
}
