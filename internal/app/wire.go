package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"urchat/internal/container"
	"urchat/internal/domain"
	"urchat/internal/relay"
	"urchat/internal/rotation"
	messagesvc "urchat/internal/services/message"
	profilesvc "urchat/internal/services/profile"
	"urchat/internal/store"
)

// Wire bundles all stores, services, and collaborators for the CLI.
type Wire struct {
	Profiles  domain.ProfileService
	Messages  domain.MessageService
	Rotation  *rotation.Engine
	Directory domain.Directory
	Relay     domain.Relay
	Store     domain.ProfileStore
	History   domain.HistoryStore
	Log       *logrus.Logger
	Namespace domain.NamespaceID
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Collaborators: a relay daemon when configured, direct redis otherwise.
	var backend relay.Backend
	switch {
	case cfg.RelayURL != "":
		backend = relay.NewHTTP(cfg.RelayURL)
	case cfg.RedisAddr != "":
		backend = relay.NewRedis(redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}))
	default:
		return nil, fmt.Errorf("no relay configured: set --redis or --relay (or a .env file)")
	}

	namespace := domain.NamespaceID(cfg.Namespace())
	codec := container.Default()
	profileStore := store.NewProfileFileStore(cfg.Home, codec)
	historyStore := store.NewHistoryFileStore(cfg.Home, codec)

	return &Wire{
		Profiles:  profilesvc.New(profileStore, backend, namespace),
		Messages:  messagesvc.New(backend, backend, historyStore, logger),
		Rotation:  rotation.New(backend, rotation.DefaultMaxKeyAge),
		Directory: backend,
		Relay:     backend,
		Store:     profileStore,
		History:   historyStore,
		Log:       logger,
		Namespace: namespace,
	}, nil
}
