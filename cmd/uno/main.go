package main

import (
	"fmt"
	"os"

	"github.com/andyzhou/gamehost"
	"github.com/andyzhou/gamehost/conf"
	"github.com/andyzhou/gamehost/games/uno"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "uno provider:", err)
		os.Exit(1)
	}
}

func run() error {
	//load conf
	cfg, err := conf.LoadProviderConf(uno.GameName)
	if err != nil {
		return err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	//defer
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic happened", zap.Any("err", r))
		}
	}()

	//init engine and provider
	e := uno.NewEngine(
		uno.WithSeed(cfg.Seed),
		uno.WithLogger(logger),
	)
	provider, err := gamehost.NewProvider(cfg, e, gamehost.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.Info("provider start",
		zap.String("core", cfg.CoreAddr),
		zap.String("id", cfg.ProviderId),
	)
	return provider.Run()
}
