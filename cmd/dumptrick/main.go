package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/jjoak3/dumptrick/pkg/hearts"
	"github.com/jjoak3/dumptrick/pkg/server"
)

func main() {
	setupConfig()
	setupLogging()

	srv := server.New()
	httpSrv := srv.Run(viper.GetString("server.addr"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("shutdown was not clean")
	}
	srv.Close()
}

func setupConfig() {
	viper.SetDefault("server.addr", "0.0.0.0:8000")
	viper.SetDefault("server.allowed_origins", []string{"*"})
	viper.SetDefault("server.queue_size", 64)
	viper.SetDefault("game.turn_delay", hearts.DefaultTurnDelay)
	viper.SetDefault("game.bot_delay", hearts.DefaultBotDelay)
	viper.SetDefault("game.score_step", hearts.DefaultScoreStep)
	viper.SetDefault("game.expires", time.Hour)
	viper.SetDefault("game.expiry_check", time.Minute)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", false)

	viper.SetEnvPrefix("dumptrick")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err == nil {
		log.Info().Str("file", viper.ConfigFileUsed()).Msg("config loaded")
	}
}

func setupLogging() {
	level, err := zerolog.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if viper.GetBool("log.pretty") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
