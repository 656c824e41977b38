package config

import (
	"log"

	"go.uber.org/zap"
)

var Log *zap.SugaredLogger

func InitLogger() {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	Log = l.Sugar()
}
