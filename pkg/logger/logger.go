package logger

import (
	"log"

	"go.uber.org/zap"
)

// NewLogger process genelinde kullanılan zap logger'ı oluşturur
func NewLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger
}
