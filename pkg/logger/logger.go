package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. Development mode gets console-friendly
// output, production gets JSON on stdout.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		return cfg.Build()
	}
	return zap.NewDevelopment()
}

// Must is New but panics on failure, for use during startup wiring.
func Must(env string) *zap.Logger {
	l, err := New(env)
	if err != nil {
		panic(err)
	}
	return l
}
