package logger

import (
	"fmt"

	"go.uber.org/zap"
)

const EnvProduction = "production"

// Init replaces zap's global logger, so the rest of the app can log through
// zap.L().
func Init(environment string) error {
	l, err := New(environment)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(l)

	return nil
}

func New(environment string) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)

	if environment == EnvProduction {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %v logger -> %w", environment, err)
	}

	return l.With(zap.String("env", environment)), nil
}
