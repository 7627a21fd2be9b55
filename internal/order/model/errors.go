package model

import (
	"errors"
	"fmt"
)

// ErrConfig — фатальная ошибка конфигурации: до записи вывода дело не доходит.
var ErrConfig = errors.New("configuration error")

type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

func (e *ConfigError) Unwrap() error { return ErrConfig }

func ConfigErrorf(format string, args ...any) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}
