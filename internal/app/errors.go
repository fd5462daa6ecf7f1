package app

import "errors"

// ErrInvalidConfig возвращается при некорректных настройках запуска.
var ErrInvalidConfig = errors.New("invalid config")
