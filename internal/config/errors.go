package config

import "errors"

var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configs")
)
