package service

import (
	"fmt"

	"inkwell/app/config"
	"inkwell/app/repositories"
)

// OpenStore opens the store selected by cfg. Memory storage is an in-memory
// Badger instance and is lost on exit.
func OpenStore(cfg config.StorageConfig) (*repositories.Store, error) {
	switch cfg.Type {
	case "badger":
		return repositories.OpenBadgerStore(cfg.Path, false)
	case "sqlite":
		return repositories.OpenSQLiteStore(cfg.Path)
	case "memory":
		return repositories.OpenBadgerStore("", true)
	}
	return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
}
