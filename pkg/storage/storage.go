// Package storage persists the history of estimation queries.
package storage

import (
	"fmt"
	"io"

	"github.com/yorrLorenz/eggprice/pkg/core"
)

const (
	DriverMemory = "memory"
	DriverBuntDB = "buntdb"
	DriverSQLite = "sqlite"
)

// History is a closable history log
type History interface {
	core.HistoryStorage
	io.Closer
}

// Open opens the history log of the given driver at path
func Open(driver, path string) (History, error) {
	var (
		history History
		err     error
	)

	switch driver {
	case DriverMemory, "":
		history, err = FromMemory()
	case DriverBuntDB:
		history, err = FromFile(path)
	case DriverSQLite:
		history, err = FromSQLite(path)
	default:
		return nil, fmt.Errorf("unknown history driver %q", driver)
	}

	if err != nil {
		return nil, err
	}
	return history, nil
}
