package storage

import "time"

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config configures storage. Driver defaults to "file".
type Config struct {
	Driver      string
	Path        string
	BusyTimeout time.Duration // sqlite only; 0 means default
}
