package database

import "time"

type TableExist int

const (
	TableNotExist TableExist = iota
	TableExists
)

type MigrationId int

type Migration struct {
	Id MigrationId `db:"id"`
}

type RecentSlideshow struct {
	Id     int64     `db:"id,omitempty"`
	Path   string    `db:"path"`
	Opened time.Time `db:"opened_timestamp"`
}
