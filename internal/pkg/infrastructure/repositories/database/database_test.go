package database

import (
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestThatStoreCreatesBothTables(t *testing.T) {
	is := is.New(t)

	db, _, err := NewSQLiteConnector(zerolog.Nop(), "")()
	is.NoErr(err)

	_, err = NewLog[SensorReading](db)
	is.NoErr(err)
	_, err = NewLog[ManualControl](db)
	is.NoErr(err)

	is.True(db.Migrator().HasTable("sensor_data"))
	is.True(db.Migrator().HasTable("manual_control"))
}
