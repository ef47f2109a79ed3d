package database

import (
	"gorm.io/gorm"
)

// Store holds the two independent logs backing the service.
type Store struct {
	Readings *Log[SensorReading]
	Controls *Log[ManualControl]

	db *gorm.DB
}

func New(connect ConnectorFunc) (*Store, error) {
	impl, log, err := connect()
	if err != nil {
		return nil, err
	}

	readings, err := NewLog[SensorReading](impl)
	if err != nil {
		return nil, err
	}

	controls, err := NewLog[ManualControl](impl)
	if err != nil {
		return nil, err
	}

	log.Info().Msg("database schema is up to date")

	return &Store{
		Readings: readings,
		Controls: controls,
		db:       impl,
	}, nil
}

func (s *Store) Close() error {
	sqldb, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}
