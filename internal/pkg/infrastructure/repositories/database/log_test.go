package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestThatLatestOnEmptyLogReturnsErrEmptyLog(t *testing.T) {
	is, ctx, s := setup(t)

	_, err := s.Readings.Latest(ctx)
	is.True(errors.Is(err, ErrEmptyLog))

	_, err = s.Controls.Latest(ctx)
	is.True(errors.Is(err, ErrEmptyLog))
}

func TestThatLatestReturnsTheMostRecentlyAppendedReading(t *testing.T) {
	is, ctx, s := setup(t)

	for n := 1; n <= 5; n++ {
		err := s.Readings.Append(ctx, &SensorReading{
			Temperature: float64(20 + n),
			Humidity:    50,
			FanStatus:   "OFF",
			LedStatus:   "HIJAU",
		})
		is.NoErr(err)

		latest, err := s.Readings.Latest(ctx)
		is.NoErr(err)
		is.Equal(latest.Temperature, float64(20+n))
		is.Equal(latest.ID, uint(n))
	}
}

func TestThatAppendAssignsCreatedAt(t *testing.T) {
	is, ctx, s := setup(t)

	r := &SensorReading{Temperature: 25}
	is.NoErr(s.Readings.Append(ctx, r))

	is.True(r.ID > 0)
	is.True(!r.CreatedAt.IsZero())
}

func TestThatTiesAreBrokenByID(t *testing.T) {
	is, ctx, s := setup(t)
	ts := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	fan := "SEDANG"
	is.NoErr(s.Controls.Append(ctx, &ManualControl{CreatedAt: ts, Mode: "MANUAL", Fan: &fan}))
	is.NoErr(s.Controls.Append(ctx, &ManualControl{CreatedAt: ts, Mode: "AUTO"}))

	latest, err := s.Controls.Latest(ctx)
	is.NoErr(err)
	is.Equal(latest.Mode, "AUTO")
	is.True(latest.Fan == nil)
}

func TestThatCreationTimeWinsOverID(t *testing.T) {
	is, ctx, s := setup(t)

	newer := time.Date(2025, 1, 1, 12, 0, 1, 0, time.UTC)
	older := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	is.NoErr(s.Readings.Append(ctx, &SensorReading{CreatedAt: newer, Temperature: 30}))
	is.NoErr(s.Readings.Append(ctx, &SensorReading{CreatedAt: older, Temperature: 10}))

	latest, err := s.Readings.Latest(ctx)
	is.NoErr(err)
	is.Equal(latest.Temperature, float64(30))
}

func TestThatConcurrentAppendsAreAllStored(t *testing.T) {
	is, ctx, s := setup(t)

	const writers = 20
	wg := sync.WaitGroup{}
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- s.Readings.Append(ctx, &SensorReading{Temperature: float64(i)})
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		is.NoErr(err)
	}

	n, err := s.Readings.Count(ctx)
	is.NoErr(err)
	is.Equal(n, int64(writers))
}

func setup(t *testing.T) (*is.I, context.Context, *Store) {
	is := is.New(t)
	ctx := context.Background()

	s, err := New(NewSQLiteConnector(zerolog.Nop(), ""))
	is.NoErr(err)

	t.Cleanup(func() { s.Close() })

	return is, ctx, s
}
