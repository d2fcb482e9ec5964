package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/educare/internal/db"
	"github.com/alexanderramin/educare/internal/predictor"
	"github.com/alexanderramin/educare/internal/repository"
	"github.com/alexanderramin/educare/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type fixture struct {
	db       *sql.DB
	repo     *repository.SQLitePredictionRepo
	predict  PredictionService
	history  HistoryService
	observer *recordingObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithUoW(t, nil)
}

func newFixtureWithUoW(t *testing.T, uow func(*sql.DB) db.UnitOfWork) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	unit := testutil.NewTestUoW(database)
	if uow != nil {
		unit = uow(database)
	}
	obs := &recordingObserver{}
	repo := repository.NewSQLitePredictionRepo(database)
	return &fixture{
		db:       database,
		repo:     repo,
		predict:  NewPredictionService(predictor.New(nil, predictor.NewRandSource(42)), unit, nil, obs),
		history:  NewHistoryService(repo, 10, obs),
		observer: obs,
	}
}
