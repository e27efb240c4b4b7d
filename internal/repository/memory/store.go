package memory

import (
	"context"
	"maps"
	"sync"

	"dispatch/internal/entities"
)

type state struct {
	carriers      map[int64]entities.Carrier
	orders        map[int64]entities.Order
	trips         map[int64]entities.Trip
	notifications map[int64]entities.Notification
	ratings       map[int64]entities.Rating

	// (trip_id, kind, episode) -> id уведомления
	notificationKeys map[notificationKey]int64
	// order_id -> id оценки
	ratingByOrder map[int64]int64

	seq int64
}

type notificationKey struct {
	tripID  int64
	kind    entities.EventKind
	episode int
}

func newState() *state {
	return &state{
		carriers:         make(map[int64]entities.Carrier),
		orders:           make(map[int64]entities.Order),
		trips:            make(map[int64]entities.Trip),
		notifications:    make(map[int64]entities.Notification),
		ratings:          make(map[int64]entities.Rating),
		notificationKeys: make(map[notificationKey]int64),
		ratingByOrder:    make(map[int64]int64),
	}
}

// значения в картах не изменяются на месте, достаточно копии карт
func (s *state) clone() *state {
	return &state{
		carriers:         maps.Clone(s.carriers),
		orders:           maps.Clone(s.orders),
		trips:            maps.Clone(s.trips),
		notifications:    maps.Clone(s.notifications),
		ratings:          maps.Clone(s.ratings),
		notificationKeys: maps.Clone(s.notificationKeys),
		ratingByOrder:    maps.Clone(s.ratingByOrder),
		seq:              s.seq,
	}
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

// Store хранилище в памяти для STORAGE_DRIVER=memory и тестов сервисов.
// Все операции сериализованы одним мьютексом; транзакция держит его целиком
// и при ошибке откатывает снимок состояния.
type Store struct {
	mu   sync.Mutex
	data *state
}

func NewStore() *Store {
	return &Store{data: newState()}
}

func (s *Store) Carriers() *CarrierRepository {
	return &CarrierRepository{store: s}
}

func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{store: s}
}

func (s *Store) Trips() *TripRepository {
	return &TripRepository{store: s}
}

func (s *Store) Notifications() *NotificationRepository {
	return &NotificationRepository{store: s}
}

func (s *Store) Ratings() *RatingRepository {
	return &RatingRepository{store: s}
}

func (s *Store) Stats() *StatsRepository {
	return &StatsRepository{store: s}
}

func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

// Ping всегда успешен, нужен для readiness.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

type txKey struct{}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// acquire берет мьютекс, если вызов не внутри транзакции
func (s *Store) acquire(ctx context.Context) (func(), error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if inTx(ctx) {
		return func() {}, nil
	}
	s.mu.Lock()
	return s.mu.Unlock, nil
}

type TxManager struct {
	store *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	snapshot := m.store.data.clone()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.store.data = snapshot
		return err
	}
	return nil
}
