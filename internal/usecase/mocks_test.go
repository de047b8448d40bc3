package usecase

import (
	"context"
	"time"

	"github.com/lluanbs/celestial-resort/internal/model"
	"github.com/lluanbs/celestial-resort/internal/queue"
)

// --- Mock stores ---

type mockUserStore struct {
	createFn        func(ctx context.Context, u *model.User) error
	existsFn        func(ctx context.Context, id string) (bool, error)
	getByIDFn       func(ctx context.Context, id string) (model.User, error)
	getByEmailFn    func(ctx context.Context, email string) (model.User, error)
	updateBalanceFn func(ctx context.Context, id string, balanceCents int64) error
	updateNameFn    func(ctx context.Context, id, name string) error
}

func (m *mockUserStore) Create(ctx context.Context, u *model.User) error { return m.createFn(ctx, u) }
func (m *mockUserStore) Exists(ctx context.Context, id string) (bool, error) {
	return m.existsFn(ctx, id)
}
func (m *mockUserStore) GetByID(ctx context.Context, id string) (model.User, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return m.getByEmailFn(ctx, email)
}
func (m *mockUserStore) UpdateBalance(ctx context.Context, id string, balanceCents int64) error {
	return m.updateBalanceFn(ctx, id, balanceCents)
}
func (m *mockUserStore) UpdateName(ctx context.Context, id, name string) error {
	return m.updateNameFn(ctx, id, name)
}

type mockRoomStore struct {
	createFn         func(ctx context.Context, room *model.Room) error
	listFn           func(ctx context.Context) ([]model.Room, error)
	existsByNumberFn func(ctx context.Context, roomNumber string) (bool, error)
	idsExistFn       func(ctx context.Context, ids []string) (bool, error)
	sumPricesFn      func(ctx context.Context, ids []string) (int64, error)
	numbersFn        func(ctx context.Context, ids []string) ([]string, error)
}

func (m *mockRoomStore) Create(ctx context.Context, room *model.Room) error {
	return m.createFn(ctx, room)
}
func (m *mockRoomStore) List(ctx context.Context) ([]model.Room, error) {
	return m.listFn(ctx)
}
func (m *mockRoomStore) ExistsByNumber(ctx context.Context, roomNumber string) (bool, error) {
	return m.existsByNumberFn(ctx, roomNumber)
}
func (m *mockRoomStore) IDsExist(ctx context.Context, ids []string) (bool, error) {
	return m.idsExistFn(ctx, ids)
}
func (m *mockRoomStore) SumPricesByIDs(ctx context.Context, ids []string) (int64, error) {
	return m.sumPricesFn(ctx, ids)
}
func (m *mockRoomStore) NumbersByIDs(ctx context.Context, ids []string) ([]string, error) {
	return m.numbersFn(ctx, ids)
}

type mockReservationStore struct {
	createFn       func(ctx context.Context, res *model.Reservation) error
	occupiedFn     func(ctx context.Context, roomIDs []string) (bool, error)
	getByIDFn      func(ctx context.Context, id string) (model.Reservation, error)
	updateStatusFn func(ctx context.Context, id string, status model.ReservationStatus) error
	checkInFn      func(ctx context.Context, reservationID, userID string, amountCents int64) error
}

func (m *mockReservationStore) Create(ctx context.Context, res *model.Reservation) error {
	return m.createFn(ctx, res)
}
func (m *mockReservationStore) IsAnyRoomOccupied(ctx context.Context, roomIDs []string) (bool, error) {
	return m.occupiedFn(ctx, roomIDs)
}
func (m *mockReservationStore) GetByID(ctx context.Context, id string) (model.Reservation, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockReservationStore) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) error {
	return m.updateStatusFn(ctx, id, status)
}
func (m *mockReservationStore) CheckIn(ctx context.Context, reservationID, userID string, amountCents int64) error {
	return m.checkInFn(ctx, reservationID, userID, amountCents)
}

type mockTokenStore struct {
	storeRefreshFn    func(ctx context.Context, userID, tokenHash string, exp time.Time) error
	validateRefreshFn func(ctx context.Context, tokenHash string) (string, error)
	revokeByHashFn    func(ctx context.Context, tokenHash string) error
}

func (m *mockTokenStore) StoreRefresh(ctx context.Context, userID, tokenHash string, exp time.Time) error {
	return m.storeRefreshFn(ctx, userID, tokenHash, exp)
}
func (m *mockTokenStore) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	return m.validateRefreshFn(ctx, tokenHash)
}
func (m *mockTokenStore) RevokeByHash(ctx context.Context, tokenHash string) error {
	return m.revokeByHashFn(ctx, tokenHash)
}

type mockPublisher struct {
	publishFn func(ctx context.Context, event queue.ReservationCreatedEvent) error
	published []queue.ReservationCreatedEvent
}

func (m *mockPublisher) PublishReservationCreated(ctx context.Context, event queue.ReservationCreatedEvent) error {
	m.published = append(m.published, event)
	if m.publishFn != nil {
		return m.publishFn(ctx, event)
	}
	return nil
}
