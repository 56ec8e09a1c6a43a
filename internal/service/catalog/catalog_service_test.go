package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mkravets/airport-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAirplaneTypeRepository struct {
	mock.Mock
}

func (m *MockAirplaneTypeRepository) List(ctx context.Context) ([]domain.AirplaneType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeRepository) Create(ctx context.Context, at *domain.AirplaneType) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}

func (m *MockAirplaneTypeRepository) Update(ctx context.Context, at *domain.AirplaneType) error {
	args := m.Called(ctx, at)
	return args.Error(0)
}

func (m *MockAirplaneTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSeatRepository struct {
	mock.Mock
}

func (m *MockSeatRepository) List(ctx context.Context) ([]domain.Seat, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockSeatRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Seat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seat), args.Error(1)
}

func (m *MockSeatRepository) ListByAirplaneType(ctx context.Context, airplaneTypeID uuid.UUID) ([]domain.Seat, error) {
	args := m.Called(ctx, airplaneTypeID)
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockSeatRepository) ExistingIDsForType(ctx context.Context, airplaneTypeID uuid.UUID, seatIDs []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, airplaneTypeID, seatIDs)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockSeatRepository) Create(ctx context.Context, seat *domain.Seat) error {
	args := m.Called(ctx, seat)
	return args.Error(0)
}

func (m *MockSeatRepository) Update(ctx context.Context, seat *domain.Seat) error {
	args := m.Called(ctx, seat)
	return args.Error(0)
}

func (m *MockSeatRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirplaneRepository struct {
	mock.Mock
}

func (m *MockAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) Create(ctx context.Context, a *domain.Airplane) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Update(ctx context.Context, a *domain.Airplane) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCatalogService_CreateSeat_ValidatesBounds(t *testing.T) {
	typeRepo := &MockAirplaneTypeRepository{}
	seatRepo := &MockSeatRepository{}
	service := &CatalogService{airplaneTypes: typeRepo, seats: seatRepo}

	ctx := context.Background()
	typeID := uuid.New()
	at := &domain.AirplaneType{ID: typeID, Name: "AN-2", Rows: 5, SeatsInRow: 4}

	testCases := []struct {
		name    string
		seat    domain.Seat
		wantErr bool
	}{
		{name: "first seat", seat: domain.Seat{AirplaneTypeID: typeID, Row: 1, Letter: "A"}},
		{name: "last seat", seat: domain.Seat{AirplaneTypeID: typeID, Row: 5, Letter: "D"}},
		{name: "row zero", seat: domain.Seat{AirplaneTypeID: typeID, Row: 0, Letter: "A"}, wantErr: true},
		{name: "row past last", seat: domain.Seat{AirplaneTypeID: typeID, Row: 6, Letter: "A"}, wantErr: true},
		{name: "letter past row width", seat: domain.Seat{AirplaneTypeID: typeID, Row: 1, Letter: "E"}, wantErr: true},
		{name: "not a letter", seat: domain.Seat{AirplaneTypeID: typeID, Row: 1, Letter: "1"}, wantErr: true},
		{name: "multi char letter", seat: domain.Seat{AirplaneTypeID: typeID, Row: 1, Letter: "AB"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			typeRepo.On("GetByID", ctx, typeID).Return(at, nil).Once()
			if !tc.wantErr {
				seatRepo.On("Create", ctx, mock.AnythingOfType("*domain.Seat")).Return(nil).Once()
			}

			seat := tc.seat
			err := service.CreateSeat(ctx, &seat)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	seatRepo.AssertExpectations(t)
}

func TestCatalogService_CreateSeat_NormalizesLetter(t *testing.T) {
	typeRepo := &MockAirplaneTypeRepository{}
	seatRepo := &MockSeatRepository{}
	service := &CatalogService{airplaneTypes: typeRepo, seats: seatRepo}

	ctx := context.Background()
	typeID := uuid.New()
	at := &domain.AirplaneType{ID: typeID, Rows: 5, SeatsInRow: 4}

	typeRepo.On("GetByID", ctx, typeID).Return(at, nil).Once()
	seatRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.Seat) bool {
		return s.Letter == "C"
	})).Return(nil).Once()

	seat := &domain.Seat{AirplaneTypeID: typeID, Row: 2, Letter: "c"}
	err := service.CreateSeat(ctx, seat)

	assert.NoError(t, err)
	assert.Equal(t, "C", seat.Letter)
	seatRepo.AssertExpectations(t)
}

func TestCatalogService_CreateSeat_DuplicatePosition(t *testing.T) {
	typeRepo := &MockAirplaneTypeRepository{}
	seatRepo := &MockSeatRepository{}
	service := &CatalogService{airplaneTypes: typeRepo, seats: seatRepo}

	ctx := context.Background()
	typeID := uuid.New()
	at := &domain.AirplaneType{ID: typeID, Rows: 5, SeatsInRow: 4}

	typeRepo.On("GetByID", ctx, typeID).Return(at, nil).Once()
	seatRepo.On("Create", ctx, mock.Anything).Return(domain.ErrAlreadyExists).Once()

	err := service.CreateSeat(ctx, &domain.Seat{AirplaneTypeID: typeID, Row: 1, Letter: "A"})

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCatalogService_CreateAirplane_UnknownType(t *testing.T) {
	typeRepo := &MockAirplaneTypeRepository{}
	airplaneRepo := &MockAirplaneRepository{}
	service := &CatalogService{airplaneTypes: typeRepo, airplanes: airplaneRepo}

	ctx := context.Background()
	typeID := uuid.New()
	typeRepo.On("GetByID", ctx, typeID).Return(nil, domain.ErrNotFound).Once()

	err := service.CreateAirplane(ctx, &domain.Airplane{Name: "Falcon", AirplaneTypeID: typeID})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	airplaneRepo.AssertNotCalled(t, "Create")
}
