package usecase

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/winning-appliances/service-automation/internal/domain/csvtable"
	"github.com/winning-appliances/service-automation/internal/domain/entity"
)

// MockServiceRequestRepository is a mock implementation of ServiceRequestRepository
type MockServiceRequestRepository struct {
	mock.Mock
}

func (m *MockServiceRequestRepository) Upsert(ctx context.Context, req *entity.ServiceRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceRequestRepository) GetBySINumber(ctx context.Context, siNumber string) (*entity.ServiceRequest, error) {
	args := m.Called(ctx, siNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) FindPendingByEmail(ctx context.Context, email string) (*entity.ServiceRequest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ServiceRequest), args.Error(1)
}

func (m *MockServiceRequestRepository) AppendResponse(ctx context.Context, resp *entity.CustomerResponse) error {
	return m.Called(ctx, resp).Error(0)
}

func (m *MockServiceRequestRepository) UpdateStatus(ctx context.Context, id int64, status entity.RequestStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockMailRepository struct {
	mock.Mock
}

func (m *MockMailRepository) SendMail(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event entity.LifecycleEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockServiceOptionSource struct {
	mock.Mock
}

func (m *MockServiceOptionSource) FetchTable(ctx context.Context) (csvtable.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).(csvtable.Table), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) Upsert(ctx context.Context, product *entity.CatalogProduct) (bool, error) {
	args := m.Called(ctx, product)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) Stats(ctx context.Context, top int) (*entity.CatalogStats, error) {
	args := m.Called(ctx, top)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CatalogStats), args.Error(1)
}

// memoryRequestStore keeps requests keyed by SI number with the same
// overwrite rules as the gorm repository.
type memoryRequestStore struct {
	mu        sync.Mutex
	nextID    int64
	bySI      map[string]*entity.ServiceRequest
	responses []entity.CustomerResponse
}

func newMemoryRequestStore() *memoryRequestStore {
	return &memoryRequestStore{bySI: map[string]*entity.ServiceRequest{}}
}

func (s *memoryRequestStore) Upsert(_ context.Context, req *entity.ServiceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.bySI[req.SINumber]; ok {
		existing.CustomerName = req.CustomerName
		existing.CustomerEmail = req.CustomerEmail
		existing.CustomerPhone = req.CustomerPhone
		existing.CustomerAddress = req.CustomerAddress
		existing.SKU = req.SKU
		existing.ShipmentDate = req.ShipmentDate
		existing.AssignedUserEmail = req.AssignedUserEmail
		*req = *existing
		return false, nil
	}

	s.nextID++
	stored := *req
	stored.ID = s.nextID
	stored.Status = entity.RequestStatusWaitingCustomer
	s.bySI[req.SINumber] = &stored
	*req = stored
	return true, nil
}

func (s *memoryRequestStore) GetBySINumber(_ context.Context, siNumber string) (*entity.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.bySI[siNumber]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (s *memoryRequestStore) FindPendingByEmail(_ context.Context, email string) (*entity.ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest *entity.ServiceRequest
	for _, r := range s.bySI {
		if r.CustomerEmail == email && r.Status == entity.RequestStatusWaitingCustomer && (latest == nil || r.ID > latest.ID) {
			latest = r
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (s *memoryRequestStore) AppendResponse(_ context.Context, resp *entity.CustomerResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp.ID = int64(len(s.responses) + 1)
	s.responses = append(s.responses, *resp)
	return nil
}

func (s *memoryRequestStore) UpdateStatus(_ context.Context, id int64, status entity.RequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.bySI {
		if r.ID == id {
			r.Status = status
		}
	}
	return nil
}

func (s *memoryRequestStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bySI)
}
