package service

import (
	"context"
	"time"

	"github.com/NusratJahanNila/plantnet-backend/internal/model"
	"github.com/NusratJahanNila/plantnet-backend/internal/payment"
	"gorm.io/gorm"
)

type fakePlantRepo struct {
	plants map[uint64]*model.Plant
	nextID uint64
}

func newFakePlantRepo() *fakePlantRepo {
	return &fakePlantRepo{plants: map[uint64]*model.Plant{}}
}

func (f *fakePlantRepo) Create(_ context.Context, plant *model.Plant) error {
	f.nextID++
	plant.ID = f.nextID
	plant.CreatedAt = time.Now()
	plant.UpdatedAt = plant.CreatedAt
	cp := *plant
	f.plants[plant.ID] = &cp
	return nil
}

func (f *fakePlantRepo) FindByID(_ context.Context, id uint64) (*model.Plant, error) {
	plant, ok := f.plants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *plant
	return &cp, nil
}

func (f *fakePlantRepo) List(_ context.Context) ([]model.Plant, error) {
	out := make([]model.Plant, 0, len(f.plants))
	for _, p := range f.plants {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePlantRepo) ListBySeller(_ context.Context, email string) ([]model.Plant, error) {
	var out []model.Plant
	for _, p := range f.plants {
		if p.SellerEmail == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	plants *fakePlantRepo
	orders []*model.Order
	nextID uint64
	// raceOrder, when set, makes the next create fail with a duplicate-key
	// error after recording raceOrder as the concurrent winner.
	raceOrder *model.Order
}

func newFakeOrderRepo(plants *fakePlantRepo) *fakeOrderRepo {
	return &fakeOrderRepo{plants: plants}
}

func (f *fakeOrderRepo) CreateWithInventory(_ context.Context, order *model.Order) error {
	if f.raceOrder != nil {
		winner := f.raceOrder
		f.raceOrder = nil
		f.nextID++
		winner.ID = f.nextID
		f.orders = append(f.orders, winner)
		return gorm.ErrDuplicatedKey
	}
	for _, o := range f.orders {
		if o.TransactionID == order.TransactionID {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	order.ID = f.nextID
	order.CreatedAt = time.Now()
	cp := *order
	f.orders = append(f.orders, &cp)
	if plant, ok := f.plants.plants[order.PlantID]; ok {
		plant.Quantity--
	}
	return nil
}

func (f *fakeOrderRepo) FindByTransactionID(_ context.Context, transactionID string) (*model.Order, error) {
	for _, o := range f.orders {
		if o.TransactionID == transactionID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) ListByCustomer(_ context.Context, email string) ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		if o.CustomerEmail == email {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListBySeller(_ context.Context, email string) ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		if o.SellerEmail == email {
			out = append(out, *o)
		}
	}
	return out, nil
}

type fakeSellerRequestRepo struct {
	requests map[string]*model.SellerRequest
	nextID   uint64
}

func newFakeSellerRequestRepo() *fakeSellerRequestRepo {
	return &fakeSellerRequestRepo{requests: map[string]*model.SellerRequest{}}
}

func (f *fakeSellerRequestRepo) Create(_ context.Context, req *model.SellerRequest) error {
	if _, ok := f.requests[req.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	req.ID = f.nextID
	req.CreatedAt = time.Now()
	cp := *req
	f.requests[req.Email] = &cp
	return nil
}

func (f *fakeSellerRequestRepo) List(_ context.Context) ([]model.SellerRequest, error) {
	out := make([]model.SellerRequest, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, nil
}

type fakeUserRepo struct {
	users    map[string]*model.User
	requests *fakeSellerRequestRepo
	nextID   uint64
}

func newFakeUserRepo(requests *fakeSellerRequestRepo) *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}, requests: requests}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if _, ok := f.users[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) TouchLastLogin(_ context.Context, email string) error {
	if user, ok := f.users[email]; ok {
		user.LastLoggedIn = time.Now()
	}
	return nil
}

func (f *fakeUserRepo) UpdateRoleAndClearRequest(_ context.Context, email string, role model.Role) error {
	user, ok := f.users[email]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Role = role
	delete(f.requests.requests, email)
	return nil
}

func (f *fakeUserRepo) ListExcept(_ context.Context, email string) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		if u.Email != email {
			out = append(out, *u)
		}
	}
	return out, nil
}

type fakeGateway struct {
	sessions    map[string]*payment.Session
	lastRequest *payment.SessionRequest
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{sessions: map[string]*payment.Session{}}
}

func (f *fakeGateway) CreateSession(_ context.Context, req *payment.SessionRequest) (*payment.Session, error) {
	f.lastRequest = req
	sess := &payment.Session{
		ID:            "cs_test_1",
		URL:           "https://checkout.example.com/cs_test_1",
		Status:        "open",
		PlantID:       req.PlantID,
		CustomerEmail: req.CustomerEmail,
	}
	f.sessions[sess.ID] = sess
	return sess, nil
}

func (f *fakeGateway) RetrieveSession(_ context.Context, id string) (*payment.Session, error) {
	if sess, ok := f.sessions[id]; ok {
		return sess, nil
	}
	return nil, ErrNotFound
}
