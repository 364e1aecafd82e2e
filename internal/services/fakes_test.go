package services

import (
	"errors"

	"pdv_backend/internal/models"
)

// In-memory fakes for the repository interfaces.

type fakeProductRepo struct {
	products map[uint]models.Product
	nextID   uint
	err      error
}

func newFakeProductRepo(products ...models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[uint]models.Product), nextID: 1}
	for _, p := range products {
		if p.ID >= repo.nextID {
			repo.nextID = p.ID + 1
		}
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepo) GetAll(activeOnly bool) ([]models.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []models.Product
	for _, p := range r.products {
		if !activeOnly || p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByID(id uint) (*models.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return &p, nil
}

func (r *fakeProductRepo) Create(product *models.Product) error {
	if r.err != nil {
		return r.err
	}
	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Update(product *models.Product) error {
	if r.err != nil {
		return r.err
	}
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Deactivate(id uint) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	p.Active = false
	r.products[id] = p
	return &p, nil
}

type fakeAddOnRepo struct {
	addOns map[uint]models.AddOn
	nextID uint
}

func newFakeAddOnRepo(addOns ...models.AddOn) *fakeAddOnRepo {
	repo := &fakeAddOnRepo{addOns: make(map[uint]models.AddOn), nextID: 1}
	for _, a := range addOns {
		if a.ID >= repo.nextID {
			repo.nextID = a.ID + 1
		}
		repo.addOns[a.ID] = a
	}
	return repo
}

func (r *fakeAddOnRepo) GetAll(activeOnly bool) ([]models.AddOn, error) {
	var out []models.AddOn
	for _, a := range r.addOns {
		if !activeOnly || a.Active {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAddOnRepo) GetByID(id uint) (*models.AddOn, error) {
	a, ok := r.addOns[id]
	if !ok {
		return nil, models.ErrAddOnNotFound
	}
	return &a, nil
}

func (r *fakeAddOnRepo) Create(addOn *models.AddOn) error {
	addOn.ID = r.nextID
	r.nextID++
	r.addOns[addOn.ID] = *addOn
	return nil
}

func (r *fakeAddOnRepo) Update(addOn *models.AddOn) error {
	r.addOns[addOn.ID] = *addOn
	return nil
}

func (r *fakeAddOnRepo) Deactivate(id uint) (*models.AddOn, error) {
	a, ok := r.addOns[id]
	if !ok {
		return nil, models.ErrAddOnNotFound
	}
	a.Active = false
	r.addOns[id] = a
	return &a, nil
}

var errStorage = errors.New("storage failure")

type fakeOrderRepo struct {
	orders     map[uint]*models.Order
	nextID     uint
	createErr  error
	createCnt  int
	lastStatus models.OrderStatus
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*models.Order), nextID: 1}
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	r.createCnt++
	if r.createErr != nil {
		return r.createErr
	}
	order.ID = r.nextID
	r.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) GetAll() ([]models.Order, error) {
	var out []models.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) UpdateStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	o.Status = status
	r.lastStatus = status
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) Delete(id uint) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	delete(r.orders, id)
	return o, nil
}

type recordingPrinter struct {
	dispatched []*models.Order
}

func (p *recordingPrinter) Dispatch(order *models.Order) {
	p.dispatched = append(p.dispatched, order)
}
