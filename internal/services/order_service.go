package services

import (
	"errors"

	"github.com/sirupsen/logrus"

	"pdv_backend/internal/models"
	"pdv_backend/internal/pricing"
	"pdv_backend/internal/repository"
)

// ReceiptPrinter is the print side effect fired after an order commits.
// Implementations never report failure back here.
type ReceiptPrinter interface {
	Dispatch(order *models.Order)
}

type CreateOrderInput struct {
	Items         []CreateOrderItemInput
	ControlNumber string
	PagerNumber   string
}

type CreateOrderItemInput struct {
	ProductID uint
	Quantity  int
	AddOns    []CreateOrderAddOnInput
	Note      string
}

type CreateOrderAddOnInput struct {
	AddOnID  uint
	Quantity int
}

type OrderService interface {
	CreateOrder(in CreateOrderInput) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetOrderByID(id uint) (*models.Order, error)
	UpdateOrderStatus(id uint, status models.OrderStatus) (*models.Order, error)
	DeleteOrder(id uint) (*models.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	addOnRepo   repository.AddOnRepository
	printer     ReceiptPrinter
	log         *logrus.Logger
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	addOnRepo repository.AddOnRepository,
	printer ReceiptPrinter,
	log *logrus.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		addOnRepo:   addOnRepo,
		printer:     printer,
		log:         log,
	}
}

// CreateOrder validates the cart, snapshots catalog prices into the line
// items, persists order plus items in one transaction and then fires the
// receipt print. The commit is durable before the print runs; a print
// failure never undoes the order.
func (s *orderService) CreateOrder(in CreateOrderInput) (*models.Order, error) {
	if err := validateCreateOrderInput(in); err != nil {
		return nil, err
	}

	items, err := s.buildItems(in.Items)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		Status:        models.OrderPending,
		ControlNumber: in.ControlNumber,
		PagerNumber:   in.PagerNumber,
		Total:         pricing.ComputeTotal(items),
		Items:         items,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"order_id":       order.ID,
		"control_number": order.ControlNumber,
		"pager_number":   order.PagerNumber,
		"total":          order.Total.StringFixed(2),
	}).Info("order created")

	s.printer.Dispatch(order)

	return order, nil
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) UpdateOrderStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, models.NewValidationError("unknown status %q", status)
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, models.ErrInvalidTransition
	}
	return s.orderRepo.UpdateStatus(id, status)
}

func (s *orderService) DeleteOrder(id uint) (*models.Order, error) {
	return s.orderRepo.Delete(id)
}

// buildItems resolves every product and add-on reference and copies name and
// price into the line item, so the order is priced at selection time.
func (s *orderService) buildItems(inputs []CreateOrderItemInput) ([]models.OrderItem, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		product, err := s.productRepo.GetByID(in.ProductID)
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				return nil, models.NewValidationError("product %d not found", in.ProductID)
			}
			return nil, err
		}

		selections := make(models.AddOnSelectionList, 0, len(in.AddOns))
		for _, sel := range in.AddOns {
			addOn, err := s.addOnRepo.GetByID(sel.AddOnID)
			if err != nil {
				if errors.Is(err, models.ErrAddOnNotFound) {
					return nil, models.NewValidationError("add-on %d not found", sel.AddOnID)
				}
				return nil, err
			}
			selections = append(selections, models.AddOnSelection{
				AddOnID:  addOn.ID,
				Name:     addOn.Name,
				Price:    addOn.Price,
				Quantity: sel.Quantity,
			})
		}

		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    in.Quantity,
			AddOns:      selections,
			Note:        in.Note,
		})
	}
	return items, nil
}

func validateCreateOrderInput(in CreateOrderInput) error {
	if len(in.Items) == 0 {
		return models.NewValidationError("order must have at least one item")
	}
	if in.ControlNumber == "" || in.PagerNumber == "" {
		return models.NewValidationError("control number and pager number are required")
	}
	for _, item := range in.Items {
		if item.ProductID == 0 {
			return models.NewValidationError("item product id is required")
		}
		if item.Quantity < 1 {
			return models.NewValidationError("item quantity must be at least 1")
		}
		for _, sel := range item.AddOns {
			if sel.AddOnID == 0 {
				return models.NewValidationError("add-on id is required")
			}
			if sel.Quantity < 1 {
				return models.NewValidationError("add-on quantity must be at least 1")
			}
		}
	}
	return nil
}
