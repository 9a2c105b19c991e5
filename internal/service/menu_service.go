package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"foodkiosk/internal/domain"
	"foodkiosk/internal/repository"
)

// MenuService инкапсулирует работу с каталогом меню
type MenuService struct {
	repo repository.MenuRepository
	log  logrus.FieldLogger
}

func NewMenuService(repo repository.MenuRepository, log logrus.FieldLogger) *MenuService {
	return &MenuService{repo: repo, log: log}
}

var ErrInvalidInput = errors.New("invalid input")

// Create добавляет позицию в каталог. Цена не проверяется: каталогу доверяем.
func (s *MenuService) Create(ctx context.Context, m domain.MenuItem) (*domain.MenuItem, error) {
	if m.Name == "" {
		return nil, ErrInvalidInput
	}
	cp := m
	if err := s.repo.Create(ctx, &cp); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"menu_item_id": cp.ID, "name": cp.Name, "price": cp.Price.String()}).Info("menu item created")
	return &cp, nil
}

func (s *MenuService) GetByID(ctx context.Context, id int64) (*domain.MenuItem, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Update меняет позицию каталога. Уже добавленные в заказы позиции не меняются.
func (s *MenuService) Update(ctx context.Context, m domain.MenuItem) (*domain.MenuItem, error) {
	if m.ID <= 0 || m.Name == "" {
		return nil, ErrInvalidInput
	}
	cp := m
	if err := s.repo.Update(ctx, &cp); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"menu_item_id": cp.ID, "price": cp.Price.String()}).Info("menu item updated")
	return &cp, nil
}

func (s *MenuService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *MenuService) List(ctx context.Context, f repository.MenuFilter) ([]domain.MenuItem, error) {
	return s.repo.List(ctx, f)
}
