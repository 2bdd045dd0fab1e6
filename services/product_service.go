package services

import (
	"guesthouse-manager/models"
)

// ProductService reads the consumable-product catalog.
type ProductService struct {
	GH *Guesthouse
}

func NewProductService(gh *Guesthouse) *ProductService {
	return &ProductService{GH: gh}
}

func (s *ProductService) Find(code int) (models.Product, error) {
	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()

	product := s.GH.findProductLocked(code)
	if product == nil {
		return models.Product{}, ErrProductNotFound
	}
	return *product, nil
}

// List returns the catalog in load order.
func (s *ProductService) List() []models.Product {
	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()

	out := make([]models.Product, len(s.GH.Products))
	copy(out, s.GH.Products)
	return out
}
