package service

import (
	"minimart/internal/dto"
	"minimart/internal/repository"
)

// CatalogService is the read side of product data.
type CatalogService interface {
	// Categories lists the valid category keys in menu order.
	Categories() []string
	// Menu lists the browsable categories with their display labels.
	Menu() ([]dto.CategoryOption, error)
	// Browse loads one category's product listing.
	Browse(category string) (*dto.CatalogView, error)
}

type catalogService struct {
	catalog repository.CatalogRepository
}

func NewCatalogService(catalog repository.CatalogRepository) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) Categories() []string {
	return s.catalog.Categories()
}

func (s *catalogService) Menu() ([]dto.CategoryOption, error) {
	var opts []dto.CategoryOption
	for _, key := range s.catalog.Categories() {
		doc, err := s.catalog.Load(key)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dto.CategoryOption{Key: key, Label: doc.Category})
	}
	return opts, nil
}

func (s *catalogService) Browse(category string) (*dto.CatalogView, error) {
	doc, err := s.catalog.Load(category)
	if err != nil {
		return nil, err
	}
	return &dto.CatalogView{Label: doc.Category, Products: doc.Products}, nil
}
