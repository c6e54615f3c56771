package service

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("service title cannot be empty")
	ErrNegativePrice   = errors.New("service price cannot be negative")
	ErrInvalidCategory = errors.New("invalid service category")
)

type Category string

const (
	CategoryTutoring       Category = "Tutoring"
	CategoryGraphicDesign  Category = "Graphic Design"
	CategoryAppDevelopment Category = "App Development"
	CategoryWebDevelopment Category = "Web Development"
	CategoryOther          Category = "Other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryTutoring, CategoryGraphicDesign, CategoryAppDevelopment, CategoryWebDevelopment, CategoryOther:
		return true
	default:
		return false
	}
}

// Service is the catalog entry bookings reference. Listing CRUD lives outside
// this core; bookings and payments only need the provider for authorization
// and the price for order amounts.
type Service struct {
	id            uuid.UUID
	providerID    uuid.UUID
	title         string
	category      Category
	priceSubunits int64
	available     bool
}

func NewService(id, providerID uuid.UUID, title string, category Category, priceSubunits int64, available bool) (*Service, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if priceSubunits < 0 {
		return nil, ErrNegativePrice
	}
	return &Service{
		id:            id,
		providerID:    providerID,
		title:         title,
		category:      category,
		priceSubunits: priceSubunits,
		available:     available,
	}, nil
}

func (s *Service) IsOwnedBy(providerID uuid.UUID) bool {
	return s.providerID == providerID
}

func (s *Service) ID() uuid.UUID         { return s.id }
func (s *Service) ProviderID() uuid.UUID { return s.providerID }
func (s *Service) Title() string         { return s.title }
func (s *Service) Category() Category    { return s.category }
func (s *Service) PriceSubunits() int64  { return s.priceSubunits }
func (s *Service) Available() bool       { return s.available }
