package service

import (
	"context"
	"fmt"
	"strings"

	"lifeboard/internal/models"
	"lifeboard/internal/repository"
)

type PortfolioService struct {
	holdings repository.Holdings
	quotes   QuoteProvider
}

func NewPortfolioService(holdings repository.Holdings, quotes QuoteProvider) *PortfolioService {
	return &PortfolioService{holdings: holdings, quotes: quotes}
}

func (s *PortfolioService) List(ctx context.Context, ownerID int) ([]models.Holding, error) {
	return s.holdings.ListByOwner(ctx, ownerID)
}

func (s *PortfolioService) Add(ctx context.Context, ownerID int, symbol string, shares, price float64) (models.Holding, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return models.Holding{}, fmt.Errorf("%w: symbol is required", ErrValidation)
	}
	if shares <= 0 {
		return models.Holding{}, fmt.Errorf("%w: shares must be positive", ErrValidation)
	}
	if price < 0 {
		return models.Holding{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	h := models.Holding{UserID: ownerID, Symbol: symbol, Shares: shares, Price: price}
	id, err := s.holdings.Create(ctx, h)
	if err != nil {
		return models.Holding{}, err
	}
	h.ID = id
	return h, nil
}

func (s *PortfolioService) Delete(ctx context.Context, ownerID, id int) error {
	h, err := s.holdings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if h == nil {
		return ErrNotFound
	}
	if h.UserID != ownerID {
		return ErrForbidden
	}
	return s.holdings.Delete(ctx, id)
}

// Search asks the external provider for a quote. Provider failure surfaces
// as ErrQuoteLookup; the handler decides how to present it.
func (s *PortfolioService) Search(ctx context.Context, symbol string) ([]models.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return []models.Quote{}, nil
	}
	q, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrQuoteLookup, symbol)
	}
	return []models.Quote{q}, nil
}

// Valuate revalues the owner's holdings at live quotes. A failed lookup
// falls back to the stored purchase price and marks the position as stale.
func (s *PortfolioService) Valuate(ctx context.Context, ownerID int) ([]models.Position, error) {
	hs, err := s.holdings.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Position, 0, len(hs))
	for _, h := range hs {
		p := models.Position{Holding: h, Current: h.Price}
		if q, err := s.quotes.Lookup(ctx, h.Symbol); err == nil {
			p.Current = q.Price
			p.Live = true
		}
		p.MarketValue = p.Current * h.Shares
		out = append(out, p)
	}
	return out, nil
}
