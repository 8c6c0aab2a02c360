package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
	"go.uber.org/zap"
)

type BrewerList struct {
	Brewers       []domain.Brewer
	TotalTurnover int64
}

// BrewerInput is the editable part of a brewer. An empty PostalCode clears the location.
type BrewerInput struct {
	Name            string
	Street          string
	PostalCode      string
	ContactEmail    string
	DateEstablished *time.Time
	Description     string
	Turnover        *int64
}

type BrewerEdit struct {
	IsEdit    bool
	Brewer    domain.Brewer
	Locations []domain.Location
}

type Brewers struct {
	brewers   port.BrewerRepository
	locations port.LocationRepository
	logger    *zap.Logger
}

func NewBrewers(brewers port.BrewerRepository, locations port.LocationRepository, logger *zap.Logger) *Brewers {
	return &Brewers{
		brewers:   brewers,
		locations: locations,
		logger:    logger,
	}
}

// List returns the brewers ordered by name and the sum of the known turnovers.
func (s *Brewers) List(ctx context.Context) (BrewerList, error) {
	brewers, err := s.brewers.GetAll(ctx)
	if err != nil {
		return BrewerList{}, fmt.Errorf("brewers.GetAll: %w", err)
	}

	slices.SortStableFunc(brewers, func(a, b domain.Brewer) int {
		return strings.Compare(a.Name, b.Name)
	})

	var total int64
	for _, b := range brewers {
		if b.Turnover != nil {
			total += *b.Turnover
		}
	}

	return BrewerList{Brewers: brewers, TotalTurnover: total}, nil
}

func (s *Brewers) New(ctx context.Context) (BrewerEdit, error) {
	locations, err := s.sortedLocations(ctx)
	if err != nil {
		return BrewerEdit{}, err
	}

	return BrewerEdit{Locations: locations}, nil
}

func (s *Brewers) Get(ctx context.Context, id int64) (BrewerEdit, error) {
	brewer, err := s.brewers.GetByID(ctx, id)
	if err != nil {
		return BrewerEdit{}, fmt.Errorf("brewers.GetByID: %w", err)
	}

	locations, err := s.sortedLocations(ctx)
	if err != nil {
		return BrewerEdit{}, err
	}

	return BrewerEdit{IsEdit: true, Brewer: brewer, Locations: locations}, nil
}

func (s *Brewers) Create(ctx context.Context, in BrewerInput) (domain.Brewer, Flash, error) {
	const apology = "Sorry, something went wrong, the brewer was not added..."

	brewer, err := domain.NewBrewer(in.Name)
	if err != nil {
		return domain.Brewer{}, failureFor(err, apology), err
	}

	if err := s.apply(ctx, brewer, in); err != nil {
		return domain.Brewer{}, failureFor(err, apology), err
	}

	id, err := s.brewers.Add(ctx, *brewer)
	if err != nil {
		s.logger.Error("brewer not added", zap.String("name", brewer.Name), zap.Error(err))
		return domain.Brewer{}, failure("%s", apology), fmt.Errorf("brewers.Add: %w", err)
	}
	brewer.ID = id

	return *brewer, success("You successfully added brewer %s.", brewer.Name), nil
}

func (s *Brewers) Update(ctx context.Context, id int64, in BrewerInput) (domain.Brewer, Flash, error) {
	brewer, err := s.brewers.GetByID(ctx, id)
	if err != nil {
		return domain.Brewer{}, failure("Sorry, something went wrong, the brewer was not updated..."), fmt.Errorf("brewers.GetByID: %w", err)
	}

	apology := fmt.Sprintf("Sorry, something went wrong, brewer %s was not updated...", brewer.Name)

	if err := brewer.Rename(in.Name); err != nil {
		return domain.Brewer{}, failureFor(err, apology), err
	}
	if err := s.apply(ctx, &brewer, in); err != nil {
		return domain.Brewer{}, failureFor(err, apology), err
	}

	if err := s.brewers.Update(ctx, brewer); err != nil {
		s.logger.Error("brewer not updated", zap.Int64("brewer_id", id), zap.Error(err))
		return domain.Brewer{}, failure("%s", apology), fmt.Errorf("brewers.Update: %w", err)
	}

	return brewer, success("You successfully updated brewer %s.", brewer.Name), nil
}

func (s *Brewers) Delete(ctx context.Context, id int64) (Flash, error) {
	brewer, err := s.brewers.GetByID(ctx, id)
	if err != nil {
		return failure("Sorry, something went wrong, the brewer was not deleted..."), fmt.Errorf("brewers.GetByID: %w", err)
	}

	apology := fmt.Sprintf("Sorry, something went wrong, brewer %s was not deleted...", brewer.Name)

	deleted, err := s.brewers.Delete(ctx, id)
	if err != nil {
		s.logger.Error("brewer not deleted", zap.Int64("brewer_id", id), zap.Error(err))
		return failure("%s", apology), fmt.Errorf("brewers.Delete: %w", err)
	}
	if !deleted {
		return failure("%s", apology), fmt.Errorf("brewer[%d]: %w", id, domain.ErrNotFound)
	}

	return success("You successfully deleted brewer %s.", brewer.Name), nil
}

// apply validates in and copies it onto brewer. The brewer is not persisted.
func (s *Brewers) apply(ctx context.Context, brewer *domain.Brewer, in BrewerInput) error {
	if err := brewer.SetTurnover(in.Turnover); err != nil {
		return err
	}

	var location *domain.Location
	if in.PostalCode != "" {
		l, err := s.locations.GetByPostalCode(ctx, in.PostalCode)
		if errors.Is(err, domain.ErrNotFound) {
			return unknownPostalCode(in.PostalCode)
		}
		if err != nil {
			return fmt.Errorf("locations.GetByPostalCode: %w", err)
		}
		location = &l
	}

	brewer.Street = in.Street
	brewer.Location = location
	brewer.ContactEmail = in.ContactEmail
	brewer.DateEstablished = in.DateEstablished
	brewer.Description = in.Description

	return nil
}

func (s *Brewers) sortedLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.locations.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("locations.GetAll: %w", err)
	}

	slices.SortStableFunc(locations, func(a, b domain.Location) int {
		return strings.Compare(a.Name, b.Name)
	})

	return locations, nil
}
