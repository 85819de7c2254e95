package usecases

import (
	"context"
	"fmt"
	"time"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/domain/batch"
	"titledesk/internal/domain/county"
	"titledesk/internal/domain/mapping"
	"titledesk/internal/domain/ticket"
	"titledesk/internal/shared/biztime"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// ComputeRoundsQuery asks for round/quota information for each
// (county, city) pair. CountyIDs and CityIDs are parallel arrays; a nil city
// means the county-level configuration row. Without a Date only the raw
// configuration is returned.
type ComputeRoundsQuery struct {
	CountyIDs []uint
	CityIDs   []*uint
	Date      *time.Time
}

// ComputeRoundsUseCase is the round/quota calculator.
type ComputeRoundsUseCase struct {
	countyRepo  county.Repository
	batchRepo   batch.Repository
	mappingRepo mapping.Repository
	ticketRepo  ticket.Repository
	logger      logger.Interface
}

// NewComputeRoundsUseCase creates a new use case.
func NewComputeRoundsUseCase(
	countyRepo county.Repository,
	batchRepo batch.Repository,
	mappingRepo mapping.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ComputeRoundsUseCase {
	return &ComputeRoundsUseCase{
		countyRepo:  countyRepo,
		batchRepo:   batchRepo,
		mappingRepo: mappingRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

// Execute computes one result per input pair, in input order. Pairs are not
// deduplicated; a repeated pair produces a repeated, identical result. A pair
// with no configuration yields zero/null fields, never an error.
func (uc *ComputeRoundsUseCase) Execute(ctx context.Context, query ComputeRoundsQuery) ([]dto.RoundInfoDTO, error) {
	uc.logger.Infow("executing compute rounds use case",
		"pairs", len(query.CountyIDs),
		"date", query.Date,
	)

	if len(query.CountyIDs) == 0 {
		return nil, errors.NewValidationError("at least one county id is required")
	}
	if len(query.CityIDs) != len(query.CountyIDs) {
		return nil, errors.NewValidationError("countyIds and cityIds must have the same length")
	}

	results := make([]dto.RoundInfoDTO, 0, len(query.CountyIDs))
	for i := range query.CountyIDs {
		info, err := uc.computePair(ctx, query.CountyIDs[i], query.CityIDs[i], query.Date)
		if err != nil {
			uc.logger.Errorw("failed to compute rounds",
				"county_id", query.CountyIDs[i],
				"error", err,
			)
			return nil, err
		}
		results = append(results, info)
	}

	return results, nil
}

func (uc *ComputeRoundsUseCase) computePair(ctx context.Context, countyID uint, cityID *uint, date *time.Time) (dto.RoundInfoDTO, error) {
	info := dto.RoundInfoDTO{CountyID: countyID, CityID: cityID}

	rule, err := uc.countyRepo.FindRule(ctx, countyID, cityID)
	if err != nil {
		return info, fmt.Errorf("failed to load processing rule: %w", err)
	}
	if rule == nil {
		// No rounds defined yet for this pair.
		return info, nil
	}

	// Limits pass through as configured, including the unlimited marker.
	info.WalkRoundLimit = rule.WorkRounds
	info.DropRoundLimit = rule.DropWorkRounds
	info.AllowDuplicateRounds = rule.AllowDuplicateRounds
	info.WorksType = string(rule.WorksType)
	info.CheckCount = rule.CheckCount

	if date == nil {
		return info, nil
	}

	from := biztime.StartOfDayUTC(*date)
	to := biztime.EndOfDayUTC(*date)

	info.CompletedWalkRoundLimit, err = uc.batchRepo.CountForDay(ctx, countyID, cityID, batch.ProcessingWalk, from, to)
	if err != nil {
		return info, fmt.Errorf("failed to count walk rounds: %w", err)
	}
	info.CompletedDropRoundLimit, err = uc.batchRepo.CountForDay(ctx, countyID, cityID, batch.ProcessingDrop, from, to)
	if err != nil {
		return info, fmt.Errorf("failed to count drop rounds: %w", err)
	}

	if rule.WorksType == county.WorksTypeTitleAndRenewal {
		prev, err := uc.previousRound(ctx, countyID, cityID, from, to)
		if err != nil {
			return info, err
		}
		info.PreviouslyCreatedRound = prev
	}

	return info, nil
}

// previousRound returns the transaction type of the first ticket in the most
// recently created batch whose processing date falls on the requested day, or
// nil when the day has no batch or the batch has no tickets.
func (uc *ComputeRoundsUseCase) previousRound(ctx context.Context, countyID uint, cityID *uint, from, to time.Time) (*string, error) {
	latest, err := uc.batchRepo.FindLatestForDay(ctx, countyID, cityID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find latest batch for day: %w", err)
	}
	if latest == nil {
		return nil, nil
	}

	ticketID, err := uc.mappingRepo.FirstTicketIDForBatch(ctx, latest.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to find first ticket of batch %d: %w", latest.ID(), err)
	}
	if ticketID == 0 {
		return nil, nil
	}

	t, err := uc.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load first ticket of batch %d: %w", latest.ID(), err)
	}

	name := t.TransactionTypeName
	return &name, nil
}
