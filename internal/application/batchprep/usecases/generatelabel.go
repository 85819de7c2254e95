package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/domain/batch"
	"titledesk/internal/domain/county"
	"titledesk/internal/domain/shipping"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// GenerateLabelCommand purchases return-shipping labels for MAIL batches.
type GenerateLabelCommand struct {
	BatchIDs  []uint
	CreatedBy uint
}

// GeneratedLabelDTO is one purchased label.
type GeneratedLabelDTO struct {
	BatchID        uint   `json:"batchId"`
	TrackingNumber string `json:"trackingNumber"`
	ServiceType    string `json:"serviceType"`
	ShipDate       string `json:"shipDate"`
}

// GenerateLabelResult lists the purchased labels.
type GenerateLabelResult struct {
	Labels []GeneratedLabelDTO `json:"labels"`
}

// GenerateLabelUseCase buys carrier labels for a batch set. A missing
// carrier address for any batch aborts the whole set before any shipment is
// purchased; there is no partial label generation.
type GenerateLabelUseCase struct {
	batchRepo    batch.Repository
	countyRepo   county.Repository
	shippingRepo shipping.Repository
	labels       shipping.LabelProvider
	txManager    TransactionManager
	logger       logger.Interface
}

// NewGenerateLabelUseCase creates a new use case.
func NewGenerateLabelUseCase(
	batchRepo batch.Repository,
	countyRepo county.Repository,
	shippingRepo shipping.Repository,
	labels shipping.LabelProvider,
	txManager TransactionManager,
	logger logger.Interface,
) *GenerateLabelUseCase {
	return &GenerateLabelUseCase{
		batchRepo:    batchRepo,
		countyRepo:   countyRepo,
		shippingRepo: shippingRepo,
		labels:       labels,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *GenerateLabelUseCase) Execute(ctx context.Context, cmd GenerateLabelCommand) (*GenerateLabelResult, error) {
	uc.logger.Infow("executing generate label use case",
		"batch_ids", cmd.BatchIDs,
	)

	if len(cmd.BatchIDs) == 0 {
		return nil, errors.NewValidationError("at least one batch id is required")
	}
	if cmd.CreatedBy == 0 {
		return nil, errors.NewValidationError("created by is required")
	}

	batchIDs := uniqueIDs(cmd.BatchIDs)
	batches, err := uc.batchRepo.FindByIDs(ctx, batchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load batches: %w", err)
	}
	if len(batches) != len(batchIDs) {
		return nil, errors.NewNotFoundError("batch not found")
	}

	// Return labels only exist for the mail lane.
	for _, b := range batches {
		if b.ProcessingType() != batch.ProcessingMail {
			return nil, errors.NewBadRequestError(
				fmt.Sprintf("batch %d is not a MAIL batch", b.ID()))
		}
	}

	addresses, err := uc.resolveAddresses(ctx, batches)
	if err != nil {
		return nil, err
	}

	if err := uc.shippingRepo.SoftDeleteByBatchIDs(ctx, batchIDs); err != nil {
		uc.logger.Errorw("failed to retire previous labels", "error", err)
		return nil, fmt.Errorf("failed to retire previous labels: %w", err)
	}

	docs := make([]*shipping.Document, 0, len(batches))
	result := &GenerateLabelResult{}
	for _, b := range batches {
		shipDate := ""
		if b.DateProcessing() != nil {
			shipDate = b.DateProcessing().Format("2006-01-02")
		}

		shipment, err := uc.labels.CreateShipment(ctx, shipping.ShipmentRequest{
			BatchID:   b.ID(),
			Recipient: addresses[b.ID()],
			ShipDate:  shipDate,
			Reference: fmt.Sprintf("BATCH-%d", b.ID()),
		})
		if err != nil {
			uc.logger.Errorw("carrier shipment failed", "batch_id", b.ID(), "error", err)
			return nil, err
		}

		doc, err := shipping.NewDocument(b.ID(), shipment.ServiceType, shipment.ShipDate, shipment.TrackingNumber, shipment.Label, cmd.CreatedBy)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		result.Labels = append(result.Labels, GeneratedLabelDTO{
			BatchID:        b.ID(),
			TrackingNumber: shipment.TrackingNumber,
			ServiceType:    shipment.ServiceType,
			ShipDate:       shipment.ShipDate,
		})
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.shippingRepo.BulkCreate(txCtx, docs)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist shipping documents", "error", err)
		return nil, fmt.Errorf("failed to persist shipping documents: %w", err)
	}

	return result, nil
}

// resolveAddresses loads the carrier address for every batch up front so a
// single missing configuration aborts before any shipment is purchased.
func (uc *GenerateLabelUseCase) resolveAddresses(ctx context.Context, batches []*batch.Batch) (map[uint]county.FedexAddress, error) {
	addresses := make(map[uint]county.FedexAddress, len(batches))
	for _, b := range batches {
		rule, err := uc.countyRepo.FindRule(ctx, b.CountyID(), b.CityID())
		if err != nil {
			return nil, fmt.Errorf("failed to load processing rule for batch %d: %w", b.ID(), err)
		}
		if rule == nil || rule.FedexAddress == nil {
			return nil, errors.NewBadRequestError(
				fmt.Sprintf("no carrier address configured for batch %d", b.ID()))
		}
		addresses[b.ID()] = *rule.FedexAddress
	}
	return addresses, nil
}
