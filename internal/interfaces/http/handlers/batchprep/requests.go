package batchprep

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/application/batchprep/usecases"
	"titledesk/internal/domain/batch"
	"titledesk/internal/shared/biztime"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/utils"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("processingtype", func(fl validator.FieldLevel) bool {
			return batch.ProcessingType(fl.Field().String()).IsValid()
		})
	}
}

// SetMappingRequest carries the desired ticket placements. The three arrays
// are parallel; CityIDs entries may be null for county-level placements.
type SetMappingRequest struct {
	CountyIDs       []uint  `json:"countyIds" binding:"required"`
	TicketIDs       []uint  `json:"ticketIds" binding:"required"`
	CityIDs         []*uint `json:"cityIds" binding:"required"`
	ExistingBatchID *uint   `json:"existingBatchId"`
}

func (r SetMappingRequest) ToCommand(operatorID uint) usecases.SetMappingCommand {
	return usecases.SetMappingCommand{
		CountyIDs:       r.CountyIDs,
		TicketIDs:       r.TicketIDs,
		CityIDs:         r.CityIDs,
		CreatedBy:       operatorID,
		ExistingBatchID: r.ExistingBatchID,
	}
}

type DeleteMappingRequest struct {
	TicketIDs []uint `json:"ticketIds" binding:"required"`
	BatchID   *uint  `json:"batchId"`
}

type BatchItemRequest struct {
	CountyID       uint   `json:"countyId" binding:"required"`
	CityID         *uint  `json:"cityId"`
	ProcessingType string `json:"processingType" binding:"required,processingtype"`
	TicketID       uint   `json:"ticketId" binding:"required"`
	WalkDate       string `json:"walkDate"`
	DropDate       string `json:"dropDate"`
	MailDate       string `json:"mailDate"`
}

type CreateBatchRequest struct {
	Items         []BatchItemRequest `json:"items" binding:"required,dive"`
	TargetBatchID *uint              `json:"batchId"`
}

func (r CreateBatchRequest) ToCommand(operatorID uint) (usecases.CreateBatchCommand, error) {
	items := make([]usecases.BatchRequestItem, 0, len(r.Items))
	for _, item := range r.Items {
		walk, err := parseOptionalDate(item.WalkDate)
		if err != nil {
			return usecases.CreateBatchCommand{}, err
		}
		drop, err := parseOptionalDate(item.DropDate)
		if err != nil {
			return usecases.CreateBatchCommand{}, err
		}
		mail, err := parseOptionalDate(item.MailDate)
		if err != nil {
			return usecases.CreateBatchCommand{}, err
		}
		items = append(items, usecases.BatchRequestItem{
			CountyID:       item.CountyID,
			CityID:         item.CityID,
			ProcessingType: item.ProcessingType,
			TicketID:       item.TicketID,
			WalkDate:       walk,
			DropDate:       drop,
			MailDate:       mail,
		})
	}
	return usecases.CreateBatchCommand{
		Items:         items,
		CreatedBy:     operatorID,
		TargetBatchID: r.TargetBatchID,
	}, nil
}

type CompleteBatchRequest struct {
	BatchIDs []uint          `json:"batchIds" binding:"required"`
	Comments map[uint]string `json:"comments"`
}

type MarkSentToDmvRequest struct {
	BatchIDs []uint `json:"batchIds" binding:"required"`
}

type GenerateLabelRequest struct {
	BatchIDs []uint `json:"batchIds" binding:"required"`
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := biztime.ParseDateInBizTimezone(value)
	if err != nil {
		return nil, errors.NewValidationError("invalid date: " + value)
	}
	return &t, nil
}

// parseUintList splits a comma separated query value into ids.
func parseUintList(value string) ([]uint, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid id: " + part)
		}
		ids = append(ids, uint(n))
	}
	return ids, nil
}

// parseOptionalUintList is parseUintList keeping empty slots as nils, for
// parallel city arrays like "7,,3".
func parseOptionalUintList(value string) ([]*uint, error) {
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	ids := make([]*uint, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			ids = append(ids, nil)
			continue
		}
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid id: " + part)
		}
		id := uint(n)
		ids = append(ids, &id)
	}
	return ids, nil
}

func queryUintPtr(c *gin.Context, key string) (*uint, error) {
	value := c.Query(key)
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + key + ": " + value)
	}
	id := uint(n)
	return &id, nil
}

func queryDatePtr(c *gin.Context, key string) (*time.Time, error) {
	value := c.Query(key)
	if value == "" {
		return nil, nil
	}
	t, err := biztime.ParseDateInBizTimezone(value)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + key + ": " + value)
	}
	return &t, nil
}

func parseReviewFilter(c *gin.Context) (dto.ReviewFilter, utils.Pagination, error) {
	page := utils.ParsePagination(c)
	filter := dto.ReviewFilter{
		ProcessingType: c.Query("processing_type"),
		CustomerName:   c.Query("customer_name"),
		Search:         c.Query("search"),
		Offset:         page.Offset(),
		Limit:          page.PageSize,
	}

	batchIDs, err := parseUintList(c.Query("batch_ids"))
	if err != nil {
		return filter, page, err
	}
	filter.BatchIDs = batchIDs

	if filter.CountyID, err = queryUintPtr(c, "county_id"); err != nil {
		return filter, page, err
	}
	if filter.TransactionTypeID, err = queryUintPtr(c, "transaction_type_id"); err != nil {
		return filter, page, err
	}
	if filter.DateFrom, err = queryDatePtr(c, "date_from"); err != nil {
		return filter, page, err
	}
	if filter.DateTo, err = queryDatePtr(c, "date_to"); err != nil {
		return filter, page, err
	}
	if filter.DateTo != nil {
		end := biztime.EndOfDayUTC(*filter.DateTo)
		filter.DateTo = &end
	}

	return filter, page, nil
}

func parseListFilter(c *gin.Context) (dto.ListFilter, utils.Pagination, error) {
	page := utils.ParsePagination(c)
	filter := dto.ListFilter{
		ProcessingType: c.Query("processing_type"),
		Offset:         page.Offset(),
		Limit:          page.PageSize,
	}

	var err error
	if filter.CountyID, err = queryUintPtr(c, "county_id"); err != nil {
		return filter, page, err
	}
	if filter.CreatedBy, err = queryUintPtr(c, "created_by"); err != nil {
		return filter, page, err
	}
	if filter.DateFrom, err = queryDatePtr(c, "date_from"); err != nil {
		return filter, page, err
	}
	if filter.DateTo, err = queryDatePtr(c, "date_to"); err != nil {
		return filter, page, err
	}
	if filter.CompletedFrom, err = queryDatePtr(c, "completed_from"); err != nil {
		return filter, page, err
	}
	if filter.CompletedTo, err = queryDatePtr(c, "completed_to"); err != nil {
		return filter, page, err
	}
	if filter.DateTo != nil {
		end := biztime.EndOfDayUTC(*filter.DateTo)
		filter.DateTo = &end
	}
	if filter.CompletedTo != nil {
		end := biztime.EndOfDayUTC(*filter.CompletedTo)
		filter.CompletedTo = &end
	}

	return filter, page, nil
}
