package county

import "context"

// Repository provides read access to county master data.
type Repository interface {
	// List returns all counties ordered by name.
	List(ctx context.Context) ([]*County, error)

	// FindByID returns the county or a not found error.
	FindByID(ctx context.Context, id uint) (*County, error)

	// FindByIDs returns the counties matching ids; missing ids are simply absent.
	FindByIDs(ctx context.Context, ids []uint) ([]*County, error)

	// ExistingIDs returns the subset of ids that exist.
	ExistingIDs(ctx context.Context, ids []uint) ([]uint, error)

	// FindRule returns the processing rule for (countyID, cityID). A nil cityID
	// matches the county-level row with no city override. Returns (nil, nil)
	// when no rule is configured: absence of configuration is not an error.
	FindRule(ctx context.Context, countyID uint, cityID *uint) (*ProcessingRule, error)

	// ListRules returns all processing rules for a county.
	ListRules(ctx context.Context, countyID uint) ([]*ProcessingRule, error)
}
