package rates

import (
	"strings"

	"ratefinder/internal/errors"
)

// GenericService is the sentinel service type assigned when a query omits
// an identifiable service name. The matcher resolves it to the first
// available service.
const GenericService = "Standard"

// PriceQuery is an immutable composite value object holding everything
// needed to look up a shipping price.
type PriceQuery struct {
	serviceType   string
	zone          Zone
	weight        Weight
	packagingType string
}

// NewPriceQuery creates a PriceQuery. The service type must be non-empty
// after trimming; the packaging type is optional.
func NewPriceQuery(serviceType string, zone Zone, weight Weight, packagingType string) (PriceQuery, error) {
	serviceType = strings.TrimSpace(serviceType)
	if serviceType == "" {
		return PriceQuery{}, errors.New(errors.TypeInvalidQuery, "service type cannot be empty")
	}

	return PriceQuery{
		serviceType:   serviceType,
		zone:          zone,
		weight:        weight,
		packagingType: strings.TrimSpace(packagingType),
	}, nil
}

// ServiceType returns the free-text service name from the query.
func (q PriceQuery) ServiceType() string {
	return q.serviceType
}

// Zone returns the query zone.
func (q PriceQuery) Zone() Zone {
	return q.zone
}

// Weight returns the query weight.
func (q PriceQuery) Weight() Weight {
	return q.weight
}

// PackagingType returns the optional packaging note, empty when absent.
func (q PriceQuery) PackagingType() string {
	return q.packagingType
}

// Equal reports structural equality over all four fields.
func (q PriceQuery) Equal(other PriceQuery) bool {
	return q.serviceType == other.serviceType &&
		q.zone == other.zone &&
		q.weight.Equal(other.weight) &&
		q.packagingType == other.packagingType
}

// String returns the comma form of the query.
func (q PriceQuery) String() string {
	s := q.serviceType + ", " + q.zone.String() + ", " + q.weight.String()
	if q.packagingType != "" {
		s += ", " + q.packagingType
	}
	return s
}
