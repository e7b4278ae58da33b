package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/alnsrinivas/Milkmitra/internal/domain/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListingService builds the public product discovery listing: products
// joined to their farm, annotated with review stats and distance.
type ListingService struct {
	productRepo catalog.ProductRepository
	reviewRepo  catalog.ReviewRepository
	farmRepo    farm.Repository
	geoIndex    farm.GeoIndex
	logger      *zap.Logger
}

// NewListingService creates a new ListingService
func NewListingService(
	productRepo catalog.ProductRepository,
	reviewRepo catalog.ReviewRepository,
	farmRepo farm.Repository,
	geoIndex farm.GeoIndex,
	logger *zap.Logger,
) *ListingService {
	return &ListingService{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		farmRepo:    farmRepo,
		geoIndex:    geoIndex,
		logger:      logger,
	}
}

// ListProducts runs the discovery pipeline. The stages run in a fixed
// order: distance ranking, farm join, review stats, filtering, sorting.
// The listing is all-or-nothing: any storage failure returns
// SERVICE_UNAVAILABLE rather than a partial page.
func (s *ListingService) ListProducts(ctx context.Context, query ListProductsQuery) ([]ListingEntry, error) {
	// Stage 1: geo ranking, only when the caller sent coordinates
	var distances []farm.Distance
	geoRan := false
	if query.Longitude != nil && query.Latitude != nil {
		origin, err := valueobject.NewGeoPoint(*query.Longitude, *query.Latitude)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_COORDINATE", err.Error())
		}
		distances, err = s.geoIndex.Nearest(ctx, origin, 0)
		if err != nil {
			s.logger.Error("geo index query failed", zap.Error(err))
			return nil, shared.ErrServiceUnavailable
		}
		geoRan = true
	}

	// Stage 2: join products to their farms
	products, err := s.productRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		s.logger.Error("product load failed", zap.Error(err))
		return nil, shared.ErrServiceUnavailable
	}

	farms, err := s.farmRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		s.logger.Error("farm load failed", zap.Error(err))
		return nil, shared.ErrServiceUnavailable
	}

	farmsByID := make(map[uuid.UUID]*farm.Farm, len(farms))
	for i := range farms {
		farmsByID[farms[i].ID] = &farms[i]
	}

	metersByFarm := make(map[uuid.UUID]float64, len(distances))
	rankByFarm := make(map[uuid.UUID]int, len(distances))
	for i, d := range distances {
		metersByFarm[d.FarmID] = d.Meters
		rankByFarm[d.FarmID] = i
	}

	entries := make([]ListingEntry, 0, len(products))
	productIDs := make([]uuid.UUID, 0, len(products))
	for i := range products {
		p := &products[i]
		f, ok := farmsByID[p.FarmID]
		if !ok {
			// Orphaned product; the farm was deleted underneath it
			continue
		}

		entry := ListingEntry{
			ProductResponse: ToProductResponse(p),
			Farm: FarmSummary{
				FarmID:   f.ID,
				FarmName: f.Name,
				Address:  f.Address,
				OwnerID:  f.OwnerID,
			},
		}
		if geoRan {
			if meters, ok := metersByFarm[p.FarmID]; ok {
				m := meters
				entry.DistanceMeters = &m
			}
		}
		entries = append(entries, entry)
		productIDs = append(productIDs, p.ID)
	}

	// Stage 3: review stats; products without reviews stay at zero
	stats, err := s.reviewRepo.StatsByProducts(ctx, productIDs)
	if err != nil {
		s.logger.Error("review stats load failed", zap.Error(err))
		return nil, shared.ErrServiceUnavailable
	}
	for i := range entries {
		if st, ok := stats[entries[i].ID]; ok {
			entries[i].AverageRating = st.AverageRating
			entries[i].ReviewCount = st.ReviewCount
		}
	}

	// Stage 4: filtering
	entries = filterEntries(entries, query)

	// Stage 5: sorting. An explicit price sort overrides everything;
	// otherwise distance order when geo ran, newest-first when it did not.
	switch query.Sort {
	case SortPriceAsc:
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Price.LessThan(entries[b].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Price.GreaterThan(entries[b].Price)
		})
	default:
		if geoRan {
			sort.SliceStable(entries, func(a, b int) bool {
				ra, aIndexed := rankByFarm[entries[a].FarmID]
				rb, bIndexed := rankByFarm[entries[b].FarmID]
				if aIndexed != bIndexed {
					// Farms missing from the index sink to the end
					return aIndexed
				}
				return ra < rb
			})
		} else {
			sort.SliceStable(entries, func(a, b int) bool {
				return entries[a].CreatedAt.After(entries[b].CreatedAt)
			})
		}
	}

	return entries, nil
}

func filterEntries(entries []ListingEntry, query ListProductsQuery) []ListingEntry {
	milkType := strings.TrimSpace(query.Type)
	typeFilter := milkType != "" && !strings.EqualFold(milkType, "all")
	search := strings.ToLower(strings.TrimSpace(query.Search))

	if !typeFilter && search == "" {
		return entries
	}

	filtered := entries[:0]
	for _, e := range entries {
		if typeFilter && e.Type != milkType {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(e.Name + " " + e.Description + " " + e.Farm.FarmName)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		filtered = append(filtered, e)
	}
	return filtered
}
