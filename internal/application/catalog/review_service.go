package catalog

import (
	"context"
	"errors"

	"github.com/alnsrinivas/Milkmitra/internal/domain/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/shared"
	"github.com/google/uuid"
)

// ReviewService handles product reviews
type ReviewService struct {
	reviewRepo  catalog.ReviewRepository
	productRepo catalog.ProductRepository
	farmRepo    farm.Repository
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo catalog.ReviewRepository,
	productRepo catalog.ProductRepository,
	farmRepo farm.Repository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		farmRepo:    farmRepo,
	}
}

// AddReview records a customer's rating of a product. Each customer can
// review a product once.
func (s *ReviewService) AddReview(ctx context.Context, customerID uuid.UUID, req AddReviewRequest) (*ReviewResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	if _, err := s.reviewRepo.FindByProductAndCustomer(ctx, req.ProductID, customerID); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "You have already reviewed this product")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	review, err := catalog.NewReview(req.ProductID, customerID, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}

	response := ToReviewResponse(review)
	return &response, nil
}

// ListProductReviews returns all reviews of a product, newest first
func (s *ReviewService) ListProductReviews(ctx context.Context, productID uuid.UUID) ([]ReviewResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	responses := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = ToReviewResponse(&reviews[i])
	}
	return responses, nil
}

// ListFarmReviews returns the reviews across all products of the farmer's
// farm, newest first
func (s *ReviewService) ListFarmReviews(ctx context.Context, ownerID uuid.UUID) ([]ReviewResponse, error) {
	f, err := s.farmRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindByFarm(ctx, f.ID, shared.Filter{})
	if err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, len(products))
	for i, p := range products {
		productIDs[i] = p.ID
	}

	reviews, err := s.reviewRepo.FindByProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = ToReviewResponse(&reviews[i])
	}
	return responses, nil
}
