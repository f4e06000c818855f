package service

import (
	"context"

	"go.uber.org/zap"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/refdata"
	"bloodconnect/backend/internal/repository"
)

// SearchService is the public donor search interface.
type SearchService interface {
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type searchService struct {
	repo   *repository.Repository
	ref    *refdata.Store
	logger *zap.Logger
}

// NewSearchService creates a SearchService instance.
func NewSearchService(repo *repository.Repository, ref *refdata.Store, logger *zap.Logger) SearchService {
	return &searchService{repo: repo, ref: ref, logger: logger}
}

// Search matches pending requests by blood group, optionally narrowed by
// district and upazila. An upazila without a district is ignored: it is
// only meaningful inside its district.
func (s *searchService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	filter := repository.SearchFilter{BloodGroup: req.BloodGroup}

	if req.District != "" {
		if !s.ref.ValidDistrict(req.District) {
			return nil, ErrUnknownDistrict
		}
		filter.District = req.District

		if req.Upazila != "" {
			if !s.ref.ValidUpazila(req.District, req.Upazila) {
				return nil, ErrUnknownUpazila
			}
			filter.Upazila = req.Upazila
		}
	}

	reqs, err := s.repo.Request.Search(ctx, filter)
	if err != nil {
		s.logger.Error("search requests failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.SearchResponse{
		Requests: make([]dto.RequestResponse, 0, len(reqs)),
		Total:    len(reqs),
	}
	for i := range reqs {
		resp.Requests = append(resp.Requests, toRequestResponse(&reqs[i]))
	}
	return resp, nil
}
