package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/model"
	"bloodconnect/backend/internal/refdata"
	"bloodconnect/backend/internal/repository"
)

// ── donation request business errors ──

var (
	ErrRequestNotFound      = errors.New("donation request not found")
	ErrInvalidBloodGroup    = errors.New("invalid blood group")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrDonorFieldsRequired  = errors.New("donor name and email are required to start a donation")
	ErrDonorFieldsForbidden = errors.New("donor fields are only accepted when starting a donation")
	ErrNotRequestOwner      = errors.New("not the owner of this request")
)

// Request lifecycle event names published to live subscribers.
const (
	EventRequestCreated = "request.created"
	EventRequestUpdated = "request.updated"
	EventStatusChanged  = "request.status_changed"
	EventRequestDeleted = "request.deleted"
)

// RequestEventPublisher fans lifecycle events out to live subscribers.
// Implementations must not block.
type RequestEventPublisher interface {
	PublishRequestEvent(event string, req *dto.RequestResponse)
}

// RequestService is the donation request business interface.
type RequestService interface {
	Create(ctx context.Context, req *dto.CreateRequestRequest, requesterID string) (*dto.RequestResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RequestResponse, error)
	List(ctx context.Context, req *dto.RequestListRequest, callerRole, callerEmail string) (*dto.RequestListResponse, error)
	PublicPending(ctx context.Context, page *dto.PaginationRequest) (*dto.RequestListResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateRequestRequest, callerRole, callerEmail string) (*dto.RequestResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateStatusRequest, callerRole, callerEmail string) (*dto.RequestResponse, error)
	Delete(ctx context.Context, id string, callerRole, callerEmail string) error
}

type requestService struct {
	repo      *repository.Repository
	ref       *refdata.Store
	publisher RequestEventPublisher
	logger    *zap.Logger
}

// NewRequestService creates a RequestService instance. publisher may be nil.
func NewRequestService(
	repo *repository.Repository,
	ref *refdata.Store,
	publisher RequestEventPublisher,
	logger *zap.Logger,
) RequestService {
	return &requestService{repo: repo, ref: ref, publisher: publisher, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *requestService) Create(ctx context.Context, req *dto.CreateRequestRequest, requesterID string) (*dto.RequestResponse, error) {
	requester, err := s.repo.User.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if requester.Status == model.UserBlocked {
		return nil, ErrUserBlocked
	}

	if !s.ref.ValidDistrict(req.District) {
		return nil, ErrUnknownDistrict
	}
	if !s.ref.ValidUpazila(req.District, req.Upazila) {
		return nil, ErrUnknownUpazila
	}

	r := &model.DonationRequest{
		RequesterName:  requester.Name,
		RequesterEmail: requester.Email,
		RecipientName:  req.RecipientName,
		District:       req.District,
		Upazila:        req.Upazila,
		BloodGroup:     req.BloodGroup,
		HospitalName:   req.HospitalName,
		FullAddress:    req.FullAddress,
		DonationDate:   req.DonationDate,
		DonationTime:   req.DonationTime,
		RequestMessage: req.RequestMessage,
		Status:         model.StatusPending,
	}
	if err := s.repo.Request.Create(ctx, r); err != nil {
		s.logger.Error("create donation request failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("donation request created",
		zap.String("request_id", r.RequestID),
		zap.String("blood_group", r.BloodGroup),
		zap.String("district", r.District))

	resp := toRequestResponse(r)
	s.publish(EventRequestCreated, &resp)
	return &resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *requestService) GetByID(ctx context.Context, id string) (*dto.RequestResponse, error) {
	r, err := s.repo.Request.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	resp := toRequestResponse(r)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

// List is role-scoped: admins and volunteers see every request, donors see
// only their own.
func (s *requestService) List(ctx context.Context, req *dto.RequestListRequest, callerRole, callerEmail string) (*dto.RequestListResponse, error) {
	filter := repository.RequestFilter{Status: req.Status}
	if callerRole != model.RoleAdmin && callerRole != model.RoleVolunteer {
		filter.RequesterEmail = callerEmail
	}

	reqs, total, err := s.repo.Request.List(ctx, filter, req.GetOffset(), req.GetSize())
	if err != nil {
		s.logger.Error("list donation requests failed", zap.Error(err))
		return nil, err
	}
	return toRequestListResponse(reqs, total), nil
}

// ────────────────────── PublicPending ──────────────────────

// PublicPending pages through unclaimed requests. No authentication, no
// requester scoping.
func (s *requestService) PublicPending(ctx context.Context, page *dto.PaginationRequest) (*dto.RequestListResponse, error) {
	filter := repository.RequestFilter{Status: model.StatusPending}
	reqs, total, err := s.repo.Request.List(ctx, filter, page.GetOffset(), page.GetSize())
	if err != nil {
		s.logger.Error("list pending requests failed", zap.Error(err))
		return nil, err
	}
	return toRequestListResponse(reqs, total), nil
}

// ────────────────────── Update ──────────────────────

// Update replaces every editable field. Status and donor fields are not
// editable here; they only move through UpdateStatus.
func (s *requestService) Update(ctx context.Context, id string, req *dto.UpdateRequestRequest, callerRole, callerEmail string) (*dto.RequestResponse, error) {
	r, err := s.repo.Request.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if !canManage(callerRole, callerEmail, r) {
		return nil, ErrNotRequestOwner
	}

	if !s.ref.ValidDistrict(req.District) {
		return nil, ErrUnknownDistrict
	}
	if !s.ref.ValidUpazila(req.District, req.Upazila) {
		return nil, ErrUnknownUpazila
	}

	r.RecipientName = req.RecipientName
	r.District = req.District
	r.Upazila = req.Upazila
	r.BloodGroup = req.BloodGroup
	r.HospitalName = req.HospitalName
	r.FullAddress = req.FullAddress
	r.DonationDate = req.DonationDate
	r.DonationTime = req.DonationTime
	r.RequestMessage = req.RequestMessage

	if err := s.repo.Request.Update(ctx, r); err != nil {
		s.logger.Error("update donation request failed", zap.Error(err))
		return nil, err
	}

	resp := toRequestResponse(r)
	s.publish(EventRequestUpdated, &resp)
	return &resp, nil
}

// ────────────────────── UpdateStatus ──────────────────────

// UpdateStatus moves a request through its lifecycle. Only the transitions
// in the state table are accepted. The pending→inprogress claim is open to
// any authenticated user; every other transition requires the request
// owner, an admin, or a volunteer. Donor identity is attached atomically
// with pending→inprogress and is rejected on every other transition; no
// other field of the request is touched.
func (s *requestService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateStatusRequest, callerRole, callerEmail string) (*dto.RequestResponse, error) {
	r, err := s.repo.Request.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if !model.CanTransition(r.Status, req.Status) {
		return nil, ErrInvalidTransition
	}

	claiming := r.Status == model.StatusPending && req.Status == model.StatusInProgress
	if !claiming && !canManage(callerRole, callerEmail, r) {
		return nil, ErrNotRequestOwner
	}
	if claiming {
		if req.DonorName == "" || req.DonorEmail == "" {
			return nil, ErrDonorFieldsRequired
		}
	} else if req.DonorName != "" || req.DonorEmail != "" {
		return nil, ErrDonorFieldsForbidden
	}

	from := r.Status
	r.Status = req.Status
	if claiming {
		r.DonorName = &req.DonorName
		r.DonorEmail = &req.DonorEmail
	}

	if err := s.repo.Request.Update(ctx, r); err != nil {
		s.logger.Error("update request status failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("donation request status changed",
		zap.String("request_id", r.RequestID),
		zap.String("from", from),
		zap.String("to", r.Status))

	resp := toRequestResponse(r)
	s.publish(EventStatusChanged, &resp)
	return &resp, nil
}

// ────────────────────── Delete ──────────────────────

func (s *requestService) Delete(ctx context.Context, id string, callerRole, callerEmail string) error {
	r, err := s.repo.Request.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	if !canManage(callerRole, callerEmail, r) {
		return ErrNotRequestOwner
	}

	n, err := s.repo.Request.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete donation request failed", zap.Error(err))
		return err
	}
	if n == 0 {
		// deleted between the ownership check and now
		return ErrRequestNotFound
	}

	s.logger.Info("donation request deleted", zap.String("request_id", id))

	resp := toRequestResponse(r)
	s.publish(EventRequestDeleted, &resp)
	return nil
}

// ────────────────────── helpers ──────────────────────

// canManage reports whether the caller may edit, delete, or close the
// request: its owner, an admin, or a volunteer.
func canManage(callerRole, callerEmail string, r *model.DonationRequest) bool {
	if callerRole == model.RoleAdmin || callerRole == model.RoleVolunteer {
		return true
	}
	return r.RequesterEmail == callerEmail
}

func (s *requestService) publish(event string, resp *dto.RequestResponse) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishRequestEvent(event, resp)
}

func toRequestResponse(r *model.DonationRequest) dto.RequestResponse {
	resp := dto.RequestResponse{
		ID:             r.RequestID,
		RequesterName:  r.RequesterName,
		RequesterEmail: r.RequesterEmail,
		RecipientName:  r.RecipientName,
		District:       r.District,
		Upazila:        r.Upazila,
		BloodGroup:     r.BloodGroup,
		HospitalName:   r.HospitalName,
		FullAddress:    r.FullAddress,
		DonationDate:   r.DonationDate,
		DonationTime:   r.DonationTime,
		RequestMessage: r.RequestMessage,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if r.DonorName != nil {
		resp.DonorName = *r.DonorName
	}
	if r.DonorEmail != nil {
		resp.DonorEmail = *r.DonorEmail
	}
	return resp
}

func toRequestListResponse(reqs []model.DonationRequest, total int64) *dto.RequestListResponse {
	resp := &dto.RequestListResponse{
		Requests:     make([]dto.RequestResponse, 0, len(reqs)),
		TotalRequest: total,
	}
	for i := range reqs {
		resp.Requests = append(resp.Requests, toRequestResponse(&reqs[i]))
	}
	return resp
}
