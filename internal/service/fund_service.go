package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bloodconnect/backend/config"
	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/model"
	"bloodconnect/backend/internal/repository"
	"bloodconnect/backend/pkg/payment"
)

// ── funding business errors ──

var (
	ErrPaymentsDisabled = errors.New("payments are not configured")
	ErrSessionNotFound  = errors.New("checkout session not found")
	ErrSessionUnpaid    = errors.New("checkout session is not paid")
	ErrFundNotFound     = errors.New("fund not found")
)

// CheckoutGateway abstracts the hosted checkout provider.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, amount int64, donorEmail string) (*payment.Session, error)
	VerifySession(ctx context.Context, id string) (*payment.SessionStatus, error)
}

// FundService is the monetary donation business interface.
type FundService interface {
	CreateCheckout(ctx context.Context, req *dto.CreateCheckoutRequest, donorEmail string) (*dto.CheckoutResponse, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*dto.FundResponse, error)
	List(ctx context.Context, req *dto.FundListRequest) (*dto.FundListResponse, error)
	Receipt(ctx context.Context, fundID string) ([]byte, error)
}

type fundService struct {
	cfg     *config.Config
	repo    *repository.Repository
	gateway CheckoutGateway
	logger  *zap.Logger
}

// NewFundService creates a FundService instance. gateway may be nil when
// payments are not configured.
func NewFundService(cfg *config.Config, repo *repository.Repository, gateway CheckoutGateway, logger *zap.Logger) FundService {
	return &fundService{cfg: cfg, repo: repo, gateway: gateway, logger: logger}
}

// ────────────────────── CreateCheckout ──────────────────────

// CreateCheckout opens a hosted checkout session and records a pending fund
// keyed by the session id. The fund flips to succeeded only after the
// provider confirms payment.
func (s *fundService) CreateCheckout(ctx context.Context, req *dto.CreateCheckoutRequest, donorEmail string) (*dto.CheckoutResponse, error) {
	if s.gateway == nil {
		return nil, ErrPaymentsDisabled
	}

	donorName := donorEmail
	if donor, err := s.repo.User.GetByEmail(ctx, donorEmail); err == nil {
		if donor.Status == model.UserBlocked {
			return nil, ErrUserBlocked
		}
		donorName = donor.Name
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cents := int64(math.Round(req.Amount * 100))
	session, err := s.gateway.CreateSession(ctx, cents, donorEmail)
	if err != nil {
		s.logger.Error("create checkout session failed", zap.Error(err))
		return nil, err
	}

	fund := &model.Fund{
		DonorName:  donorName,
		DonorEmail: donorEmail,
		Amount:     req.Amount,
		Currency:   s.cfg.Payment.Currency,
		SessionID:  session.ID,
		Status:     model.FundPending,
	}
	if err := s.repo.Fund.Create(ctx, fund); err != nil {
		s.logger.Error("record pending fund failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("checkout session created",
		zap.String("session_id", session.ID),
		zap.Float64("amount", req.Amount))

	return &dto.CheckoutResponse{URL: session.URL}, nil
}

// ────────────────────── ConfirmPayment ──────────────────────

// ConfirmPayment verifies the session with the provider and marks the fund
// succeeded. Confirming the same session twice returns the already-recorded
// fund; one session never produces two transactions.
func (s *fundService) ConfirmPayment(ctx context.Context, sessionID string) (*dto.FundResponse, error) {
	if s.gateway == nil {
		return nil, ErrPaymentsDisabled
	}

	fund, err := s.repo.Fund.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if fund.Status == model.FundSucceeded {
		resp := toFundResponse(fund)
		return &resp, nil
	}

	status, err := s.gateway.VerifySession(ctx, sessionID)
	if err != nil {
		s.logger.Error("verify checkout session failed", zap.Error(err))
		return nil, err
	}
	if !status.Paid {
		return nil, ErrSessionUnpaid
	}

	now := time.Now()
	fund.Status = model.FundSucceeded
	fund.FundedAt = &now
	if err := s.repo.Fund.Update(ctx, fund); err != nil {
		s.logger.Error("mark fund succeeded failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("fund recorded",
		zap.String("fund_id", fund.FundID),
		zap.String("session_id", sessionID),
		zap.Float64("amount", fund.Amount))

	resp := toFundResponse(fund)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *fundService) List(ctx context.Context, req *dto.FundListRequest) (*dto.FundListResponse, error) {
	funds, total, err := s.repo.Fund.List(ctx, req.GetOffset(), req.GetSize())
	if err != nil {
		s.logger.Error("list funds failed", zap.Error(err))
		return nil, err
	}

	resp := &dto.FundListResponse{
		Funds:      make([]dto.FundResponse, 0, len(funds)),
		TotalFunds: total,
	}
	for i := range funds {
		resp.Funds = append(resp.Funds, toFundResponse(&funds[i]))
	}
	return resp, nil
}

// ────────────────────── Receipt ──────────────────────

// Receipt renders a PDF receipt for a succeeded fund, with a QR code that
// encodes the fund id for offline verification.
func (s *fundService) Receipt(ctx context.Context, fundID string) ([]byte, error) {
	fund, err := s.repo.Fund.GetByID(ctx, fundID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFundNotFound
		}
		return nil, err
	}
	if fund.Status != model.FundSucceeded {
		return nil, ErrFundNotFound
	}

	qr, err := qrcode.Encode("bloodconnect:fund:"+fund.FundID, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode receipt qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 12, "BloodConnect Donation Receipt")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 12)
	funded := ""
	if fund.FundedAt != nil {
		funded = fund.FundedAt.Format("2006-01-02 15:04")
	}
	rows := [][2]string{
		{"Receipt No.", fund.FundID},
		{"Donor", fund.DonorName},
		{"Email", fund.DonorEmail},
		{"Amount", fmt.Sprintf("%.2f %s", fund.Amount, fund.Currency)},
		{"Date", funded},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(40, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("receipt-qr", opts, bytes.NewReader(qr))
	pdf.ImageOptions("receipt-qr", 10, pdf.GetY(), 40, 40, false, opts, 0, "")

	pdf.SetY(pdf.GetY() + 46)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Thank you for supporting blood donors across Bangladesh.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// ────────────────────── helpers ──────────────────────

func toFundResponse(fund *model.Fund) dto.FundResponse {
	resp := dto.FundResponse{
		ID:         fund.FundID,
		DonorName:  fund.DonorName,
		DonorEmail: fund.DonorEmail,
		Amount:     fund.Amount,
		Currency:   fund.Currency,
		Status:     fund.Status,
	}
	if fund.FundedAt != nil {
		resp.FundedAt = fund.FundedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}
