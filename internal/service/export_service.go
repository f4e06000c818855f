package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/model"
	"bloodconnect/backend/internal/repository"
)

// ── export business errors ──

var (
	ErrExportNoRequests = errors.New("no requests to export")
	ErrExportUnclaimed  = errors.New("only a claimed request can be added to a calendar")
)

// ExportService renders donation data into downloadable formats.
//
// Output conventions:
//   - Spreadsheets and PDFs come back as bytes.Buffer plus a suggested
//     filename; the handler sets the HTTP headers and streams the buffer.
//   - Calendars are single-event .ics files for one claimed request.
type ExportService interface {
	// ExportRequests exports donation requests to Excel, optionally
	// filtered to one lifecycle status.
	ExportRequests(ctx context.Context, status string) (*bytes.Buffer, string, error)
	// ExportSearchResults renders donor search results to PDF.
	ExportSearchResults(ctx context.Context, req *dto.SearchRequest) (*bytes.Buffer, string, error)
	// ExportCalendar renders a claimed request as an iCalendar event.
	ExportCalendar(ctx context.Context, requestID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportRequests — donation requests to Excel
// ═══════════════════════════════════════════════════════════
//
// One sheet, one row per request, columns in the order an admin scans a
// board: who needs what, where, when, and who is handling it.

func (s *exportService) ExportRequests(ctx context.Context, status string) (*bytes.Buffer, string, error) {
	const exportLimit = 10000

	reqs, _, err := s.repo.Request.List(ctx, repository.RequestFilter{Status: status}, 0, exportLimit)
	if err != nil {
		s.logger.Error("list requests for export failed", zap.Error(err))
		return nil, "", err
	}
	if len(reqs) == 0 {
		return nil, "", ErrExportNoRequests
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Donation Requests"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Requester", "Requester Email", "Recipient", "Blood Group",
		"District", "Upazila", "Hospital", "Date", "Time", "Status",
		"Donor", "Donor Email",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#FEE2E2"}, Pattern: 1},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)

	for row, r := range reqs {
		donorName, donorEmail := "", ""
		if r.DonorName != nil {
			donorName = *r.DonorName
		}
		if r.DonorEmail != nil {
			donorEmail = *r.DonorEmail
		}
		values := []interface{}{
			r.RequesterName, r.RequesterEmail, r.RecipientName, r.BloodGroup,
			r.District, r.Upazila, r.HospitalName, r.DonationDate, r.DonationTime,
			r.Status, donorName, donorEmail,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "L", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("donation-requests-%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportSearchResults — donor search results to PDF
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportSearchResults(ctx context.Context, req *dto.SearchRequest) (*bytes.Buffer, string, error) {
	filter := repository.SearchFilter{
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
	}
	reqs, err := s.repo.Request.Search(ctx, filter)
	if err != nil {
		s.logger.Error("search requests for export failed", zap.Error(err))
		return nil, "", err
	}
	if len(reqs) == 0 {
		return nil, "", ErrExportNoRequests
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	title := "Pending Requests — " + req.BloodGroup
	if req.District != "" {
		title += ", " + req.District
	}
	if req.Upazila != "" {
		title += ", " + req.Upazila
	}
	pdf.Cell(0, 10, title)
	pdf.Ln(14)

	headers := []string{"Recipient", "Hospital", "District", "Upazila", "Date", "Time"}
	widths := []float64{50, 80, 40, 40, 30, 20}

	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range reqs {
		cells := []string{
			r.RecipientName, r.HospitalName, r.District, r.Upazila,
			r.DonationDate, r.DonationTime,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error("write pdf failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("search-results-%s.pdf", time.Now().Format("20060102"))
	return &buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCalendar — one claimed request as an .ics event
// ═══════════════════════════════════════════════════════════
//
// The event is only meaningful once a donor has committed to a time and
// place, so unclaimed requests are rejected.

func (s *exportService) ExportCalendar(ctx context.Context, requestID string) (*bytes.Buffer, string, error) {
	r, err := s.repo.Request.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrRequestNotFound
		}
		return nil, "", err
	}
	if r.Status != model.StatusInProgress || !r.Claimed() {
		return nil, "", ErrExportUnclaimed
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", r.DonationDate+" "+r.DonationTime, dhakaLocation())
	if err != nil {
		return nil, "", fmt.Errorf("parse donation time: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//BloodConnect//Donation Calendar//EN")

	event := cal.AddEvent("donation-" + r.RequestID + "@bloodconnect")
	event.SetCreatedTime(time.Now())
	event.SetDtStampTime(time.Now())
	event.SetStartAt(start)
	event.SetEndAt(start.Add(time.Hour))
	event.SetSummary(fmt.Sprintf("Blood donation (%s) for %s", r.BloodGroup, r.RecipientName))
	event.SetLocation(r.HospitalName + ", " + r.FullAddress)
	event.SetDescription(r.RequestMessage)
	event.SetOrganizer("mailto:"+r.RequesterEmail, ics.WithCN(r.RequesterName))
	event.AddAttendee(*r.DonorEmail, ics.WithCN(*r.DonorName), ics.ParticipationStatusAccepted)

	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf); err != nil {
		s.logger.Error("serialize ics failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("donation-%s.ics", r.DonationDate)
	return &buf, filename, nil
}

// dhakaLocation returns the platform timezone, falling back to UTC when the
// zone database is unavailable.
func dhakaLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Dhaka")
	if err != nil {
		return time.UTC
	}
	return loc
}
