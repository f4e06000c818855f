package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"bloodconnect/backend/internal/dto"
	"bloodconnect/backend/internal/model"
)

func setupTestExportService(t *testing.T) (ExportService, *mockRequestRepo) {
	repo, _, requests, _ := newMockRepository()
	svc := NewExportService(repo, zap.NewNop())
	return svc, requests
}

// ── ExportRequests ──

func TestExportService_ExportRequests(t *testing.T) {
	svc, requests := setupTestExportService(t)
	seedPending(t, requests, "O-", "Dhaka", "Savar")
	seedPending(t, requests, "A+", "Sylhet", "Sylhet Sadar")

	buf, filename, err := svc.ExportRequests(context.Background(), "")
	if err != nil {
		t.Fatalf("ExportRequests: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("filename = %s, want .xlsx", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("exported workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Donation Requests")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	// header + two data rows
	if len(rows) != 3 {
		t.Errorf("sheet has %d rows, want 3", len(rows))
	}
	if rows[0][3] != "Blood Group" {
		t.Errorf("header[3] = %s, want Blood Group", rows[0][3])
	}
}

func TestExportService_ExportRequests_Empty(t *testing.T) {
	svc, _ := setupTestExportService(t)

	_, _, err := svc.ExportRequests(context.Background(), model.StatusDone)
	if !errors.Is(err, ErrExportNoRequests) {
		t.Errorf("want ErrExportNoRequests, got: %v", err)
	}
}

// ── ExportSearchResults ──

func TestExportService_ExportSearchResults(t *testing.T) {
	svc, requests := setupTestExportService(t)
	seedPending(t, requests, "O-", "Dhaka", "Savar")

	buf, filename, err := svc.ExportSearchResults(context.Background(), &dto.SearchRequest{
		BloodGroup: "O-",
		District:   "Dhaka",
	})
	if err != nil {
		t.Fatalf("ExportSearchResults: %v", err)
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Errorf("filename = %s, want .pdf", filename)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("export is not a PDF document")
	}
}

// ── ExportCalendar ──

func TestExportService_ExportCalendar_ClaimedRequest(t *testing.T) {
	svc, requests := setupTestExportService(t)
	r := seedPending(t, requests, "O-", "Dhaka", "Savar")

	name, email := "Fatema Begum", "fatema@example.com"
	r.Status = model.StatusInProgress
	r.DonorName, r.DonorEmail = &name, &email

	buf, filename, err := svc.ExportCalendar(context.Background(), r.RequestID)
	if err != nil {
		t.Fatalf("ExportCalendar: %v", err)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("filename = %s, want .ics", filename)
	}

	ics := buf.String()
	if !strings.Contains(ics, "BEGIN:VCALENDAR") || !strings.Contains(ics, "BEGIN:VEVENT") {
		t.Error("output is not an iCalendar document")
	}
	if !strings.Contains(ics, "fatema@example.com") {
		t.Error("donor must appear as an attendee")
	}
}

func TestExportService_ExportCalendar_PendingRejected(t *testing.T) {
	svc, requests := setupTestExportService(t)
	r := seedPending(t, requests, "O-", "Dhaka", "Savar")

	_, _, err := svc.ExportCalendar(context.Background(), r.RequestID)
	if !errors.Is(err, ErrExportUnclaimed) {
		t.Errorf("want ErrExportUnclaimed, got: %v", err)
	}
}
