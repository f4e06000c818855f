//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bloodconnect/backend/internal/model"
	"bloodconnect/backend/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=bloodconnect password=bloodconnect_password dbname=bloodconnect_test sslmode=disable TimeZone=Asia/Dhaka"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot connect to test database: %v\n", err)
		os.Exit(1)
	}

	err = testDB.AutoMigrate(
		&model.User{},
		&model.DonationRequest{},
		&model.Fund{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate failed: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// newRequest creates a pending request owned by a unique requester and
// returns it with a cleanup function.
func newRequest(t *testing.T, bloodGroup, district, upazila string) (*model.DonationRequest, func()) {
	t.Helper()
	ctx := context.Background()

	req := &model.DonationRequest{
		RequesterName:  "Test Requester",
		RequesterEmail: fmt.Sprintf("req%d@example.com", time.Now().UnixNano()),
		RecipientName:  "Test Recipient",
		District:       district,
		Upazila:        upazila,
		BloodGroup:     bloodGroup,
		HospitalName:   "Dhaka Medical College Hospital",
		FullAddress:    "Secretariat Rd, Dhaka",
		DonationDate:   "2026-10-01",
		DonationTime:   "10:30",
		RequestMessage: "Urgent need",
		Status:         model.StatusPending,
	}
	if err := testDB.WithContext(ctx).Create(req).Error; err != nil {
		t.Fatalf("create request: %v", err)
	}

	cleanup := func() {
		testDB.Unscoped().Where("request_id = ?", req.RequestID).Delete(&model.DonationRequest{})
	}
	return req, cleanup
}

// ═══════════════════════════════════════════════════════════
// RequestRepository
// ═══════════════════════════════════════════════════════════

func TestRequestRepo_CreateAndGet(t *testing.T) {
	repo := repository.NewRequestRepo(testDB)
	ctx := context.Background()

	req, cleanup := newRequest(t, "O-", "Dhaka", "Savar")
	defer cleanup()

	got, err := repo.GetByID(ctx, req.RequestID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.BloodGroup != "O-" || got.Status != model.StatusPending {
		t.Errorf("unexpected request: %+v", got)
	}
	if got.Claimed() {
		t.Error("fresh request must not be claimed")
	}
}

func TestRequestRepo_Search_FiltersByDistrict(t *testing.T) {
	repo := repository.NewRequestRepo(testDB)
	ctx := context.Background()

	dhaka, cleanup1 := newRequest(t, "O-", "Dhaka", "")
	defer cleanup1()
	_, cleanup2 := newRequest(t, "O-", "Sylhet", "")
	defer cleanup2()

	got, err := repo.Search(ctx, repository.SearchFilter{BloodGroup: "O-", District: "Dhaka"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, r := range got {
		if r.District != "Dhaka" {
			t.Errorf("search leaked district %q", r.District)
		}
	}
	found := false
	for _, r := range got {
		if r.RequestID == dhaka.RequestID {
			found = true
		}
	}
	if !found {
		t.Error("expected the Dhaka request in results")
	}
}

func TestRequestRepo_Search_ExcludesClaimed(t *testing.T) {
	repo := repository.NewRequestRepo(testDB)
	ctx := context.Background()

	req, cleanup := newRequest(t, "AB+", "Dhaka", "")
	defer cleanup()

	name, email := "Donor", "donor@example.com"
	req.Status = model.StatusInProgress
	req.DonorName = &name
	req.DonorEmail = &email
	if err := repo.Update(ctx, req); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.Search(ctx, repository.SearchFilter{BloodGroup: "AB+"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, r := range got {
		if r.RequestID == req.RequestID {
			t.Error("claimed request must not appear in donor search")
		}
	}
}

func TestRequestRepo_Delete_ReportsAffectedRows(t *testing.T) {
	repo := repository.NewRequestRepo(testDB)
	ctx := context.Background()

	req, cleanup := newRequest(t, "B+", "Dhaka", "")
	defer cleanup()

	n, err := repo.Delete(ctx, req.RequestID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n != 1 {
		t.Errorf("first delete affected %d rows, want 1", n)
	}

	n, err = repo.Delete(ctx, req.RequestID)
	if err != nil {
		t.Fatalf("repeat Delete: %v", err)
	}
	if n != 0 {
		t.Errorf("repeat delete affected %d rows, want 0", n)
	}
}

// ═══════════════════════════════════════════════════════════
// FundRepository
// ═══════════════════════════════════════════════════════════

func TestFundRepo_SessionIDUnique(t *testing.T) {
	repo := repository.NewFundRepo(testDB)
	ctx := context.Background()

	session := fmt.Sprintf("cs_test_%d", time.Now().UnixNano())
	fund := &model.Fund{
		DonorName:  "Donor",
		DonorEmail: "donor@example.com",
		Amount:     25,
		Currency:   "usd",
		SessionID:  session,
		Status:     model.FundPending,
	}
	if err := repo.Create(ctx, fund); err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer testDB.Unscoped().Where("fund_id = ?", fund.FundID).Delete(&model.Fund{})

	dup := &model.Fund{
		DonorName:  "Donor",
		DonorEmail: "donor@example.com",
		Amount:     25,
		Currency:   "usd",
		SessionID:  session,
		Status:     model.FundPending,
	}
	if err := repo.Create(ctx, dup); err == nil {
		testDB.Unscoped().Where("fund_id = ?", dup.FundID).Delete(&model.Fund{})
		t.Fatal("duplicate session_id insert should fail")
	}

	got, err := repo.GetBySessionID(ctx, session)
	if err != nil {
		t.Fatalf("GetBySessionID: %v", err)
	}
	if got.FundID != fund.FundID {
		t.Errorf("GetBySessionID returned %s, want %s", got.FundID, fund.FundID)
	}
}
