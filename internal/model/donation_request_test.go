package model

import "testing"

func TestCanTransition_AllowedPairs(t *testing.T) {
	allowed := [][2]string{
		{StatusPending, StatusInProgress},
		{StatusPending, StatusCanceled},
		{StatusInProgress, StatusDone},
		{StatusInProgress, StatusCanceled},
	}
	for _, pair := range allowed {
		if !CanTransition(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be allowed", pair[0], pair[1])
		}
	}
}

func TestCanTransition_RejectedPairs(t *testing.T) {
	rejected := [][2]string{
		{StatusPending, StatusDone},
		{StatusPending, StatusPending},
		{StatusInProgress, StatusPending},
		{StatusInProgress, StatusInProgress},
		{StatusDone, StatusPending},
		{StatusDone, StatusInProgress},
		{StatusDone, StatusCanceled},
		{StatusCanceled, StatusPending},
		{StatusCanceled, StatusInProgress},
		{StatusCanceled, StatusDone},
	}
	for _, pair := range rejected {
		if CanTransition(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be rejected", pair[0], pair[1])
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusInProgress, StatusDone, StatusCanceled} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "completed", "in-progress", "PENDING"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestValidBloodGroup(t *testing.T) {
	for _, g := range BloodGroups {
		if !ValidBloodGroup(g) {
			t.Errorf("expected %q to be valid", g)
		}
	}
	for _, g := range []string{"", "C+", "o-", "AB"} {
		if ValidBloodGroup(g) {
			t.Errorf("expected %q to be invalid", g)
		}
	}
}
