package agreement

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusDraft, StatusActive, true},
		{StatusActive, StatusExpired, true},
		{StatusActive, StatusTerminated, true},
		{StatusDraft, StatusExpired, false},
		{StatusDraft, StatusTerminated, false},
		{StatusActive, StatusDraft, false},
		{StatusExpired, StatusActive, false},
		{StatusExpired, StatusTerminated, false},
		{StatusTerminated, StatusActive, false},
		{StatusTerminated, StatusExpired, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestTransitionRejectsInvalid(t *testing.T) {
	a := Agreement{Status: StatusDraft}
	if err := a.Transition(StatusExpired); err == nil {
		t.Error("DRAFT -> EXPIRED succeeded, want error")
	}
	if a.Status != StatusDraft {
		t.Errorf("failed transition mutated status to %q", a.Status)
	}
	if err := a.Transition(StatusActive); err != nil {
		t.Errorf("DRAFT -> ACTIVE: %v", err)
	}
	if a.Status != StatusActive {
		t.Errorf("Status = %q, want ACTIVE", a.Status)
	}
}

func TestFullySigned(t *testing.T) {
	a := Agreement{OwnerSigned: true}
	if a.FullySigned() {
		t.Error("FullySigned with one signature = true, want false")
	}
	a.TenantSigned = true
	if !a.FullySigned() {
		t.Error("FullySigned with both signatures = false, want true")
	}
}
