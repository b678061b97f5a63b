package models

import (
	"testing"
	"time"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{0, "S/ 0.00"},
		{50, "S/ 0.50"},
		{450, "S/ 4.50"},
		{1100, "S/ 11.00"},
		{123456, "S/ 1234.56"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Money(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDaySessionOpen(t *testing.T) {
	var d DaySession
	if d.Open() {
		t.Error("zero session should not be open")
	}

	d.Start = time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	if !d.Open() {
		t.Error("session with start and no end should be open")
	}

	d.End = d.Start.Add(8 * time.Hour)
	if d.Open() {
		t.Error("session with both marks should be closed")
	}
}

func TestDaySessionTotal(t *testing.T) {
	d := DaySession{Orders: []Order{{Total: 450}, {Total: 1100}}}
	if got := d.Total(); got != 1550 {
		t.Errorf("Total = %d, want 1550", got)
	}
}
