package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestJournal_RecentNewestFirst(t *testing.T) {
	j := NewJournal(10, nil)
	ctx := context.Background()

	j.Record(ctx, OperationOpen, "checking", "Jane Doe 1/1/1990", "Account opened.", true)
	j.Record(ctx, OperationDeposit, "checking", "Jane Doe 1/1/1990", "Deposit - balance updated.", true)
	last := j.Record(ctx, OperationWithdraw, "checking", "Jane Doe 1/1/1990", "Withdraw - insufficient fund.", false)

	got := j.Recent(2)

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].ID != last.ID || got[0].Success {
		t.Errorf("expected newest failed withdraw first, got %+v", got[0])
	}
	if got[1].Operation != OperationDeposit {
		t.Errorf("expected deposit second, got %s", got[1].Operation)
	}
	if last.ID == uuid.Nil {
		t.Error("expected entry id to be set")
	}
}

func TestJournal_DropsOldestWhenFull(t *testing.T) {
	j := NewJournal(2, nil)
	ctx := context.Background()

	j.Record(ctx, OperationOpen, "", "", "first", true)
	j.Record(ctx, OperationOpen, "", "", "second", true)
	j.Record(ctx, OperationOpen, "", "", "third", true)

	got := j.Recent(0)
	if len(got) != 2 {
		t.Fatalf("expected 2 retained entries, got %d", len(got))
	}
	if got[0].Message != "third" || got[1].Message != "second" {
		t.Errorf("unexpected retained entries %+v", got)
	}
}
