package diag

import (
	"testing"

	"vardecl/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 3 {
		ok := b.Add(NewError(SynUnexpectedToken, source.Span{Start: uint32(i)}, "x"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 || b.Cap() != 2 {
		t.Fatalf("Len/Cap = %d/%d", b.Len(), b.Cap())
	}
}

func TestBagUnlimited(t *testing.T) {
	b := NewBag(0)
	if b.Cap() != 65535 {
		t.Fatalf("Cap = %d", b.Cap())
	}
}

func TestBagSortAndSeverity(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, SemaInfo, source.Span{Start: 5, End: 6}, "w"))
	b.Add(NewError(SemaDuplicateSymbol, source.Span{Start: 5, End: 6}, "dup"))
	b.Add(NewError(SynExpectColon, source.Span{Start: 1, End: 2}, "colon"))

	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("expected errors and warnings")
	}

	b.Sort()
	got := []Code{b.Items()[0].Code, b.Items()[1].Code, b.Items()[2].Code}
	want := []Code{SynExpectColon, SemaDuplicateSymbol, SemaInfo}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestBagMergeDedup(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(SynExpectOf, source.Span{Start: 3, End: 4}, "of"))
	other := NewBag(4)
	other.Add(NewError(SynExpectOf, source.Span{Start: 3, End: 4}, "of again"))
	other.Add(NewError(SynExpectSemicolon, source.Span{Start: 9, End: 10}, "semi"))

	a.Merge(other)
	if a.Len() != 3 || a.Cap() < 3 {
		t.Fatalf("after merge Len=%d Cap=%d", a.Len(), a.Cap())
	}
	a.Dedup()
	if a.Len() != 2 {
		t.Fatalf("after dedup Len=%d", a.Len())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(4)
	rb := ReportError(BagReporter{Bag: bag}, SemaDuplicateSymbol, source.Span{Start: 6, End: 7}, "identifier `a` already taken").
		WithNote(source.Span{Start: 4, End: 5}, "previously declared here").
		WithFix("rename", FixEdit{Span: source.Span{Start: 6, End: 7}, NewText: "b"})
	rb.Emit()
	rb.Emit()

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || len(d.Fixes) != 1 || d.Severity != SevError {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if rb.Diagnostic().Message != d.Message {
		t.Fatalf("Diagnostic() mismatch")
	}

	var nilBuilder *ReportBuilder
	nilBuilder.WithNote(source.Span{}, "x").Emit()
}
