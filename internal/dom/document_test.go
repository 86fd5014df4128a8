package dom

import (
	"testing"
	"time"
)

func TestNewDeckDocument(t *testing.T) {
	d := NewDeckDocument()

	for _, id := range []string{IDRemainingCards, IDShuffleStatus, IDDeckCard, IDRefreshButton, IDErrorMessage} {
		if d.GetElementByID(id) == nil {
			t.Errorf("element %q missing", id)
		}
	}

	if got := d.GetElementByID(IDRemainingCards).Text(); got != PlaceholderText {
		t.Errorf("remaining text = %q, want %q", got, PlaceholderText)
	}
	if got := d.GetElementByID(IDRefreshButton).Text(); got != ButtonLabel {
		t.Errorf("button text = %q, want %q", got, ButtonLabel)
	}
	if !d.GetElementByID(IDErrorMessage).Hidden() {
		t.Error("error banner should start hidden")
	}
	if d.GetElementByID(IDRefreshButton).Disabled() {
		t.Error("button should start enabled")
	}
}

func TestGetElementByID_Missing(t *testing.T) {
	d := NewDeckDocument()
	d.Remove(IDDeckCard)

	if el := d.GetElementByID(IDDeckCard); el != nil {
		t.Fatalf("expected nil for removed element, got %v", el.ID())
	}
}

func TestElementClasses(t *testing.T) {
	el := New().Append("card")

	el.AddClass(ClassLoading)
	el.AddClass(ClassLoading)
	el.AddClass("flipped")

	if got := el.Classes(); len(got) != 2 {
		t.Fatalf("classes = %v, want two entries", got)
	}
	if !el.HasClass(ClassLoading) {
		t.Error("expected loading class")
	}

	el.RemoveClass(ClassLoading)
	if el.HasClass(ClassLoading) {
		t.Error("loading class should be removed")
	}
	if !el.HasClass("flipped") {
		t.Error("unrelated class should survive removal")
	}

	el.RemoveClass("absent")
}

func TestRefreshGenerations(t *testing.T) {
	d := NewDeckDocument()
	button := d.GetElementByID(IDRefreshButton)

	first := d.BeginRefresh(func(tx Batch) {
		tx.SetDisabled(button, true)
		tx.SetText(button, "Loading...")
	})
	if !button.Disabled() || button.Text() != "Loading..." {
		t.Fatal("BeginRefresh did not apply its changes")
	}

	second := d.BeginRefresh(nil)
	if second == first {
		t.Fatal("generations must differ")
	}

	now := time.Now()
	ran := d.Commit(first, func(tx Batch) {
		tx.SetText(button, "stale")
		tx.MarkRefreshed(now)
	})
	if ran {
		t.Error("stale generation must not commit")
	}
	if button.Text() == "stale" || !d.LastRefresh().IsZero() {
		t.Error("stale commit changed the document")
	}

	ran = d.Commit(second, func(tx Batch) {
		tx.SetDisabled(button, false)
		tx.SetText(button, ButtonLabel)
		tx.MarkRefreshed(now)
	})
	if !ran {
		t.Error("current generation should commit")
	}
	if button.Disabled() || button.Text() != ButtonLabel {
		t.Errorf("button = disabled:%v %q after commit", button.Disabled(), button.Text())
	}
	if !d.LastRefresh().Equal(now) {
		t.Errorf("last refresh = %v, want %v", d.LastRefresh(), now)
	}
}

func TestBatchClasses(t *testing.T) {
	d := NewDeckDocument()
	card := d.GetElementByID(IDDeckCard)

	gen := d.BeginRefresh(func(tx Batch) {
		tx.AddClass(card, ClassLoading)
		tx.AddClass(card, ClassLoading)
	})
	if got := card.Classes(); len(got) != 1 {
		t.Fatalf("classes = %v, want one loading class", got)
	}

	d.Commit(gen, func(tx Batch) { tx.RemoveClass(card, ClassLoading) })
	if card.HasClass(ClassLoading) {
		t.Error("loading class should be removed")
	}
}
