package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/kirychukyurii/deck-status/internal/dom"
	"github.com/kirychukyurii/deck-status/internal/model"
	"github.com/kirychukyurii/deck-status/internal/repository"
)

const (
	loadingLabel       = "Loading..."
	errorText          = "Error"
	errorMessagePrefix = "Failed to load deck data: "
)

// ErrMissingElements is returned when a document lacks one of the deck page elements
var ErrMissingElements = errors.New("required UI elements not found")

// DeckStatusUpdater defines the interface for refreshing a deck page
type DeckStatusUpdater interface {
	// Refresh runs one fetch-and-render cycle against doc. Fetch failures are
	// rendered into doc and also returned; the page always ends idle.
	Refresh(ctx context.Context, doc *dom.Document) error

	// Snapshot reads the deck widgets of doc
	Snapshot(doc *dom.Document) (model.DeckSnapshot, error)
}

// deckStatusUpdater implements DeckStatusUpdater
type deckStatusUpdater struct {
	repo      repository.DeckRepository
	deckCount int
	logger    *slog.Logger
	now       func() time.Time
}

// bindings are the five element handles one refresh cycle works on
type bindings struct {
	remaining *dom.Element
	shuffle   *dom.Element
	card      *dom.Element
	button    *dom.Element
	banner    *dom.Element
}

// NewDeckStatusUpdater creates a new deck status updater
func NewDeckStatusUpdater(repo repository.DeckRepository, deckCount int, logger *slog.Logger) DeckStatusUpdater {
	return &deckStatusUpdater{
		repo:      repo,
		deckCount: deckCount,
		logger:    logger,
		now:       time.Now,
	}
}

// resolve looks up every handle and lists the ids that are absent
func resolve(doc *dom.Document) (bindings, []string) {
	lookup := func(id string, missing *[]string) *dom.Element {
		el := doc.GetElementByID(id)
		if el == nil {
			*missing = append(*missing, id)
		}
		return el
	}

	var missing []string
	b := bindings{
		remaining: lookup(dom.IDRemainingCards, &missing),
		shuffle:   lookup(dom.IDShuffleStatus, &missing),
		card:      lookup(dom.IDDeckCard, &missing),
		button:    lookup(dom.IDRefreshButton, &missing),
		banner:    lookup(dom.IDErrorMessage, &missing),
	}
	return b, missing
}

// Refresh fetches a shuffled deck and renders it into doc
func (u *deckStatusUpdater) Refresh(ctx context.Context, doc *dom.Document) error {
	b, missing := resolve(doc)
	if len(missing) > 0 {
		u.logger.Error("required UI elements not found",
			slog.Any("missing", missing),
		)
		return ErrMissingElements
	}

	gen := doc.BeginRefresh(func(tx dom.Batch) {
		tx.AddClass(b.card, dom.ClassLoading)
		tx.SetDisabled(b.button, true)
		tx.SetText(b.button, loadingLabel)
		tx.SetDisplay(b.banner, dom.DisplayNone)
	})

	defer func() {
		// A newer cycle owns the widgets now and will restore them itself
		doc.Commit(gen, func(tx dom.Batch) {
			tx.RemoveClass(b.card, dom.ClassLoading)
			tx.SetDisabled(b.button, false)
			tx.SetText(b.button, dom.ButtonLabel)
			tx.MarkRefreshed(u.now())
		})
	}()

	deck, err := u.repo.Shuffle(ctx, u.deckCount)

	if err != nil {
		message := model.DisplayMessage(err)
		u.logger.Error("failed to load deck data",
			slog.String("error", message),
		)
		rendered := doc.Commit(gen, func(tx dom.Batch) {
			tx.SetText(b.remaining, errorText)
			tx.SetText(b.shuffle, errorText)
			tx.SetText(b.banner, errorMessagePrefix+message)
			tx.SetDisplay(b.banner, dom.DisplayBlock)
		})
		if !rendered {
			u.logStale(gen)
		}
		return err
	}

	u.logger.Info("deck data loaded",
		slog.String("deck_id", deck.DeckID),
		slog.Bool("success", deck.Success),
		slog.Bool("shuffled", deck.Shuffled),
		slog.Int("remaining", deck.Remaining),
	)

	rendered := doc.Commit(gen, func(tx dom.Batch) {
		tx.SetText(b.remaining, strconv.Itoa(deck.Remaining))
		tx.SetText(b.shuffle, yesNo(deck.Shuffled))
	})
	if !rendered {
		u.logStale(gen)
	}

	return nil
}

func (u *deckStatusUpdater) logStale(gen uint64) {
	u.logger.Info("discarding stale deck refresh",
		slog.Uint64("generation", gen),
	)
}

// Snapshot reads the deck widgets of doc
func (u *deckStatusUpdater) Snapshot(doc *dom.Document) (model.DeckSnapshot, error) {
	b, missing := resolve(doc)
	if len(missing) > 0 {
		return model.DeckSnapshot{}, ErrMissingElements
	}

	snapshot := model.DeckSnapshot{
		Remaining:     b.remaining.Text(),
		ShuffleStatus: b.shuffle.Text(),
		Loading:       b.card.HasClass(dom.ClassLoading),
		ButtonLabel:   b.button.Text(),
		ButtonEnabled: !b.button.Disabled(),
		LastRefresh:   doc.LastRefresh(),
	}
	if !b.banner.Hidden() {
		snapshot.Error = b.banner.Text()
	}

	return snapshot, nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
