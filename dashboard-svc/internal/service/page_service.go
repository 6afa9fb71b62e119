package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"review-insights/dashboard-svc/internal/domain"
	"review-insights/dashboard-svc/internal/filter"
	"review-insights/dashboard-svc/internal/render"
	"review-insights/dashboard-svc/internal/storage"

	"github.com/google/uuid"
)

// RenderRequest asks for one pass over an open page view. FilterChanged is set
// when the request is the result of a badge or clear action, as opposed to a
// plain reload.
type RenderRequest struct {
	ViewID        string
	Issue         string
	FilterChanged bool
}

// PageService composes pages: it fetches a record once per view, snapshots it,
// and re-renders the snapshot for every filter change.
type PageService struct {
	source    RecordSource
	cache     RecordCache
	views     ViewStore
	listing   ListingRepository
	publisher EventPublisher
	qr        QRGenerator

	AspectOrder []string
	summaries   []domain.ListingSummary
}

func NewPageService(source RecordSource, cache RecordCache, views ViewStore, listing ListingRepository, publisher EventPublisher, qr QRGenerator) *PageService {
	return &PageService{
		source:    source,
		cache:     cache,
		views:     views,
		listing:   listing,
		publisher: publisher,
		qr:        qr,
	}
}

// LoadListing reads the listing summaries once. Failures leave the listing
// empty rather than stopping the service.
func (s *PageService) LoadListing() error {
	if s.listing == nil {
		return nil
	}
	summaries, err := s.listing.ListSummaries()
	if err != nil {
		return fmt.Errorf("failed to load listing: %w", err)
	}
	s.summaries = summaries
	return nil
}

func (s *PageService) Listing() render.Page {
	return render.ListingPage(s.summaries)
}

// OpenView fetches the record for idParam and stores it as a new page view.
func (s *PageService) OpenView(ctx context.Context, idParam, variant string) (*domain.PageView, error) {
	id, err := strconv.Atoi(idParam)
	if err != nil || id <= 0 {
		return nil, domain.ErrInvalidID
	}
	v, ok := domain.ParseVariant(variant)
	if !ok {
		return nil, domain.ErrInvalidVariant
	}

	rec, err := s.record(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == "" {
		v = rec.Shape.DefaultVariant()
	}

	view := &domain.PageView{
		ID:           uuid.New().String(),
		RestaurantID: id,
		Variant:      v,
		Record:       *rec,
		CreatedAt:    time.Now(),
	}
	if err := s.views.SaveView(ctx, view); err != nil {
		return nil, fmt.Errorf("failed to save page view: %w", err)
	}
	log.Printf("VIEW: opened %s for restaurant %d (%s)", view.ID, id, v)
	return view, nil
}

// record reads through the cache. Cache errors never fail the request.
func (s *PageService) record(ctx context.Context, id int) (*domain.RestaurantRecord, error) {
	if s.cache != nil {
		rec, err := s.cache.GetRecord(ctx, id)
		if err == nil {
			return rec, nil
		}
		if !errors.Is(err, storage.ErrCacheMiss) {
			log.Printf("ERROR: record cache read for %d: %v", id, err)
		}
	}

	rec, err := s.source.FetchRecord(ctx, id)
	if err != nil {
		log.Printf("FETCH: restaurant %d: %v", id, err)
		return nil, err
	}
	if rec.ID == 0 {
		rec.ID = id
	}

	if s.cache != nil {
		_ = s.cache.SetRecord(ctx, id, rec)
	}
	return rec, nil
}

// Render draws the snapshot of an open view under the requested filter. It
// never contacts the fetch collaborator.
func (s *PageService) Render(ctx context.Context, req RenderRequest) (render.Page, error) {
	view, err := s.views.LoadView(ctx, req.ViewID)
	if err != nil {
		return render.Page{}, err
	}

	controller, err := filter.NewController(view.ID)
	if err != nil {
		return render.Page{}, err
	}
	controller.SetFilter(req.Issue)

	if req.FilterChanged {
		s.publishFilterEvent(ctx, view, controller.State())
	}

	opts := render.Options{
		ViewID:      view.ID,
		AspectOrder: s.AspectOrder,
		QRCodeURL:   fmt.Sprintf("/restaurant/%d/qrcode", view.RestaurantID),
	}
	return render.Compose(view.Variant, &view.Record, controller.State(), opts), nil
}

func (s *PageService) publishFilterEvent(ctx context.Context, view *domain.PageView, state filter.State) {
	if s.publisher == nil {
		return
	}
	event := domain.FilterEvent{
		Type:         domain.EventFilterCleared,
		ViewID:       view.ID,
		RestaurantID: view.RestaurantID,
		Timestamp:    time.Now(),
	}
	if state.Active() {
		event.Type = domain.EventFilterSet
		event.Issue = state.Issue
	}
	_ = s.publisher.PublishFilterEvent(ctx, event)
}

func (s *PageService) QRCode(restaurantID int) ([]byte, error) {
	if restaurantID <= 0 {
		return nil, domain.ErrInvalidID
	}
	return s.qr.Generate(restaurantID)
}
