package service

import (
	"context"

	"review-insights/dashboard-svc/internal/domain"
	"review-insights/dashboard-svc/internal/render"
	"review-insights/dashboard-svc/internal/storage"
)

type PageServiceInterface interface {
	OpenView(ctx context.Context, idParam, variant string) (*domain.PageView, error)
	Render(ctx context.Context, req RenderRequest) (render.Page, error)
	Listing() render.Page
	QRCode(restaurantID int) ([]byte, error)
}

// RecordSource is the fetch collaborator.
type RecordSource interface {
	FetchRecord(ctx context.Context, id int) (*domain.RestaurantRecord, error)
}

type RecordCache interface {
	GetRecord(ctx context.Context, id int) (*domain.RestaurantRecord, error)
	SetRecord(ctx context.Context, id int, rec *domain.RestaurantRecord) error
	DeleteRecord(ctx context.Context, id int) error
}

type ViewStore interface {
	SaveView(ctx context.Context, view *domain.PageView) error
	LoadView(ctx context.Context, viewID string) (*domain.PageView, error)
}

type ListingRepository interface {
	ListSummaries() ([]domain.ListingSummary, error)
}

type EventPublisher interface {
	PublishFilterEvent(ctx context.Context, event domain.FilterEvent) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessUpdate(ctx context.Context, msg domain.AnalysisUpdate)
}

var (
	_ PageServiceInterface = (*PageService)(nil)
	_ ConsumerInterface    = (*Consumer)(nil)
	_ RecordSource         = (*storage.AnalyzeClient)(nil)
	_ RecordCache          = (*storage.RedisCache)(nil)
	_ ViewStore            = (*storage.RedisCache)(nil)
	_ ListingRepository    = (*storage.PostgresRepository)(nil)
	_ ListingRepository    = (*storage.FileListing)(nil)
	_ EventPublisher       = (*storage.KafkaPublisher)(nil)
)
