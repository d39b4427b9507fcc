package postgres

import (
	"context"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/domain"
	"github.com/davidtimmons/pragmatic-architecture/internal/pkg/database"
)

// WidgetService owns the widgets table.
type WidgetService struct {
	store *database.Store
}

func NewWidgetService(store *database.Store) *WidgetService {
	return &WidgetService{
		store: store,
	}
}

func (s *WidgetService) CreateWidget(ctx context.Context, widget domain.NewWidget) (int, error) {
	createWidgetSQL := `INSERT INTO widgets (id_seller, description, price) VALUES ($1, $2, $3) RETURNING id`

	outcome, err := s.store.RunReturningID(ctx, createWidgetSQL, widget.SellerId, widget.Description, widget.Price)
	if err != nil {
		return 0, err
	}

	if outcome.InsertedID <= 0 {
		return 0, domain.NewFailure(domain.FailedToCreateWidget, nil)
	}

	return int(outcome.InsertedID), nil
}

func (s *WidgetService) GetWidget(ctx context.Context, widgetId int) (domain.Widget, error) {
	getWidgetSQL := `SELECT id, id_seller, description, price, purchased FROM widgets WHERE id=$1`

	widgets, err := database.Retrieve[domain.Widget](ctx, s.store, getWidgetSQL, widgetId)
	if err != nil {
		return domain.Widget{}, err
	}

	if len(widgets) < 1 {
		return domain.Widget{}, domain.NewFailure(domain.FailedToRetrieveWidget, nil)
	}

	return widgets[0], nil
}

func (s *WidgetService) SetPurchased(ctx context.Context, widgetId int, purchased bool) error {
	setPurchasedSQL := `UPDATE widgets SET purchased=$1 WHERE id=$2`

	outcome, err := s.store.Run(ctx, setPurchasedSQL, purchased, widgetId)
	if err != nil {
		return err
	}

	if outcome.RowsAffected < 1 {
		return domain.NewFailure(domain.FailedToSetPurchased, nil)
	}

	return nil
}

// GetWidgetsBySeller lists every widget a seller has offered, sold or not.
// Zero widgets is a valid outcome, not a failure.
func (s *WidgetService) GetWidgetsBySeller(ctx context.Context, sellerId int) ([]domain.Widget, error) {
	listWidgetsSQL := `SELECT id, id_seller, description, price, purchased FROM widgets WHERE id_seller=$1 ORDER BY id ASC`

	widgets, err := database.Retrieve[domain.Widget](ctx, s.store, listWidgetsSQL, sellerId)
	if err != nil {
		return nil, err
	}

	return widgets, nil
}
