package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/editor"
	"github.com/mmynk/billsplit/internal/metrics"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
	"github.com/mmynk/billsplit/pkg/api"
)

// Ensure BillService implements the Connect handler interface
var _ api.BillServiceHandler = (*BillService)(nil)

// BillService implements the Connect BillService
type BillService struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// NewBillService creates a new BillService with the given session store.
// m may be nil.
func NewBillService(store storage.Store, m *metrics.Metrics) *BillService {
	return &BillService{store: store, metrics: m}
}

// CreateSession opens a new calculator with an empty table.
func (s *BillService) CreateSession(ctx context.Context, req *connect.Request[api.CreateSessionRequest]) (*connect.Response[api.CreateSessionResponse], error) {
	session, err := s.store.CreateSession(ctx)
	if err != nil {
		slog.Error("CreateSession failed", "error", err)
		return nil, storageError(err)
	}

	slog.Info("Session created", "session_id", session.ID)

	return connect.NewResponse(&api.CreateSessionResponse{
		Bill: toBillView(session),
	}), nil
}

// GetSession returns the current table and its totals.
func (s *BillService) GetSession(ctx context.Context, req *connect.Request[api.GetSessionRequest]) (*connect.Response[api.BillResponse], error) {
	if err := requireSessionID(req.Msg.SessionID); err != nil {
		return nil, err
	}

	session, err := s.store.GetSession(ctx, req.Msg.SessionID)
	if err != nil {
		slog.Error("GetSession failed", "session_id", req.Msg.SessionID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.BillResponse{Bill: toBillView(session)}), nil
}

// CloseSession ends a session and discards its table.
func (s *BillService) CloseSession(ctx context.Context, req *connect.Request[api.CloseSessionRequest]) (*connect.Response[api.CloseSessionResponse], error) {
	if err := requireSessionID(req.Msg.SessionID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteSession(ctx, req.Msg.SessionID); err != nil {
		slog.Error("CloseSession failed", "session_id", req.Msg.SessionID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("Session closed", "session_id", req.Msg.SessionID)

	return connect.NewResponse(&api.CloseSessionResponse{}), nil
}

// AddCategory appends a category column.
func (s *BillService) AddCategory(ctx context.Context, req *connect.Request[api.AddCategoryRequest]) (*connect.Response[api.BillResponse], error) {
	return s.apply(ctx, req.Msg.SessionID, editor.AddCategory{})
}

// RemoveCategory removes a category column and its participation flags.
func (s *BillService) RemoveCategory(ctx context.Context, req *connect.Request[api.RemoveCategoryRequest]) (*connect.Response[api.BillResponse], error) {
	return s.apply(ctx, req.Msg.SessionID, editor.RemoveCategory{ID: int(req.Msg.CategoryID)})
}

// RenameCategory changes a category's name.
func (s *BillService) RenameCategory(ctx context.Context, req *connect.Request[api.RenameCategoryRequest]) (*connect.Response[api.BillResponse], error) {
	return s.apply(ctx, req.Msg.SessionID, editor.RenameCategory{
		ID:   int(req.Msg.CategoryID),
		Name: req.Msg.Name,
	})
}

// SetCategoryAmount stores a category's amount text as typed.
func (s *BillService) SetCategoryAmount(ctx context.Context, req *connect.Request[api.SetCategoryAmountRequest]) (*connect.Response[api.BillResponse], error) {
	return s.apply(ctx, req.Msg.SessionID, editor.SetCategoryAmount{
		ID:     int(req.Msg.CategoryID),
		Amount: req.Msg.Amount,
	})
}

// AddPerson appends a person row.
func (s *BillService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.BillResponse], error) {
	return s.apply(ctx, req.Msg.SessionID, editor.AddPerson{})
}

// RemovePerson removes a person row.
func (s *BillService) RemovePerson(ctx context.Context, req *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.BillResponse], error) {
	return s.apply(ctx, req.Msg.SessionID, editor.RemovePerson{ID: int(req.Msg.PersonID)})
}

// RenamePerson changes a person's name.
func (s *BillService) RenamePerson(ctx context.Context, req *connect.Request[api.RenamePersonRequest]) (*connect.Response[api.BillResponse], error) {
	return s.apply(ctx, req.Msg.SessionID, editor.RenamePerson{
		ID:   int(req.Msg.PersonID),
		Name: req.Msg.Name,
	})
}

// SetParticipation toggles whether a person shares a category.
func (s *BillService) SetParticipation(ctx context.Context, req *connect.Request[api.SetParticipationRequest]) (*connect.Response[api.BillResponse], error) {
	return s.apply(ctx, req.Msg.SessionID, editor.SetParticipation{
		PersonID:      int(req.Msg.PersonID),
		CategoryIndex: int(req.Msg.CategoryIndex),
		Participating: req.Msg.Participating,
	})
}

// apply runs one edit action against a session and returns the new view.
func (s *BillService) apply(ctx context.Context, sessionID string, action editor.Action) (*connect.Response[api.BillResponse], error) {
	if err := requireSessionID(sessionID); err != nil {
		return nil, err
	}

	session, err := s.store.UpdateSession(ctx, sessionID, func(b models.Bill) models.Bill {
		return editor.Apply(b, action)
	})
	if err != nil {
		slog.Error("Apply action failed",
			"session_id", sessionID,
			"action", action.Kind(),
			"error", err,
		)
		return nil, storageError(err)
	}

	if s.metrics != nil {
		s.metrics.Actions.WithLabelValues(action.Kind()).Inc()
	}
	slog.Debug("Action applied",
		"session_id", sessionID,
		"action", action.Kind(),
		"categories_count", len(session.Bill.Categories),
		"people_count", len(session.Bill.People),
	)

	return connect.NewResponse(&api.BillResponse{Bill: toBillView(session)}), nil
}

func requireSessionID(sessionID string) error {
	if sessionID == "" {
		return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("session_id is required"))
	}
	return nil
}

// storageError maps store errors onto Connect codes.
func storageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrCapacity):
		return connect.NewError(connect.CodeResourceExhausted, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
