package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/internal/editor"
	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/pkg/api"
)

// Backend owns the bill the terminal UI edits.
type Backend interface {
	// Bill returns the current bill.
	Bill(ctx context.Context) (models.Bill, error)

	// Dispatch applies one action and returns the resulting bill.
	Dispatch(ctx context.Context, action editor.Action) (models.Bill, error)

	// Close releases the bill. The backend must not be used afterwards.
	Close(ctx context.Context) error
}

// LocalBackend keeps the bill in process. It lives exactly as long as the UI.
type LocalBackend struct {
	bill models.Bill
}

// NewLocalBackend starts from an empty bill.
func NewLocalBackend() *LocalBackend {
	return &LocalBackend{}
}

func (l *LocalBackend) Bill(ctx context.Context) (models.Bill, error) {
	return l.bill.Clone(), nil
}

func (l *LocalBackend) Dispatch(ctx context.Context, action editor.Action) (models.Bill, error) {
	l.bill = editor.Apply(l.bill, action)
	return l.bill.Clone(), nil
}

func (l *LocalBackend) Close(ctx context.Context) error {
	l.bill = models.Bill{}
	return nil
}

// RemoteBackend edits a session hosted by a BillService server.
type RemoteBackend struct {
	client    *api.BillServiceClient
	sessionID string
	timeout   time.Duration
}

// NewRemoteBackend opens a new session on the server.
// timeout bounds each call; zero means no bound beyond ctx.
func NewRemoteBackend(ctx context.Context, client *api.BillServiceClient, timeout time.Duration) (*RemoteBackend, error) {
	r := &RemoteBackend{client: client, timeout: timeout}

	ctx, cancel := r.callContext(ctx)
	defer cancel()

	resp, err := client.CreateSession(ctx, connect.NewRequest(&api.CreateSessionRequest{}))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	r.sessionID = resp.Msg.Bill.SessionID
	slog.Info("Remote session opened", "session_id", r.sessionID)

	return r, nil
}

// SessionID identifies the server-side session.
func (r *RemoteBackend) SessionID() string {
	return r.sessionID
}

func (r *RemoteBackend) Bill(ctx context.Context) (models.Bill, error) {
	ctx, cancel := r.callContext(ctx)
	defer cancel()

	resp, err := r.client.GetSession(ctx, connect.NewRequest(&api.GetSessionRequest{SessionID: r.sessionID}))
	if err != nil {
		return models.Bill{}, fmt.Errorf("get session: %w", err)
	}
	return FromBillView(resp.Msg.Bill), nil
}

func (r *RemoteBackend) Dispatch(ctx context.Context, action editor.Action) (models.Bill, error) {
	ctx, cancel := r.callContext(ctx)
	defer cancel()

	id := r.sessionID
	var (
		resp *connect.Response[api.BillResponse]
		err  error
	)
	switch a := action.(type) {
	case editor.AddCategory:
		resp, err = r.client.AddCategory(ctx, connect.NewRequest(&api.AddCategoryRequest{SessionID: id}))
	case editor.RemoveCategory:
		resp, err = r.client.RemoveCategory(ctx, connect.NewRequest(&api.RemoveCategoryRequest{SessionID: id, CategoryID: int64(a.ID)}))
	case editor.RenameCategory:
		resp, err = r.client.RenameCategory(ctx, connect.NewRequest(&api.RenameCategoryRequest{SessionID: id, CategoryID: int64(a.ID), Name: a.Name}))
	case editor.SetCategoryAmount:
		resp, err = r.client.SetCategoryAmount(ctx, connect.NewRequest(&api.SetCategoryAmountRequest{SessionID: id, CategoryID: int64(a.ID), Amount: a.Amount}))
	case editor.AddPerson:
		resp, err = r.client.AddPerson(ctx, connect.NewRequest(&api.AddPersonRequest{SessionID: id}))
	case editor.RemovePerson:
		resp, err = r.client.RemovePerson(ctx, connect.NewRequest(&api.RemovePersonRequest{SessionID: id, PersonID: int64(a.ID)}))
	case editor.RenamePerson:
		resp, err = r.client.RenamePerson(ctx, connect.NewRequest(&api.RenamePersonRequest{SessionID: id, PersonID: int64(a.ID), Name: a.Name}))
	case editor.SetParticipation:
		resp, err = r.client.SetParticipation(ctx, connect.NewRequest(&api.SetParticipationRequest{
			SessionID:     id,
			PersonID:      int64(a.PersonID),
			CategoryIndex: int64(a.CategoryIndex),
			Participating: a.Participating,
		}))
	default:
		return models.Bill{}, fmt.Errorf("unsupported action %T", action)
	}
	if err != nil {
		return models.Bill{}, fmt.Errorf("%s: %w", action.Kind(), err)
	}
	return FromBillView(resp.Msg.Bill), nil
}

// Close ends the server-side session.
func (r *RemoteBackend) Close(ctx context.Context) error {
	ctx, cancel := r.callContext(ctx)
	defer cancel()

	if _, err := r.client.CloseSession(ctx, connect.NewRequest(&api.CloseSessionRequest{SessionID: r.sessionID})); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	slog.Info("Remote session closed", "session_id", r.sessionID)
	return nil
}

func (r *RemoteBackend) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout > 0 {
		return context.WithTimeout(ctx, r.timeout)
	}
	return context.WithCancel(ctx)
}

// FromBillView rebuilds a bill from its wire form. Derived figures are
// dropped; the calculator recomputes them from the table.
func FromBillView(view *api.BillView) models.Bill {
	if view == nil {
		return models.Bill{}
	}

	b := models.Bill{
		Categories:     make([]models.Category, len(view.Categories)),
		People:         make([]models.Person, len(view.People)),
		LastCategoryID: int(view.LastCategoryID),
		LastPersonID:   int(view.LastPersonID),
	}
	for i, c := range view.Categories {
		b.Categories[i] = models.Category{
			ID:     int(c.ID),
			Name:   c.Name,
			Amount: c.Amount,
		}
	}
	for i, p := range view.People {
		b.People[i] = models.Person{
			ID:            int(p.ID),
			Name:          p.Name,
			Participation: append([]bool{}, p.Participation...),
		}
	}
	return b
}
