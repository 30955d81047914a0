// Package api defines the billsplit.v1.BillService wire contract: JSON
// messages, procedure names, and constructors for Connect handlers and clients.
package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// BillServiceName is the fully-qualified name of the BillService service.
const BillServiceName = "billsplit.v1.BillService"

// Procedure paths, relative to the server's base URL.
const (
	BillServiceCreateSessionProcedure     = "/billsplit.v1.BillService/CreateSession"
	BillServiceGetSessionProcedure        = "/billsplit.v1.BillService/GetSession"
	BillServiceCloseSessionProcedure      = "/billsplit.v1.BillService/CloseSession"
	BillServiceAddCategoryProcedure       = "/billsplit.v1.BillService/AddCategory"
	BillServiceRemoveCategoryProcedure    = "/billsplit.v1.BillService/RemoveCategory"
	BillServiceRenameCategoryProcedure    = "/billsplit.v1.BillService/RenameCategory"
	BillServiceSetCategoryAmountProcedure = "/billsplit.v1.BillService/SetCategoryAmount"
	BillServiceAddPersonProcedure         = "/billsplit.v1.BillService/AddPerson"
	BillServiceRemovePersonProcedure      = "/billsplit.v1.BillService/RemovePerson"
	BillServiceRenamePersonProcedure      = "/billsplit.v1.BillService/RenamePerson"
	BillServiceSetParticipationProcedure  = "/billsplit.v1.BillService/SetParticipation"
)

// BillServiceHandler is implemented by the server side of BillService.
type BillServiceHandler interface {
	CreateSession(context.Context, *connect.Request[CreateSessionRequest]) (*connect.Response[CreateSessionResponse], error)
	GetSession(context.Context, *connect.Request[GetSessionRequest]) (*connect.Response[BillResponse], error)
	CloseSession(context.Context, *connect.Request[CloseSessionRequest]) (*connect.Response[CloseSessionResponse], error)
	AddCategory(context.Context, *connect.Request[AddCategoryRequest]) (*connect.Response[BillResponse], error)
	RemoveCategory(context.Context, *connect.Request[RemoveCategoryRequest]) (*connect.Response[BillResponse], error)
	RenameCategory(context.Context, *connect.Request[RenameCategoryRequest]) (*connect.Response[BillResponse], error)
	SetCategoryAmount(context.Context, *connect.Request[SetCategoryAmountRequest]) (*connect.Response[BillResponse], error)
	AddPerson(context.Context, *connect.Request[AddPersonRequest]) (*connect.Response[BillResponse], error)
	RemovePerson(context.Context, *connect.Request[RemovePersonRequest]) (*connect.Response[BillResponse], error)
	RenamePerson(context.Context, *connect.Request[RenamePersonRequest]) (*connect.Response[BillResponse], error)
	SetParticipation(context.Context, *connect.Request[SetParticipationRequest]) (*connect.Response[BillResponse], error)
}

// NewBillServiceHandler builds an HTTP handler for every BillService procedure.
// It returns the path prefix to mount the handler on.
func NewBillServiceHandler(svc BillServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSON()}, opts...)

	mux := http.NewServeMux()
	mux.Handle(BillServiceCreateSessionProcedure, connect.NewUnaryHandler(BillServiceCreateSessionProcedure, svc.CreateSession, opts...))
	mux.Handle(BillServiceGetSessionProcedure, connect.NewUnaryHandler(BillServiceGetSessionProcedure, svc.GetSession, opts...))
	mux.Handle(BillServiceCloseSessionProcedure, connect.NewUnaryHandler(BillServiceCloseSessionProcedure, svc.CloseSession, opts...))
	mux.Handle(BillServiceAddCategoryProcedure, connect.NewUnaryHandler(BillServiceAddCategoryProcedure, svc.AddCategory, opts...))
	mux.Handle(BillServiceRemoveCategoryProcedure, connect.NewUnaryHandler(BillServiceRemoveCategoryProcedure, svc.RemoveCategory, opts...))
	mux.Handle(BillServiceRenameCategoryProcedure, connect.NewUnaryHandler(BillServiceRenameCategoryProcedure, svc.RenameCategory, opts...))
	mux.Handle(BillServiceSetCategoryAmountProcedure, connect.NewUnaryHandler(BillServiceSetCategoryAmountProcedure, svc.SetCategoryAmount, opts...))
	mux.Handle(BillServiceAddPersonProcedure, connect.NewUnaryHandler(BillServiceAddPersonProcedure, svc.AddPerson, opts...))
	mux.Handle(BillServiceRemovePersonProcedure, connect.NewUnaryHandler(BillServiceRemovePersonProcedure, svc.RemovePerson, opts...))
	mux.Handle(BillServiceRenamePersonProcedure, connect.NewUnaryHandler(BillServiceRenamePersonProcedure, svc.RenamePerson, opts...))
	mux.Handle(BillServiceSetParticipationProcedure, connect.NewUnaryHandler(BillServiceSetParticipationProcedure, svc.SetParticipation, opts...))

	return "/" + BillServiceName + "/", mux
}

// BillServiceClient calls a remote BillService.
type BillServiceClient struct {
	createSession     *connect.Client[CreateSessionRequest, CreateSessionResponse]
	getSession        *connect.Client[GetSessionRequest, BillResponse]
	closeSession      *connect.Client[CloseSessionRequest, CloseSessionResponse]
	addCategory       *connect.Client[AddCategoryRequest, BillResponse]
	removeCategory    *connect.Client[RemoveCategoryRequest, BillResponse]
	renameCategory    *connect.Client[RenameCategoryRequest, BillResponse]
	setCategoryAmount *connect.Client[SetCategoryAmountRequest, BillResponse]
	addPerson         *connect.Client[AddPersonRequest, BillResponse]
	removePerson      *connect.Client[RemovePersonRequest, BillResponse]
	renamePerson      *connect.Client[RenamePersonRequest, BillResponse]
	setParticipation  *connect.Client[SetParticipationRequest, BillResponse]
}

// NewBillServiceClient constructs a client for the BillService hosted at baseURL
// (e.g., http://localhost:8080).
func NewBillServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BillServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{WithJSON()}, opts...)

	return &BillServiceClient{
		createSession:     connect.NewClient[CreateSessionRequest, CreateSessionResponse](httpClient, baseURL+BillServiceCreateSessionProcedure, opts...),
		getSession:        connect.NewClient[GetSessionRequest, BillResponse](httpClient, baseURL+BillServiceGetSessionProcedure, opts...),
		closeSession:      connect.NewClient[CloseSessionRequest, CloseSessionResponse](httpClient, baseURL+BillServiceCloseSessionProcedure, opts...),
		addCategory:       connect.NewClient[AddCategoryRequest, BillResponse](httpClient, baseURL+BillServiceAddCategoryProcedure, opts...),
		removeCategory:    connect.NewClient[RemoveCategoryRequest, BillResponse](httpClient, baseURL+BillServiceRemoveCategoryProcedure, opts...),
		renameCategory:    connect.NewClient[RenameCategoryRequest, BillResponse](httpClient, baseURL+BillServiceRenameCategoryProcedure, opts...),
		setCategoryAmount: connect.NewClient[SetCategoryAmountRequest, BillResponse](httpClient, baseURL+BillServiceSetCategoryAmountProcedure, opts...),
		addPerson:         connect.NewClient[AddPersonRequest, BillResponse](httpClient, baseURL+BillServiceAddPersonProcedure, opts...),
		removePerson:      connect.NewClient[RemovePersonRequest, BillResponse](httpClient, baseURL+BillServiceRemovePersonProcedure, opts...),
		renamePerson:      connect.NewClient[RenamePersonRequest, BillResponse](httpClient, baseURL+BillServiceRenamePersonProcedure, opts...),
		setParticipation:  connect.NewClient[SetParticipationRequest, BillResponse](httpClient, baseURL+BillServiceSetParticipationProcedure, opts...),
	}
}

func (c *BillServiceClient) CreateSession(ctx context.Context, req *connect.Request[CreateSessionRequest]) (*connect.Response[CreateSessionResponse], error) {
	return c.createSession.CallUnary(ctx, req)
}

func (c *BillServiceClient) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[BillResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

func (c *BillServiceClient) CloseSession(ctx context.Context, req *connect.Request[CloseSessionRequest]) (*connect.Response[CloseSessionResponse], error) {
	return c.closeSession.CallUnary(ctx, req)
}

func (c *BillServiceClient) AddCategory(ctx context.Context, req *connect.Request[AddCategoryRequest]) (*connect.Response[BillResponse], error) {
	return c.addCategory.CallUnary(ctx, req)
}

func (c *BillServiceClient) RemoveCategory(ctx context.Context, req *connect.Request[RemoveCategoryRequest]) (*connect.Response[BillResponse], error) {
	return c.removeCategory.CallUnary(ctx, req)
}

func (c *BillServiceClient) RenameCategory(ctx context.Context, req *connect.Request[RenameCategoryRequest]) (*connect.Response[BillResponse], error) {
	return c.renameCategory.CallUnary(ctx, req)
}

func (c *BillServiceClient) SetCategoryAmount(ctx context.Context, req *connect.Request[SetCategoryAmountRequest]) (*connect.Response[BillResponse], error) {
	return c.setCategoryAmount.CallUnary(ctx, req)
}

func (c *BillServiceClient) AddPerson(ctx context.Context, req *connect.Request[AddPersonRequest]) (*connect.Response[BillResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

func (c *BillServiceClient) RemovePerson(ctx context.Context, req *connect.Request[RemovePersonRequest]) (*connect.Response[BillResponse], error) {
	return c.removePerson.CallUnary(ctx, req)
}

func (c *BillServiceClient) RenamePerson(ctx context.Context, req *connect.Request[RenamePersonRequest]) (*connect.Response[BillResponse], error) {
	return c.renamePerson.CallUnary(ctx, req)
}

func (c *BillServiceClient) SetParticipation(ctx context.Context, req *connect.Request[SetParticipationRequest]) (*connect.Response[BillResponse], error) {
	return c.setParticipation.CallUnary(ctx, req)
}
