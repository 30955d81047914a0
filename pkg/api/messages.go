package api

// Category is one column of the split table.
type Category struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Person is one row of the split table with its computed share.
type Person struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Participation []bool  `json:"participation"`
	Total         float64 `json:"total"`
	TotalDisplay  string  `json:"total_display"`
}

// CategoryTotal is the footer figure under one column.
type CategoryTotal struct {
	CategoryID    int64   `json:"category_id"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
	Participants  int64   `json:"participants"`
}

// BillView is the full table plus every derived figure.
type BillView struct {
	SessionID          string          `json:"session_id"`
	Categories         []Category      `json:"categories"`
	People             []Person        `json:"people"`
	CategoryTotals     []CategoryTotal `json:"category_totals"`
	GrandTotal         float64         `json:"grand_total"`
	GrandTotalDisplay  string          `json:"grand_total_display"`
	Unallocated        float64         `json:"unallocated"`
	UnallocatedDisplay string          `json:"unallocated_display"`
	LastCategoryID     int64           `json:"last_category_id"`
	LastPersonID       int64           `json:"last_person_id"`
}

type CreateSessionRequest struct{}

type CreateSessionResponse struct {
	Bill *BillView `json:"bill"`
}

type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

type CloseSessionRequest struct {
	SessionID string `json:"session_id"`
}

type CloseSessionResponse struct{}

type AddCategoryRequest struct {
	SessionID string `json:"session_id"`
}

type RemoveCategoryRequest struct {
	SessionID  string `json:"session_id"`
	CategoryID int64  `json:"category_id"`
}

type RenameCategoryRequest struct {
	SessionID  string `json:"session_id"`
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
}

type SetCategoryAmountRequest struct {
	SessionID  string `json:"session_id"`
	CategoryID int64  `json:"category_id"`
	Amount     string `json:"amount"`
}

type AddPersonRequest struct {
	SessionID string `json:"session_id"`
}

type RemovePersonRequest struct {
	SessionID string `json:"session_id"`
	PersonID  int64  `json:"person_id"`
}

type RenamePersonRequest struct {
	SessionID string `json:"session_id"`
	PersonID  int64  `json:"person_id"`
	Name      string `json:"name"`
}

type SetParticipationRequest struct {
	SessionID     string `json:"session_id"`
	PersonID      int64  `json:"person_id"`
	CategoryIndex int64  `json:"category_index"`
	Participating bool   `json:"participating"`
}

// BillResponse is returned by every RPC that reads or changes a bill.
type BillResponse struct {
	Bill *BillView `json:"bill"`
}

// GetSessionID accessors let interceptors tag logs and metrics with the
// session a request targets.

func (r *GetSessionRequest) GetSessionID() string        { return r.SessionID }
func (r *CloseSessionRequest) GetSessionID() string      { return r.SessionID }
func (r *AddCategoryRequest) GetSessionID() string       { return r.SessionID }
func (r *RemoveCategoryRequest) GetSessionID() string    { return r.SessionID }
func (r *RenameCategoryRequest) GetSessionID() string    { return r.SessionID }
func (r *SetCategoryAmountRequest) GetSessionID() string { return r.SessionID }
func (r *AddPersonRequest) GetSessionID() string         { return r.SessionID }
func (r *RemovePersonRequest) GetSessionID() string      { return r.SessionID }
func (r *RenamePersonRequest) GetSessionID() string      { return r.SessionID }
func (r *SetParticipationRequest) GetSessionID() string  { return r.SessionID }
