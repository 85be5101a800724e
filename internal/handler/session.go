package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/OMD2Planner_Go/internal/domain"
	"github.com/osse101/OMD2Planner_Go/internal/logger"
	"github.com/osse101/OMD2Planner_Go/internal/planner"
	"github.com/osse101/OMD2Planner_Go/internal/session"
	"github.com/osse101/OMD2Planner_Go/internal/snapshot"
)

// CreateSessionRequest optionally seeds a new session with a shared build
type CreateSessionRequest struct {
	Snapshot string `json:"snapshot"`
}

// SearchRequest sets the search term. An empty term ends the search.
type SearchRequest struct {
	Term string `json:"term" validate:"max=200,excludesall=\x00"`
}

// TabRequest switches the browsing tab
type TabRequest struct {
	Tab string `json:"tab" validate:"required,tab"`
}

// ItemRequest names one catalog item
type ItemRequest struct {
	Item string `json:"item" validate:"required,max=200"`
}

// UpgradeRequest names one derived upgrade
type UpgradeRequest struct {
	Upgrade string `json:"upgrade" validate:"required,max=250"`
}

// SkullsRequest declares the skull budget. Non-positive values are ignored.
type SkullsRequest struct {
	Skulls int `json:"skulls" validate:"max=1000000"`
}

// HandleCreateSession starts a session. The snapshot may come from the body
// or from the state query parameter; the query parameter wins.
func HandleCreateSession(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSessionRequest
		if err := DecodeOptionalRequest(r, w, &req, "Create session"); err != nil {
			return
		}

		raw, present, err := stateParam(r)
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateSessionFailed, err)
			return
		}
		if !present {
			raw = req.Snapshot
		}

		sess, err := svc.Create(r.Context(), raw)
		if err != nil {
			respondServiceError(w, r, ErrMsgCreateSessionFailed, err)
			return
		}
		respondJSON(w, http.StatusCreated, sess)
	}
}

// HandleOpenSession hydrates a session, preferring ?state= over the stored blob
func HandleOpenSession(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, _, err := stateParam(r)
		if err != nil {
			respondServiceError(w, r, ErrMsgOpenSessionFailed, err)
			return
		}

		sess, err := svc.Open(r.Context(), chi.URLParam(r, "id"), raw)
		if err != nil {
			respondServiceError(w, r, ErrMsgOpenSessionFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, sess)
	}
}

// stateParam reads the state query parameter. A parameter that is present
// but empty is a broken share link, not a missing one.
func stateParam(r *http.Request) (string, bool, error) {
	q := r.URL.Query()
	if !q.Has(snapshot.Param) {
		return "", false, nil
	}
	raw := q.Get(snapshot.Param)
	if raw == "" {
		return "", true, fmt.Errorf("%w: empty %s parameter", domain.ErrInvalidSnapshot, snapshot.Param)
	}
	return raw, true, nil
}

// HandleResetSession clears the stored blob and returns the default state
func HandleResetSession(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.Reset(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, ErrMsgResetSessionFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, sess)
	}
}

// HandleSessionView returns the derived shop view
func HandleSessionView(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.View(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, ErrMsgViewFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleExportSession returns the share parameter and URL
func HandleExportSession(svc session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		export, err := svc.Export(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, ErrMsgExportFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, export)
	}
}

// HandleSearch sets the session's search term
func HandleSearch(svc session.Service) http.HandlerFunc {
	return handleAction(svc, "Search", func(req SearchRequest) planner.Action {
		return planner.Action{Kind: planner.ActionSetSearchTerm, Name: req.Term}
	})
}

// HandleSelectTab switches the browsing tab
func HandleSelectTab(svc session.Service) http.HandlerFunc {
	return handleAction(svc, "Select tab", func(req TabRequest) planner.Action {
		return planner.Action{Kind: planner.ActionSelectTab, Name: req.Tab}
	})
}

// HandleSelectItem opens an item's detail view
func HandleSelectItem(svc session.Service) http.HandlerFunc {
	return handleAction(svc, "Select item", func(req ItemRequest) planner.Action {
		return planner.Action{Kind: planner.ActionSelectItem, Name: req.Item}
	})
}

// HandleSetSkulls declares the skull budget
func HandleSetSkulls(svc session.Service) http.HandlerFunc {
	return handleAction(svc, "Set skulls", func(req SkullsRequest) planner.Action {
		return planner.Action{Kind: planner.ActionSetSkullBudget, Amount: req.Skulls}
	})
}

// HandleBuyItem unlocks an item with skulls
func HandleBuyItem(svc session.Service) http.HandlerFunc {
	return handleAction(svc, "Buy item", func(req ItemRequest) planner.Action {
		return planner.Action{Kind: planner.ActionBuyItem, Name: req.Item}
	})
}

// HandleSellItem refunds an item along with its upgrades
func HandleSellItem(svc session.Service) http.HandlerFunc {
	return handleAction(svc, "Sell item", func(req ItemRequest) planner.Action {
		return planner.Action{Kind: planner.ActionSellItem, Name: req.Item}
	})
}

// HandleBuyUpgrade unlocks an upgrade
func HandleBuyUpgrade(svc session.Service) http.HandlerFunc {
	return handleAction(svc, "Buy upgrade", func(req UpgradeRequest) planner.Action {
		return planner.Action{Kind: planner.ActionBuyUpgrade, Name: req.Upgrade}
	})
}

// HandleSellUpgrade refunds an upgrade
func HandleSellUpgrade(svc session.Service) http.HandlerFunc {
	return handleAction(svc, "Sell upgrade", func(req UpgradeRequest) planner.Action {
		return planner.Action{Kind: planner.ActionSellUpgrade, Name: req.Upgrade}
	})
}

// HandleAddToLoadout highlights an item
func HandleAddToLoadout(svc session.Service) http.HandlerFunc {
	return handleAction(svc, "Add to loadout", func(req ItemRequest) planner.Action {
		return planner.Action{Kind: planner.ActionHighlightItem, Name: req.Item}
	})
}

// HandleRemoveFromLoadout drops every loadout entry for an item
func HandleRemoveFromLoadout(svc session.Service) http.HandlerFunc {
	return handleAction(svc, "Remove from loadout", func(req ItemRequest) planner.Action {
		return planner.Action{Kind: planner.ActionUnhighlightItem, Name: req.Item}
	})
}

// handleAction decodes REQ, turns it into one planner action and applies it
// to the session named by the id URL parameter.
func handleAction[REQ any](svc session.Service, opName string, toAction func(REQ) planner.Action) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req REQ
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}

		action := toAction(req)
		logger.FromContext(r.Context()).Debug("Applying action", "action", action.Kind, "name", action.Name)

		sess, err := svc.Apply(r.Context(), chi.URLParam(r, "id"), action)
		if err != nil {
			respondServiceError(w, r, ErrMsgActionFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, sess)
	}
}
