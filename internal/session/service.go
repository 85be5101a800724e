package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/OMD2Planner_Go/internal/concurrency"
	"github.com/osse101/OMD2Planner_Go/internal/domain"
	"github.com/osse101/OMD2Planner_Go/internal/logger"
	"github.com/osse101/OMD2Planner_Go/internal/metrics"
	"github.com/osse101/OMD2Planner_Go/internal/planner"
	"github.com/osse101/OMD2Planner_Go/internal/snapshot"
)

// Session is a planner state together with its id and budget read-out
type Session struct {
	ID       string               `json:"id"`
	State    domain.SessionState  `json:"state"`
	Skulls   planner.SkullSummary `json:"skulls"`
	Source   string               `json:"source,omitempty"`
	ShareURL string               `json:"shareUrl,omitempty"`
}

// Export is a shareable snapshot of a session. Snapshot is the raw JSON blob
// accepted by Create and Open; Param is the same blob percent-encoded for
// hand-built state query strings.
type Export struct {
	ID       string `json:"id"`
	Snapshot string `json:"snapshot"`
	Param    string `json:"param"`
	URL      string `json:"url"`
}

// Service defines the interface for planner session operations.
// Snapshot arguments are the raw JSON carried by the state URL parameter;
// an empty string means no snapshot was supplied.
type Service interface {
	Create(ctx context.Context, snapshotJSON string) (*Session, error)
	Open(ctx context.Context, id, snapshotJSON string) (*Session, error)
	Apply(ctx context.Context, id string, action planner.Action) (*Session, error)
	View(ctx context.Context, id string) (*planner.View, error)
	Export(ctx context.Context, id string) (*Export, error)
	Reset(ctx context.Context, id string) (*Session, error)
	Ping(ctx context.Context) error
	Engine() *planner.Engine
}

type service struct {
	engine    *planner.Engine
	store     Store
	locks     *concurrency.LockManager
	publicURL string
	newID     func() string
}

// NewService creates a session service. publicURL is the page that share
// links point at.
func NewService(engine *planner.Engine, store Store, publicURL string) Service {
	return &service{
		engine:    engine,
		store:     store,
		locks:     concurrency.NewLockManager(),
		publicURL: publicURL,
		newID:     uuid.NewString,
	}
}

func (s *service) Engine() *planner.Engine {
	return s.engine
}

func (s *service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Create starts a new session, hydrated from the snapshot when given
func (s *service) Create(ctx context.Context, snapshotJSON string) (*Session, error) {
	state := domain.DefaultSessionState()
	source := metrics.SourceDefault
	if snapshotJSON != "" {
		hydrated, err := s.fromSnapshot(snapshotJSON)
		if err != nil {
			return nil, err
		}
		state, source = hydrated, metrics.SourceURL
	}

	id := s.newID()
	s.persist(ctx, id, state)

	metrics.SessionsCreated.Inc()
	metrics.SnapshotImports.WithLabelValues(source).Inc()
	logger.FromContext(ctx).Info(LogMsgSessionCreated, "session_id", id, "source", source)

	return s.session(id, state, source), nil
}

// Open hydrates a session. A URL snapshot wins over the persisted blob and
// replaces it.
func (s *service) Open(ctx context.Context, id, snapshotJSON string) (*Session, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var out *Session
	err := s.locks.WithLock(id, func() error {
		if snapshotJSON != "" {
			state, err := s.fromSnapshot(snapshotJSON)
			if err != nil {
				return err
			}
			s.persist(ctx, id, state)
			metrics.SnapshotImports.WithLabelValues(metrics.SourceURL).Inc()
			logger.FromContext(ctx).Info(LogMsgHydratedFromSnapshot, "session_id", id)
			out = s.session(id, state, metrics.SourceURL)
			return nil
		}

		state, source, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		metrics.SnapshotImports.WithLabelValues(source).Inc()
		out = s.session(id, state, source)
		return nil
	})
	return out, err
}

// Apply runs one transition under the session lock
func (s *service) Apply(ctx context.Context, id string, action planner.Action) (*Session, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var out *Session
	err := s.locks.WithLock(id, func() error {
		state, _, err := s.load(ctx, id)
		if err != nil {
			return err
		}

		next, err := s.engine.Apply(state, action)
		if err != nil {
			return err
		}

		s.persist(ctx, id, next)
		recordAction(action)
		out = s.session(id, next, "")
		return nil
	})
	return out, err
}

// View derives the shop view for the current state
func (s *service) View(ctx context.Context, id string) (*planner.View, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var out *planner.View
	err := s.locks.WithLock(id, func() error {
		state, _, err := s.load(ctx, id)
		if err != nil {
			return err
		}

		view, err := s.engine.View(state)
		if err != nil {
			return err
		}
		out = &view
		return nil
	})
	return out, err
}

// Export produces the share blob, its parameter encoding and the share URL
func (s *service) Export(ctx context.Context, id string) (*Export, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var out *Export
	err := s.locks.WithLock(id, func() error {
		state, _, err := s.load(ctx, id)
		if err != nil {
			return err
		}

		blob, err := snapshot.Encode(state)
		if err != nil {
			return err
		}
		param, err := snapshot.EncodeParam(state)
		if err != nil {
			return err
		}
		shareURL, err := snapshot.ExportURL(s.publicURL, state)
		if err != nil {
			return err
		}

		metrics.SnapshotExports.Inc()
		out = &Export{ID: id, Snapshot: string(blob), Param: param, URL: shareURL}
		return nil
	})
	return out, err
}

// Reset deletes the persisted blob and returns the default state
func (s *service) Reset(ctx context.Context, id string) (*Session, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	var out *Session
	err := s.locks.WithLock(id, func() error {
		if err := s.store.Delete(ctx, id); err != nil {
			metrics.StoreErrors.WithLabelValues(s.store.Name(), metrics.OperationDelete).Inc()
			return err
		}

		stripped, err := snapshot.StripURL(s.publicURL)
		if err != nil {
			return err
		}

		metrics.SessionResets.Inc()
		logger.FromContext(ctx).Info(LogMsgSessionReset, "session_id", id)

		out = s.session(id, s.engine.Reset(), metrics.SourceDefault)
		out.ShareURL = stripped
		return nil
	})
	return out, err
}

// load reads the persisted state. A missing blob yields the default state, as
// does a blob that no longer decodes or names things the catalog lost.
func (s *service) load(ctx context.Context, id string) (domain.SessionState, string, error) {
	log := logger.FromContext(ctx)

	blob, err := s.store.Load(ctx, id)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return domain.DefaultSessionState(), metrics.SourceDefault, nil
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues(s.store.Name(), metrics.OperationLoad).Inc()
		return domain.SessionState{}, "", err
	}

	state, err := snapshot.Decode(blob)
	if err != nil {
		log.Warn(LogMsgMalformedBlob, "session_id", id, "error", err)
		return domain.DefaultSessionState(), metrics.SourceDefault, nil
	}
	if err := s.engine.Validate(state); err != nil {
		log.Warn(LogMsgStaleBlob, "session_id", id, "error", err)
		return domain.DefaultSessionState(), metrics.SourceDefault, nil
	}
	return state, metrics.SourceStore, nil
}

func (s *service) fromSnapshot(snapshotJSON string) (domain.SessionState, error) {
	state, err := snapshot.Decode([]byte(snapshotJSON))
	if err != nil {
		return domain.SessionState{}, err
	}
	if err := s.engine.Validate(state); err != nil {
		return domain.SessionState{}, err
	}
	return state, nil
}

// persist is best-effort: a failed save is logged and counted, and the
// caller still gets the new state.
func (s *service) persist(ctx context.Context, id string, state domain.SessionState) {
	blob, err := snapshot.Encode(state)
	if err == nil {
		err = s.store.Save(ctx, id, blob)
	}
	if err != nil {
		metrics.StoreErrors.WithLabelValues(s.store.Name(), metrics.OperationSave).Inc()
		logger.FromContext(ctx).Error(LogMsgPersistFailed, "session_id", id, "backend", s.store.Name(), "error", err)
	}
}

func (s *service) session(id string, state domain.SessionState, source string) *Session {
	return &Session{
		ID:     id,
		State:  state,
		Skulls: s.engine.Skulls(state),
		Source: source,
	}
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf(ErrFmtInvalidID, domain.ErrSessionNotFound, id)
	}
	return nil
}

func recordAction(a planner.Action) {
	switch a.Kind {
	case planner.ActionBuyItem:
		metrics.ItemsBought.WithLabelValues(a.Name).Inc()
	case planner.ActionSellItem:
		metrics.ItemsSold.WithLabelValues(a.Name).Inc()
	case planner.ActionBuyUpgrade:
		metrics.UpgradesBought.WithLabelValues(a.Name).Inc()
	case planner.ActionSellUpgrade:
		metrics.UpgradesSold.WithLabelValues(a.Name).Inc()
	case planner.ActionSetSearchTerm:
		if strings.TrimSpace(a.Name) != "" {
			metrics.SearchesPerformed.Inc()
		}
	}
}
