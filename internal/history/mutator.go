package history

import (
	"context"
	"sync"

	"screencheck/pkg/types"

	"github.com/sirupsen/logrus"
)

type deleteTarget struct {
	kind string // "upload" or "validation"
	id   string
}

// DeleteSession cascades a session delete to every record it is built from.
// All deletes go out concurrently and every outcome is collected; if any
// fail, the call returns a CascadeDeleteError with the failure count.
// Deletes that already succeeded stay deleted. The presented list only
// changes when the whole cascade succeeded, so a partial failure leaves the
// list as it was.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	var found *types.Session
	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			found = &s.sessions[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	session := *found
	s.mu.Unlock()

	targets := deleteTargets(session)
	if err := s.deleteAll(ctx, session.ID, targets); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.sessions[:0]
	for _, sess := range s.sessions {
		if sess.ID != sessionID {
			kept = append(kept, sess)
		}
	}
	s.sessions = kept
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"deletes":    len(targets),
	}).Info("session deleted")

	return nil
}

// deleteTargets lists the records a session cascades to. Comparison sessions
// built from a legacy record may lack the multi-upload arrays; those fall
// back to the single main/secondary ids on the validation.
func deleteTargets(session types.Session) []deleteTarget {
	if session.Kind == types.SessionStandalone {
		if session.Upload == nil {
			return nil
		}
		return []deleteTarget{{kind: "upload", id: session.Upload.UploadID}}
	}

	targets := []deleteTarget{{kind: "validation", id: session.ID}}

	if len(session.MainUploads) == 0 && len(session.SecondaryUploads) == 0 && session.Validation != nil {
		if id := session.Validation.MainUploadID; id != "" {
			targets = append(targets, deleteTarget{kind: "upload", id: id})
		}
		if id := session.Validation.SecondaryUploadID; id != "" {
			targets = append(targets, deleteTarget{kind: "upload", id: id})
		}
		return targets
	}

	for _, u := range session.MainUploads {
		targets = append(targets, deleteTarget{kind: "upload", id: u.UploadID})
	}
	for _, u := range session.SecondaryUploads {
		targets = append(targets, deleteTarget{kind: "upload", id: u.UploadID})
	}
	return targets
}

func (s *Service) deleteAll(ctx context.Context, sessionID string, targets []deleteTarget) error {
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target deleteTarget) {
			defer wg.Done()
			if target.kind == "validation" {
				errs[i] = s.store.DeleteValidation(ctx, target.id)
			} else {
				errs[i] = s.store.DeleteUpload(ctx, target.id)
			}
		}(i, target)
	}
	wg.Wait()

	var failed []error
	for i, err := range errs {
		if err == nil {
			continue
		}
		s.logger.WithError(err).WithFields(logrus.Fields{
			"session_id":  sessionID,
			"target_kind": targets[i].kind,
			"target_id":   targets[i].id,
		}).Error("cascade delete target failed")
		failed = append(failed, err)
	}

	if len(failed) > 0 {
		return &CascadeDeleteError{
			SessionID: sessionID,
			Failed:    len(failed),
			Total:     len(targets),
			Errs:      failed,
		}
	}
	return nil
}
