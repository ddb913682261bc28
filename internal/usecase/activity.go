package usecase

import (
	"context"
	"errors"
	"time"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/infrastructure/logger"
	"marketplace_escrow/internal/usecase/interfaces"
)

// activityRecorder writes the audit trail best-effort: a failing sink is
// logged and never fails the business operation.
type activityRecorder struct {
	sink interfaces.IActivityLog
	log  *logger.Logger
}

func (r activityRecorder) record(ctx context.Context, entries ...entities.ActivityEntry) {
	for _, e := range entries {
		if e.Timestamp.IsZero() {
			e.Timestamp = time.Now().UTC()
		}
		if r.sink == nil {
			r.log.Info("[activity] status change",
				"related_type", e.RelatedType, "related_id", e.RelatedID,
				"old_status", e.OldStatus, "new_status", e.NewStatus, "changed_by_user_id", e.ChangedBy)
			continue
		}
		if err := r.sink.Record(ctx, e); err != nil {
			r.log.Warn("[activity] failed to record status change",
				"related_type", e.RelatedType, "related_id", e.RelatedID, "error", err)
		}
	}
}

func activity(relatedType, relatedID, oldStatus, newStatus string, actor entities.Actor, note string) entities.ActivityEntry {
	return entities.ActivityEntry{
		RelatedID:   relatedID,
		RelatedType: relatedType,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		ChangedBy:   actor.ID,
		Note:        note,
		Timestamp:   time.Now().UTC(),
	}
}

// commit translates optimistic-lock failures into ErrConcurrentUpdate.
func commit(ctx context.Context, uow interfaces.IUnitOfWork, ws interfaces.WriteSet) error {
	if err := uow.Commit(ctx, ws); err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return ErrConcurrentUpdate
		}
		return err
	}
	return nil
}
