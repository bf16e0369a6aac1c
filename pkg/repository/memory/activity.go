package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/sesmt-lab/sentinela/pkg/domain/model"
	"github.com/sesmt-lab/sentinela/pkg/domain/types"
)

type activityRepository struct {
	mu         sync.RWMutex
	activities map[types.ActivityID]*model.Activity
}

func newActivityRepository() *activityRepository {
	return &activityRepository{
		activities: make(map[types.ActivityID]*model.Activity),
	}
}

func cloneActivity(a *model.Activity) *model.Activity {
	copied := *a
	return &copied
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := cloneActivity(activity)
	if created.ID == "" {
		created.ID = types.NewActivityID()
	}
	created.CreatedAt = now
	created.UpdatedAt = now

	r.activities[created.ID] = created
	return cloneActivity(created), nil
}

func (r *activityRepository) Get(ctx context.Context, id types.ActivityID) (*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, exists := r.activities[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "activity not found", goerr.V("id", id))
	}

	return cloneActivity(activity), nil
}

func (r *activityRepository) ListByEnvironment(ctx context.Context, envID types.EnvironmentID) ([]*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var activities []*model.Activity
	for _, activity := range r.activities {
		if activity.EnvironmentID == envID {
			activities = append(activities, cloneActivity(activity))
		}
	}

	return activities, nil
}
