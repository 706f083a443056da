package service

import (
	"context"

	"github.com/openclave/accountd/internal/account/domain"
	"github.com/openclave/accountd/internal/account/store"
)

// recordingStore wraps a real store and counts reads and writes so tests can
// assert that rejected updates never touch persistence.
type recordingStore struct {
	store.Store

	UserReads    int
	UserWrites   int
	SessionKills int
}

func (r *recordingStore) Users() store.Users {
	return &recordingUsers{Users: r.Store.Users(), parent: r}
}

func (r *recordingStore) Sessions() store.Sessions {
	return &recordingSessions{Sessions: r.Store.Sessions(), parent: r}
}

type recordingUsers struct {
	store.Users
	parent *recordingStore
}

func (r *recordingUsers) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	r.parent.UserReads++
	return r.Users.GetUserByID(ctx, id)
}

func (r *recordingUsers) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) error {
	r.parent.UserWrites++
	return r.Users.UpdateUser(ctx, id, patch)
}

type recordingSessions struct {
	store.Sessions
	parent *recordingStore
}

func (r *recordingSessions) DeleteUserSessions(ctx context.Context, userID, exceptID string) error {
	r.parent.SessionKills++
	return r.Sessions.DeleteUserSessions(ctx, userID, exceptID)
}
