package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/model"
)

func getUser(ctx context.Context, store model.Store, id uuid.UUID) (model.User, error) {
	user, err := store.Users().GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apiErrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// lockUser locks a single user row for the rest of the transaction.
func lockUser(ctx context.Context, store model.Store, id uuid.UUID) (model.User, error) {
	users, err := store.Users().Lock(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apiErrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to lock user: %w", err)
	}
	return users[0], nil
}

// lockPair locks both users in id order and returns them in argument order.
func lockPair(ctx context.Context, store model.Store, first, second uuid.UUID) (model.User, model.User, error) {
	ids := []uuid.UUID{first, second}
	swapped := second.String() < first.String()
	if swapped {
		ids[0], ids[1] = second, first
	}

	users, err := store.Users().Lock(ctx, ids...)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.User{}, apiErrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, model.User{}, fmt.Errorf("failed to lock users: %w", err)
	}

	if swapped {
		return users[1], users[0], nil
	}
	return users[0], users[1], nil
}

func withRelations(ctx context.Context, store model.Store, user model.User) (model.User, error) {
	rel, err := store.Graph().Relations(ctx, user.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load relations: %w", err)
	}
	user.Relations = rel
	return user, nil
}
