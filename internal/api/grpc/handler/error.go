package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/model"
)

// ErrorCodeKey is the trailer carrying the machine readable error code.
const ErrorCodeKey = "x-error-code"

func handleError(ctx context.Context, err error) error {
	var apiErr *apiErrors.APIError
	if !errors.As(err, &apiErr) {
		if errors.Is(err, model.ErrNotFound) {
			return status.Error(codes.NotFound, "not found")
		}
		apiErr = apiErrors.ErrInternal
	}

	_ = grpc.SetTrailer(ctx, metadata.Pairs(ErrorCodeKey, apiErr.Code))
	return status.Error(apiErr.GRPCCode, apiErr.Message)
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apiErrors.ErrValidation.WithMessage("%s must be a valid id", field)
	}
	return id, nil
}

func identity(ctx context.Context, cm model.ContextManager) (model.Identity, error) {
	id, ok := cm.GetIdentityFromContext(ctx)
	if !ok {
		return model.Identity{}, apiErrors.ErrMissingToken
	}
	return id, nil
}
