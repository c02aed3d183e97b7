package handler

import (
	"bytes"
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/dtroode/garden-server/internal/api/grpc/proto"
	apiErrors "github.com/dtroode/garden-server/internal/apierrors"
	"github.com/dtroode/garden-server/internal/logger"
	"github.com/dtroode/garden-server/internal/model"
	"github.com/dtroode/garden-server/internal/service"
)

// MaxImageSize bounds uploaded profile and cover images.
const MaxImageSize = 5 << 20

// AccountService defines profile operations.
type AccountService interface {
	Me(ctx context.Context, userID uuid.UUID) (model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch service.ProfilePatch) (model.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
	GetUserDetails(ctx context.Context, viewer model.Identity, userID uuid.UUID) (service.UserDetails, error)
	ListUsers(ctx context.Context, actorID uuid.UUID) ([]model.User, error)
	VerifyUser(ctx context.Context, actorID, userID uuid.UUID) (model.User, error)
	UnverifyUser(ctx context.Context, actorID, userID uuid.UUID) (model.User, error)
	UploadImage(ctx context.Context, userID uuid.UUID, kind service.ImageKind, r io.Reader, size int64, contentType string) (model.User, error)
}

// GraphService defines follow, block and follow request operations.
type GraphService interface {
	Follow(ctx context.Context, followerID, targetID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, targetID uuid.UUID) error
	Block(ctx context.Context, blockerID, blockedID uuid.UUID) error
	Unblock(ctx context.Context, blockerID, blockedID uuid.UUID) error
	SendFollowRequest(ctx context.Context, fromID, toID uuid.UUID) (model.FollowRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID, actingUserID uuid.UUID, status model.RequestStatus) (model.FollowRequest, error)
	GetFollowRequest(ctx context.Context, requestID, viewerID uuid.UUID) (model.FollowRequest, error)
	ListPendingFollowRequests(ctx context.Context, userID uuid.UUID) ([]model.FollowRequest, error)
	GetFollowerStatistics(ctx context.Context, userID uuid.UUID) (model.FollowerStatistics, error)
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error)
	ListBlocked(ctx context.Context, userID uuid.UUID) ([]model.UserSummary, error)
}

var _ proto.UsersServer = (*Users)(nil)

// Users handles gRPC endpoints for profiles and the social graph.
type Users struct {
	proto.UnimplementedUsersServer

	accountService AccountService
	graphService   GraphService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUsers creates a new Users handler.
func NewUsers(accountService AccountService, graphService GraphService, contextManager model.ContextManager, logger *logger.Logger) *Users {
	return &Users{
		accountService: accountService,
		graphService:   graphService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Users) Me(ctx context.Context, _ *proto.Empty) (*proto.UserResponse, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	user, err := h.accountService.Me(ctx, caller.UserID)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.UserResponse{User: toProtoUser(user, true)}, nil
}

func (h *Users) UpdateProfile(ctx context.Context, req *proto.UpdateProfileRequest) (*proto.UserResponse, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	patch := service.ProfilePatch{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		About:    req.About,
		Password: req.Password,
	}
	if req.Social != nil {
		social := fromProtoSocial(req.Social)
		patch.Social = &social
	}
	if req.Privacy != nil {
		privacy := model.Privacy(*req.Privacy)
		patch.Privacy = &privacy
	}

	user, err := h.accountService.UpdateProfile(ctx, caller.UserID, patch)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.UserResponse{User: toProtoUser(user, true)}, nil
}

// DeleteAccount removes the caller's account.
func (h *Users) DeleteAccount(ctx context.Context, _ *proto.Empty) (*proto.Empty, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	if err := h.accountService.Delete(ctx, caller.UserID); err != nil {
		h.logger.Error("Users handler: account deletion failed",
			"user_id", caller.UserID,
			"error", err.Error())
		return nil, handleError(ctx, err)
	}

	h.logger.Info("Users handler: account deleted",
		"user_id", caller.UserID)

	return &proto.Empty{}, nil
}

// GetUserDetails returns a profile subject to its privacy mode. Anonymous
// callers are allowed.
func (h *Users) GetUserDetails(ctx context.Context, req *proto.UserTarget) (*proto.UserDetailsResponse, error) {
	userID, err := parseID(req.UserId, "user_id")
	if err != nil {
		return nil, handleError(ctx, err)
	}
	viewer, _ := h.contextManager.GetIdentityFromContext(ctx)

	details, err := h.accountService.GetUserDetails(ctx, viewer, userID)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	return &proto.UserDetailsResponse{
		User:             toProtoUser(details.User, details.IsOwner),
		IsOwner:          details.IsOwner,
		IsFriend:         details.IsFriend,
		IsMatchedDonator: details.IsMatchedDonator,
		Followers:        toProtoSummaries(details.Followers),
		Following:        toProtoSummaries(details.Following),
	}, nil
}

func (h *Users) ListUsers(ctx context.Context, _ *proto.Empty) (*proto.ListUsersResponse, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	users, err := h.accountService.ListUsers(ctx, caller.UserID)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	out := make([]*proto.User, 0, len(users))
	for _, u := range users {
		out = append(out, toProtoUser(u, true))
	}
	return &proto.ListUsersResponse{Users: out}, nil
}

func (h *Users) VerifyUser(ctx context.Context, req *proto.UserTarget) (*proto.UserResponse, error) {
	return h.setVerified(ctx, req, h.accountService.VerifyUser)
}

func (h *Users) UnverifyUser(ctx context.Context, req *proto.UserTarget) (*proto.UserResponse, error) {
	return h.setVerified(ctx, req, h.accountService.UnverifyUser)
}

func (h *Users) setVerified(ctx context.Context, req *proto.UserTarget, apply func(context.Context, uuid.UUID, uuid.UUID) (model.User, error)) (*proto.UserResponse, error) {
	caller, target, err := h.callerAndTarget(ctx, req)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	user, err := apply(ctx, caller.UserID, target)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.UserResponse{User: toProtoUser(user, true)}, nil
}

func (h *Users) UploadImage(ctx context.Context, req *proto.UploadImageRequest) (*proto.UserResponse, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	if len(req.Data) == 0 {
		return nil, handleError(ctx, apiErrors.ErrValidation.WithMessage("image data is required"))
	}
	if len(req.Data) > MaxImageSize {
		return nil, handleError(ctx, apiErrors.ErrValidation.WithMessage("image must be at most %d bytes", MaxImageSize))
	}

	user, err := h.accountService.UploadImage(ctx, caller.UserID, service.ImageKind(req.Kind),
		bytes.NewReader(req.Data), int64(len(req.Data)), req.ContentType)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.UserResponse{User: toProtoUser(user, true)}, nil
}

func (h *Users) Follow(ctx context.Context, req *proto.UserTarget) (*proto.Empty, error) {
	return h.edge(ctx, req, h.graphService.Follow)
}

func (h *Users) Unfollow(ctx context.Context, req *proto.UserTarget) (*proto.Empty, error) {
	return h.edge(ctx, req, h.graphService.Unfollow)
}

func (h *Users) Block(ctx context.Context, req *proto.UserTarget) (*proto.Empty, error) {
	return h.edge(ctx, req, h.graphService.Block)
}

func (h *Users) Unblock(ctx context.Context, req *proto.UserTarget) (*proto.Empty, error) {
	return h.edge(ctx, req, h.graphService.Unblock)
}

// edge runs a graph mutation from the caller to the requested user.
func (h *Users) edge(ctx context.Context, req *proto.UserTarget, apply func(context.Context, uuid.UUID, uuid.UUID) error) (*proto.Empty, error) {
	caller, target, err := h.callerAndTarget(ctx, req)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	if err := apply(ctx, caller.UserID, target); err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.Empty{}, nil
}

func (h *Users) SendFollowRequest(ctx context.Context, req *proto.UserTarget) (*proto.FollowRequestResponse, error) {
	caller, target, err := h.callerAndTarget(ctx, req)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	request, err := h.graphService.SendFollowRequest(ctx, caller.UserID, target)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.FollowRequestResponse{Request: toProtoRequest(request)}, nil
}

func (h *Users) UpdateFollowRequest(ctx context.Context, req *proto.UpdateFollowRequestRequest) (*proto.FollowRequestResponse, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	requestID, err := parseID(req.RequestId, "request_id")
	if err != nil {
		return nil, handleError(ctx, err)
	}

	request, err := h.graphService.UpdateRequestStatus(ctx, requestID, caller.UserID, model.RequestStatus(req.Status))
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.FollowRequestResponse{Request: toProtoRequest(request)}, nil
}

func (h *Users) GetFollowRequest(ctx context.Context, req *proto.FollowRequestTarget) (*proto.FollowRequestResponse, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	requestID, err := parseID(req.RequestId, "request_id")
	if err != nil {
		return nil, handleError(ctx, err)
	}

	request, err := h.graphService.GetFollowRequest(ctx, requestID, caller.UserID)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.FollowRequestResponse{Request: toProtoRequest(request)}, nil
}

func (h *Users) ListFollowRequests(ctx context.Context, _ *proto.Empty) (*proto.ListFollowRequestsResponse, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	requests, err := h.graphService.ListPendingFollowRequests(ctx, caller.UserID)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	out := make([]*proto.FollowRequest, 0, len(requests))
	for _, r := range requests {
		out = append(out, toProtoRequest(r))
	}
	return &proto.ListFollowRequestsResponse{Requests: out}, nil
}

// GetFollowerStatistics defaults to the caller when no user is named.
func (h *Users) GetFollowerStatistics(ctx context.Context, req *proto.UserTarget) (*proto.FollowerStatistics, error) {
	userID, err := h.targetOrSelf(ctx, req)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	stats, err := h.graphService.GetFollowerStatistics(ctx, userID)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	return &proto.FollowerStatistics{
		UserId:               stats.UserID.String(),
		FollowersAmount:      int32(stats.FollowersAmount),
		FollowingUsersAmount: int32(stats.FollowingUsersAmount),
		TotalDonatedSeed:     stats.TotalDonatedSeed,
		Followers:            idStrings(stats.Followers),
		FollowingUsers:       idStrings(stats.FollowingUsers),
		BlockedUsers:         idStrings(stats.BlockedUsers),
		UserBlockedBy:        idStrings(stats.UserBlockedBy),
	}, nil
}

func (h *Users) ListFollowers(ctx context.Context, req *proto.UserTarget) (*proto.UserSummaries, error) {
	return h.summaries(ctx, req, h.graphService.ListFollowers)
}

func (h *Users) ListFollowing(ctx context.Context, req *proto.UserTarget) (*proto.UserSummaries, error) {
	return h.summaries(ctx, req, h.graphService.ListFollowing)
}

// ListBlocked lists the users the caller blocked.
func (h *Users) ListBlocked(ctx context.Context, _ *proto.Empty) (*proto.UserSummaries, error) {
	return h.summaries(ctx, &proto.UserTarget{}, h.graphService.ListBlocked)
}

func (h *Users) summaries(ctx context.Context, req *proto.UserTarget, list func(context.Context, uuid.UUID) ([]model.UserSummary, error)) (*proto.UserSummaries, error) {
	userID, err := h.targetOrSelf(ctx, req)
	if err != nil {
		return nil, handleError(ctx, err)
	}

	users, err := list(ctx, userID)
	if err != nil {
		return nil, handleError(ctx, err)
	}
	return &proto.UserSummaries{Users: toProtoSummaries(users)}, nil
}

func (h *Users) callerAndTarget(ctx context.Context, req *proto.UserTarget) (model.Identity, uuid.UUID, error) {
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return model.Identity{}, uuid.Nil, err
	}
	target, err := parseID(req.UserId, "user_id")
	if err != nil {
		return model.Identity{}, uuid.Nil, err
	}
	return caller, target, nil
}

func (h *Users) targetOrSelf(ctx context.Context, req *proto.UserTarget) (uuid.UUID, error) {
	if req.UserId != "" {
		return parseID(req.UserId, "user_id")
	}
	caller, err := identity(ctx, h.contextManager)
	if err != nil {
		return uuid.Nil, err
	}
	return caller.UserID, nil
}
