package handler

import (
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dtroode/garden-server/internal/api/grpc/proto"
	"github.com/dtroode/garden-server/internal/model"
)

// toProtoUser converts a stored user. Private fields are only filled for
// the owner.
func toProtoUser(u model.User, owner bool) *proto.User {
	out := &proto.User{
		Id:                   u.ID.String(),
		Name:                 u.Name,
		Username:             u.Username,
		About:                u.About,
		ProfileImage:         u.ProfileImage,
		CoverImage:           u.CoverImage,
		Social:               toProtoSocial(u.Social),
		Privacy:              string(u.Privacy),
		IsVerified:           u.IsVerified,
		IsAdmin:              u.IsAdmin,
		FollowersAmount:      int32(u.FollowersAmount),
		FollowingUsersAmount: int32(u.FollowingUsersAmount),
		TotalDonatedSeed:     u.TotalDonatedSeed,
		CreatedAt:            timestamppb.New(u.CreatedAt),
	}
	if owner {
		out.Email = u.Email
		out.TwoFactorEnabled = u.TwoFactor.Enabled
	}
	return out
}

func toProtoSocial(s model.SocialLinks) *proto.SocialLinks {
	return &proto.SocialLinks{
		Dribbble:  s.Dribbble,
		Behance:   s.Behance,
		Facebook:  s.Facebook,
		Twitter:   s.Twitter,
		Instagram: s.Instagram,
		Site:      s.Site,
		Tiktok:    s.Tiktok,
	}
}

func fromProtoSocial(s *proto.SocialLinks) model.SocialLinks {
	return model.SocialLinks{
		Dribbble:  s.GetDribbble(),
		Behance:   s.GetBehance(),
		Facebook:  s.GetFacebook(),
		Twitter:   s.GetTwitter(),
		Instagram: s.GetInstagram(),
		Site:      s.GetSite(),
		Tiktok:    s.GetTiktok(),
	}
}

func toProtoSummaries(in []model.UserSummary) []*proto.UserSummary {
	out := make([]*proto.UserSummary, 0, len(in))
	for _, s := range in {
		out = append(out, &proto.UserSummary{
			Id:           s.ID.String(),
			Name:         s.Name,
			Username:     s.Username,
			ProfileImage: s.ProfileImage,
			IsVerified:   s.IsVerified,
			IsFollowing:  s.IsFollowing,
		})
	}
	return out
}

func toProtoRequest(r model.FollowRequest) *proto.FollowRequest {
	return &proto.FollowRequest{
		Id:        r.ID.String(),
		FromId:    r.FromID.String(),
		ToId:      r.ToID.String(),
		Status:    string(r.Status),
		CreatedAt: timestamppb.New(r.CreatedAt),
		UpdatedAt: timestamppb.New(r.UpdatedAt),
	}
}

func toProtoSession(s model.Session) *proto.Session {
	return &proto.Session{
		Id:        s.ID.String(),
		UserAgent: s.UserAgent,
		CreatedAt: timestamppb.New(s.CreatedAt),
	}
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
