package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if err := s.auth.Register(ctx, req.GetUser(), req.GetY1(), req.GetY2()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RegisterResponse{Success: true}, nil
}

func (s *GRPCServer) CreateAuthenticationChallenge(ctx context.Context, req *pb.AuthenticationChallengeRequest) (*pb.AuthenticationChallengeResponse, error) {
	authID, c, err := s.auth.CreateChallenge(ctx, req.GetUser(), req.GetR1(), req.GetR2())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.AuthenticationChallengeResponse{AuthId: authID, C: zkp.FormatHex(c)}, nil
}

func (s *GRPCServer) VerifyAuthentication(ctx context.Context, req *pb.AuthenticationAnswerRequest) (*pb.AuthenticationAnswerResponse, error) {
	grant, err := s.auth.VerifyAnswer(ctx, req.GetAuthId(), req.GetS())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.AuthenticationAnswerResponse{SessionId: grant.SessionID, AccessToken: grant.AccessToken}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, _ *pb.WhoAmIRequest) (*pb.WhoAmIResponse, error) {
	session, ok := sessionFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing session")
	}
	return &pb.WhoAmIResponse{
		User:      session.UserID,
		SessionId: session.ID,
		ExpiresAt: session.ExpiresAt.Unix(),
	}, nil
}

// toStatus maps service errors to gRPC status codes. Internal failures are
// logged and reported without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrPreconditionFailed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, "proof rejected")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
