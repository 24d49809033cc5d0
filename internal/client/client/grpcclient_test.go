package client

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	lastRegisterReq  *pb.RegisterRequest
	lastChallengeReq *pb.AuthenticationChallengeRequest
	lastAnswerReq    *pb.AuthenticationAnswerRequest

	registerErr error

	challengeResp *pb.AuthenticationChallengeResponse
	challengeErr  error

	answerResp *pb.AuthenticationAnswerResponse
	answerErr  error

	whoAmIResp *pb.WhoAmIResponse
	whoAmIErr  error
}

func (f *fakePB) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.RegisterResponse, error) {
	f.lastRegisterReq = in
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &pb.RegisterResponse{Success: true}, nil
}

func (f *fakePB) CreateAuthenticationChallenge(ctx context.Context, in *pb.AuthenticationChallengeRequest, opts ...grpc.CallOption) (*pb.AuthenticationChallengeResponse, error) {
	f.lastChallengeReq = in
	return f.challengeResp, f.challengeErr
}

func (f *fakePB) VerifyAuthentication(ctx context.Context, in *pb.AuthenticationAnswerRequest, opts ...grpc.CallOption) (*pb.AuthenticationAnswerResponse, error) {
	f.lastAnswerReq = in
	return f.answerResp, f.answerErr
}

func (f *fakePB) WhoAmI(ctx context.Context, in *pb.WhoAmIRequest, opts ...grpc.CallOption) (*pb.WhoAmIResponse, error) {
	return f.whoAmIResp, f.whoAmIErr
}

func newFakeClient(f *fakePB) *GRPCClient {
	return &GRPCClient{client: f}
}

/*************
 * Tests
 *************/

func TestRegister_SendsHex(t *testing.T) {
	f := &fakePB{}
	c := newFakeClient(f)

	require.NoError(t, c.Register(context.Background(), "dummy", big.NewInt(64), big.NewInt(729)))
	require.NotNil(t, f.lastRegisterReq)
	require.Equal(t, "dummy", f.lastRegisterReq.GetUser())
	require.Equal(t, "40", f.lastRegisterReq.GetY1())
	require.Equal(t, "2d9", f.lastRegisterReq.GetY2())
}

func TestCreateChallenge_ParsesResponse(t *testing.T) {
	f := &fakePB{challengeResp: &pb.AuthenticationChallengeResponse{AuthId: "auth-1", C: "ff"}}
	c := newFakeClient(f)

	authID, ch, err := c.CreateChallenge(context.Background(), "dummy", big.NewInt(1), big.NewInt(10))
	require.NoError(t, err)
	assert.Equal(t, "auth-1", authID)
	assert.Equal(t, int64(255), ch.Int64())
	assert.Equal(t, "a", f.lastChallengeReq.GetR2())
}

func TestCreateChallenge_MalformedResponse(t *testing.T) {
	for _, resp := range []*pb.AuthenticationChallengeResponse{
		{AuthId: "auth-1", C: "zz"},
		{AuthId: "auth-1", C: ""},
		{AuthId: "", C: "ff"},
	} {
		c := newFakeClient(&fakePB{challengeResp: resp})
		_, _, err := c.CreateChallenge(context.Background(), "dummy", big.NewInt(1), big.NewInt(1))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	}
}

func TestVerifyAnswer_StoresToken(t *testing.T) {
	f := &fakePB{answerResp: &pb.AuthenticationAnswerResponse{SessionId: "sess", AccessToken: "tok"}}
	c := newFakeClient(f)

	sess, err := c.VerifyAnswer(context.Background(), "auth-1", big.NewInt(0x1234))
	require.NoError(t, err)
	assert.Equal(t, "sess", sess.ID)
	assert.Equal(t, "tok", sess.AccessToken)
	assert.Equal(t, "tok", c.SessionToken())
	assert.Equal(t, "1234", f.lastAnswerReq.GetS())
}

func TestVerifyAnswer_FailureKeepsOldToken(t *testing.T) {
	f := &fakePB{answerErr: status.Error(codes.PermissionDenied, "proof rejected")}
	c := newFakeClient(f)
	c.SetSessionToken("old")

	_, err := c.VerifyAnswer(context.Background(), "auth-1", big.NewInt(1))
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "old", c.SessionToken())
}

func TestWhoAmI_ConvertsExpiry(t *testing.T) {
	f := &fakePB{whoAmIResp: &pb.WhoAmIResponse{User: "dummy", SessionId: "sess", ExpiresAt: 1_700_000_000}}
	c := newFakeClient(f)

	id, err := c.WhoAmI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dummy", id.User)
	assert.Equal(t, "sess", id.SessionID)
	assert.True(t, id.ExpiresAt.Equal(time.Unix(1_700_000_000, 0)))
}

func TestSessionTokenInterceptor(t *testing.T) {
	c := newFakeClient(&fakePB{})

	var seen []string
	invoker := func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		seen = md.Get(common.SessionTokenHeaderName)
		return nil
	}

	require.NoError(t, c.sessionTokenInterceptor(context.Background(), "/m", nil, nil, nil, invoker))
	assert.Empty(t, seen)

	c.SetSessionToken("tok")
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.SessionTokenHeaderName, "stale")
	require.NoError(t, c.sessionTokenInterceptor(ctx, "/m", nil, nil, nil, invoker))
	assert.Equal(t, []string{"tok"}, seen)
}

func TestMapError(t *testing.T) {
	c := newFakeClient(&fakePB{})

	tests := []struct {
		code codes.Code
		want error
	}{
		{codes.Unauthenticated, ErrUnauthorized},
		{codes.PermissionDenied, ErrUnauthorized},
		{codes.NotFound, ErrNotFound},
		{codes.InvalidArgument, ErrInvalidRequest},
		{codes.FailedPrecondition, ErrNotRegistered},
		{codes.Unavailable, ErrUnavailable},
		{codes.DeadlineExceeded, ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.ErrorIs(t, c.mapError(status.Error(tt.code, "x")), tt.want)
		})
	}

	assert.NoError(t, c.mapError(nil))

	other := c.mapError(status.Error(codes.Internal, "boom"))
	require.Error(t, other)
	for _, sentinel := range []error{ErrUnauthorized, ErrNotFound, ErrInvalidRequest, ErrNotRegistered, ErrUnavailable} {
		assert.False(t, errors.Is(other, sentinel))
	}
}
