package client

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient

	mu           sync.RWMutex
	sessionToken string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.SessionToken(); token != "" {
		ctx = withSessionToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects to endpointURL without transport security. Extra
// dial options are appended, e.g. a custom dialer in tests.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.sessionTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAuthServiceClient(conn)
	return c, nil
}

// SessionToken returns the access token of the last successful login.
func (s *GRPCClient) SessionToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionToken
}

// SetSessionToken replaces the token attached to outgoing calls.
func (s *GRPCClient) SetSessionToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionToken = token
}

func (s *GRPCClient) Register(ctx context.Context, user string, y1, y2 *big.Int) error {
	req := &pb.RegisterRequest{User: user, Y1: zkp.FormatHex(y1), Y2: zkp.FormatHex(y2)}

	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) CreateChallenge(ctx context.Context, user string, r1, r2 *big.Int) (string, *big.Int, error) {
	req := &pb.AuthenticationChallengeRequest{User: user, R1: zkp.FormatHex(r1), R2: zkp.FormatHex(r2)}

	resp, err := s.client.CreateAuthenticationChallenge(ctx, req)
	if err != nil {
		return "", nil, s.mapError(err)
	}

	c, err := zkp.ParseHex(resp.GetC())
	if err != nil || resp.GetAuthId() == "" {
		return "", nil, fmt.Errorf("%w: challenge", ErrMalformedResponse)
	}
	return resp.GetAuthId(), c, nil
}

func (s *GRPCClient) VerifyAnswer(ctx context.Context, authID string, answer *big.Int) (*Session, error) {
	req := &pb.AuthenticationAnswerRequest{AuthId: authID, S: zkp.FormatHex(answer)}

	resp, err := s.client.VerifyAuthentication(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	s.SetSessionToken(resp.GetAccessToken())

	return &Session{ID: resp.GetSessionId(), AccessToken: resp.GetAccessToken()}, nil
}

func (s *GRPCClient) WhoAmI(ctx context.Context) (*Identity, error) {
	resp, err := s.client.WhoAmI(ctx, &pb.WhoAmIRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &Identity{
		User:      resp.GetUser(),
		SessionID: resp.GetSessionId(),
		ExpiresAt: time.Unix(resp.GetExpiresAt(), 0),
	}, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, st.Message())
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrNotRegistered, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
