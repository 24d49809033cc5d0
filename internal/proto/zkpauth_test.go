package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
)

func TestDescriptorIndexes(t *testing.T) {
	tests := []struct {
		name string
		msg  interface {
			Descriptor() ([]byte, []int)
			ProtoReflect() protoreflect.Message
		}
		index int
	}{
		{"RegisterRequest", &RegisterRequest{}, 0},
		{"RegisterResponse", &RegisterResponse{}, 1},
		{"AuthenticationChallengeRequest", &AuthenticationChallengeRequest{}, 2},
		{"AuthenticationChallengeResponse", &AuthenticationChallengeResponse{}, 3},
		{"AuthenticationAnswerRequest", &AuthenticationAnswerRequest{}, 4},
		{"AuthenticationAnswerResponse", &AuthenticationAnswerResponse{}, 5},
		{"WhoAmIRequest", &WhoAmIRequest{}, 6},
		{"WhoAmIResponse", &WhoAmIResponse{}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, path := tt.msg.Descriptor()
			require.NotEmpty(t, raw)
			assert.Equal(t, []int{tt.index}, path)

			md := tt.msg.ProtoReflect().Descriptor()
			assert.Equal(t, tt.index, md.Index())
			assert.Equal(t, tt.name, string(md.Name()))
		})
	}
}

func TestServiceDescriptor(t *testing.T) {
	sd := File_zkpauth_proto.Services().ByName("AuthService")
	require.NotNil(t, sd)
	assert.Equal(t, AuthService_ServiceDesc.ServiceName, string(sd.FullName()))
	assert.Equal(t, 4, sd.Methods().Len())
}
