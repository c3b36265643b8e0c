package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func callWithAuth(t *testing.T, ctx context.Context, method string) (bool, error) {
	t.Helper()

	interceptor := AuthInterceptor("secret_token", zap.NewNop())
	handlerCalled := false
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return nil, nil
	}

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, handler)
	return handlerCalled, err
}

func TestAuthInterceptor(t *testing.T) {
	const protectedMethod = "/golinks.v1.LinkService/CreateLink"

	t.Run("Valid token", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Bearer secret_token"))

		called, err := callWithAuth(t, ctx, protectedMethod)
		assert.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("Invalid token", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Bearer wrong_token"))

		called, err := callWithAuth(t, ctx, protectedMethod)
		assert.False(t, called)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Unauthenticated, st.Code())
	})

	t.Run("Missing metadata", func(t *testing.T) {
		called, err := callWithAuth(t, context.Background(), protectedMethod)
		assert.False(t, called)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Unauthenticated, st.Code())
	})

	t.Run("Malformed header", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(),
			metadata.Pairs("authorization", "Basic secret_token"))

		called, err := callWithAuth(t, ctx, protectedMethod)
		assert.False(t, called)
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Unauthenticated, st.Code())
	})

	t.Run("Public method without token", func(t *testing.T) {
		called, err := callWithAuth(t, context.Background(), "/golinks.v1.LinkService/ResolveLink")
		assert.NoError(t, err)
		assert.True(t, called)

		called, err = callWithAuth(t, context.Background(), "/golinks.v1.LinkService/Ping")
		assert.NoError(t, err)
		assert.True(t, called)
	})
}

func TestLoggingInterceptor(t *testing.T) {
	interceptor := LoggingInterceptor(zap.NewNop())

	resp, err := interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/golinks.v1.LinkService/Ping"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return "pong", nil
		})
	assert.NoError(t, err)
	assert.Equal(t, "pong", resp)

	// Ошибки обработчика проходят через интерцептор без изменений
	handlerErr := status.Error(codes.NotFound, "short code not found")
	_, err = interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/golinks.v1.LinkService/GetLink"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, handlerErr
		})
	assert.Equal(t, handlerErr, err)
}
