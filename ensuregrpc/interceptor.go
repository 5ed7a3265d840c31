package ensuregrpc

import (
	"context"

	"github.com/banglin/go-ensure/ensure"
	"github.com/banglin/go-ensure/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Validator is implemented by request messages that can check themselves,
// typically with ensure.Field on each required string.
type Validator interface {
	Validate() error
}

// Interceptor gates requests on Validate and maps presence failures returned
// by handlers to InvalidArgument.
type Interceptor struct {
	logger *zap.Logger
}

// NewInterceptor creates a new interceptor. A nil logger uses the package
// logger.
func NewInterceptor(l *zap.Logger) *Interceptor {
	if l == nil {
		l = logger.Named("ensure.grpc")
	}
	return &Interceptor{logger: l}
}

// Unary returns a unary server interceptor.
func (i *Interceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if v, ok := req.(Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, i.reject(info.FullMethod, err)
			}
		}

		resp, err := handler(ctx, req)
		if err != nil {
			return resp, i.mapError(info.FullMethod, err)
		}
		return resp, nil
	}
}

// Stream returns a stream server interceptor. Each received message that
// implements Validator is checked before the handler sees it.
func (i *Interceptor) Stream() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		err := handler(srv, &validatingStream{ServerStream: ss, i: i, method: info.FullMethod})
		if err != nil {
			return i.mapError(info.FullMethod, err)
		}
		return nil
	}
}

func (i *Interceptor) reject(method string, err error) error {
	mapped := Status(err)
	i.logger.Warn("gRPC request rejected",
		zap.String("method", method),
		zap.String("code", status.Code(mapped).String()),
		zap.Error(err),
	)
	return mapped
}

func (i *Interceptor) mapError(method string, err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	if len(ensure.Errors(err)) == 0 {
		return err
	}
	i.logger.Warn("gRPC handler returned presence failure",
		zap.String("method", method),
		zap.Error(err),
	)
	return Status(err)
}

type validatingStream struct {
	grpc.ServerStream
	i      *Interceptor
	method string
}

func (s *validatingStream) RecvMsg(m interface{}) error {
	if err := s.ServerStream.RecvMsg(m); err != nil {
		return err
	}
	if v, ok := m.(Validator); ok {
		if err := v.Validate(); err != nil {
			return s.i.reject(s.method, err)
		}
	}
	return nil
}
