package computation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"orderprocessing/internal/apperrors"
	"orderprocessing/internal/entities"
)

const (
	serviceName = "computation-service"

	ComputeMethod = "/computation.v1.ComputationService/Compute"
	computeLabel  = "Compute"
)

const msgRequestFailed = "Computation service request failed"

// ComputationGateway вызывает удаленный сервис вычислений. Повторов нет: один вызов на заказ.
type ComputationGateway struct {
	client  client
	timeout time.Duration
}

func New(client client, timeout time.Duration) *ComputationGateway {
	return &ComputationGateway{
		client:  client,
		timeout: timeout,
	}
}

func (g *ComputationGateway) Invoke(ctx context.Context, orderID entities.OrderID) (*entities.APIResponse, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp := &structpb.Struct{}
	start := time.Now()

	err := g.client.Invoke(ctx, ComputeMethod, toRequest(orderID), resp)

	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, computeLabel, getGRPCCode(err)).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, toGatewayError(ctx, orderID, err)
	}

	return toDomain(resp), nil
}

// toGatewayError: отмена родительского контекста не считается отказом сервиса,
// все остальное превращается в RemoteError с grpc-кодом.
func toGatewayError(ctx context.Context, orderID entities.OrderID, err error) error {
	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.Canceled) {
		return fmt.Errorf("gateway computation, compute %s: %w", orderID, ctxErr)
	}

	var code *int
	if st, ok := status.FromError(err); ok {
		c := int(st.Code())
		code = &c
	}
	return apperrors.NewRemoteError(msgRequestFailed, code, fmt.Errorf("compute %s: %w", orderID, err))
}

func getGRPCCode(err error) string {
	if err == nil {
		return codes.OK.String()
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return codes.Unknown.String()
}
