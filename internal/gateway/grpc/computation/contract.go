//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=computation_test
package computation

import (
	"context"

	"google.golang.org/grpc"
)

// client - унарный вызов без сгенерированного стаба, его реализует *grpc.ClientConn.
type client interface {
	Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error
}
