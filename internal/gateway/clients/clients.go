// Package clients creates the gateway's internal RPC client handles, one
// persistent connection per backend service.
package clients

import (
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
)

type Backends struct {
	Users  pb.UserServiceClient
	Orders pb.OrderServiceClient
	conns  []*grpc.ClientConn
}

// Dial opens one connection per backend. Connection establishment is lazy;
// an unreachable backend surfaces as a call error on first use.
func Dial(userAddr, orderAddr string) (*Backends, error) {
	userConn, err := grpc.NewClient(userAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	orderConn, err := grpc.NewClient(orderAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		_ = userConn.Close()
		return nil, err
	}

	return &Backends{
		Users:  pb.NewUserServiceClient(userConn),
		Orders: pb.NewOrderServiceClient(orderConn),
		conns:  []*grpc.ClientConn{userConn, orderConn},
	}, nil
}

func (b *Backends) Close() error {
	var errs []error
	for _, conn := range b.conns {
		errs = append(errs, conn.Close())
	}
	return errors.Join(errs...)
}
