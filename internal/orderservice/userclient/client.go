// Package userclient holds the order service's client handle to the user
// service.
package userclient

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/riyal-rj/Microservices-GRPC/internal/proto"
)

type Client struct {
	conn *grpc.ClientConn
	api  pb.UserServiceClient
}

// Dial opens a persistent connection to the user service. Connection
// establishment is lazy; a dead peer surfaces as a call error, not here.
func Dial(target string) (*Client, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	return &Client{conn: conn, api: pb.NewUserServiceClient(conn)}, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*pb.GetUserResponse, error) {
	return c.api.GetUser(ctx, &pb.GetUserRequest{UserId: userID})
}

func (c *Client) Close() error {
	return c.conn.Close()
}
