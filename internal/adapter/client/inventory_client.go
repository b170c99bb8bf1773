// Package client lets a scan station reach a remote inventory service over
// gRPC.
package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/rl1809/weaselparts/internal/adapter/handler/pb"
	"github.com/rl1809/weaselparts/internal/core/domain"
	"github.com/rl1809/weaselparts/internal/core/service"
)

// InventoryClient implements port.Inventory against a remote server.
type InventoryClient struct {
	conn *grpc.ClientConn
	rpc  pb.InventoryClient
}

func Dial(addr string, opts ...grpc.DialOption) (*InventoryClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial inventory: %w", err)
	}
	return &InventoryClient{conn: conn, rpc: pb.NewInventoryClient(conn)}, nil
}

func (c *InventoryClient) Close() error {
	return c.conn.Close()
}

func (c *InventoryClient) GetComponent(ctx context.Context, barcode string) (*domain.Component, error) {
	resp, err := c.rpc.GetComponent(ctx, &pb.GetComponentRequest{Barcode: barcode})
	if err != nil {
		return nil, fromStatus(err)
	}
	pc := resp.GetComponent()
	if pc == nil {
		return nil, domain.ErrComponentNotFound
	}
	return &domain.Component{
		ID:                  pc.Id,
		Barcode:             pc.Barcode,
		Name:                pc.Name,
		Description:         pc.Description,
		Project:             pc.Project,
		ResponsibleEngineer: pc.ResponsibleEngineer,
		Standard:            pc.Standard,
		Quantity:            int(pc.Quantity),
		Status:              domain.ComponentStatus(pc.Status),
		CabinetID:           pc.CabinetId,
		CabinetName:         pc.CabinetName,
	}, nil
}

func (c *InventoryClient) ListCabinets(ctx context.Context) ([]domain.Cabinet, error) {
	resp, err := c.rpc.ListCabinets(ctx, &pb.ListCabinetsRequest{})
	if err != nil {
		return nil, fromStatus(err)
	}
	cabinets := make([]domain.Cabinet, 0, len(resp.GetCabinets()))
	for _, pc := range resp.GetCabinets() {
		cabinets = append(cabinets, domain.Cabinet{
			ID:             pc.Id,
			Name:           pc.Name,
			Location:       pc.Location,
			Description:    pc.Description,
			ComponentCount: int(pc.ComponentCount),
		})
	}
	return cabinets, nil
}

func (c *InventoryClient) StoreComponent(ctx context.Context, barcode string, cabinetID int64) (domain.Transfer, error) {
	resp, err := c.rpc.StoreComponent(ctx, &pb.StoreComponentRequest{Barcode: barcode, CabinetId: cabinetID})
	if err != nil {
		return domain.Transfer{}, fromStatus(err)
	}
	return domain.Transfer{PreviousCabinetID: resp.PreviousCabinetId, NewCabinetID: resp.NewCabinetId}, nil
}

func (c *InventoryClient) RemoveComponent(ctx context.Context, barcode string) (domain.Transfer, error) {
	resp, err := c.rpc.RemoveComponent(ctx, &pb.RemoveComponentRequest{Barcode: barcode})
	if err != nil {
		return domain.Transfer{}, fromStatus(err)
	}
	return domain.Transfer{PreviousCabinetID: resp.PreviousCabinetId}, nil
}

// fromStatus turns gRPC status codes back into the errors callers match on.
func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		if st.Message() == domain.ErrCabinetNotFound.Error() {
			return domain.ErrCabinetNotFound
		}
		return domain.ErrComponentNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, st.Message())
	case codes.Aborted:
		return service.ErrConcurrentUpdate
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	case codes.Canceled:
		return context.Canceled
	}
	return fmt.Errorf("inventory service: %s", st.Message())
}
