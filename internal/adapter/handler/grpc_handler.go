package handler

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/weaselparts/internal/adapter/handler/pb"
	"github.com/rl1809/weaselparts/internal/core/domain"
	"github.com/rl1809/weaselparts/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedInventoryServer
	inventory *service.InventoryService
	logger    *zap.Logger
}

func NewGRPCHandler(inventory *service.InventoryService, logger *zap.Logger) *GRPCHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GRPCHandler{inventory: inventory, logger: logger.With(zap.String("component", "grpc"))}
}

func (h *GRPCHandler) GetComponent(ctx context.Context, req *pb.GetComponentRequest) (*pb.ComponentResponse, error) {
	c, err := h.inventory.GetComponent(ctx, req.GetBarcode())
	if err != nil {
		return nil, h.statusError(err)
	}
	return &pb.ComponentResponse{Component: ComponentToPB(c)}, nil
}

func (h *GRPCHandler) ListCabinets(ctx context.Context, req *pb.ListCabinetsRequest) (*pb.ListCabinetsResponse, error) {
	cabinets, err := h.inventory.ListCabinets(ctx)
	if err != nil {
		return nil, h.statusError(err)
	}
	resp := &pb.ListCabinetsResponse{Cabinets: make([]*pb.Cabinet, 0, len(cabinets))}
	for _, c := range cabinets {
		resp.Cabinets = append(resp.Cabinets, &pb.Cabinet{
			Id:             c.ID,
			Name:           c.Name,
			Location:       c.Location,
			Description:    c.Description,
			ComponentCount: int32(c.ComponentCount),
		})
	}
	return resp, nil
}

func (h *GRPCHandler) StoreComponent(ctx context.Context, req *pb.StoreComponentRequest) (*pb.TransferResponse, error) {
	tr, err := h.inventory.StoreComponent(ctx, req.GetBarcode(), req.GetCabinetId())
	if err != nil {
		return nil, h.statusError(err)
	}
	return &pb.TransferResponse{PreviousCabinetId: tr.PreviousCabinetID, NewCabinetId: tr.NewCabinetID}, nil
}

func (h *GRPCHandler) RemoveComponent(ctx context.Context, req *pb.RemoveComponentRequest) (*pb.TransferResponse, error) {
	tr, err := h.inventory.RemoveComponent(ctx, req.GetBarcode())
	if err != nil {
		return nil, h.statusError(err)
	}
	return &pb.TransferResponse{PreviousCabinetId: tr.PreviousCabinetID}, nil
}

func (h *GRPCHandler) statusError(err error) error {
	switch {
	case errors.Is(err, domain.ErrComponentNotFound), errors.Is(err, domain.ErrCabinetNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidBarcode), errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrConcurrentUpdate):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	h.logger.Error("rpc failed", zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

func ComponentToPB(c *domain.Component) *pb.Component {
	return &pb.Component{
		Id:                  c.ID,
		Barcode:             c.Barcode,
		Name:                c.Name,
		Description:         c.Description,
		Project:             c.Project,
		ResponsibleEngineer: c.ResponsibleEngineer,
		Standard:            c.Standard,
		Quantity:            int32(c.Quantity),
		Status:              string(c.Status),
		CabinetId:           c.CabinetID,
		CabinetName:         c.CabinetName,
	}
}
