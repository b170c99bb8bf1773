package client

import (
	"context"
	"errors"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/rl1809/weaselparts/internal/adapter/handler"
	"github.com/rl1809/weaselparts/internal/adapter/handler/pb"
	"github.com/rl1809/weaselparts/internal/adapter/storage"
	"github.com/rl1809/weaselparts/internal/core/domain"
	"github.com/rl1809/weaselparts/internal/core/service"
	"github.com/rl1809/weaselparts/internal/port"
)

var _ port.Inventory = (*InventoryClient)(nil)

func startServer(t *testing.T) (*InventoryClient, *service.InventoryService) {
	t.Helper()
	ctx := context.Background()

	db, err := storage.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	adapter := storage.NewSQLiteAdapter(db)
	if err := adapter.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := service.NewInventoryService(adapter, storage.NewMemoryCache(), nil)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterInventoryServer(srv, handler.NewGRPCHandler(svc, nil))
	go srv.Serve(lis)

	c, err := Dial("passthrough:///bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	t.Cleanup(func() {
		c.Close()
		srv.Stop()
		db.Close()
	})
	return c, svc
}

func TestClient_GetComponent_NotFound(t *testing.T) {
	c, _ := startServer(t)

	_, err := c.GetComponent(context.Background(), "NOPE-0001")
	if !errors.Is(err, domain.ErrComponentNotFound) {
		t.Errorf("expected ErrComponentNotFound, got: %v", err)
	}
}

func TestClient_StoreAndRemove(t *testing.T) {
	c, svc := startServer(t)
	ctx := context.Background()

	cab, err := svc.CreateCabinet(ctx, domain.Cabinet{Name: "West"})
	if err != nil {
		t.Fatalf("create cabinet: %v", err)
	}
	if _, err := svc.CreateComponent(ctx, domain.Component{Barcode: "FUSE-1010", Name: "Fuse"}); err != nil {
		t.Fatalf("create component: %v", err)
	}

	got, err := c.GetComponent(ctx, "FUSE-1010")
	if err != nil {
		t.Fatalf("get component: %v", err)
	}
	if got.Name != "Fuse" || got.Stored() {
		t.Errorf("unexpected component: %+v", got)
	}
	if got.CabinetID != nil {
		t.Errorf("expected no cabinet on the wire, got %d", *got.CabinetID)
	}

	cabinets, err := c.ListCabinets(ctx)
	if err != nil {
		t.Fatalf("list cabinets: %v", err)
	}
	if len(cabinets) != 1 || cabinets[0].Name != "West" {
		t.Errorf("unexpected cabinets: %+v", cabinets)
	}

	tr, err := c.StoreComponent(ctx, "FUSE-1010", cab.ID)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if tr.NewCabinetID == nil || *tr.NewCabinetID != cab.ID {
		t.Errorf("unexpected transfer: %+v", tr)
	}

	got, _ = c.GetComponent(ctx, "FUSE-1010")
	if got.CabinetName != "West" {
		t.Errorf("expected cabinet West, got %q", got.CabinetName)
	}

	tr, err = c.RemoveComponent(ctx, "FUSE-1010")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if tr.PreviousCabinetID == nil || *tr.PreviousCabinetID != cab.ID {
		t.Errorf("unexpected transfer: %+v", tr)
	}

	_, err = c.RemoveComponent(ctx, "FUSE-1010")
	if !errors.Is(err, service.ErrConcurrentUpdate) {
		t.Errorf("expected ErrConcurrentUpdate, got: %v", err)
	}
}

func TestClient_StoreUnknownCabinet(t *testing.T) {
	c, svc := startServer(t)
	ctx := context.Background()

	if _, err := svc.CreateComponent(ctx, domain.Component{Barcode: "FUSE-2020"}); err != nil {
		t.Fatalf("create component: %v", err)
	}
	_, err := c.StoreComponent(ctx, "FUSE-2020", 404)
	if !errors.Is(err, domain.ErrCabinetNotFound) {
		t.Errorf("expected ErrCabinetNotFound, got: %v", err)
	}
}
