package service_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/weaselparts/internal/adapter/storage"
	"github.com/rl1809/weaselparts/internal/core/domain"
	"github.com/rl1809/weaselparts/internal/core/scan"
	"github.com/rl1809/weaselparts/internal/core/scan/scantest"
	"github.com/rl1809/weaselparts/internal/core/service"
	"github.com/rl1809/weaselparts/internal/port"
)

type testEnv struct {
	svc     *service.InventoryService
	cleanup func()
}

func setupSQLiteEnv(t *testing.T) *testEnv {
	ctx := context.Background()

	db, err := storage.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	adapter := storage.NewSQLiteAdapter(db)
	if err := adapter.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &testEnv{
		svc:     service.NewInventoryService(adapter, storage.NewMemoryCache(), nil),
		cleanup: func() { db.Close() },
	}
}

func setupMySQLEnv(t *testing.T) *testEnv {
	ctx := context.Background()

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "root:root@tcp(localhost:3306)/weaselparts?parseTime=true&clientFoundRows=true"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	db, err := storage.OpenMySQL(ctx, mysqlDSN)
	if err != nil {
		rdb.Close()
		t.Skipf("MySQL not available: %v", err)
	}

	adapter := storage.NewMySQLAdapter(db)
	if err := adapter.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &testEnv{
		svc: service.NewInventoryService(adapter, storage.NewRedisAdapter(rdb), nil),
		cleanup: func() {
			rdb.Close()
			db.Close()
		},
	}
}

// station is one scan interpreter wired to the real service.
type station struct {
	clock *scantest.ManualClock
	rec   *scantest.Recorder
	it    *scan.Interpreter
}

func newStation(inv port.Inventory) *station {
	s := &station{
		clock: scantest.NewManualClock(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)),
		rec:   &scantest.Recorder{},
	}
	s.it = scan.NewInterpreter(scan.DefaultConfig(), inv, s.rec, scan.WithClock(s.clock))
	return s
}

func (s *station) scan(code string) {
	for _, r := range code {
		s.it.OnCharacter(r, s.clock.Now())
		s.clock.Advance(15 * time.Millisecond)
	}
	s.clock.Advance(200 * time.Millisecond)
}

func (s *station) last(t *testing.T) scantest.Call {
	t.Helper()
	c, ok := s.rec.Last()
	if !ok {
		t.Fatal("expected a presenter call")
	}
	return c
}

func runStoreAndRemoveFlow(t *testing.T, env *testEnv) {
	ctx := context.Background()
	suffix := strings.ToUpper(uuid.New().String()[:8])
	barcode := "WP-" + suffix

	cab, err := env.svc.CreateCabinet(ctx, domain.Cabinet{Name: "Integration-" + suffix})
	if err != nil {
		t.Fatalf("create cabinet: %v", err)
	}
	if _, err := env.svc.CreateComponent(ctx, domain.Component{Barcode: barcode, Name: "Pressure sensor"}); err != nil {
		t.Fatalf("create component: %v", err)
	}
	defer env.svc.DeleteComponent(ctx, barcode)
	defer env.svc.DeleteCabinet(ctx, cab.ID)

	st := newStation(env.svc)

	// Unstored component asks for a cabinet
	st.scan(barcode)
	call := st.last(t)
	if call.Kind != scantest.CallNeedsBin {
		t.Fatalf("expected needs-bin, got %s", call.Kind)
	}

	st.it.ChooseBin(ctx, barcode, cab.ID)
	call = st.last(t)
	if call.Kind != scantest.CallStored || call.Component.CabinetName != cab.Name {
		t.Fatalf("expected stored in %s, got %+v", cab.Name, call)
	}

	// Scanning the part just stored is a fresh lookup, the second scan removes it
	st.scan(barcode)
	if call = st.last(t); call.Kind != scantest.CallAlreadyStored {
		t.Fatalf("expected already-stored, got %s", call.Kind)
	}
	st.clock.Advance(time.Second)
	st.scan(barcode)
	call = st.last(t)
	if call.Kind != scantest.CallRemovalConfirmed || call.Component.CabinetName != cab.Name {
		t.Fatalf("expected removal from %s, got %+v", cab.Name, call)
	}

	c, err := env.svc.GetComponent(ctx, barcode)
	if err != nil {
		t.Fatalf("get component: %v", err)
	}
	if c.Stored() {
		t.Error("component should no longer be stored")
	}

	acts, err := env.svc.ListActivities(ctx, barcode)
	if err != nil {
		t.Fatalf("list activities: %v", err)
	}
	if len(acts) != 2 || !acts[0].Activities.DeStor || !acts[1].Activities.Stor {
		t.Errorf("expected DE-STOR over STOR, got %+v", acts)
	}
}

func TestIntegration_StoreAndRemove_SQLite(t *testing.T) {
	env := setupSQLiteEnv(t)
	defer env.cleanup()
	runStoreAndRemoveFlow(t, env)
}

func TestIntegration_StoreAndRemove_MySQL(t *testing.T) {
	env := setupMySQLEnv(t)
	defer env.cleanup()
	runStoreAndRemoveFlow(t, env)
}

func TestIntegration_UnknownCode(t *testing.T) {
	env := setupSQLiteEnv(t)
	defer env.cleanup()

	st := newStation(env.svc)
	st.scan("NEW-PART-77")

	call := st.last(t)
	if call.Kind != scantest.CallUnknownCode || call.Barcode != "NEW-PART-77" {
		t.Errorf("expected unknown-code for NEW-PART-77, got %+v", call)
	}
}

func TestIntegration_StationsRaceForRemoval(t *testing.T) {
	env := setupSQLiteEnv(t)
	defer env.cleanup()
	ctx := context.Background()

	cab, err := env.svc.CreateCabinet(ctx, domain.Cabinet{Name: "Shared"})
	if err != nil {
		t.Fatalf("create cabinet: %v", err)
	}
	if _, err := env.svc.CreateComponent(ctx, domain.Component{Barcode: "SHARED-001", CabinetID: &cab.ID}); err != nil {
		t.Fatalf("create component: %v", err)
	}

	stations := make([]*station, 5)
	for i := range stations {
		stations[i] = newStation(env.svc)
		stations[i].scan("SHARED-001")
		if k := stations[i].last(t).Kind; k != scantest.CallAlreadyStored {
			t.Fatalf("station %d: expected already-stored, got %s", i, k)
		}
	}

	var wg sync.WaitGroup
	for _, st := range stations {
		wg.Add(1)
		go func(st *station) {
			defer wg.Done()
			st.scan("SHARED-001")
		}(st)
	}
	wg.Wait()

	removed := 0
	for i, st := range stations {
		switch call := st.last(t); call.Kind {
		case scantest.CallRemovalConfirmed:
			removed++
		case scantest.CallAlreadyRemoved:
		case scantest.CallError:
			if !strings.Contains(call.Message, service.ErrConcurrentUpdate.Error()) {
				t.Errorf("station %d: unexpected error %q", i, call.Message)
			}
		default:
			t.Errorf("station %d: unexpected outcome %s", i, call.Kind)
		}
	}
	if removed != 1 {
		t.Errorf("expected exactly 1 removal, got %d", removed)
	}

	_, err = env.svc.RemoveComponent(ctx, "SHARED-001")
	if !errors.Is(err, service.ErrConcurrentUpdate) {
		t.Errorf("expected guard to still hold after removal, got: %v", err)
	}
}
