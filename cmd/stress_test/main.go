package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rl1809/weaselparts/internal/adapter/storage"
	"github.com/rl1809/weaselparts/internal/core/domain"
	"github.com/rl1809/weaselparts/internal/core/scan"
	"github.com/rl1809/weaselparts/internal/core/service"
)

const stationCount = 50

// outcomes counts presenter calls across all stations.
type outcomes struct {
	removed        atomic.Int32
	alreadyRemoved atomic.Int32
	alreadyStored  atomic.Int32
	needsBin       atomic.Int32
	errors         atomic.Int32
}

type countingPresenter struct {
	o *outcomes
}

func (p countingPresenter) ShowNeedsBin(domain.Component, []domain.Cabinet) { p.o.needsBin.Add(1) }
func (p countingPresenter) ShowAlreadyStored(domain.Component)              { p.o.alreadyStored.Add(1) }
func (p countingPresenter) ShowUnknownCode(string)                          { p.o.errors.Add(1) }
func (p countingPresenter) ShowRemovalConfirmed(domain.Component)           { p.o.removed.Add(1) }
func (p countingPresenter) ShowAlreadyRemoved()                             { p.o.alreadyRemoved.Add(1) }
func (p countingPresenter) ShowStored(domain.Component)                     {}
func (p countingPresenter) ShowError(string)                                { p.o.errors.Add(1) }

func main() {
	ctx := context.Background()

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	// Fresh barcode per run so guards left by an earlier run do not interfere
	barcode := "STRESS-" + strings.ToUpper(uuid.New().String()[:8])

	db, err := storage.OpenSQLite(ctx, ":memory:")
	if err != nil {
		log.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	adapter := storage.NewSQLiteAdapter(db)
	if err := adapter.Migrate(ctx); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	inventory := service.NewInventoryService(adapter, storage.NewRedisAdapter(rdb), zap.NewNop())
	cab, err := inventory.CreateCabinet(ctx, domain.Cabinet{Name: "Stress"})
	if err != nil {
		log.Fatalf("failed to create cabinet: %v", err)
	}
	if _, err := inventory.CreateComponent(ctx, domain.Component{Barcode: barcode, Name: "Stress part", CabinetID: &cab.ID}); err != nil {
		log.Fatalf("failed to create component: %v", err)
	}

	var o outcomes
	stations := make([]*scan.Interpreter, stationCount)
	for i := range stations {
		stations[i] = scan.NewInterpreter(scan.DefaultConfig(), inventory, countingPresenter{&o})
	}

	// Every station sees the component stored before anyone removes it
	var wg sync.WaitGroup
	for _, st := range stations {
		wg.Add(1)
		go func(st *scan.Interpreter) {
			defer wg.Done()
			st.OnPaste(barcode, time.Now())
		}(st)
	}
	wg.Wait()

	// Then all stations rescan at once
	start := time.Now()
	for _, st := range stations {
		wg.Add(1)
		go func(st *scan.Interpreter) {
			defer wg.Done()
			st.OnPaste(barcode, time.Now())
		}(st)
	}
	wg.Wait()
	elapsed := time.Since(start)

	for _, st := range stations {
		st.Close()
	}

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Barcode:          %s\n", barcode)
	fmt.Printf("Stations:         %d\n", stationCount)
	fmt.Printf("Already stored:   %d\n", o.alreadyStored.Load())
	fmt.Printf("Removed:          %d\n", o.removed.Load())
	fmt.Printf("Already removed:  %d\n", o.alreadyRemoved.Load())
	fmt.Printf("Errors:           %d\n", o.errors.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if o.alreadyStored.Load() == stationCount {
		fmt.Println("PASS: every station saw the component stored")
	} else {
		fmt.Printf("FAIL: expected %d first scans to see it stored, got %d\n", stationCount, o.alreadyStored.Load())
	}

	if o.removed.Load() == 1 {
		fmt.Println("PASS: exactly one station removed the component")
	} else {
		fmt.Printf("FAIL: expected 1 removal, got %d\n", o.removed.Load())
	}

	c, err := inventory.GetComponent(ctx, barcode)
	if err != nil {
		log.Fatalf("failed to reload component: %v", err)
	}
	acts, _ := inventory.ListActivities(ctx, barcode)
	removals := 0
	for _, a := range acts {
		if a.Activities.DeStor {
			removals++
		}
	}
	if !c.Stored() && removals == 1 {
		fmt.Println("PASS: component unstored with one DE-STOR record")
	} else {
		fmt.Printf("FAIL: stored=%v, DE-STOR records=%d\n", c.Stored(), removals)
	}
}
