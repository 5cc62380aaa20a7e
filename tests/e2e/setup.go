//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"gym-reserve/cmd/bootstrap"
	"gym-reserve/cmd/bootstrap/components"
	"gym-reserve/internal/pkg/config"
	"gym-reserve/tests/common/fakebackend"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const (
	BadmintonVenueID = int64(10001)
	TableTennisID    = int64(10029)
)

// ------------------------------------------------------------
// 各テスト用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, seed func(*fakebackend.Server)) (*fakebackend.Server, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	backend := fakebackend.New(t)
	seed(backend)

	router, cfg, app := buildE2EApp(backend.URL)
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	return backend, router, cfg
}

// SeedDefaultVenues registers a badminton hall open every day at 19:00-21:00,
// with 20:00 held by the venue, and a table tennis room open at 08:00.
func SeedDefaultVenues(b *fakebackend.Server) {
	intervals := fakebackend.EveryDay(500, "19:00", "20:00")
	for i := range intervals {
		if intervals[i].Start == "20:00" {
			intervals[i].Reserve = 1
		}
	}
	b.AddVenue(BadmintonVenueID, fakebackend.Venue{
		Title:         "羽毛球馆",
		CategoryID:    3,
		CategoryTitle: "羽毛球",
		StoreID:       "9",
		Places: []fakebackend.Place{
			{ID: 77, Title: "场地4号"},
			{ID: 71, Title: "场地1号"},
			{ID: 80, Title: "场地10号"},
		},
		Intervals: intervals,
	})
	b.AddVenue(TableTennisID, fakebackend.Venue{
		Title:         "乒乓球室",
		CategoryID:    5,
		CategoryTitle: "乒乓球",
		StoreID:       "9",
		Places:        []fakebackend.Place{{ID: 201, Title: "场地1号"}},
		Intervals:     fakebackend.EveryDay(900, "08:00"),
	})
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// ------------------------------------------------------------
func buildE2EApp(backendURL string) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			c := config.NewTestConfig()
			c.Backend.BaseURL = backendURL
			c.Refresh.VenueInterval = 0
			return c
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		components.BackendModule,
		components.SessionModule,
		components.SchedulerModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	return router, cfg, app
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Backend *fakebackend.Server
	Config  config.Config

	// Seed defaults to SeedDefaultVenues
	Seed func(*fakebackend.Server)
}

// SetupTest gives every test a fresh app, so no cached orders leak between tests.
func (s *SharedSuite) SetupTest() {
	seed := s.Seed
	if seed == nil {
		seed = SeedDefaultVenues
	}
	s.Backend, s.Router, s.Config = setupE2EEnvironment(s.T(), seed)
	require.NotNil(s.T(), s.Router, "Routerのセットアップに失敗")
}
