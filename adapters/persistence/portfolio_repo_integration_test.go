package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/pkg/apperror"
	"github.com/hanntran/folio-forge/pkg/logger"
)

type PortfolioRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	repo        portfolio.Repository
}

func (s *PortfolioRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.repo = NewPostgresPortfolioRepo(s.dbPool, logger.NewZapLogger("development"))
}

func (s *PortfolioRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestPortfolioRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(PortfolioRepoIntegrationTestSuite))
}

func sampleRecord(name string) *portfolio.Record {
	return &portfolio.Record{
		ShareID: uuid.New(),
		Profile: portfolio.Profile{
			PersonalInfo: portfolio.PersonalInfo{
				Name:   name,
				Email:  "jane@example.com",
				GitHub: "https://github.com/janedoe",
			},
			Summary:    "Backend engineer.",
			Skills:     []string{"Go", "Postgres"},
			Profession: "Software Developer",
		},
		ProfilePictureURL: "https://cdn.example.com/p.png",
		SelectedTheme:     "Developer Dark",
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Save_And_FindByID() {
	ctx := context.Background()
	rec := sampleRecord("Jane Doe")

	s.NoError(s.repo.Save(ctx, rec))

	found, err := s.repo.FindByID(ctx, rec.ShareID)
	s.NoError(err)
	s.NotNil(found)
	s.Equal(rec.ShareID, found.ShareID)
	s.Equal("Jane Doe", found.Profile.PersonalInfo.Name)
	s.Equal([]string{"Go", "Postgres"}, found.Profile.Skills)
	s.Equal("Developer Dark", found.SelectedTheme)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_FindByID_Unknown() {
	_, err := s.repo.FindByID(context.Background(), uuid.New())

	s.Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Update() {
	ctx := context.Background()
	rec := sampleRecord("Jane Doe")
	s.NoError(s.repo.Save(ctx, rec))

	rec.Profile.Profession = "Designer"
	rec.SelectedTheme = "Creative Vibrant"
	rec.UpdatedAt = time.Now().UTC()
	s.NoError(s.repo.Update(ctx, rec))

	found, err := s.repo.FindByID(ctx, rec.ShareID)
	s.NoError(err)
	s.Equal("Designer", found.Profile.Profession)
	s.Equal("Creative Vibrant", found.SelectedTheme)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_Update_Unknown() {
	err := s.repo.Update(context.Background(), sampleRecord("ghost"))

	s.Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *PortfolioRepoIntegrationTestSuite) Test_ListRecent() {
	ctx := context.Background()
	first := sampleRecord("Older")
	first.CreatedAt = time.Now().UTC().Add(-time.Hour)
	second := sampleRecord("Newer")

	s.NoError(s.repo.Save(ctx, first))
	s.NoError(s.repo.Save(ctx, second))

	recent, err := s.repo.ListRecent(ctx, 50)
	s.NoError(err)
	s.GreaterOrEqual(len(recent), 2)
	for i := 1; i < len(recent); i++ {
		s.False(recent[i].CreatedAt.After(recent[i-1].CreatedAt))
	}
}
