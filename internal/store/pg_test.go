package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/raffleworks/raffle-coordinator/internal/domain"
	"github.com/raffleworks/raffle-coordinator/internal/store/schema"
)

var (
	testDB      *gorm.DB
	pgContainer *postgres.PostgresContainer
)

// TestMain sets up the test database before running tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	// Check if we should use an external database (for CI or local development)
	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")

	var dsn string
	var err error

	if dbHost != "" {
		// Use external database
		if dbPort == "" {
			dbPort = "5432"
		}
		if dbUser == "" {
			dbUser = "postgres"
		}
		if dbPassword == "" {
			dbPassword = "postgres"
		}
		if dbName == "" {
			dbName = "test_db"
		}

		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPassword, dbName)

		fmt.Printf("Using external database: %s:%s/%s\n", dbHost, dbPort, dbName)
	} else {
		// Start a PostgreSQL container for testing
		pgContainer, err = postgres.Run(ctx,
			"postgres:18-alpine",
			postgres.WithDatabase("test_db"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			fmt.Printf("Failed to start PostgreSQL container: %v\n", err)
			os.Exit(1)
		}

		dsn, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Printf("Failed to get connection string: %v\n", err)
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("Started PostgreSQL container\n")
	}

	// Connect to the database
	testDB, err = gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	if err := AutoMigrate(testDB); err != nil {
		fmt.Printf("Failed to migrate database: %v\n", err)
		if pgContainer != nil {
			if err := pgContainer.Terminate(ctx); err != nil {
				fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
			}
		}
		os.Exit(1)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	if pgContainer != nil {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate PostgreSQL container: %v\n", err)
		}
	}

	os.Exit(code)
}

func cleanTables(t *testing.T) {
	t.Helper()
	for _, table := range []string{"verification_records", "identity_links", "message_winners", "roll_history"} {
		require.NoError(t, testDB.Exec("DELETE FROM "+table).Error)
	}
}

func mustJSON(t *testing.T, v interface{}) datatypes.JSON {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return datatypes.JSON(b)
}

func TestPGStore_VerificationRoundTrip(t *testing.T) {
	cleanTables(t)
	s := NewPGStore(testDB)
	ctx := context.Background()

	verification := `{"method":"generateSignedIntegers","hashedApiKey":"abc","n":2,"min":1,"max":100,` +
		`"replacement":false,"base":10,"data":[5,17],"completionTime":"2026-01-02 10:20:30Z","serialNumber":4053}`

	record := &schema.VerificationRecord{
		ID:             "01JD9ZHMRNV1GC8WTXD2B3K4F5",
		Verification:   verification,
		Signature:      "c2ln",
		WinnerNumbers:  mustJSON(t, []int{5, 17}),
		PostMetadata:   mustJSON(t, map[string]string{"author": "hoster", "title": "100 spots"}),
		CompletionTime: "2026-01-02 10:20:30Z",
		TotalSlots:     100,
		RequesterName:  "Requester",
	}

	require.NoError(t, s.SaveVerification(ctx, record))

	got, err := s.GetVerification(ctx, record.ID)
	require.NoError(t, err)
	// The signed bytes must round-trip unchanged
	assert.Equal(t, verification, got.Verification)
	assert.Equal(t, "c2ln", got.Signature)
	assert.Equal(t, 100, got.TotalSlots)
	assert.Equal(t, "Requester", got.RequesterName)

	var numbers []int
	require.NoError(t, json.Unmarshal(got.WinnerNumbers, &numbers))
	assert.Equal(t, []int{5, 17}, numbers)

	// Saving the same ID again replaces the row instead of erroring
	record.Signature = "updated"
	require.NoError(t, s.SaveVerification(ctx, record))
	got, err = s.GetVerification(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Signature)

	_, err = s.GetVerification(ctx, "01JD9ZHMRNV1GC8WTXD2B3MISS")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestPGStore_WipeVerifications(t *testing.T) {
	cleanTables(t)
	s := NewPGStore(testDB)
	ctx := context.Background()

	for i := range 3 {
		require.NoError(t, s.SaveVerification(ctx, &schema.VerificationRecord{
			ID:             fmt.Sprintf("01JD9ZHMRNV1GC8WTXD2B3K4F%d", i),
			Verification:   "{}",
			Signature:      "sig",
			WinnerNumbers:  mustJSON(t, []int{i}),
			CompletionTime: "2026-01-02 10:20:30Z",
			TotalSlots:     10,
		}))
	}

	removed, err := s.WipeVerifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	removed, err = s.WipeVerifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestPGStore_IdentityLinks(t *testing.T) {
	cleanTables(t)
	s := NewPGStore(testDB)
	ctx := context.Background()

	require.NoError(t, s.UpsertLink(ctx, &schema.IdentityLink{
		ExternalID:  "Alice",
		CommunityID: "1001",
		LinkedBy:    "op",
	}))

	// Keys are lower-cased on the way in and on lookup
	link, err := s.GetLink(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, "alice", link.ExternalID)
	assert.Equal(t, "1001", link.CommunityID)

	// Upsert replaces the community identity
	require.NoError(t, s.UpsertLink(ctx, &schema.IdentityLink{
		ExternalID:  "alice",
		CommunityID: "2002",
		LinkedBy:    "op2",
	}))
	link, err = s.GetLink(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "2002", link.CommunityID)

	require.NoError(t, s.UpsertLink(ctx, &schema.IdentityLink{
		ExternalID:  "bob",
		CommunityID: "2002",
	}))

	links, err := s.ListLinks(ctx)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "alice", links[0].ExternalID)
	assert.Equal(t, "bob", links[1].ExternalID)

	ids, err := s.IdentitiesFor(ctx, "2002")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, ids)

	existed, err := s.DeleteLink(ctx, "ALICE")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = s.DeleteLink(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, existed)

	_, err = s.GetLink(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestPGStore_MessageWinners(t *testing.T) {
	cleanTables(t)
	s := NewPGStore(testDB)
	ctx := context.Background()

	// Stored casing is whatever the host wrote
	require.NoError(t, s.SaveMessageWinners(ctx, &schema.MessageWinnerMapping{
		MessageID:  "msg-1",
		Subject:    "raffle.announce.community",
		Identities: mustJSON(t, []string{"Alice", "Bob"}),
	}))
	require.NoError(t, s.SaveMessageWinners(ctx, &schema.MessageWinnerMapping{
		MessageID:  "msg-2",
		Subject:    "raffle.announce.community",
		Identities: mustJSON(t, []string{"carol"}),
	}))

	got, err := s.GetMessageWinners(ctx, "msg-1")
	require.NoError(t, err)
	var ids []string
	require.NoError(t, json.Unmarshal(got.Identities, &ids))
	assert.Equal(t, []string{"Alice", "Bob"}, ids)

	// Lookups are case-insensitive in both directions
	mentioning, err := s.MessagesMentioning(ctx, "ALICE")
	require.NoError(t, err)
	require.Len(t, mentioning, 1)
	assert.Equal(t, "msg-1", mentioning[0].MessageID)

	mentioning, err = s.MessagesMentioning(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, mentioning, 1)
	assert.Equal(t, "msg-1", mentioning[0].MessageID)

	mentioning, err = s.MessagesMentioning(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, mentioning)
}

func TestPGStore_RollHistory(t *testing.T) {
	cleanTables(t)
	s := NewPGStore(testDB)
	ctx := context.Background()

	require.NoError(t, s.RecordRolls(ctx, "2026-01-02", []int{5, 17, 42}))
	require.NoError(t, s.RecordRolls(ctx, "2026-01-02", []int{17}))
	require.NoError(t, s.RecordRolls(ctx, "2026-01-03", []int{5}))

	rows, err := s.SummaryFor(ctx, "2026-01-02")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, schema.RollHistory{Day: "2026-01-02", Slot: 5, Count: 1}, rows[0])
	assert.Equal(t, schema.RollHistory{Day: "2026-01-02", Slot: 17, Count: 2}, rows[1])
	assert.Equal(t, schema.RollHistory{Day: "2026-01-02", Slot: 42, Count: 1}, rows[2])

	rows, err = s.SummaryFor(ctx, "2026-01-04")
	require.NoError(t, err)
	assert.Empty(t, rows)
}
