package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raffleworks/raffle-coordinator/internal/domain"
	"github.com/raffleworks/raffle-coordinator/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates the coordinator's tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.VerificationRecord{},
		&schema.IdentityLink{},
		&schema.MessageWinnerMapping{},
		&schema.RollHistory{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to safe defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// withRetry runs op up to three times with increasing delay
func withRetry(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.Multiplier = 2.0
	b.MaxElapsedTime = 0

	return backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(b, 2), ctx))
}

// SaveVerification persists a verification record, retrying transient failures
func (s *pgStore) SaveVerification(ctx context.Context, record *schema.VerificationRecord) error {
	return withRetry(ctx, func() error {
		if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(record).Error; err != nil {
			return fmt.Errorf("failed to save verification record: %w", err)
		}
		return nil
	})
}

// GetVerification retrieves a verification record by its result identifier
func (s *pgStore) GetVerification(ctx context.Context, id string) (*schema.VerificationRecord, error) {
	var record schema.VerificationRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get verification record: %w", err)
	}
	return &record, nil
}

// WipeVerifications removes every verification record and returns the count removed
func (s *pgStore) WipeVerifications(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).Where("1 = 1").Delete(&schema.VerificationRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to wipe verification records: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// UpsertLink creates or replaces an identity link
func (s *pgStore) UpsertLink(ctx context.Context, link *schema.IdentityLink) error {
	link.ExternalID = strings.ToLower(link.ExternalID)
	return withRetry(ctx, func() error {
		if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"community_id", "linked_by", "linked_at"}),
		}).Create(link).Error; err != nil {
			return fmt.Errorf("failed to upsert identity link: %w", err)
		}
		return nil
	})
}

// GetLink retrieves the link for an external identity
func (s *pgStore) GetLink(ctx context.Context, externalID string) (*schema.IdentityLink, error) {
	var link schema.IdentityLink
	err := s.db.WithContext(ctx).Where("external_id = ?", strings.ToLower(externalID)).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get identity link: %w", err)
	}
	return &link, nil
}

// DeleteLink removes the link for an external identity, reporting whether it existed
func (s *pgStore) DeleteLink(ctx context.Context, externalID string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("external_id = ?", strings.ToLower(externalID)).
		Delete(&schema.IdentityLink{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete identity link: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// ListLinks returns every identity link
func (s *pgStore) ListLinks(ctx context.Context) ([]schema.IdentityLink, error) {
	var links []schema.IdentityLink
	if err := s.db.WithContext(ctx).Order("external_id").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list identity links: %w", err)
	}
	return links, nil
}

// IdentitiesFor returns the external identities linked to one community identity
func (s *pgStore) IdentitiesFor(ctx context.Context, communityID string) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&schema.IdentityLink{}).
		Where("community_id = ?", communityID).
		Order("external_id").
		Pluck("external_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to look up identities: %w", err)
	}
	return ids, nil
}

// SaveMessageWinners persists the winner mapping for a published announcement
func (s *pgStore) SaveMessageWinners(ctx context.Context, mapping *schema.MessageWinnerMapping) error {
	return withRetry(ctx, func() error {
		if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "message_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"subject", "identities"}),
		}).Create(mapping).Error; err != nil {
			return fmt.Errorf("failed to save message winners: %w", err)
		}
		return nil
	})
}

// GetMessageWinners retrieves the winner mapping for a published announcement
func (s *pgStore) GetMessageWinners(ctx context.Context, messageID string) (*schema.MessageWinnerMapping, error) {
	var mapping schema.MessageWinnerMapping
	err := s.db.WithContext(ctx).Where("message_id = ?", messageID).First(&mapping).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get message winners: %w", err)
	}
	return &mapping, nil
}

// MessagesMentioning returns every mapping whose winner list contains
// externalID. Stored identities keep the casing the host wrote, so the match
// lowercases both sides.
func (s *pgStore) MessagesMentioning(ctx context.Context, externalID string) ([]schema.MessageWinnerMapping, error) {
	var mappings []schema.MessageWinnerMapping
	if err := s.db.WithContext(ctx).
		Where("EXISTS (SELECT 1 FROM jsonb_array_elements_text(identities) AS winner WHERE lower(winner) = ?)",
			strings.ToLower(externalID)).
		Order("created_at").
		Find(&mappings).Error; err != nil {
		return nil, fmt.Errorf("failed to query message winners: %w", err)
	}
	return mappings, nil
}

// RecordRolls increments the tally for each drawn number on the given day
func (s *pgStore) RecordRolls(ctx context.Context, day string, numbers []int) error {
	if len(numbers) == 0 {
		return nil
	}

	rows := make([]schema.RollHistory, 0, len(numbers))
	for _, n := range numbers {
		rows = append(rows, schema.RollHistory{Day: day, Slot: n, Count: 1})
	}

	return withRetry(ctx, func() error {
		if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "day"}, {Name: "slot"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count": gorm.Expr("roll_history.count + EXCLUDED.count"),
			}),
		}).Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to record rolls: %w", err)
		}
		return nil
	})
}

// SummaryFor returns the tallies for a day ordered by slot number
func (s *pgStore) SummaryFor(ctx context.Context, day string) ([]schema.RollHistory, error) {
	var rows []schema.RollHistory
	if err := s.db.WithContext(ctx).
		Where("day = ?", day).
		Order("slot").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load roll history: %w", err)
	}
	return rows, nil
}
