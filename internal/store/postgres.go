package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/opportunity-matcher/internal/parsing"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

// Postgres implements ProfileStore, CatalogStore and CacheStore on a
// PostgreSQL connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Postgres) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetQuizResponses returns the raw quiz payload for a user.
func (s *Postgres) GetQuizResponses(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(quiz_responses, '{}'::jsonb) FROM users WHERE id = $1`,
		userID,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get quiz responses: %w", err)
	}
	return raw, nil
}

// ListPublishedOpportunities returns all published catalog entries with cost
// ranges parsed from their display strings.
func (s *Postgres) ListPublishedOpportunities(ctx context.Context) ([]types.BusinessOpportunity, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, COALESCE(summary, ''), COALESCE(startup_cost, ''),
		        COALESCE(estimated_monthly_profit, ''), COALESCE(hours_per_week, 0),
		        COALESCE(schedules, '{}'), COALESCE(risk_level, ''), COALESCE(tech_level, ''),
		        COALESCE(task_type, ''), COALESCE(hazard_tags, '{}'), COALESCE(required_skills, '{}')
		 FROM opportunities WHERE published = TRUE
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	defer rows.Close()

	var opps []types.BusinessOpportunity
	for rows.Next() {
		var o types.BusinessOpportunity
		var riskLevel, techLevel string
		if err := rows.Scan(&o.ID, &o.Title, &o.Summary, &o.StartupCost,
			&o.EstimatedProfit, &o.HoursPerWeek, &o.Schedules, &riskLevel, &techLevel,
			&o.TaskType, &o.HazardTags, &o.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		o.Published = true
		o.RiskLevel = types.RiskOrdinal(riskLevel)
		o.TechLevel = types.TechOrdinal(techLevel)
		o.CostRange = parsing.ParseCostRange(o.StartupCost)
		opps = append(opps, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read opportunities: %w", err)
	}
	return opps, nil
}

// GetEntry returns a user's cached recommendation set, or nil when absent.
func (s *Postgres) GetEntry(ctx context.Context, userID uuid.UUID) (*types.CacheEntry, error) {
	entry := types.CacheEntry{UserID: userID}
	var recsJSON []byte
	err := s.pool.QueryRow(ctx,
		`SELECT recommendations, total_analyzed, updated_at
		 FROM recommendations_cache WHERE user_id = $1`,
		userID,
	).Scan(&recsJSON, &entry.TotalAnalyzed, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}

	if err := json.Unmarshal(recsJSON, &entry.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to decode cached recommendations: %w", err)
	}
	return &entry, nil
}

// PutEntry upserts a user's cache entry, replacing any previous one.
func (s *Postgres) PutEntry(ctx context.Context, entry *types.CacheEntry) error {
	recsJSON, err := json.Marshal(entry.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO recommendations_cache (user_id, recommendations, total_analyzed, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE
		 SET recommendations = $2, total_analyzed = $3, updated_at = $4`,
		entry.UserID, recsJSON, entry.TotalAnalyzed, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to put cache entry: %w", err)
	}
	return nil
}

// DeleteEntry removes a user's cache entry.
func (s *Postgres) DeleteEntry(ctx context.Context, userID uuid.UUID) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM recommendations_cache WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}
