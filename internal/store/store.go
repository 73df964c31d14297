// Package store persists assembled plans in a single-table SQLite
// database. Plans are immutable after insert and always read in full.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/oklog/ulid/v2"

	"github.com/planora/planora/internal/plan"
)

// ErrNotFound is returned by Load when no plan exists for the id.
var ErrNotFound = errors.New("plan not found")

// createdAtLayout is RFC 3339 with a fixed-width fraction so that the
// lexicographic ORDER BY on the text column matches time order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

type PlanStore struct {
	db *sql.DB
}

func NewPlanStore(dbPath string) (*PlanStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		goal       TEXT NOT NULL,
		body       TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_plans_created ON plans(created_at DESC);`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &PlanStore{db: db}, nil
}

func (s *PlanStore) Close() error {
	return s.db.Close()
}

// NewID mints a fresh plan identifier. ULIDs sort by creation time,
// which keeps id order aligned with listing order. The package-level
// entropy behind ulid.Make is locked, so ids can be minted from
// concurrent request goroutines.
func (s *PlanStore) NewID() string {
	return ulid.Make().String()
}

// Save inserts the plan and returns its identifier. A plan without an
// id is assigned one.
func (s *PlanStore) Save(ctx context.Context, p plan.Plan) (string, error) {
	if p.ID == "" {
		p.ID = s.NewID()
	}

	body, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("serialize plan: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO plans (id, goal, body, created_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.Goal, string(body), p.CreatedAt.UTC().Format(createdAtLayout))
	if err != nil {
		return "", fmt.Errorf("insert plan: %w", err)
	}

	return p.ID, nil
}

// Load returns the plan for id, or ErrNotFound.
func (s *PlanStore) Load(ctx context.Context, id string) (plan.Plan, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM plans WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return plan.Plan{}, ErrNotFound
	}
	if err != nil {
		return plan.Plan{}, fmt.Errorf("query plan: %w", err)
	}

	var p plan.Plan
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return plan.Plan{}, fmt.Errorf("deserialize plan %s: %w", id, err)
	}
	return p, nil
}

// ListAll returns summaries of all stored plans, most recent first.
func (s *PlanStore) ListAll(ctx context.Context) ([]plan.Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, goal, created_at FROM plans ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var out []plan.Summary
	for rows.Next() {
		var sum plan.Summary
		var created string
		if err := rows.Scan(&sum.ID, &sum.Goal, &created); err != nil {
			return nil, fmt.Errorf("scan plan row: %w", err)
		}
		sum.CreatedAt, _ = time.Parse(createdAtLayout, created)
		out = append(out, sum)
	}
	return out, rows.Err()
}
