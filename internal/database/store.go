// Package database provides the session journal for splitr.
//
// The journal records every friend added and every bill split during a
// run so the history pane and the balance report can show them. It is a
// SQLite database opened in memory; nothing outlives the process.
package database

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// MemoryPath is the only path the journal is opened with in splitr.
const MemoryPath = ":memory:"

// Store defines the journal operations.
// This abstraction allows for mocking in tests.
type Store interface {
	// RecordFriend persists a roster entry. Recording the same friend
	// again refreshes its name, image and balance.
	RecordFriend(friend *FriendRecord) error
	// RecordSplit persists a bill split and returns its ID.
	RecordSplit(split *SplitRecord) (int64, error)

	// QuerySplits returns splits matching the filter, newest first.
	QuerySplits(filter SplitFilter) ([]*SplitRecord, error)
	// GetFriendStats returns aggregated split statistics for a friend.
	GetFriendStats(friendID string) (*FriendStats, error)

	// Close gracefully shuts down the database connection.
	Close() error
}

// ============================================================
// Journal Models
// ============================================================

// FriendRecord is a roster entry as stored in the journal.
type FriendRecord struct {
	FriendID  string `json:"friend_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Balance   int64  `json:"balance"`
	CreatedAt int64  `json:"created_at"` // Unix nanoseconds
}

// SplitRecord is one applied bill split.
type SplitRecord struct {
	SplitID      int64  `json:"split_id"`
	FriendID     string `json:"friend_id"`
	FriendName   string `json:"friend_name,omitempty"`
	Total        int64  `json:"total"`
	PaidByUser   int64  `json:"paid_by_user"`
	Payer        string `json:"payer"`
	Delta        int64  `json:"delta"`
	BalanceAfter int64  `json:"balance_after"`
	CreatedAt    int64  `json:"created_at"` // Unix nanoseconds
}

// SplitFilter defines query parameters for split listing.
type SplitFilter struct {
	FriendID *string `json:"friend_id,omitempty"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}

// FriendStats holds aggregated split statistics for one friend.
type FriendStats struct {
	FriendID       string `json:"friend_id"`
	SplitCount     int    `json:"split_count"`
	TotalBilled    int64  `json:"total_billed"`
	TotalPaidByYou int64  `json:"total_paid_by_you"`
	NetDelta       int64  `json:"net_delta"`
}

// ============================================================
// DBService Implementation
// ============================================================

// DBService implements the Store interface using SQLite.
// bubbletea runs commands on their own goroutines, so access is
// serialized through a read-write mutex.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtUpsertFriend *sql.Stmt
	stmtInsertSplit  *sql.Stmt
}

// NewDBService opens the journal, initializes the schema and prepares
// the insert statements. Pass MemoryPath.
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening journal at %s: %w", path, err)
	}

	// Every connection to :memory: is a separate database, so keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{
		db:   db,
		path: path,
	}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtUpsertFriend, err = s.db.Prepare(`
		INSERT INTO friends (friend_id, name, image, balance, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(friend_id) DO UPDATE SET
			name = excluded.name,
			image = excluded.image,
			balance = excluded.balance
	`)
	if err != nil {
		return fmt.Errorf("preparing UpsertFriend: %w", err)
	}

	s.stmtInsertSplit, err = s.db.Prepare(`
		INSERT INTO splits (friend_id, total, paid_by_user, payer, delta, balance_after, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertSplit: %w", err)
	}

	return nil
}

// RecordFriend persists a roster entry, refreshing it if it exists.
func (s *DBService) RecordFriend(friend *FriendRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.stmtUpsertFriend.Exec(
		friend.FriendID, friend.Name, friend.Image, friend.Balance, friend.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("recording friend %s: %w", friend.FriendID, err)
	}
	return nil
}

// RecordSplit persists a split and keeps the friend's stored balance in
// step with it, in one transaction.
func (s *DBService) RecordSplit(split *SplitRecord) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning split transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.Stmt(s.stmtInsertSplit).Exec(
		split.FriendID, split.Total, split.PaidByUser, split.Payer,
		split.Delta, split.BalanceAfter, split.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("recording split for friend %s: %w", split.FriendID, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading split id: %w", err)
	}

	if _, err := tx.Exec(`UPDATE friends SET balance = ? WHERE friend_id = ?`,
		split.BalanceAfter, split.FriendID); err != nil {
		return 0, fmt.Errorf("updating balance for friend %s: %w", split.FriendID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing split transaction: %w", err)
	}
	split.SplitID = id
	return id, nil
}

// QuerySplits returns splits matching the filter, newest first.
func (s *DBService) QuerySplits(filter SplitFilter) ([]*SplitRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT sp.split_id, sp.friend_id, COALESCE(f.name, ''), sp.total, sp.paid_by_user,
			sp.payer, sp.delta, sp.balance_after, sp.created_at
		FROM splits sp
		LEFT JOIN friends f ON f.friend_id = sp.friend_id
		WHERE 1=1`
	args := make([]interface{}, 0)

	if filter.FriendID != nil {
		query += ` AND sp.friend_id = ?`
		args = append(args, *filter.FriendID)
	}

	query += ` ORDER BY sp.created_at DESC, sp.split_id DESC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	} else {
		query += ` LIMIT 100`
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying splits: %w", err)
	}
	defer rows.Close()

	var splits []*SplitRecord
	for rows.Next() {
		sp := &SplitRecord{}
		if err := rows.Scan(
			&sp.SplitID, &sp.FriendID, &sp.FriendName, &sp.Total, &sp.PaidByUser,
			&sp.Payer, &sp.Delta, &sp.BalanceAfter, &sp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning split row: %w", err)
		}
		splits = append(splits, sp)
	}
	return splits, rows.Err()
}

// GetFriendStats returns aggregated split statistics for a friend. A
// friend with no splits yields zero counts, not an error.
func (s *DBService) GetFriendStats(friendID string) (*FriendStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &FriendStats{FriendID: friendID}

	err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total), 0),
			COALESCE(SUM(paid_by_user), 0),
			COALESCE(SUM(delta), 0)
		FROM splits
		WHERE friend_id = ?
	`, friendID).Scan(
		&stats.SplitCount, &stats.TotalBilled, &stats.TotalPaidByYou, &stats.NetDelta,
	)
	if err != nil {
		return nil, fmt.Errorf("querying stats for friend %s: %w", friendID, err)
	}

	return stats, nil
}

// Close closes the prepared statements and the connection pool.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []*sql.Stmt{s.stmtUpsertFriend, s.stmtInsertSplit} {
		if stmt != nil {
			stmt.Close()
		}
	}

	return s.db.Close()
}
