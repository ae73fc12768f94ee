package repository

import (
	"context"
	"fmt"
	"time"

	"fozi/database"
	"fozi/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// queryable is satisfied by both *pgxpool.Pool and pgx.Tx so repositories can
// run directly on the pool or inside a unit of work.
type queryable interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AccountRepository provides access to the accounts table
type AccountRepository struct {
	q queryable
}

// NewAccountRepository creates an account repository backed by the pool
func NewAccountRepository(db *database.DB) *AccountRepository {
	return &AccountRepository{q: db.Pool}
}

// newAccountRepositoryWithTx creates an account repository bound to a transaction
func newAccountRepositoryWithTx(tx queryable) *AccountRepository {
	return &AccountRepository{q: tx}
}

// GetByDiscordID retrieves an account by Discord ID. Returns nil when no row
// exists; callers that need implicit creation go through the account service.
func (r *AccountRepository) GetByDiscordID(ctx context.Context, discordID int64) (*models.Account, error) {
	query := `
		SELECT discord_id, balance, last_daily, created_at, updated_at
		FROM accounts
		WHERE discord_id = $1
	`

	var account models.Account
	err := r.q.QueryRow(ctx, query, discordID).Scan(
		&account.DiscordID,
		&account.Balance,
		&account.LastDaily,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account %d: %w", discordID, err)
	}

	return &account, nil
}

// Create creates a new account with the initial balance and no claim time
func (r *AccountRepository) Create(ctx context.Context, discordID int64, initialBalance int64) (*models.Account, error) {
	query := `
		INSERT INTO accounts (discord_id, balance)
		VALUES ($1, $2)
		RETURNING discord_id, balance, last_daily, created_at, updated_at
	`

	var account models.Account
	err := r.q.QueryRow(ctx, query, discordID, initialBalance).Scan(
		&account.DiscordID,
		&account.Balance,
		&account.LastDaily,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create account %d: %w", discordID, err)
	}

	return &account, nil
}

// UpdateBalance sets an account's balance, leaving last_daily untouched
func (r *AccountRepository) UpdateBalance(ctx context.Context, discordID int64, newBalance int64) error {
	query := `
		UPDATE accounts
		SET balance = $1, updated_at = NOW()
		WHERE discord_id = $2
	`

	result, err := r.q.Exec(ctx, query, newBalance, discordID)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %d: %w", discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %d not found", discordID)
	}

	return nil
}

// UpdateDaily sets the balance and claim timestamp in a single statement so a
// claim cannot land with only one of the two fields written
func (r *AccountRepository) UpdateDaily(ctx context.Context, discordID int64, newBalance int64, claimedAt time.Time) error {
	query := `
		UPDATE accounts
		SET balance = $1, last_daily = $2, updated_at = NOW()
		WHERE discord_id = $3
	`

	result, err := r.q.Exec(ctx, query, newBalance, claimedAt, discordID)
	if err != nil {
		return fmt.Errorf("failed to record daily claim for account %d: %w", discordID, err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("account %d not found", discordID)
	}

	return nil
}

// GetPositiveBalances returns accounts with balance > 0 ordered by balance
// descending. Ties keep the storage order of a single query execution.
func (r *AccountRepository) GetPositiveBalances(ctx context.Context) ([]*models.Account, error) {
	query := `
		SELECT discord_id, balance, last_daily, created_at, updated_at
		FROM accounts
		WHERE balance > 0
		ORDER BY balance DESC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts with positive balance: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		var account models.Account
		err := rows.Scan(
			&account.DiscordID,
			&account.Balance,
			&account.LastDaily,
			&account.CreatedAt,
			&account.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}
