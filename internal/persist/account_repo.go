package persist

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AccountRow struct {
	MemberNo    uint32
	LoginID     string
	AuthKeyHash string
	CreatedAt   time.Time
	LastLogin   *time.Time
}

type AccountRepo struct {
	db *DB
}

func NewAccountRepo(db *DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// Load fetches an account by member number. Returns (nil, nil) when
// the account does not exist.
func (r *AccountRepo) Load(ctx context.Context, memberNo uint32) (*AccountRow, error) {
	row := &AccountRow{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT member_no, login_id, auth_key, created_at, last_login
		 FROM accounts WHERE member_no = $1`, int64(memberNo),
	).Scan(&row.MemberNo, &row.LoginID, &row.AuthKeyHash, &row.CreatedAt, &row.LastLogin)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Create provisions a new account, storing only the bcrypt hash of the
// presented auth key.
func (r *AccountRepo) Create(ctx context.Context, memberNo uint32, loginID, rawKey string) (*AccountRow, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	row := &AccountRow{
		MemberNo:    memberNo,
		LoginID:     loginID,
		AuthKeyHash: string(hash),
		CreatedAt:   now,
		LastLogin:   &now,
	}
	_, err = r.db.Pool.Exec(ctx,
		`INSERT INTO accounts (member_no, login_id, auth_key, last_login)
		 VALUES ($1, $2, $3, $4)`,
		int64(row.MemberNo), row.LoginID, row.AuthKeyHash, row.LastLogin,
	)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *AccountRepo) ValidateKey(hash string, rawKey string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(rawKey)) == nil
}

func (r *AccountRepo) TouchLastLogin(ctx context.Context, memberNo uint32) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE accounts SET last_login = NOW() WHERE member_no = $1`,
		int64(memberNo),
	)
	return err
}
