package migrations

import (
	"context"
	"database/sql"
	"os"

	"github.com/pressly/goose/v3"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	goose.AddMigrationContext(upSeedAdminUser, downSeedAdminUser)
}

// upSeedAdminUser creates the initial admin account so a fresh deployment
// can log in and manage the market. The password comes from ADMIN_PASSWORD
// and must be rotated in production.
func upSeedAdminUser(ctx context.Context, tx *sql.Tx) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash, role, is_active)
		VALUES ('admin', 'admin@fantamarket.local', ?, 'admin', 1)
		ON CONFLICT (username) DO NOTHING
	`, string(hash))
	return err
}

func downSeedAdminUser(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM users WHERE username = 'admin'`)
	return err
}
