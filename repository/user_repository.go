package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"harmonic/core/fault"
	"harmonic/model"

	"github.com/go-sql-driver/mysql"
)

const userColumns = "id, first_name, last_name, cpf, email, nickname, role, password_hash, created_at, updated_at"

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(user *model.User) (int64, error)
	GetByID(id int64) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	GetByNickname(nickname string) (*model.User, error)
	GetByCPF(cpf string) (*model.User, error)
	UpdateProfile(id int64, firstName, lastName, email, nickname string) error
	UpdatePassword(id int64, passwordHash string) error
	AdminUpdate(id int64, firstName, lastName, nickname string, role model.Role) error
	Delete(id int64) error
	List() ([]*model.User, error)
	Count() (int64, error)
}

// mysqlUserRepository implements UserRepository for MySQL.
type mysqlUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new mysqlUserRepository.
func NewMySQLUserRepository(db *sql.DB) UserRepository {
	return &mysqlUserRepository{db: db}
}

// isDuplicateEntry reports whether err is a MySQL unique constraint violation.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// Create adds a new user to the database. A unique constraint violation is
// reported as fault.ErrConflict so the race between the caller's existence
// checks and the insert cannot surface as a raw driver error.
func (r *mysqlUserRepository) Create(user *model.User) (int64, error) {
	query := "INSERT INTO users (first_name, last_name, cpf, email, nickname, role, password_hash) VALUES (?, ?, ?, ?, ?, ?, ?)"
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare create user statement: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(user.FirstName, user.LastName, user.CPF, user.Email, user.Nickname, user.Role, user.PasswordHash)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, fault.Conflictf("account details already in use")
		}
		return 0, fmt.Errorf("failed to execute create user statement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for user: %w", err)
	}
	return id, nil
}

func (r *mysqlUserRepository) scanUser(row *sql.Row, context string) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.FirstName, &user.LastName, &user.CPF, &user.Email, &user.Nickname, &user.Role, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to scan user row for %s: %w", context, err)
	}
	return user, nil
}

// GetByID retrieves a user by their ID.
func (r *mysqlUserRepository) GetByID(id int64) (*model.User, error) {
	row := r.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return r.scanUser(row, fmt.Sprintf("ID %d", id))
}

// GetByEmail retrieves a user by their email address. Callers are expected to
// lower-case the email before lookup.
func (r *mysqlUserRepository) GetByEmail(email string) (*model.User, error) {
	row := r.db.QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", email)
	return r.scanUser(row, fmt.Sprintf("email %s", email))
}

// GetByNickname retrieves a user by their nickname, matched as stored.
func (r *mysqlUserRepository) GetByNickname(nickname string) (*model.User, error) {
	row := r.db.QueryRow("SELECT "+userColumns+" FROM users WHERE nickname = ?", nickname)
	return r.scanUser(row, fmt.Sprintf("nickname %s", nickname))
}

// GetByCPF retrieves a user by their national identifier.
func (r *mysqlUserRepository) GetByCPF(cpf string) (*model.User, error) {
	row := r.db.QueryRow("SELECT "+userColumns+" FROM users WHERE cpf = ?", cpf)
	return r.scanUser(row, fmt.Sprintf("cpf %s", cpf))
}

// UpdateProfile updates the self-editable fields of a user.
func (r *mysqlUserRepository) UpdateProfile(id int64, firstName, lastName, email, nickname string) error {
	query := "UPDATE users SET first_name = ?, last_name = ?, email = ?, nickname = ?, updated_at = NOW() WHERE id = ?"
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare update profile statement: %w", err)
	}
	defer stmt.Close()

	if _, err = stmt.Exec(firstName, lastName, email, nickname, id); err != nil {
		if isDuplicateEntry(err) {
			return fault.Conflictf("email or nickname already in use")
		}
		return fmt.Errorf("failed to execute update profile statement: %w", err)
	}
	return nil
}

// UpdatePassword replaces the stored credential hash.
func (r *mysqlUserRepository) UpdatePassword(id int64, passwordHash string) error {
	query := "UPDATE users SET password_hash = ?, updated_at = NOW() WHERE id = ?"
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare update password statement: %w", err)
	}
	defer stmt.Close()

	if _, err = stmt.Exec(passwordHash, id); err != nil {
		return fmt.Errorf("failed to execute update password statement for user %d: %w", id, err)
	}
	return nil
}

// AdminUpdate updates the admin-editable fields of a user.
func (r *mysqlUserRepository) AdminUpdate(id int64, firstName, lastName, nickname string, role model.Role) error {
	query := "UPDATE users SET first_name = ?, last_name = ?, nickname = ?, role = ?, updated_at = NOW() WHERE id = ?"
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare admin update statement: %w", err)
	}
	defer stmt.Close()

	if _, err = stmt.Exec(firstName, lastName, nickname, role, id); err != nil {
		if isDuplicateEntry(err) {
			return fault.Conflictf("nickname already in use")
		}
		return fmt.Errorf("failed to execute admin update statement for user %d: %w", id, err)
	}
	return nil
}

// Delete removes a user and their favorites in a single transaction.
func (r *mysqlUserRepository) Delete(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete user transaction: %w", err)
	}

	if _, err = tx.Exec("DELETE FROM favorites WHERE user_id = ?", id); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete favorites for user %d: %w", id, err)
	}

	if _, err = tx.Exec("DELETE FROM users WHERE id = ?", id); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete user transaction: %w", err)
	}
	return nil
}

// List retrieves all users ordered by creation time.
func (r *mysqlUserRepository) List() ([]*model.User, error) {
	rows, err := r.db.Query("SELECT " + userColumns + " FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		user := &model.User{}
		err := rows.Scan(&user.ID, &user.FirstName, &user.LastName, &user.CPF, &user.Email, &user.Nickname, &user.Role, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user in List: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration in List: %w", err)
	}
	return users, nil
}

// Count returns the total number of users.
func (r *mysqlUserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
