// Package identity owns user accounts: registration, credential checks,
// profile edits and the admin-side user management operations.
package identity

import (
	"strings"

	"harmonic/core/auth"
	"harmonic/core/fault"
	"harmonic/logger"
	"harmonic/model"
	"harmonic/repository"
)

// TrackCounter is the slice of the catalog the identity service needs: the
// delete guard refuses to orphan tracks.
type TrackCounter interface {
	CountByArtist(artistID int64) (int64, error)
}

// Service implements the identity store operations.
type Service struct {
	users  repository.UserRepository
	tracks TrackCounter
}

// NewService creates an identity service.
func NewService(users repository.UserRepository, tracks TrackCounter) *Service {
	return &Service{users: users, tracks: tracks}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName       string
	LastName        string
	CPF             string
	Email           string
	Nickname        string
	Password        string
	ConfirmPassword string
	RequestedRole   string
}

// Register creates a new account. An unknown requested role is silently
// downgraded to listener rather than rejected.
func (s *Service) Register(in RegisterInput) (*model.User, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	cpf := strings.TrimSpace(in.CPF)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	nickname := strings.TrimSpace(in.Nickname)

	if firstName == "" || lastName == "" || cpf == "" || email == "" || nickname == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, fault.Validationf("all fields are required")
	}
	if in.Password != in.ConfirmPassword {
		return nil, fault.Validationf("passwords do not match")
	}

	role := model.Role(strings.TrimSpace(in.RequestedRole))
	if !role.Valid() {
		role = model.RoleListener
	}

	if existing, err := s.users.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fault.Conflictf("email already registered")
	}
	if existing, err := s.users.GetByCPF(cpf); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fault.Conflictf("CPF already registered")
	}
	if existing, err := s.users.GetByNickname(nickname); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fault.Conflictf("nickname already in use")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		CPF:          cpf,
		Email:        email,
		Nickname:     nickname,
		Role:         role,
		PasswordHash: hash,
	}

	id, err := s.users.Create(user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	logger.Info("user registered", logger.Int64("userId", id), logger.String("nickname", nickname))
	return user, nil
}

// Authenticate verifies credentials. The identifier is matched against email
// (case-insensitive) when it contains '@', otherwise against nickname as
// stored.
func (s *Service) Authenticate(identifier, password string) (*model.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, fault.Authf("invalid credentials")
	}

	var user *model.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.users.GetByEmail(strings.ToLower(identifier))
	} else {
		user, err = s.users.GetByNickname(identifier)
	}
	if err != nil {
		return nil, err
	}

	if user == nil || !auth.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("login rejected", logger.String("identifier", identifier))
		return nil, fault.Authf("invalid credentials")
	}
	return user, nil
}

// ResetPassword rehashes and persists a new credential for the account
// registered under email.
func (s *Service) ResetPassword(email, newPassword, confirmPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || newPassword == "" || confirmPassword == "" {
		return fault.Validationf("all fields are required")
	}
	if newPassword != confirmPassword {
		return fault.Validationf("passwords do not match")
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return fault.NotFoundf("email not found")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(user.ID, hash)
}

// ProfileInput carries the self-service profile form fields. NewPassword is
// only applied when non-empty.
type ProfileInput struct {
	FirstName   string
	LastName    string
	Email       string
	Nickname    string
	NewPassword string
}

// UpdateProfile edits the caller's own account. Email and nickname collisions
// with a different user id are conflicts; colliding with the caller's own row
// is a no-op rename.
func (s *Service) UpdateProfile(userID int64, in ProfileInput) (*model.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fault.NotFoundf("user not found")
	}

	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	nickname := strings.TrimSpace(in.Nickname)

	if firstName == "" || lastName == "" || email == "" || nickname == "" {
		return nil, fault.Validationf("all required fields must be filled")
	}

	if existing, err := s.users.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil && existing.ID != userID {
		return nil, fault.Conflictf("email already in use by another user")
	}
	if existing, err := s.users.GetByNickname(nickname); err != nil {
		return nil, err
	} else if existing != nil && existing.ID != userID {
		return nil, fault.Conflictf("nickname already in use")
	}

	if err := s.users.UpdateProfile(userID, firstName, lastName, email, nickname); err != nil {
		return nil, err
	}

	if in.NewPassword != "" {
		hash, err := auth.HashPassword(in.NewPassword)
		if err != nil {
			return nil, err
		}
		if err := s.users.UpdatePassword(userID, hash); err != nil {
			return nil, err
		}
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	user.Nickname = nickname
	return user, nil
}

// GetUser returns a user by id.
func (s *Service) GetUser(id int64) (*model.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fault.NotFoundf("user not found")
	}
	return user, nil
}

// ListUsers returns every account, for the admin panel.
func (s *Service) ListUsers() ([]*model.User, error) {
	return s.users.List()
}

// CountUsers returns the total number of accounts.
func (s *Service) CountUsers() (int64, error) {
	return s.users.Count()
}

// AdminUpdateUser edits a target account's name, nickname and role. The seed
// account is immutable.
func (s *Service) AdminUpdateUser(targetID int64, firstName, lastName, nickname, role string) error {
	target, err := s.users.GetByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return fault.NotFoundf("user not found")
	}
	if target.Email == model.SeedEmail {
		return fault.Forbiddenf("the seed account cannot be modified")
	}

	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	nickname = strings.TrimSpace(nickname)
	newRole := model.Role(strings.TrimSpace(role))

	if firstName == "" || lastName == "" || nickname == "" {
		return fault.Validationf("all fields are required")
	}
	if !newRole.Valid() {
		return fault.Validationf("unknown role")
	}

	if existing, err := s.users.GetByNickname(nickname); err != nil {
		return err
	} else if existing != nil && existing.ID != targetID {
		return fault.Conflictf("nickname already in use")
	}

	return s.users.AdminUpdate(targetID, firstName, lastName, nickname, newRole)
}

// AdminDeleteUser removes a target account and cascades its favorites. The
// seed account and the acting admin's own account are protected, and users
// who still own catalog tracks are rejected so no track is left with a
// dangling owner reference.
func (s *Service) AdminDeleteUser(actorID, targetID int64) error {
	target, err := s.users.GetByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return fault.NotFoundf("user not found")
	}
	if target.Email == model.SeedEmail {
		return fault.Forbiddenf("the seed account cannot be removed")
	}
	if target.ID == actorID {
		return fault.Forbiddenf("you cannot delete your own account")
	}

	owned, err := s.tracks.CountByArtist(targetID)
	if err != nil {
		return err
	}
	if owned > 0 {
		return fault.Forbiddenf("user still owns tracks and cannot be removed")
	}

	if err := s.users.Delete(targetID); err != nil {
		return err
	}
	logger.Info("user deleted", logger.Int64("userId", targetID), logger.Int64("by", actorID))
	return nil
}
