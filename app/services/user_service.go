package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dtezcan/go-catalog/app/models"
	"github.com/dtezcan/go-catalog/app/models/dto"
	"github.com/dtezcan/go-catalog/app/repositories"
	"github.com/dtezcan/go-catalog/app/utils/format"
	"github.com/dtezcan/go-catalog/app/utils/sessions"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	base    *repositories.Base[models.User]
	roles   *repositories.Base[models.Role]
	session sessions.SessionStore
}

func NewUserService(db *gorm.DB, sessionStore sessions.SessionStore) *UserService {
	return &UserService{
		base:    repositories.NewBase[models.User](db),
		roles:   repositories.NewBase[models.Role](db),
		session: sessionStore,
	}
}

func (s *UserService) query(ctx context.Context) *gorm.DB {
	return s.base.Query(ctx).
		Preload("Group").
		Preload("Country").
		Preload("City").
		Preload("UserRoles.Role").
		Order("is_active DESC, registration_date, user_name")
}

func isActiveLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Passive"
}

func (s *UserService) toResponse(entity *models.User) dto.UserResponse {
	response := dto.UserResponse{
		ID:                entity.ID,
		Guid:              entity.Guid,
		UserName:          entity.UserName,
		IsActive:          entity.IsActive,
		IsActiveF:         isActiveLabel(entity.IsActive),
		FirstName:         entity.FirstName,
		LastName:          entity.LastName,
		FullName:          entity.FullName(),
		Gender:            entity.Gender,
		GenderF:           entity.Gender.String(),
		BirthDate:         entity.BirthDate,
		BirthDateF:        format.Date(entity.BirthDate),
		RegistrationDate:  entity.RegistrationDate,
		RegistrationDateF: format.Date(&entity.RegistrationDate),
		Score:             entity.Score,
		ScoreF:            format.Score(entity.Score),
		Address:           entity.Address,
		GroupID:           entity.GroupID,
		CountryID:         entity.CountryID,
		CityID:            entity.CityID,
		RoleIDs:           entity.RoleIDs(),
		Roles:             entity.RoleNames(),
	}
	if entity.Group != nil {
		response.Group = entity.Group.Title
	}
	if entity.Country != nil {
		response.Country = entity.Country.Name
	}
	if entity.City != nil {
		response.City = entity.City.Name
	}
	return response
}

func (s *UserService) List(ctx context.Context) ([]dto.UserResponse, error) {
	entities, err := s.base.All(ctx, s.query(ctx))
	if err != nil {
		return nil, err
	}
	responses := make([]dto.UserResponse, 0, len(entities))
	for i := range entities {
		responses = append(responses, s.toResponse(&entities[i]))
	}
	return responses, nil
}

func (s *UserService) Item(ctx context.Context, id uint) (*dto.UserResponse, error) {
	entity, err := s.base.Find(ctx, s.query(ctx), "users.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	response := s.toResponse(entity)
	return &response, nil
}

// Edit loads the form model of an existing user. The stored password
// hash never leaves the database; a new password is typed on every
// update.
func (s *UserService) Edit(ctx context.Context, id uint) (*dto.UserRequest, error) {
	entity, err := s.base.Find(ctx, s.base.Query(ctx).Preload("UserRoles"), "users.id = ?", id)
	if err != nil || entity == nil {
		return nil, err
	}
	score := entity.Score
	return &dto.UserRequest{
		ID:        entity.ID,
		UserName:  entity.UserName,
		FirstName: entity.FirstName,
		LastName:  entity.LastName,
		Gender:    entity.Gender,
		BirthDate: entity.BirthDate,
		Score:     &score,
		IsActive:  entity.IsActive,
		Address:   entity.Address,
		GroupID:   entity.GroupID,
		CountryID: entity.CountryID,
		CityID:    entity.CityID,
		RoleIDs:   entity.RoleIDs(),
	}, nil
}

// activeNameTaken reports whether another active user already carries
// the username. Passive users do not block the name.
func (s *UserService) activeNameTaken(ctx context.Context, userName string, excludeID uint) (bool, error) {
	query := s.base.Query(ctx).Where("user_name = ? AND is_active = ?", userName, true)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	return s.base.Exists(ctx, query)
}

var maxScore = decimal.NewFromInt(5)

func scoreOutOfRange(score *decimal.Decimal) bool {
	return score != nil && (score.IsNegative() || score.GreaterThan(maxScore))
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *UserService) Create(ctx context.Context, request dto.UserRequest) (Result, error) {
	userName := strings.TrimSpace(request.UserName)

	if scoreOutOfRange(request.Score) {
		return failure("Score must be between 0 and 5!"), nil
	}

	taken, err := s.activeNameTaken(ctx, userName, 0)
	if err != nil {
		return Result{}, err
	}
	if taken {
		return failure("Active user with the same user name exists!"), nil
	}

	password, err := hashPassword(strings.TrimSpace(request.Password))
	if err != nil {
		return Result{}, err
	}

	entity := models.User{
		UserName:         userName,
		Password:         password,
		FirstName:        strings.TrimSpace(request.FirstName),
		LastName:         strings.TrimSpace(request.LastName),
		Gender:           request.Gender,
		BirthDate:        request.BirthDate,
		RegistrationDate: time.Now(),
		IsActive:         request.IsActive,
		Address:          strings.TrimSpace(request.Address),
		GroupID:          request.GroupID,
		CountryID:        request.CountryID,
		CityID:           request.CityID,
	}
	if request.Score != nil {
		entity.Score = *request.Score
	}
	for _, roleID := range request.RoleIDs {
		entity.UserRoles = append(entity.UserRoles, models.UserRole{RoleID: roleID})
	}

	if err := s.base.Create(ctx, &entity); err != nil {
		return Result{}, err
	}
	return success("User created successfully.", entity.ID), nil
}

func (s *UserService) Update(ctx context.Context, request dto.UserRequest) (Result, error) {
	userName := strings.TrimSpace(request.UserName)

	if scoreOutOfRange(request.Score) {
		return failure("Score must be between 0 and 5!"), nil
	}

	taken, err := s.activeNameTaken(ctx, userName, request.ID)
	if err != nil {
		return Result{}, err
	}
	if taken {
		return failure("Active user with the same user name exists!"), nil
	}

	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", request.ID)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("User not found!"), nil
	}

	password, err := hashPassword(strings.TrimSpace(request.Password))
	if err != nil {
		return Result{}, err
	}

	entity.UserName = userName
	entity.Password = password
	entity.FirstName = strings.TrimSpace(request.FirstName)
	entity.LastName = strings.TrimSpace(request.LastName)
	entity.Gender = request.Gender
	entity.BirthDate = request.BirthDate
	entity.IsActive = request.IsActive
	entity.Address = strings.TrimSpace(request.Address)
	entity.GroupID = request.GroupID
	entity.CountryID = request.CountryID
	entity.CityID = request.CityID
	if request.Score != nil {
		entity.Score = *request.Score
	} else {
		entity.Score = decimal.Zero
	}

	// role assignments are rebuilt from the submitted set
	if err := s.base.DB(ctx).Where("user_id = ?", entity.ID).Delete(&models.UserRole{}).Error; err != nil {
		return Result{}, err
	}
	entity.UserRoles = nil
	if err := s.base.Save(ctx, entity); err != nil {
		return Result{}, err
	}
	for _, roleID := range request.RoleIDs {
		userRole := models.UserRole{UserID: entity.ID, RoleID: roleID}
		if err := s.base.DB(ctx).Create(&userRole).Error; err != nil {
			return Result{}, err
		}
	}
	return success("User updated successfully.", entity.ID), nil
}

func (s *UserService) Delete(ctx context.Context, id uint) (Result, error) {
	entity, err := s.base.Find(ctx, s.base.Query(ctx), "id = ?", id)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("User not found!"), nil
	}

	if err := s.base.DB(ctx).Where("user_id = ?", entity.ID).Delete(&models.UserRole{}).Error; err != nil {
		return Result{}, err
	}
	if err := s.base.Delete(ctx, entity); err != nil {
		return Result{}, err
	}
	return success("User deleted successfully.", entity.ID), nil
}

// Login verifies the credentials of an active user and signs the
// session in. The same message covers an unknown name and a wrong
// password.
func (s *UserService) Login(ctx context.Context, w http.ResponseWriter, r *http.Request, request dto.LoginRequest) (Result, error) {
	userName := strings.TrimSpace(request.UserName)

	entity, err := s.base.Find(ctx,
		s.base.Query(ctx).Preload("UserRoles.Role"),
		"user_name = ? AND is_active = ?", userName, true)
	if err != nil {
		return Result{}, err
	}
	if entity == nil {
		return failure("Invalid user name or password!"), nil
	}
	if bcrypt.CompareHashAndPassword([]byte(entity.Password), []byte(request.Password)) != nil {
		return failure("Invalid user name or password!"), nil
	}

	if err := s.session.SignIn(w, r, entity.ID, entity.UserName, entity.RoleNames()); err != nil {
		return Result{}, err
	}
	return success("Login successful.", entity.ID), nil
}

func (s *UserService) Logout(w http.ResponseWriter, r *http.Request) error {
	return s.session.SignOut(w, r)
}

// Register creates an active user carrying the default "User" role.
func (s *UserService) Register(ctx context.Context, request dto.RegisterRequest) (Result, error) {
	userName := strings.TrimSpace(request.UserName)

	taken, err := s.activeNameTaken(ctx, userName, 0)
	if err != nil {
		return Result{}, err
	}
	if taken {
		return failure("Active user with the same user name exists!"), nil
	}

	role, err := s.roles.Find(ctx, s.roles.Query(ctx), "name = ?", models.RoleUser)
	if err != nil {
		return Result{}, err
	}
	if role == nil {
		return failure("\"User\" role not found!"), nil
	}

	password, err := hashPassword(strings.TrimSpace(request.Password))
	if err != nil {
		return Result{}, err
	}

	entity := models.User{
		UserName:         userName,
		Password:         password,
		RegistrationDate: time.Now(),
		IsActive:         true,
		UserRoles:        []models.UserRole{{RoleID: role.ID}},
	}
	if err := s.base.Create(ctx, &entity); err != nil {
		return Result{}, err
	}
	return success("Registration successful.", entity.ID), nil
}
