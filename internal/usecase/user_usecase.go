package usecase

import (
	"errors"
	"time"

	"attenda/config"
	"attenda/internal/model"
	"attenda/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return errors.New("username, email and password are required")
	}

	// 1. Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// 2. Save user with an empty profile row; role defaults to USER
	user := model.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Role:     model.RoleUser,
		Profile:  model.Profile{},
	}
	return u.repo.Create(&user)
}

// Login verifies the credentials and returns a signed token plus the role and
// email the client persists as its session.
func (u *UserUsecase) Login(email, password string) (string, *model.User, error) {
	// 1. Find user by email
	user, err := u.repo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	// 2. Compare the password against the stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid email or password")
	}

	// 3. Issue the JWT; claims mirror what the middleware reads back
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 24).Unix(), // token lives 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return "", nil, err
	}

	return t, user, nil
}
