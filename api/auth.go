package api

import (
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"github.com/gigboard/gigboard/pkg/models"
	"github.com/gigboard/gigboard/pkg/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	userRepo      repository.UserRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ur repository.UserRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{userRepo: ur, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	AccountType string `json:"account_type"`
	Role        string `json:"role"`
	Company     string `json:"company"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates a new user account. Employers must additionally supply
// role and company.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.AccountType == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}
	if req.AccountType != models.AccountTypeWorker && req.AccountType != models.AccountTypeEmployer {
		http.Error(w, "Invalid account type", http.StatusBadRequest)
		return
	}
	if req.AccountType == models.AccountTypeEmployer && (req.Role == "" || req.Company == "") {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	// Pre-check the email; the UNIQUE constraint on users.email is the
	// backstop for concurrent registrations.
	existing, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("lookup email", slog.Any("err", err))
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, "Email already registered", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("hash password", slog.Any("err", err))
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		AccountType:  req.AccountType,
		Role:         req.Role,
		Company:      req.Company,
		Status:       "Active",
	}

	id, err := h.userRepo.CreateUser(ctx, &user)
	if err != nil {
		// a racing registration may beat the pre-check; the unique
		// constraint surfaces here
		if isUniqueViolation(err) {
			http.Error(w, "Email already registered", http.StatusBadRequest)
			return
		}
		logger.Error("create user", slog.Any("err", err))
		http.Error(w, "Error creating user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"id": id}, http.StatusCreated)
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password return the same generic message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	user, err := h.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.Error("lookup email", slog.Any("err", err))
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "Invalid email or password", http.StatusBadRequest)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		http.Error(w, "Invalid email or password", http.StatusBadRequest)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":      user.ID,
		"email":        user.Email,
		"account_type": user.AccountType,
		"exp":          time.Now().Add(h.tokenDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		logger.Error("sign token", slog.Any("err", err))
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}

	writeJSON(w, loginResponse{Token: tokenStr, User: user}, http.StatusOK)
}
