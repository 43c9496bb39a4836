package handlers

import (
	"net/http"
	"strings"
	"time"

	"college-feedback-backend/internal/logger"
	"college-feedback-backend/internal/middleware"
	"college-feedback-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	users     UserStore
	jwtSecret string
	tokenTTL  time.Duration
	log       logger.Logger
}

func NewAuthHandler(users UserStore, jwtSecret string, tokenTTL time.Duration, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// --- Request / Response types ---

type RegisterRequest struct {
	Username           string   `json:"username" validate:"required,min=2"`
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required,min=6"`
	Role               string   `json:"role" validate:"required,oneof=student faculty class-teacher admin"`
	MobileNumber       string   `json:"mobileNumber" validate:"omitempty,numeric,min=7,max=15"`
	RegistrationNumber string   `json:"registrationNumber"`
	RollNumber         string   `json:"rollNumber"`
	Semester           string   `json:"semester" validate:"required_if=Role student"`
	Branch             string   `json:"branch" validate:"required_if=Role student"`
	Section            string   `json:"section" validate:"required_if=Role student"`
	Batch              string   `json:"batch"`
	Session            string   `json:"session"`
	AcademicYear       string   `json:"academicYear"`
	Electives          []string `json:"electives"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginUser struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// --- POST /api/register ---

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeServiceError(w, h.log, "Error hashing password", err)
		return
	}

	user := &models.User{
		Username:           req.Username,
		Email:              strings.ToLower(req.Email),
		Password:           string(hash),
		Role:               req.Role,
		MobileNumber:       req.MobileNumber,
		RegistrationNumber: req.RegistrationNumber,
		RollNumber:         req.RollNumber,
		Semester:           req.Semester,
		Branch:             req.Branch,
		Section:            req.Section,
		Batch:              req.Batch,
		Session:            req.Session,
		AcademicYear:       req.AcademicYear,
		Electives:          req.Electives,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		writeServiceError(w, h.log, "Error registering user", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}

// --- POST /api/login ---

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.users.FindByEmail(r.Context(), strings.ToLower(req.Email))
	if err != nil {
		writeServiceError(w, h.log, "Error finding user", err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if !user.IsApproved {
		writeError(w, http.StatusForbidden, "User not approved")
		return
	}

	token, err := middleware.IssueToken(h.jwtSecret, user.ID.Hex(), user.Role, h.tokenTTL)
	if err != nil {
		writeServiceError(w, h.log, "Error signing JWT", err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User:  LoginUser{ID: user.ID.Hex(), Role: user.Role},
	})
}
