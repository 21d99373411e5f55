package api

import (
	"time"

	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/services"
	"github.com/jlgriggs1987-rgb/Rooted-Together-Recovery/internal/store"
	"go.uber.org/zap"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	store        *store.SessionStore
	secretKey    []byte
	cookieSecure bool
	logger       *zap.Logger
}

type credentialsInput struct {
	Role       string `json:"role" form:"role"`
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type shiftPayload struct {
	services.ShiftInput
	EditingID string `json:"editingId" form:"editingId"`
}

type meetingPayload struct {
	services.MeetingInput
	EditingID string `json:"editingId" form:"editingId"`
}

type newResidentInput struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

type financeInput struct {
	Field string `json:"field" form:"field"`
	Value string `json:"value" form:"value"`
}

func NewHandler(sessionStore *store.SessionStore, secret string, cookieSecure bool, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		store:        sessionStore,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}
