// Package httpapi exposes the admin API over HTTP using gin.
package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/common"
	"github.com/dmitrijs2005/storeadmin/internal/logging"
	"github.com/dmitrijs2005/storeadmin/internal/server/i18n"
	"github.com/dmitrijs2005/storeadmin/internal/server/models"
	"github.com/dmitrijs2005/storeadmin/internal/server/services"
	"github.com/dmitrijs2005/storeadmin/internal/timex"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Authenticator checks admin credentials and, when enabled, bearer tokens.
type Authenticator interface {
	VerifyAdmin(ctx context.Context, email, password string) (*models.AdminIdentity, error)
	TokenAuthEnabled() bool
	IssueToken(admin *models.AdminIdentity) (string, error)
	VerifyToken(token string) (*models.AdminIdentity, error)
}

type DashboardBuilder interface {
	Build(ctx context.Context, asOf time.Time) (*models.DashboardSummary, error)
}

type UserManager interface {
	List(ctx context.Context) ([]models.UserView, error)
	Create(ctx context.Context, createdBy string, in models.NewUser) (*models.CreatedUser, error)
}

type Handler struct {
	auth      Authenticator
	dashboard DashboardBuilder
	users     UserManager
	catalog   *i18n.Catalog
	logger    logging.Logger
	now       func() time.Time
}

func NewHandler(a Authenticator, d DashboardBuilder, u UserManager, c *i18n.Catalog, l logging.Logger) *Handler {
	return &Handler{
		auth:      a,
		dashboard: d,
		users:     u,
		catalog:   c,
		logger:    l.With("module", "http_handler"),
		now:       time.Now,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c credentials) missing() bool {
	return c.Email == "" || c.Password == ""
}

// createUserRequest carries the admin's credentials at the top level and
// the new account under "user".
type createUserRequest struct {
	credentials
	User models.NewUser `json:"user"`
}

type loginResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	User    *models.AdminIdentity `json:"user"`
	Token   string                `json:"token,omitempty"`
}

// bindBody decodes the JSON body into dst. An empty body decodes as {}.
func bindBody(c *gin.Context, dst any) error {
	raw, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}
	return binding.JSON.BindBody(raw, dst)
}

func (h *Handler) fail(c *gin.Context, status int, message string, err error) {
	args := []any{"status", status, "path", c.Request.URL.Path, "request_id", c.GetString(requestIDKey)}
	if err != nil {
		args = append(args, "error", err.Error())
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error(c.Request.Context(), message, args...)
	} else {
		h.logger.Warn(c.Request.Context(), message, args...)
	}
	c.JSON(status, gin.H{"success": false, "message": message})
}

func (h *Handler) internal(c *gin.Context, message string, err error) {
	h.fail(c, http.StatusInternalServerError, fmt.Sprintf("%s: %v", message, err), err)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   h.catalog.HealthOK,
		"timestamp": timex.ISOTime{Time: h.now()},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var in credentials
	if err := bindBody(c, &in); err != nil {
		h.fail(c, http.StatusBadRequest, h.catalog.InvalidRequestBody, err)
		return
	}

	admin, err := h.auth.VerifyAdmin(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrMissingCredentials):
			h.fail(c, http.StatusBadRequest, h.catalog.LoginMissingCredentials, err)
		case errors.Is(err, common.ErrAccountNotFound):
			h.fail(c, http.StatusUnauthorized, h.catalog.AccountNotFound, err)
		case errors.Is(err, common.ErrWrongPassword):
			h.fail(c, http.StatusUnauthorized, h.catalog.WrongPassword, err)
		default:
			h.internal(c, h.catalog.InternalError, err)
		}
		return
	}

	token, err := h.auth.IssueToken(admin)
	if err != nil {
		h.internal(c, h.catalog.InternalError, err)
		return
	}

	h.logger.Info(c.Request.Context(), "admin logged in", "admin_id", admin.ID, "request_id", c.GetString(requestIDKey))
	c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: h.catalog.LoginOK,
		User:    admin,
		Token:   token,
	})
}

func (h *Handler) Dashboard(c *gin.Context) {
	var in credentials
	if err := bindBody(c, &in); err != nil {
		h.fail(c, http.StatusBadRequest, h.catalog.InvalidRequestBody, err)
		return
	}
	if in.missing() && bearerToken(c) == "" {
		h.fail(c, http.StatusBadRequest, h.catalog.AuthRequired, common.ErrMissingCredentials)
		return
	}

	if _, ok := h.authenticate(c, in); !ok {
		return
	}

	summary, err := h.dashboard.Build(c.Request.Context(), h.now())
	if err != nil {
		h.internal(c, h.catalog.DashboardFailed, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

func (h *Handler) ListUsers(c *gin.Context) {
	var in credentials
	if err := bindBody(c, &in); err != nil {
		h.fail(c, http.StatusBadRequest, h.catalog.InvalidRequestBody, err)
		return
	}

	if _, ok := h.authenticate(c, in); !ok {
		return
	}

	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.internal(c, h.catalog.ListUsersFailed, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
}

// CreateUser validates the new account before it checks the caller, so a
// malformed request is rejected with 400 whoever sends it.
func (h *Handler) CreateUser(c *gin.Context) {
	var in createUserRequest
	if err := bindBody(c, &in); err != nil {
		h.fail(c, http.StatusBadRequest, h.catalog.InvalidRequestBody, err)
		return
	}

	if err := services.ValidateNewUser(in.User); err != nil {
		h.fail(c, http.StatusBadRequest, h.validationMessage(err), err)
		return
	}

	admin, ok := h.authenticate(c, in.credentials)
	if !ok {
		return
	}

	created, err := h.users.Create(c.Request.Context(), admin.ID, in.User)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEmailTaken):
			h.fail(c, http.StatusBadRequest, h.catalog.EmailTaken, err)
		case errors.Is(err, common.ErrValidation):
			h.fail(c, http.StatusBadRequest, h.validationMessage(err), err)
		default:
			h.internal(c, h.catalog.CreateUserFailed, err)
		}
		return
	}

	h.logger.Info(c.Request.Context(), "user created",
		"user_id", created.ID, "created_by", admin.ID, "request_id", c.GetString(requestIDKey))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": h.catalog.UserCreated,
		"data":    created,
	})
}

func (h *Handler) NotFound(c *gin.Context) {
	h.logger.Warn(c.Request.Context(), "route not found",
		"method", c.Request.Method, "path", c.Request.URL.Path, "request_id", c.GetString(requestIDKey))
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": h.catalog.RouteNotFound,
		"path":    c.Request.URL.Path,
		"method":  c.Request.Method,
	})
}

// authenticate resolves the calling admin from a bearer token, when token
// auth is on and one is sent, or else from the body credentials. On
// failure the response is already written.
func (h *Handler) authenticate(c *gin.Context, in credentials) (*models.AdminIdentity, bool) {
	var (
		admin *models.AdminIdentity
		err   error
	)
	if token := bearerToken(c); token != "" && h.auth.TokenAuthEnabled() {
		admin, err = h.auth.VerifyToken(token)
	} else {
		admin, err = h.auth.VerifyAdmin(c.Request.Context(), in.Email, in.Password)
	}
	if err == nil {
		return admin, true
	}

	if isAuthFailure(err) {
		h.fail(c, http.StatusUnauthorized, h.catalog.AuthFailed, err)
	} else {
		h.internal(c, h.catalog.InternalError, err)
	}
	return nil, false
}

func isAuthFailure(err error) bool {
	return errors.Is(err, common.ErrorUnauthorized) ||
		errors.Is(err, common.ErrMissingCredentials) ||
		errors.Is(err, common.ErrInvalidToken) ||
		errors.Is(err, common.ErrTokenExpired)
}

func bearerToken(c *gin.Context) string {
	v := c.GetHeader(common.AuthorizationHeader)
	if !strings.HasPrefix(v, common.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(v, common.BearerPrefix))
}

func (h *Handler) validationMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrMissingUserFields):
		return h.catalog.MissingUserFields
	case errors.Is(err, common.ErrPasswordTooShort):
		return h.catalog.PasswordTooShort
	case errors.Is(err, common.ErrPasswordTooLong):
		return h.catalog.PasswordTooLong
	case errors.Is(err, common.ErrInvalidRole):
		return h.catalog.InvalidRole
	case errors.Is(err, common.ErrInvalidStoreLimit):
		return h.catalog.InvalidStoreLimit
	}
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
