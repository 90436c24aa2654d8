package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/narenkarthik370h/smart-feedback-analysis/schema"
	"github.com/narenkarthik370h/smart-feedback-analysis/store"
	"github.com/narenkarthik370h/smart-feedback-analysis/utils"
)

const minPasswordLength = 6

func identityPayload(identity *Identity) gin.H {
	return gin.H{
		"id":    identity.AccountID,
		"name":  identity.Name,
		"email": identity.Email,
		"role":  identity.Role,
	}
}

// accountRegister is the API for registering a new account
func (s *Server) accountRegister(c *gin.Context) {
	var params struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if len(params.Password) < minPasswordLength {
		abortWithEncoding(c, http.StatusBadRequest, errorPasswordTooShort)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	account, err := s.mongoStore.CreateAccount(params.Name, params.Email, string(hash), schema.RoleUser)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusBadRequest, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	token, err := utils.GenerateAccessToken(s.jwtSecret, account.ID.Hex())
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user": identityPayload(&Identity{
			AccountID: account.ID.Hex(),
			Name:      account.Name,
			Email:     account.Email,
			Role:      account.Role,
		}),
	})
}

// accountLogin authenticates either the environment-configured admin or a
// registered account and returns a bearer token.
func (s *Server) accountLogin(c *gin.Context) {
	var params struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if s.envAdmin.Email != "" && params.Email == s.envAdmin.Email && params.Password == s.envAdmin.Password {
		token, err := utils.GenerateAccessToken(s.jwtSecret, EnvAdminID)
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"token":   token,
			"user": identityPayload(&Identity{
				AccountID: EnvAdminID,
				Name:      s.envAdmin.Name,
				Email:     s.envAdmin.Email,
				Role:      schema.RoleAdmin,
			}),
		})
		return
	}

	account, err := s.mongoStore.GetAccountByEmail(params.Email)
	if err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(params.Password)); err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
		return
	}

	token, err := utils.GenerateAccessToken(s.jwtSecret, account.ID.Hex())
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": identityPayload(&Identity{
			AccountID: account.ID.Hex(),
			Name:      account.Name,
			Email:     account.Email,
			Role:      account.Role,
		}),
	})
}

// accountCreateAdmin bootstraps an admin account. Gated by a shared secret
// so it can stay enabled in development environments.
func (s *Server) accountCreateAdmin(c *gin.Context) {
	var params struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required"`
		AdminSecret string `json:"adminSecret" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if s.adminCreateSecret == "" || params.AdminSecret != s.adminCreateSecret {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return
	}

	if len(params.Password) < minPasswordLength {
		abortWithEncoding(c, http.StatusBadRequest, errorPasswordTooShort)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	account, err := s.mongoStore.CreateAccount(params.Name, params.Email, string(hash), schema.RoleAdmin)
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusBadRequest, errorAccountTaken)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	token, err := utils.GenerateAccessToken(s.jwtSecret, account.ID.Hex())
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user": identityPayload(&Identity{
			AccountID: account.ID.Hex(),
			Name:      account.Name,
			Email:     account.Email,
			Role:      account.Role,
		}),
	})
}

// accountDetail is the API to query the current identity
func (s *Server) accountDetail(c *gin.Context) {
	identity, ok := requesterIdentity(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    identityPayload(identity),
	})
}
