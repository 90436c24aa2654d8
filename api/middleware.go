package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/narenkarthik370h/smart-feedback-analysis/schema"
	"github.com/narenkarthik370h/smart-feedback-analysis/utils"
)

// EnvAdminID is the well-known subject for the environment-configured
// administrator. Tokens with this subject never touch the accounts
// collection.
const EnvAdminID = "admin_env_user"

const identityKey = "identity"

// Identity is the resolved caller of a request.
type Identity struct {
	AccountID string
	Name      string
	Email     string
	Role      schema.Role
}

// requesterIdentity returns the identity resolved by the auth middleware.
// The second return value is false for anonymous requests.
func requesterIdentity(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*Identity)
	return identity, ok
}

// resolveIdentity turns a bearer token into an Identity. It returns an
// error when the token is missing, invalid, or names an unknown account.
func (s *Server) resolveIdentity(c *gin.Context) (*Identity, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, fmt.Errorf("no authorization header")
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header {
		return nil, fmt.Errorf("malformed authorization header")
	}

	accountID, err := utils.ParseAccessToken(s.jwtSecret, tokenString)
	if err != nil {
		return nil, err
	}

	if accountID == EnvAdminID {
		if s.envAdmin.Email == "" {
			return nil, fmt.Errorf("env admin not configured")
		}
		return &Identity{
			AccountID: EnvAdminID,
			Name:      s.envAdmin.Name,
			Email:     s.envAdmin.Email,
			Role:      schema.RoleAdmin,
		}, nil
	}

	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, err
	}

	account, err := s.mongoStore.GetAccount(oid)
	if err != nil {
		return nil, err
	}

	return &Identity{
		AccountID: account.ID.Hex(),
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
	}, nil
}

// authRequired rejects requests without a resolvable identity.
func (s *Server) authRequired(c *gin.Context) {
	identity, err := s.resolveIdentity(c)
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorUnauthorized, err)
		return
	}

	c.Set(identityKey, identity)
	c.Next()
}

// authOptional resolves an identity when a valid token is present and
// continues anonymously otherwise.
func (s *Server) authOptional(c *gin.Context) {
	if identity, err := s.resolveIdentity(c); err == nil {
		c.Set(identityKey, identity)
	}
	c.Next()
}

// adminRequired gates admin-only operations. Must run after authRequired.
func (s *Server) adminRequired(c *gin.Context) {
	identity, ok := requesterIdentity(c)
	if !ok || identity.Role != schema.RoleAdmin {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return
	}
	c.Next()
}
