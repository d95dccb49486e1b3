package api

import (
	"time"

	"github.com/limbo/planner/pkg/entity"
	jwtservice "github.com/limbo/planner/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*jwtservice.Claims, error)
	TTL() time.Duration
}
