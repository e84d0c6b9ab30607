package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/farmacia-api/internal/application/dto"
	"github.com/jhoicas/farmacia-api/internal/domain"
	"github.com/jhoicas/farmacia-api/pkg/jwt"
)

// Locals keys para la identidad del usuario en Fiber.
const (
	LocalUserID      = "user_id"
	LocalFranchiseID = "franchise_id"
	LocalRole        = "role"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, FranchiseID y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalFranchiseID, claims.FranchiseID)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// RequireRole restringe la ruta a los roles indicados. Debe usarse después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permisos para esta operación"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetFranchiseID devuelve el FranchiseID del token (0 = sin franquicia).
func GetFranchiseID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalFranchiseID).(int64)
	return v
}

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRole).(string)
	return v
}

// GetActor arma la identidad que consumen los casos de uso.
func GetActor(c *fiber.Ctx) domain.Actor {
	return domain.Actor{UserID: GetUserID(c), FranchiseID: GetFranchiseID(c), Role: GetRole(c)}
}
