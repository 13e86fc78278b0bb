package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/lectureportal/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var errMalformedToken = errors.New("malformed token")

type tokenMeta struct {
	roles   []string
	subject string
}

// decodeTokenMeta reads roles and subject from the payload segment of token
// without verifying its signature.
func decodeTokenMeta(token string) (tokenMeta, error) {
	if token == "" {
		return tokenMeta{}, nil
	}
	parts := strings.Split(token, ".")
	if len(parts) < 2 || parts[1] == "" {
		return tokenMeta{}, errMalformedToken
	}

	raw, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(parts[1])
	if err != nil {
		return tokenMeta{}, fmt.Errorf("decode payload: %w", err)
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return tokenMeta{}, fmt.Errorf("parse payload: %w", err)
	}

	meta := tokenMeta{roles: extractRoles(claims["role"]), subject: subjectOf(claims)}
	return meta, nil
}

// subjectOf returns sub as text; numeric subjects such as {"sub": 123} are
// formatted without an exponent.
func subjectOf(claims jwt.MapClaims) string {
	if sub, err := claims.GetSubject(); err == nil {
		return sub
	}
	switch v := claims["sub"].(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// extractRoles accepts "ADMIN", {"authority": "ROLE_ADMIN"} or an array of
// either.
func extractRoles(raw any) []string {
	switch v := raw.(type) {
	case string:
		if v == "" {
			return nil
		}
		return []string{NormalizeRole(v)}
	case map[string]any:
		if authority, ok := v["authority"].(string); ok && authority != "" {
			return []string{NormalizeRole(authority)}
		}
		return nil
	case []any:
		var roles []string
		for _, entry := range v {
			roles = append(roles, extractRoles(entry)...)
		}
		return roles
	default:
		return nil
	}
}

// NormalizeRole prefixes name with ROLE_ unless it already carries it.
func NormalizeRole(name string) string {
	if name == "" || strings.HasPrefix(name, common.RolePrefix) {
		return name
	}
	return common.RolePrefix + name
}
